// Copyright 2024 The MonacGraph Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/memgraph"
)

func TestDecisionResult(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	m := NewMaterializer(g)
	r := m.Decision(true, 5*time.Millisecond)
	require.True(r.Value)
	require.Equal(5*time.Millisecond, r.Elapsed)
}

func TestCollectionInducedSubgraph(t *testing.T) {
	require := require.New(t)
	g, alice, bob, charlie, david := memgraph.ExampleGraph()

	cycle := graph.NewVertexSet(alice, bob, charlie)
	isolated := graph.NewVertexSet(david)

	m := NewMaterializer(g)
	r := m.Collection([]graph.VertexSet{cycle, isolated}, time.Second)

	require.Equal(2, r.TotalCount)
	for _, sub := range r.Subsets {
		if sub.Size == 3 {
			require.Len(sub.Edges, 3, "the cycle has 3 internal knows edges")
		}
		if sub.Size == 1 {
			require.Empty(sub.Edges)
		}
	}
}
