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

package family

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/memgraph"
)

func drain(t *testing.T, seq Seq) []graph.VertexSet {
	t.Helper()
	var out []graph.VertexSet
	for {
		s, ok := seq.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

func TestPowerSetCardinality(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()

	seq, err := Family(g, PowerSet, nil)
	require.NoError(err)
	sets := drain(t, seq)
	require.Len(sets, 16) // 2^4

	seen := map[string]bool{}
	for _, s := range sets {
		seen[s.Key()] = true
	}
	require.Len(seen, 16, "power set must not repeat a subset")
}

func TestPowerSetEmptyGraph(t *testing.T) {
	require := require.New(t)
	g := memgraph.New()

	seq, err := Family(g, PowerSet, nil)
	require.NoError(err)
	sets := drain(t, seq)
	require.Len(sets, 1)
	require.Len(sets[0], 0)
}

func TestWCC(t *testing.T) {
	require := require.New(t)
	g, _, _, _, david := memgraph.ExampleGraph()

	seq, err := Family(g, WCC, nil)
	require.NoError(err)
	sets := drain(t, seq)
	require.Len(sets, 2)

	foundIsolated := false
	for _, s := range sets {
		if len(s) == 1 && s.Contains(david.ID) {
			foundIsolated = true
		}
	}
	require.True(foundIsolated)
}

func TestBFSFamily(t *testing.T) {
	require := require.New(t)
	g, alice, bob, charlie, david := memgraph.ExampleGraph()

	seq, err := Family(g, BFS, &alice)
	require.NoError(err)
	sets := drain(t, seq)
	require.Len(sets, 1)
	require.True(sets[0].Contains(alice.ID))
	require.True(sets[0].Contains(bob.ID))
	require.True(sets[0].Contains(charlie.ID))
	require.False(sets[0].Contains(david.ID))

	_, err = Family(g, BFS, nil)
	require.Error(err)
}
