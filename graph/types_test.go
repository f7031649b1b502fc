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

package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVertexSetEquality(t *testing.T) {
	require := require.New(t)

	a := NewVertexSet(
		Vertex{ID: "1", Label: "person"},
		Vertex{ID: "2", Label: "person"},
	)
	b := NewVertexSet(
		Vertex{ID: "2", Label: "person"},
		Vertex{ID: "1", Label: "person"},
	)
	c := NewVertexSet(Vertex{ID: "1", Label: "person"})

	require.True(a.Equal(b))
	require.Equal(a.Key(), b.Key())
	require.False(a.Equal(c))
	require.NotEqual(a.Key(), c.Key())
}

func TestVertexSetAddContains(t *testing.T) {
	require := require.New(t)

	s := NewVertexSet()
	require.False(s.Contains("1"))

	s.Add(Vertex{ID: "1"})
	require.True(s.Contains("1"))
	require.Len(s.Slice(), 1)
}

func TestVertexAttr(t *testing.T) {
	require := require.New(t)

	v := Vertex{ID: "1", Attrs: map[string]Value{"age": 30}}
	val, ok := v.Attr("age")
	require.True(ok)
	require.Equal(30, val)

	_, ok = v.Attr("missing")
	require.False(ok)
}
