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

package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/memgraph"
)

func envXY(x, y graph.Vertex) *Env {
	return NewEnv().With("x", VertexBinding(x)).With("y", VertexBinding(y))
}

func TestEvaluateOutIs(t *testing.T) {
	require := require.New(t)
	g, alice, bob, _, _ := memgraph.ExampleGraph()

	v, err := Evaluate(g, `g.V(x).out("knows").is(y)`, envXY(alice, bob), true)
	require.NoError(err)
	require.True(Truthy(v))

	v, err = Evaluate(g, `g.V(x).out("knows").is(y)`, envXY(bob, alice), true)
	require.NoError(err)
	require.False(Truthy(v))
}

func TestBooleanComposition(t *testing.T) {
	require := require.New(t)
	g, alice, bob, _, _ := memgraph.ExampleGraph()

	// design-notes example: mixed || across two traversal legs, with
	// call parens ("knows") not confused for grouping parens.
	v, err := Evaluate(g, `g.V(x).out("knows").is(y) || g.V(y).is(x)`, envXY(alice, bob), true)
	require.NoError(err)
	require.True(Truthy(v))

	v, err = Evaluate(g, `g.V(x).out("knows").is(y) && g.V(y).out("knows").is(x)`, envXY(alice, bob), true)
	require.NoError(err)
	require.False(Truthy(v)) // alice->bob but not bob->alice

	// bob does not directly know alice (bob->charlie only), so the
	// negation holds.
	v, err = Evaluate(g, `!(g.V(x).out("knows").is(y))`, envXY(bob, alice), true)
	require.NoError(err)
	require.True(Truthy(v))
}

func TestGroupingVsCallParens(t *testing.T) {
	require := require.New(t)
	g, alice, bob, charlie, _ := memgraph.ExampleGraph()

	env := NewEnv().With("x", VertexBinding(alice)).With("y", VertexBinding(bob)).With("z", VertexBinding(charlie))
	v, err := Evaluate(g, `(g.V(x).out("knows").is(y) || g.V(y).out("knows").is(z)) && true`, env, true)
	require.NoError(err)
	require.True(Truthy(v))
}

func TestHasHasLabelValues(t *testing.T) {
	require := require.New(t)
	g, alice, _, _, _ := memgraph.ExampleGraph()
	env := NewEnv().With("x", VertexBinding(alice))

	v, err := Evaluate(g, `g.V(x).has("name", "Alice")`, env, true)
	require.NoError(err)
	require.True(Truthy(v))

	v, err = Evaluate(g, `g.V(x).hasLabel("person")`, env, true)
	require.NoError(err)
	require.True(Truthy(v))

	v, err = Evaluate(g, `g.V(x).values("name")`, env, true)
	require.NoError(err)
	require.Equal("Alice", v)
}

func TestCountIdLabel(t *testing.T) {
	require := require.New(t)
	g, alice, _, _, _ := memgraph.ExampleGraph()
	env := NewEnv().With("x", VertexBinding(alice))

	v, err := Evaluate(g, `g.V().count()`, env, true)
	require.NoError(err)
	require.Equal(int64(4), v)

	v, err = Evaluate(g, `g.V(x).out("knows").count()`, env, true)
	require.NoError(err)
	require.Equal(int64(1), v)

	v, err = Evaluate(g, `g.V(x).label()`, env, true)
	require.NoError(err)
	require.Equal("person", v)
}

func TestErrorPolicy(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()

	v, err := Evaluate(g, `g.V(nope).out("knows")`, NewEnv(), true)
	require.NoError(err)
	require.Nil(v)
	require.False(Truthy(v))

	_, err = Evaluate(g, `g.V(nope).out("knows")`, NewEnv(), false)
	require.Error(err)
	require.True(graph.ErrExpressionError.Is(err))
}

func TestOtherV(t *testing.T) {
	require := require.New(t)
	g, alice, bob, _, _ := memgraph.ExampleGraph()
	env := NewEnv().With("x", VertexBinding(alice))

	v, err := Evaluate(g, `g.V(x).bothE("knows").otherV().hasLabel("person")`, env, true)
	require.NoError(err)
	require.True(Truthy(v))
	_ = bob
}
