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

package so

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/THU-IMOD/monacgraph/family"
	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/memgraph"
	"github.com/THU-IMOD/monacgraph/plan"
)

func testOptions() Options {
	return Options{CatchExpressionErrors: true}
}

func TestDecideExistsExists(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		Exists("x").Exists("y").
		Filter(`g.V(x).out("knows").is(y)`).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.True(held, "alice knows bob, so some x knows some y")
}

func TestDecideExistsForAll(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		Exists("x").ForAll("y").
		Filter(`g.V(x).out("knows").is(y)`).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.False(held, "no single vertex knows every other vertex")
}

func TestDecideForAllForAllFalse(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		ForAll("x").ForAll("y").
		Filter(`g.V(x).out("knows").is(y)`).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.False(held)
}

func TestDecideVacuousExistsIsFalseOnEmptyGraph(t *testing.T) {
	require := require.New(t)
	g := memgraph.New()
	p, err := plan.NewBuilder().
		Exists("x").
		Filter(`g.V(x).count()`).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.False(held, "exists over an empty vertex domain is vacuously false")
}

func TestDecideVacuousForAllIsTrueOnEmptyGraph(t *testing.T) {
	require := require.New(t)
	g := memgraph.New()
	p, err := plan.NewBuilder().
		ForAll("x").
		Filter(`!(g.V(x).count())`).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.True(held, "forall over an empty vertex domain is vacuously true")
}

func TestDecideVacuousExistsSubsetIsFalseOnEmptyGraph(t *testing.T) {
	require := require.New(t)
	g := memgraph.New()
	p, err := plan.NewBuilder().
		ExistsSubset("s").
		Filter(`g.V(s).count()`).
		Family(family.WCC, nil).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.False(held, "an empty graph has no weakly connected components, so exists-subset is vacuously false")
}

func TestDecideSingleVertexGraphExistsForAll(t *testing.T) {
	require := require.New(t)
	g := memgraph.New()
	g.AddVertex("only", "person", nil)
	p, err := plan.NewBuilder().
		Exists("x").ForAll("y").
		Filter(`g.V(x).is(y)`).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.True(held, "the single vertex is equal to every vertex in a one-vertex graph")
}

func TestCollectOnEmptyGraphYieldsNoWitnesses(t *testing.T) {
	require := require.New(t)
	g := memgraph.New()
	p, err := plan.NewBuilder().
		Collection().
		ExistsSubset("s").
		Filter(`g.V(s).count()`).
		Family(family.WCC, nil).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	witnesses, err := e.Collect(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.Empty(witnesses)
}

func TestDecideWCCFamily(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		ExistsSubset("s").
		Filter(`!(g.V(s).out("knows").count())`).
		Family(family.WCC, nil).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	held, err := e.Decide(graph.NewEmptyContext(), p)
	require.NoError(err)
	require.True(held, "david's component has no outgoing knows edges")
}

func TestCollectAggregationSizeGreaterThanOne(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		Collection().
		ExistsSubset("s").
		Filter(`g.V(s).count()`).
		Aggregate("Size > 1").
		Family(family.WCC, nil).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	witnesses, err := e.Collect(graph.NewEmptyContext(), p)
	require.NoError(err)
	for _, w := range witnesses {
		require.True(len(w) > 1)
	}
	require.NotEmpty(witnesses, "the {alice,bob,charlie} component has size 3")
}

func TestCollectRelativizedBoundedQuantifiers(t *testing.T) {
	require := require.New(t)
	g, alice, bob, charlie, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		Collection().
		ForAll("x").
		Exists("y").
		ExistsSubset("s").
		Filter(`!(g.V(x).is(s)) || (g.V(y).is(s) && g.V(x).out("knows").is(y))`).
		Family(family.PowerSet, nil).
		Build()
	require.NoError(err)

	e := NewEngine(g, testOptions())
	witnesses, err := e.Collect(graph.NewEmptyContext(), p)
	require.NoError(err)

	found := false
	for _, w := range witnesses {
		if len(w) == 3 && w.Contains(alice.ID) && w.Contains(bob.ID) && w.Contains(charlie.ID) {
			found = true
		}
	}
	require.True(found, "the cycle {alice,bob,charlie} satisfies 'everyone in S knows someone in S'")
}

func TestDecideCancellation(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		ExistsSubset("s").
		Filter(`g.V(s).count()`).
		Family(family.PowerSet, nil).
		Build()
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewEngine(g, testOptions())
	_, err = e.Decide(graph.NewContext(ctx), p)
	require.Error(err)
	require.True(graph.ErrCancelled.Is(err))
}

func TestDecideOverPowerSetLimit(t *testing.T) {
	require := require.New(t)
	g, _, _, _, _ := memgraph.ExampleGraph()
	p, err := plan.NewBuilder().
		ExistsSubset("s").
		Filter(`g.V(s).count()`).
		Family(family.PowerSet, nil).
		Build()
	require.NoError(err)

	opts := testOptions()
	opts.MaxPowerSetVertices = 2
	e := NewEngine(g, opts)
	_, err = e.Decide(graph.NewEmptyContext(), p)
	require.Error(err)
	require.True(graph.ErrOverLimit.Is(err))
}
