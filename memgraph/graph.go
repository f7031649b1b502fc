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

// Package memgraph is a reference, in-memory implementation of
// graph.StorageEngine: an in-process adjacency structure used to
// exercise the quantifier engine without a real storage backend. It is
// not part of the second-order evaluator; it exists so the evaluator's
// tests and examples have something concrete to query.
package memgraph

import (
	"sort"

	"github.com/google/uuid"

	"github.com/THU-IMOD/monacgraph/graph"
)

// Graph is a directed, labeled, in-memory multigraph. Vertex and edge
// order, for deterministic enumeration, is insertion order.
type Graph struct {
	order    []string
	vertices map[string]graph.Vertex
	outEdges map[string][]graph.Edge
	inEdges  map[string][]graph.Edge
	edges    []graph.Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[string]graph.Vertex),
		outEdges: make(map[string][]graph.Edge),
		inEdges:  make(map[string][]graph.Edge),
	}
}

// AddVertex inserts a vertex with a freshly minted, collision-free id
// if id is empty, and returns the stored vertex. Mutating the graph
// after queries have started is the caller's responsibility to avoid;
// the evaluator snapshots graph.Vertices() once at query start.
func (g *Graph) AddVertex(id, label string, attrs map[string]graph.Value) graph.Vertex {
	if id == "" {
		id = uuid.NewString()
	}
	v := graph.Vertex{ID: id, Label: label, Attrs: attrs}
	if _, exists := g.vertices[id]; !exists {
		g.order = append(g.order, id)
	}
	g.vertices[id] = v
	return v
}

// AddEdge inserts a directed edge between two already-added vertices.
func (g *Graph) AddEdge(id, label, source, target string, attrs map[string]graph.Value) graph.Edge {
	if id == "" {
		id = uuid.NewString()
	}
	e := graph.Edge{ID: id, Label: label, Source: source, Target: target, Attrs: attrs}
	g.edges = append(g.edges, e)
	g.outEdges[source] = append(g.outEdges[source], e)
	g.inEdges[target] = append(g.inEdges[target], e)
	return e
}

func (g *Graph) Vertices() []graph.Vertex {
	out := make([]graph.Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}
	return out
}

func (g *Graph) Edges() []graph.Edge {
	out := make([]graph.Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

func (g *Graph) Vertex(id string) (graph.Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

func filterByLabel(edges []graph.Edge, label string) []graph.Edge {
	if label == "" {
		return edges
	}
	out := make([]graph.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

func (g *Graph) Out(v graph.Vertex, label string) []graph.Vertex {
	var out []graph.Vertex
	for _, e := range filterByLabel(g.outEdges[v.ID], label) {
		out = append(out, g.vertices[e.Target])
	}
	return out
}

func (g *Graph) In(v graph.Vertex, label string) []graph.Vertex {
	var out []graph.Vertex
	for _, e := range filterByLabel(g.inEdges[v.ID], label) {
		out = append(out, g.vertices[e.Source])
	}
	return out
}

func (g *Graph) Both(v graph.Vertex, label string) []graph.Vertex {
	out := g.Out(v, label)
	return append(out, g.In(v, label)...)
}

func (g *Graph) OutEdges(v graph.Vertex) []graph.Edge {
	out := make([]graph.Edge, len(g.outEdges[v.ID]))
	copy(out, g.outEdges[v.ID])
	return out
}

func (g *Graph) InEdges(v graph.Vertex) []graph.Edge {
	out := make([]graph.Edge, len(g.inEdges[v.ID]))
	copy(out, g.inEdges[v.ID])
	return out
}

// ComponentsWeak returns the weakly connected components via union-find
// over both edge directions.
func (g *Graph) ComponentsWeak() []graph.VertexSet {
	uf := newUnionFind(g.order)
	for _, e := range g.edges {
		uf.union(e.Source, e.Target)
	}
	return uf.sets(g.vertices, g.order)
}

// ComponentsStrong returns the strongly connected components, computed
// with Tarjan's algorithm.
func (g *Graph) ComponentsStrong() []graph.VertexSet {
	t := &tarjan{
		graph:   g,
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}
	for _, id := range g.order {
		if _, seen := t.index[id]; !seen {
			t.strongconnect(id)
		}
	}
	return t.components
}

// Communities is a stand-in for whatever community-detection algorithm
// the real storage engine runs; memgraph treats each weakly connected
// component as its own community, which is sufficient for exercising
// the candidate-family provider's "community" mode in tests.
func (g *Graph) Communities() []graph.VertexSet {
	return g.ComponentsWeak()
}

// BFS returns every vertex reachable from seed along any edge direction.
func (g *Graph) BFS(seed graph.Vertex) graph.VertexSet {
	visited := graph.NewVertexSet()
	queue := []graph.Vertex{seed}
	visited.Add(seed)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Both(cur, "") {
			if !visited.Contains(n.ID) {
				visited.Add(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

var _ graph.StorageEngine = (*Graph)(nil)

// --- union-find, for ComponentsWeak ---

type unionFind struct {
	parent map[string]string
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

func (uf *unionFind) sets(vertices map[string]graph.Vertex, order []string) []graph.VertexSet {
	groups := make(map[string]graph.VertexSet)
	for _, id := range order {
		root := uf.find(id)
		if groups[root] == nil {
			groups[root] = graph.NewVertexSet()
		}
		groups[root].Add(vertices[id])
	}
	roots := make([]string, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Strings(roots)
	out := make([]graph.VertexSet, 0, len(roots))
	for _, root := range roots {
		out = append(out, groups[root])
	}
	return out
}

// --- Tarjan's SCC algorithm ---

type tarjan struct {
	graph      *Graph
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	counter    int
	components []graph.VertexSet
}

func (t *tarjan) strongconnect(id string) {
	t.index[id] = t.counter
	t.lowlink[id] = t.counter
	t.counter++
	t.stack = append(t.stack, id)
	t.onStack[id] = true

	v := t.graph.vertices[id]
	for _, e := range t.graph.outEdges[v.ID] {
		w := e.Target
		if _, seen := t.index[w]; !seen {
			t.strongconnect(w)
			if t.lowlink[w] < t.lowlink[id] {
				t.lowlink[id] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[id] {
				t.lowlink[id] = t.index[w]
			}
		}
	}

	if t.lowlink[id] == t.index[id] {
		set := graph.NewVertexSet()
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			set.Add(t.graph.vertices[w])
			if w == id {
				break
			}
		}
		t.components = append(t.components, set)
	}
}
