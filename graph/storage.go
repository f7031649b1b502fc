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

// StorageEngine is an external, read-only collaborator. The
// second-order evaluator never mutates it and treats every call as
// read-only and idempotent. memgraph provides a reference
// implementation for tests; production deployments bind this to the
// real graph storage engine.
type StorageEngine interface {
	// Vertices returns every vertex in the graph, in the engine's
	// natural (stable) order.
	Vertices() []Vertex
	// Edges returns every edge in the graph.
	Edges() []Edge
	// Vertex looks up a single vertex by id.
	Vertex(id string) (Vertex, bool)

	// Out returns the vertices reachable from v along an out-edge,
	// optionally restricted to label. In and Both are symmetric.
	Out(v Vertex, label string) []Vertex
	In(v Vertex, label string) []Vertex
	Both(v Vertex, label string) []Vertex

	// OutEdges and InEdges return the out/in incident edges of v.
	OutEdges(v Vertex) []Edge
	InEdges(v Vertex) []Edge

	// ComponentsWeak returns the weakly connected components.
	ComponentsWeak() []VertexSet
	// ComponentsStrong returns the strongly connected components.
	ComponentsStrong() []VertexSet
	// Communities returns the storage engine's community partition.
	Communities() []VertexSet
	// BFS returns the set of vertices reachable from seed along any
	// edge direction.
	BFS(seed Vertex) VertexSet
}
