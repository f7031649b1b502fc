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

package memgraph

import "github.com/THU-IMOD/monacgraph/graph"

// ExampleGraph builds a small fixture used throughout the end-to-end
// scenario tests: a 3-cycle {Alice, Bob, Charlie} under the "knows"
// label, plus an isolated vertex David.
func ExampleGraph() (g *Graph, alice, bob, charlie, david graph.Vertex) {
	g = New()
	alice = g.AddVertex("alice", "person", map[string]graph.Value{"name": "Alice"})
	bob = g.AddVertex("bob", "person", map[string]graph.Value{"name": "Bob"})
	charlie = g.AddVertex("charlie", "person", map[string]graph.Value{"name": "Charlie"})
	david = g.AddVertex("david", "person", map[string]graph.Value{"name": "David"})

	g.AddEdge("", "knows", alice.ID, bob.ID, nil)
	g.AddEdge("", "knows", bob.ID, charlie.ID, nil)
	g.AddEdge("", "knows", charlie.ID, alice.ID, nil)

	return g, alice, bob, charlie, david
}
