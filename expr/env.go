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

import "github.com/THU-IMOD/monacgraph/graph"

// Binding is what a variable name is bound to: exactly one of a single
// vertex or a vertex set.
type Binding struct {
	Vertex *graph.Vertex
	Set    graph.VertexSet
}

func VertexBinding(v graph.Vertex) Binding     { return Binding{Vertex: &v} }
func SetBinding(s graph.VertexSet) Binding     { return Binding{Set: s} }
func (b Binding) IsVertex() bool               { return b.Vertex != nil }
func (b Binding) IsSet() bool                  { return b.Set != nil }

// Env is the binding environment: a mapping from variable name to
// either a vertex or a set of vertices. Env is immutable from
// the caller's perspective — With returns a new environment sharing the
// parent's bindings, so sibling branches of the quantifier engine never
// observe each other's bindings.
type Env struct {
	parent *Env
	name   string
	value  Binding
}

// NewEnv returns the empty environment.
func NewEnv() *Env { return nil }

// With returns an environment extending e with name bound to value.
func (e *Env) With(name string, value Binding) *Env {
	return &Env{parent: e, name: name, value: value}
}

// Lookup resolves name, searching from the most recently introduced
// binding outward: a name is in scope from its introduction until its
// quantifier returns.
func (e *Env) Lookup(name string) (Binding, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return Binding{}, false
}
