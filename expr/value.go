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
	"github.com/spf13/cast"

	"github.com/THU-IMOD/monacgraph/graph"
)

// Elem is a single element flowing through a traversal step chain: a
// vertex, an edge, or (after a terminal step like values/id/label) a
// bare scalar. from records the vertex a bothE step pivoted from, so a
// later otherV step can resolve relative to it.
type Elem struct {
	Vertex   *graph.Vertex
	Edge     *graph.Edge
	Scalar   graph.Value
	IsScalar bool
	from     *graph.Vertex
}

func vertexElem(v graph.Vertex) Elem { return Elem{Vertex: &v} }
func edgeElem(e graph.Edge, from *graph.Vertex) Elem {
	return Elem{Edge: &e, from: from}
}
func scalarElem(v graph.Value) Elem { return Elem{Scalar: v, IsScalar: true} }

// ID returns the element's identity string, per the id() step.
func (e Elem) ID() (string, bool) {
	switch {
	case e.Vertex != nil:
		return e.Vertex.ID, true
	case e.Edge != nil:
		return e.Edge.ID, true
	default:
		return "", false
	}
}

// Label returns the element's label, per the label() step.
func (e Elem) Label() (string, bool) {
	switch {
	case e.Vertex != nil:
		return e.Vertex.Label, true
	case e.Edge != nil:
		return e.Edge.Label, true
	default:
		return "", false
	}
}

// Attr returns the element's attribute under key, per has()/values().
func (e Elem) Attr(key string) (graph.Value, bool) {
	switch {
	case e.Vertex != nil:
		return e.Vertex.Attr(key)
	case e.Edge != nil:
		return e.Edge.Attr(key)
	default:
		return nil, false
	}
}

// Equal reports whether e and other denote the same vertex or edge
// identity, per the is(x) step.
func (e Elem) Equal(other Elem) bool {
	if e.Vertex != nil && other.Vertex != nil {
		return e.Vertex.ID == other.Vertex.ID
	}
	if e.Edge != nil && other.Edge != nil {
		return e.Edge.ID == other.Edge.ID
	}
	return false
}

// Truthy implements the coercion rule: false, null, and the empty
// collection coerce to false; a non-empty collection, non-zero number,
// any vertex, and true coerce to true.
func Truthy(v graph.Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case []Elem:
		return len(val) > 0
	case []graph.Value:
		return len(val) > 0
	case graph.Vertex:
		return true
	case graph.Edge:
		return true
	case string:
		return val != ""
	default:
		if n, err := cast.ToFloat64E(v); err == nil {
			return n != 0
		}
		return true
	}
}
