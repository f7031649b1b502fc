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

// Package graph defines the data model and the external storage-engine
// contract that the second-order evaluator is built on. Nothing in this
// package performs graph storage itself; see memgraph for a reference
// implementation used by tests.
package graph

// Value is the scalar type carried by vertex and edge attributes, and
// the result type of the expression evaluator.
type Value interface{}

// Vertex is an opaque identity drawn from the storage engine. Equality
// and hashing are stable for the lifetime of a query.
type Vertex struct {
	ID    string
	Label string
	Attrs map[string]Value
}

// Attr returns the vertex's attribute under key, or (nil, false) if unset.
func (v Vertex) Attr(key string) (Value, bool) {
	val, ok := v.Attrs[key]
	return val, ok
}

// Edge is a directed, labeled relationship between two vertices.
type Edge struct {
	ID     string
	Label  string
	Source string // Vertex.ID
	Target string // Vertex.ID
	Attrs  map[string]Value
}

// Attr returns the edge's attribute under key, or (nil, false) if unset.
func (e Edge) Attr(key string) (Value, bool) {
	val, ok := e.Attrs[key]
	return val, ok
}

// VertexSet is a deduplicating set of vertex identities, keyed by the
// stable Vertex.ID. It is the representation of both a witness and a
// candidate-family member.
type VertexSet map[string]Vertex

// NewVertexSet builds a VertexSet from a slice of vertices.
func NewVertexSet(vs ...Vertex) VertexSet {
	s := make(VertexSet, len(vs))
	for _, v := range vs {
		s[v.ID] = v
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s VertexSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts v into the set, returning the (possibly unchanged) set.
func (s VertexSet) Add(v Vertex) VertexSet {
	s[v.ID] = v
	return s
}

// Slice returns the set's members in no particular order.
func (s VertexSet) Slice() []Vertex {
	out := make([]Vertex, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}
	return out
}

// Key returns a canonical string identifying this set's membership,
// independent of iteration order. Used to deduplicate witnesses, since
// the result of a collection query is a set of sets under set equality.
func (s VertexSet) Key() string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sortStrings(ids)
	key := ""
	for i, id := range ids {
		if i > 0 {
			key += "\x00"
		}
		key += id
	}
	return key
}

// Equal reports whether s and other contain exactly the same vertex ids.
func (s VertexSet) Equal(other VertexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

func sortStrings(ss []string) {
	// insertion sort: candidate families are small in the cases this
	// evaluator is tractable for.
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}
