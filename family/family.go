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

// Package family implements the candidate-family provider: the domain
// a set-quantifier ranges over.
package family

import "github.com/THU-IMOD/monacgraph/graph"

// Mode selects which family a subset-domain quantifier draws from.
type Mode string

const (
	PowerSet Mode = "power-set"
	WCC      Mode = "wcc"
	SCC      Mode = "scc"
	Community Mode = "community"
	BFS      Mode = "bfs"
)

// Seq is a pull-based lazy sequence of candidate vertex sets, mirroring
// expr.Seq so that power-set enumeration can stream its 2^|V| leaves
// instead of materializing them.
type Seq interface {
	Next() (graph.VertexSet, bool)
}

type sliceSeq struct {
	items []graph.VertexSet
	i     int
}

func FromSlice(items []graph.VertexSet) Seq { return &sliceSeq{items: items} }

func (s *sliceSeq) Next() (graph.VertexSet, bool) {
	if s.i >= len(s.items) {
		return nil, false
	}
	v := s.items[s.i]
	s.i++
	return v, true
}

// Family produces the family of vertex subsets for mode, given the
// storage engine and (for bfs) a seed vertex. The power-set family is
// generated lazily by a bit-counter walk over the vertices, in the
// storage engine's natural order. It is the caller's (so's)
// responsibility to enforce Options.MaxPowerSetVertices before asking
// for the power-set family of a large graph.
func Family(storage graph.StorageEngine, mode Mode, seed *graph.Vertex) (Seq, error) {
	switch mode {
	case PowerSet:
		return powerSetSeq(storage.Vertices()), nil
	case WCC:
		return FromSlice(storage.ComponentsWeak()), nil
	case SCC:
		return FromSlice(storage.ComponentsStrong()), nil
	case Community:
		return FromSlice(storage.Communities()), nil
	case BFS:
		if seed == nil {
			return nil, errBFSRequiresSeed
		}
		return FromSlice([]graph.VertexSet{storage.BFS(*seed)}), nil
	default:
		return nil, errUnknownMode(mode)
	}
}
