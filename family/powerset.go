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

package family

import "github.com/THU-IMOD/monacgraph/graph"

// powerSetSeqImpl streams the 2^|V| subsets of vertices as an explicit
// bit-counter walk rather than a recursive depth-first
// inclusion/exclusion descent, to avoid unbounded recursion depth: each
// subset is produced in O(|V|) from the binary representation of a
// counter, so Next() never recurses and the generator is trivially
// restartable and leak-free if the caller stops early. Never
// materializes more than one subset at a time.
type powerSetSeqImpl struct {
	vertices []graph.Vertex
	counter  uint64
	total    uint64
}

func powerSetSeq(vertices []graph.Vertex) Seq {
	n := uint64(len(vertices))
	return &powerSetSeqImpl{vertices: vertices, total: uint64(1) << n}
}

func (p *powerSetSeqImpl) Next() (graph.VertexSet, bool) {
	if p.counter >= p.total {
		return nil, false
	}
	set := graph.NewVertexSet()
	bits := p.counter
	for i, v := range p.vertices {
		if bits&(uint64(1)<<uint(i)) != 0 {
			set.Add(v)
		}
	}
	p.counter++
	return set, true
}

// PowerSetSize returns 2^numVertices, the power-set family's
// cardinality.
func PowerSetSize(numVertices int) uint64 {
	return uint64(1) << uint(numVertices)
}
