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
	"github.com/THU-IMOD/monacgraph/expr"
	"github.com/THU-IMOD/monacgraph/family"
	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/plan"
)

// bindingSeq is the common shape of a vertex-domain or subset-domain
// quantifier's domain: pull one binding at a time, so that a ∃ can
// stop after the first success and a ∀ after the first failure
// without materializing the whole domain first.
type bindingSeq interface {
	Next() (expr.Binding, bool)
}

type vertexSeq struct {
	vertices []graph.Vertex
	i        int
}

func (v *vertexSeq) Next() (expr.Binding, bool) {
	if v.i >= len(v.vertices) {
		return expr.Binding{}, false
	}
	b := expr.VertexBinding(v.vertices[v.i])
	v.i++
	return b, true
}

type subsetSeq struct {
	inner family.Seq
}

func (s *subsetSeq) Next() (expr.Binding, bool) {
	set, ok := s.inner.Next()
	if !ok {
		return expr.Binding{}, false
	}
	return expr.SetBinding(set), true
}

// domainFor builds the binding sequence a single quantifier ranges
// over. Vertex-domain quantifiers always range over the snapshot of
// vertices taken at the start of the query (vertices): decide and
// collect must not disagree about what "all vertices" means mid-query.
func (e *Engine) domainFor(q plan.Quantifier, vertices []graph.Vertex, familyMode family.Mode, seed *graph.Vertex) (bindingSeq, error) {
	switch q.Domain {
	case plan.VertexDomain:
		return &vertexSeq{vertices: vertices}, nil
	case plan.SubsetDomain:
		seq, err := family.Family(e.storage, familyMode, seed)
		if err != nil {
			return nil, err
		}
		return &subsetSeq{inner: seq}, nil
	default:
		return nil, graph.ErrPlanInvalid.New("unknown quantifier domain")
	}
}
