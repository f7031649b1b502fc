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

// Package result packages the quantifier engine's raw output (a
// boolean, or a set of witness vertex-sets) into neutral structured
// values ready for downstream serialization.
package result

import (
	"time"

	"github.com/THU-IMOD/monacgraph/graph"
)

// VertexView is the presentation form of a graph.Vertex.
type VertexView struct {
	ID    string
	Label string
	Attrs map[string]graph.Value
}

// EdgeView is the presentation form of a graph.Edge.
type EdgeView struct {
	ID       string
	Label    string
	SourceID string
	TargetID string
	Attrs    map[string]graph.Value
}

// Subgraph is a witness set together with its induced edge set.
type Subgraph struct {
	Vertices []VertexView
	Edges    []EdgeView
	Size     int
}

// DecisionResult is the materialized view of a decide() call.
type DecisionResult struct {
	Value   bool
	Elapsed time.Duration
}

// CollectionResult is the materialized view of a collect() call.
type CollectionResult struct {
	Subsets    []Subgraph
	TotalCount int
	Elapsed    time.Duration
}

// Materializer builds results against a fixed storage engine, caching
// out-edges per vertex across every witness it processes in a single
// Collection call so that a vertex recurring across many witnesses is
// scanned once.
type Materializer struct {
	storage graph.StorageEngine
}

func NewMaterializer(storage graph.StorageEngine) *Materializer {
	return &Materializer{storage: storage}
}

// Decision wraps a decide() outcome.
func (m *Materializer) Decision(value bool, elapsed time.Duration) DecisionResult {
	return DecisionResult{Value: value, Elapsed: elapsed}
}

// Collection wraps a collect() outcome, computing each witness's
// induced subgraph.
func (m *Materializer) Collection(witnesses []graph.VertexSet, elapsed time.Duration) CollectionResult {
	edgeCache := map[string][]graph.Edge{}
	edgesOf := func(id string) []graph.Edge {
		if es, ok := edgeCache[id]; ok {
			return es
		}
		v, ok := m.storage.Vertex(id)
		if !ok {
			edgeCache[id] = nil
			return nil
		}
		es := m.storage.OutEdges(v)
		edgeCache[id] = es
		return es
	}

	subsets := make([]Subgraph, 0, len(witnesses))
	for _, s := range witnesses {
		subsets = append(subsets, m.subgraph(s, edgesOf))
	}

	return CollectionResult{
		Subsets:    subsets,
		TotalCount: len(subsets),
		Elapsed:    elapsed,
	}
}

func (m *Materializer) subgraph(s graph.VertexSet, edgesOf func(id string) []graph.Edge) Subgraph {
	vertices := s.Slice()
	views := make([]VertexView, len(vertices))
	for i, v := range vertices {
		views[i] = VertexView{ID: v.ID, Label: v.Label, Attrs: v.Attrs}
	}

	var edges []EdgeView
	seen := map[string]bool{}
	for _, v := range vertices {
		for _, e := range edgesOf(v.ID) {
			if !s.Contains(e.Target) || seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			edges = append(edges, EdgeView{
				ID: e.ID, Label: e.Label,
				SourceID: e.Source, TargetID: e.Target,
				Attrs: e.Attrs,
			})
		}
	}

	return Subgraph{Vertices: views, Edges: edges, Size: len(vertices)}
}
