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

// Package plan implements query plan assembly: the fluent builder that
// turns an ordered list of quantifiers, a filter body, and an optional
// aggregation predicate into a QueryPlan handed to the quantifier
// engine (so).
package plan

import "github.com/THU-IMOD/monacgraph/family"

// Kind is a quantifier's logical flavor.
type Kind int

const (
	Exists Kind = iota
	ForAll
)

func (k Kind) String() string {
	if k == Exists {
		return "exists"
	}
	return "forall"
}

// Domain is what a quantifier ranges over.
type Domain int

const (
	VertexDomain Domain = iota
	SubsetDomain
)

func (d Domain) String() string {
	if d == VertexDomain {
		return "vertex"
	}
	return "subset"
}

// Quantifier is the tuple (name, kind, domain).
type Quantifier struct {
	Name   string
	Kind   Kind
	Domain Domain
}

// Prefix is the ordered list of quantifiers of a query.
type Prefix []Quantifier

// Mode distinguishes a decision-mode plan from a collection-mode one;
// Builder infers it from whether Collection() was called.
type Mode int

const (
	Decision Mode = iota
	Collection
)

// QueryPlan is the prefix, the filter body, the candidate-family
// selector used by subset-domain quantifiers, and (in collection mode)
// the aggregation predicate.
type QueryPlan struct {
	Mode        Mode
	Prefix      Prefix
	FilterBody  string
	Aggregation string // optional; empty means "no aggregation predicate"
	FamilyMode  family.Mode
	Seed        *string // vertex id, for family.BFS
}
