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

package plan

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/THU-IMOD/monacgraph/family"
	"github.com/THU-IMOD/monacgraph/graph"
)

// Builder assembles a QueryPlan one quantifier at a time, in the order
// they are meant to bind, with a fluent construction style. A Builder
// is single-use: call Build once.
type Builder struct {
	mode        Mode
	prefix      Prefix
	filterBody  string
	aggregation string
	familyMode  family.Mode
	familySet   bool
	seed        *string
	names       map[string]bool
	dupNames    []string
}

// NewBuilder starts a decision-mode plan. Call Collection to switch to
// collection mode before Build.
func NewBuilder() *Builder {
	return &Builder{names: map[string]bool{}}
}

// Collection marks the plan as collection-mode: the prefix must end in
// a subset-domain quantifier, and the resulting QueryPlan is meant to
// be passed to an Engine's Collect method rather than Decide.
func (b *Builder) Collection() *Builder {
	b.mode = Collection
	return b
}

func (b *Builder) addQuantifier(name string, kind Kind, domain Domain) *Builder {
	if b.names[name] {
		b.dupNames = append(b.dupNames, name)
	}
	b.names[name] = true
	b.prefix = append(b.prefix, Quantifier{Name: name, Kind: kind, Domain: domain})
	return b
}

// Exists adds an existential vertex-domain quantifier.
func (b *Builder) Exists(name string) *Builder { return b.addQuantifier(name, Exists, VertexDomain) }

// ForAll adds a universal vertex-domain quantifier.
func (b *Builder) ForAll(name string) *Builder { return b.addQuantifier(name, ForAll, VertexDomain) }

// ExistsSubset adds an existential subset-domain (second-order) quantifier.
func (b *Builder) ExistsSubset(name string) *Builder {
	return b.addQuantifier(name, Exists, SubsetDomain)
}

// ForAllSubset adds a universal subset-domain (second-order) quantifier.
func (b *Builder) ForAllSubset(name string) *Builder {
	return b.addQuantifier(name, ForAll, SubsetDomain)
}

// Filter sets the filter body, the quantifier-free traversal/boolean
// expression evaluated at every fully-bound leaf.
func (b *Builder) Filter(body string) *Builder {
	b.filterBody = body
	return b
}

// Aggregate sets the optional aggregation predicate applied to a
// candidate subset before it is admitted into a collection result.
func (b *Builder) Aggregate(predicate string) *Builder {
	b.aggregation = predicate
	return b
}

// Family sets the candidate-family selector shared by every
// subset-domain quantifier in the plan. seed is only consulted when
// mode is family.BFS.
func (b *Builder) Family(mode family.Mode, seed *graph.Vertex) *Builder {
	b.familyMode = mode
	b.familySet = true
	if seed != nil {
		id := seed.ID
		b.seed = &id
	}
	return b
}

// Build validates the accumulated plan and returns it, or a single
// aggregated plan-invalid error describing every violation found.
func (b *Builder) Build() (QueryPlan, error) {
	var errs *multierror.Error

	if len(b.prefix) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("prefix must have at least one quantifier"))
	}
	if b.filterBody == "" {
		errs = multierror.Append(errs, fmt.Errorf("filter body must not be empty"))
	}
	for _, name := range b.dupNames {
		errs = multierror.Append(errs, fmt.Errorf("quantifier name %q is bound more than once", name))
	}

	needsFamily := false
	for _, q := range b.prefix {
		if q.Domain == SubsetDomain {
			needsFamily = true
		}
	}
	if needsFamily && !b.familySet {
		errs = multierror.Append(errs, fmt.Errorf("plan has a subset-domain quantifier but no candidate-family selector"))
	}
	if b.familySet && b.familyMode == family.BFS && b.seed == nil {
		errs = multierror.Append(errs, fmt.Errorf("bfs candidate family requires a seed vertex"))
	}

	if b.mode == Collection {
		if len(b.prefix) == 0 || b.prefix[len(b.prefix)-1].Domain != SubsetDomain {
			errs = multierror.Append(errs, fmt.Errorf("collection-mode plan must end its prefix with a subset-domain quantifier"))
		}
	}

	if errs.ErrorOrNil() != nil {
		return QueryPlan{}, graph.ErrPlanInvalid.New(errs.Error())
	}

	return QueryPlan{
		Mode:        b.mode,
		Prefix:      b.prefix,
		FilterBody:  b.filterBody,
		Aggregation: b.aggregation,
		FamilyMode:  b.familyMode,
		Seed:        b.seed,
	}, nil
}
