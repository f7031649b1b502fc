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
	"github.com/sirupsen/logrus"

	"github.com/THU-IMOD/monacgraph/aggregate"
	"github.com/THU-IMOD/monacgraph/expr"
	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/plan"
)

// collector accumulates the witnesses a Collect call admits, deduping
// by VertexSet.Key and enforcing Options.MaxResultSubsets.
type collector struct {
	max     int
	seen    map[string]bool
	witness []graph.VertexSet
}

func newCollector(max int) *collector {
	return &collector{max: max, seen: map[string]bool{}}
}

func (c *collector) admit(s graph.VertexSet) error {
	key := s.Key()
	if c.seen[key] {
		return nil
	}
	if c.max > 0 && len(c.witness) >= c.max {
		return graph.ErrTooLargeResult.New("collection exceeded the configured witness limit")
	}
	c.seen[key] = true
	c.witness = append(c.witness, s)
	return nil
}

// Collect runs p in collection mode: the last (subset-domain)
// quantifier of the prefix is enumerated in full at every combination
// of the bindings preceding it, and each candidate whose leaf holds
// (and whose aggregation predicate, if any, passes) is admitted as a
// witness. A ∀ at the last position must not short-circuit, and this
// implementation disables short-circuiting for every quantifier during
// collection, not only the last one: the goal is the complete witness
// set, and pruning any branch on the way
// to the last quantifier risks skipping a combination that is the
// only path by which some witness gets admitted. The declared ∃/∀ kind
// of a non-last quantifier therefore only documents the query's
// intended reading; it does not change collect's traversal.
func (e *Engine) Collect(ctx *graph.Context, p plan.QueryPlan) (witness []graph.VertexSet, err error) {
	if p.Mode != plan.Collection {
		return nil, graph.ErrPlanInvalid.New("Collect called with a decision-mode plan")
	}
	defer e.recoverStorage(&err)

	log := e.opts.log().WithFields(logrus.Fields{"component": "so", "mode": "collect"})
	log.Debug("collect: starting")

	vertices := e.storage.Vertices()
	if err := e.checkPowerSetLimit(p, len(vertices)); err != nil {
		return nil, err
	}
	seed, err := e.resolveSeed(p)
	if err != nil {
		return nil, err
	}

	c := newCollector(e.opts.MaxResultSubsets)
	if err := e.collectRec(ctx, p, 0, expr.NewEnv(), vertices, seed, c); err != nil {
		return nil, err
	}

	log.WithField("witnesses", len(c.witness)).Debug("collect: finished")
	return c.witness, nil
}

func (e *Engine) collectRec(ctx *graph.Context, p plan.QueryPlan, idx int, env *expr.Env, vertices []graph.Vertex, seed *graph.Vertex, c *collector) error {
	if ctx.Cancelled() {
		return graph.ErrCancelled.New()
	}

	last := idx == len(p.Prefix)-1
	q := p.Prefix[idx]
	seq, err := e.domainFor(q, vertices, p.FamilyMode, seed)
	if err != nil {
		return err
	}

	for {
		b, ok := seq.Next()
		if !ok {
			return nil
		}
		childEnv := env.With(q.Name, b)

		if last {
			held, err := e.leaf(ctx, p, childEnv)
			if err != nil {
				return err
			}
			if !held {
				continue
			}
			set := b.Set
			ok, err := aggregate.Evaluate(p.Aggregation, set)
			if err != nil {
				return err
			}
			if ok {
				if err := c.admit(set); err != nil {
					return err
				}
			}
			continue
		}

		if err := e.collectRec(ctx, p, idx+1, childEnv, vertices, seed, c); err != nil {
			return err
		}
	}
}
