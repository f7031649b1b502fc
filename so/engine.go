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

// Package so implements the quantifier engine: it binds each
// quantifier of a query plan's prefix in order, calling family for
// set-quantifier domains and expr to evaluate the filter body at
// every fully-bound leaf.
package so

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/THU-IMOD/monacgraph/expr"
	"github.com/THU-IMOD/monacgraph/family"
	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/plan"
)

// Engine runs query plans against a single storage engine. It holds no
// per-query mutable state itself; Decide and Collect are safe to call
// concurrently from multiple goroutines against the same Engine.
type Engine struct {
	storage graph.StorageEngine
	opts    Options
}

// NewEngine constructs an Engine over storage with the given Options.
func NewEngine(storage graph.StorageEngine, opts Options) *Engine {
	return &Engine{storage: storage, opts: opts}
}

// resolveSeed looks up the plan's configured seed vertex, if any.
func (e *Engine) resolveSeed(p plan.QueryPlan) (*graph.Vertex, error) {
	if p.Seed == nil {
		return nil, nil
	}
	v, ok := e.storage.Vertex(*p.Seed)
	if !ok {
		return nil, graph.ErrPlanInvalid.New(fmt.Sprintf("seed vertex %q not found", *p.Seed))
	}
	return &v, nil
}

func (e *Engine) leaf(ctx *graph.Context, p plan.QueryPlan, env *expr.Env) (bool, error) {
	if ctx.Cancelled() {
		return false, graph.ErrCancelled.New()
	}
	v, err := expr.Evaluate(e.storage, p.FilterBody, env, e.opts.CatchExpressionErrors)
	if err != nil {
		return false, graph.ErrExpressionError.Wrap(err, p.FilterBody)
	}
	return expr.Truthy(v), nil
}

// Decide runs p in decision mode: ∃ short-circuits on the first
// binding that makes the rest of the prefix true, ∀ short-circuits on
// the first that makes it false. A vacuous ∃ over an empty domain is
// false; a vacuous ∀ over an empty domain is true.
func (e *Engine) Decide(ctx *graph.Context, p plan.QueryPlan) (result bool, err error) {
	if p.Mode != plan.Decision {
		return false, graph.ErrPlanInvalid.New("Decide called with a collection-mode plan")
	}
	defer e.recoverStorage(&err)

	log := e.opts.log().WithFields(logrus.Fields{"component": "so", "mode": "decide"})
	log.Debug("decide: starting")

	vertices := e.storage.Vertices()
	if err := e.checkPowerSetLimit(p, len(vertices)); err != nil {
		return false, err
	}
	seed, err := e.resolveSeed(p)
	if err != nil {
		return false, err
	}

	result, err = e.decideRec(ctx, p, 0, expr.NewEnv(), vertices, seed)
	log.WithField("result", result).Debug("decide: finished")
	return result, err
}

func (e *Engine) decideRec(ctx *graph.Context, p plan.QueryPlan, idx int, env *expr.Env, vertices []graph.Vertex, seed *graph.Vertex) (bool, error) {
	if idx == len(p.Prefix) {
		return e.leaf(ctx, p, env)
	}
	if ctx.Cancelled() {
		return false, graph.ErrCancelled.New()
	}

	q := p.Prefix[idx]
	seq, err := e.domainFor(q, vertices, p.FamilyMode, seed)
	if err != nil {
		return false, err
	}

	switch q.Kind {
	case plan.Exists:
		for {
			b, ok := seq.Next()
			if !ok {
				return false, nil // vacuous exists: false
			}
			held, err := e.decideRec(ctx, p, idx+1, env.With(q.Name, b), vertices, seed)
			if err != nil {
				return false, err
			}
			if held {
				return true, nil
			}
		}
	case plan.ForAll:
		for {
			b, ok := seq.Next()
			if !ok {
				return true, nil // vacuous forall: true
			}
			held, err := e.decideRec(ctx, p, idx+1, env.With(q.Name, b), vertices, seed)
			if err != nil {
				return false, err
			}
			if !held {
				return false, nil
			}
		}
	default:
		return false, graph.ErrPlanInvalid.New("unknown quantifier kind")
	}
}

// checkPowerSetLimit enforces Options.MaxPowerSetVertices once per
// query, before any recursion begins: the power-set family's size is a
// pure function of the vertex count, so there is nothing to gain by
// re-checking it at every subset-quantifier entry.
func (e *Engine) checkPowerSetLimit(p plan.QueryPlan, numVertices int) error {
	if e.opts.MaxPowerSetVertices <= 0 {
		return nil
	}
	usesPowerSet := false
	for _, q := range p.Prefix {
		if q.Domain == plan.SubsetDomain && p.FamilyMode == family.PowerSet {
			usesPowerSet = true
		}
	}
	if usesPowerSet && numVertices > e.opts.MaxPowerSetVertices {
		return graph.ErrOverLimit.New(fmt.Sprintf("power-set family over %d vertices (have %d)", e.opts.MaxPowerSetVertices, numVertices))
	}
	return nil
}

func (e *Engine) recoverStorage(err *error) {
	if r := recover(); r != nil {
		*err = graph.ErrStorageError.New(fmt.Sprint(r))
	}
}
