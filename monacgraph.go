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

// Package monacgraph is the top-level facade: it wires the candidate-family
// provider, the quantifier engine, and the result materializer together
// over a single storage engine.
package monacgraph

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/THU-IMOD/monacgraph/graph"
	"github.com/THU-IMOD/monacgraph/plan"
	"github.com/THU-IMOD/monacgraph/result"
	"github.com/THU-IMOD/monacgraph/so"
)

// Config controls an Engine's behavior: every knob is explicit and
// passed at construction time rather than read from a global.
type Config struct {
	// MaxPowerSetVertices caps the power-set candidate family; zero
	// means unlimited. Queries over larger graphs in power-set mode
	// fail fast with a plan-invalid-adjacent over-limit error instead
	// of enumerating 2^|V| subsets.
	MaxPowerSetVertices int

	// MaxResultSubsets caps how many witnesses Collect may accumulate.
	// Zero means unlimited.
	MaxResultSubsets int

	// CatchExpressionErrors recovers a filter-body evaluation failure
	// as a false leaf instead of aborting the query. Defaults to true
	// via NewDefault.
	CatchExpressionErrors bool

	// Logger receives structured progress events from the quantifier
	// engine (so). A nil Logger runs silently.
	Logger *logrus.Logger
}

// DefaultConfig returns the Config a plain Engine should use absent any
// caller-supplied tuning.
func DefaultConfig() Config {
	return Config{CatchExpressionErrors: true, Logger: logrus.StandardLogger()}
}

// Engine runs MSO query plans against a single storage engine. An
// Engine is safe for concurrent use by multiple goroutines: it holds
// no per-query mutable state.
type Engine struct {
	storage graph.StorageEngine
	so      *so.Engine
	result  *result.Materializer
}

// NewDefault builds an Engine over storage with DefaultConfig.
func NewDefault(storage graph.StorageEngine) *Engine {
	return New(storage, DefaultConfig())
}

// New builds an Engine over storage with an explicit Config.
func New(storage graph.StorageEngine, cfg Config) *Engine {
	opts := so.Options{
		MaxPowerSetVertices:   cfg.MaxPowerSetVertices,
		MaxResultSubsets:      cfg.MaxResultSubsets,
		CatchExpressionErrors: cfg.CatchExpressionErrors,
		Logger:                cfg.Logger,
	}
	return &Engine{
		storage: storage,
		so:      so.NewEngine(storage, opts),
		result:  result.NewMaterializer(storage),
	}
}

// Decide runs p (which must be a decision-mode plan built via
// plan.NewBuilder) and returns the coerced boolean outcome wrapped in a
// DecisionResult.
func (e *Engine) Decide(ctx context.Context, p plan.QueryPlan) (result.DecisionResult, error) {
	start := time.Now()
	held, err := e.so.Decide(graph.NewContext(ctx), p)
	if err != nil {
		return result.DecisionResult{}, err
	}
	return e.result.Decision(held, time.Since(start)), nil
}

// Collect runs p (which must be a collection-mode plan) and returns
// every admitted witness, packaged with its induced subgraph, in a
// CollectionResult.
func (e *Engine) Collect(ctx context.Context, p plan.QueryPlan) (result.CollectionResult, error) {
	start := time.Now()
	witnesses, err := e.so.Collect(graph.NewContext(ctx), p)
	if err != nil {
		return result.CollectionResult{}, err
	}
	return e.result.Collection(witnesses, time.Since(start)), nil
}
