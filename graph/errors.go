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

package graph

import errors "gopkg.in/src-d/go-errors.v1"

// Tagged error kinds. Each is a *errors.Kind; raise with .New(...) and
// test with .Is(err) at call sites.
var (
	// ErrPlanInvalid is returned by the plan builder when validation
	// fails: empty prefix, empty filter body, duplicate quantifier
	// names, or a missing candidate-family selector in collection mode.
	ErrPlanInvalid = errors.NewKind("plan invalid: %s")

	// ErrExpressionError is raised when the expression evaluator fails to
	// parse or evaluate a filter subexpression. Under the default
	// (CatchExpressionErrors) policy a filter-body failure is recovered
	// locally as false and never reaches the caller; under the strict
	// policy it propagates wrapped in this kind. A collection plan's
	// aggregation predicate that fails to compile or run is also
	// reported with this kind, and is returned under either policy.
	ErrExpressionError = errors.NewKind("expression error: %s")

	// ErrStorageError wraps a failure reported by the StorageEngine.
	// Always fatal; any partial collection result is discarded.
	ErrStorageError = errors.NewKind("storage error: %s")

	// ErrOverLimit is returned when a candidate family exceeds a
	// configured cap (Options.MaxPowerSetVertices).
	ErrOverLimit = errors.NewKind("candidate family over limit: %s")

	// ErrTooLargeResult is returned when collection mode produces more
	// subsets than Options.MaxResultSubsets allows.
	ErrTooLargeResult = errors.NewKind("result too large: %s")

	// ErrCancelled is returned when cooperative cancellation was
	// observed mid-query. Partial results are discarded.
	ErrCancelled = errors.NewKind("query cancelled")
)
