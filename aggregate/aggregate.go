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

// Package aggregate evaluates the optional aggregation predicate a
// collection-mode query plan applies to a candidate subset before
// admitting it as a witness. Unlike the filter-body sublanguage
// (expr.Evaluate), which stays a small hand-written interpreter over a
// fixed grammar, the aggregation predicate is a genuinely small,
// closed arithmetic/boolean expression over subset statistics, so it
// is compiled with github.com/expr-lang/expr instead of growing a
// second bespoke parser for the same job.
package aggregate

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/THU-IMOD/monacgraph/graph"
)

// Stats is the environment an aggregation predicate is compiled and
// run against: the statistics of the candidate subset under test.
type Stats struct {
	Size int
}

// Evaluate compiles predicate against Stats and reports whether
// witness satisfies it. An empty predicate always passes.
func Evaluate(predicate string, witness graph.VertexSet) (bool, error) {
	if predicate == "" {
		return true, nil
	}
	program, err := expr.Compile(predicate, expr.Env(Stats{}), expr.AsBool())
	if err != nil {
		return false, graph.ErrExpressionError.Wrap(err, "aggregation predicate")
	}
	return runCompiled(program, witness)
}

func runCompiled(program *vm.Program, witness graph.VertexSet) (bool, error) {
	out, err := expr.Run(program, Stats{Size: len(witness)})
	if err != nil {
		return false, graph.ErrExpressionError.Wrap(err, "aggregation predicate")
	}
	b, _ := out.(bool)
	return b, nil
}
