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

// Package expr implements the expression evaluator: a small typed
// interpreter over the first-order traversal sublanguage, plus a
// boolean composer (||, &&, !, parenthesization) layered outside the
// traversal sub-evaluator, since that sub-evaluator has no notion of
// short-circuit.
package expr

import (
	"strings"

	"github.com/THU-IMOD/monacgraph/graph"
)

// Evaluate implements the contract evaluate(expr, env) -> Value. When
// catch is true (Options.CatchExpressionErrors, default), a failure
// deep in the traversal sub-evaluator, or an empty operand, is
// swallowed and surfaces as the null value rather than an error. When catch is false, it propagates
// wrapped as graph.ErrExpressionError.
func Evaluate(storage graph.StorageEngine, exprText string, env *Env, catch bool) (graph.Value, error) {
	return evalComposed(strings.TrimSpace(exprText), storage, env, catch)
}

func evalComposed(s string, storage graph.StorageEngine, env *Env, catch bool) (graph.Value, error) {
	s = stripOuterGroupParens(s)

	if parts := splitTopLevel(s, "||"); len(parts) > 1 {
		for _, p := range parts {
			v, err := evalComposed(p, storage, env, catch)
			if err != nil {
				return nil, err
			}
			if Truthy(v) {
				return true, nil
			}
		}
		return false, nil
	}

	if parts := splitTopLevel(s, "&&"); len(parts) > 1 {
		for _, p := range parts {
			v, err := evalComposed(p, storage, env, catch)
			if err != nil {
				return nil, err
			}
			if !Truthy(v) {
				return false, nil
			}
		}
		return true, nil
	}

	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "!") {
		v, err := evalComposed(trimmed[1:], storage, env, catch)
		if err != nil {
			return nil, err
		}
		return !Truthy(v), nil
	}

	switch trimmed {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "":
		if catch {
			return nil, nil
		}
		return nil, graph.ErrExpressionError.New("empty expression")
	}

	val, err := evalTraversal(storage, trimmed, env)
	if err != nil {
		if catch {
			return nil, nil
		}
		return nil, graph.ErrExpressionError.New(err.Error())
	}
	return val, nil
}
