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

import "context"

// Context carries a cooperative cancellation signal through every
// evaluator call, wrapping a context.Context explicitly rather than
// relying on a package-level global.
type Context struct {
	context.Context
}

// NewContext wraps a standard context.Context for use by the evaluator.
func NewContext(ctx context.Context) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{Context: ctx}
}

// NewEmptyContext returns a Context with no deadline or cancellation,
// for use in tests and one-shot queries.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}

// Cancelled reports whether cooperative cancellation has been observed.
func (c *Context) Cancelled() bool {
	select {
	case <-c.Done():
		return true
	default:
		return false
	}
}
