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
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures an Engine. It is passed explicitly at
// construction time rather than read from package-level globals.
type Options struct {
	// MaxPowerSetVertices caps the number of vertices a power-set
	// candidate family may range over before Decide/Collect refuses to
	// enumerate it with ErrOverLimit. Zero means unlimited.
	MaxPowerSetVertices int

	// MaxResultSubsets caps how many witnesses Collect may accumulate
	// before it aborts with ErrTooLargeResult, discarding the partial
	// result. Zero means unlimited.
	MaxResultSubsets int

	// CatchExpressionErrors, when true (the default), recovers a
	// filter-body evaluation failure as false at the leaf instead of
	// aborting the whole query.
	CatchExpressionErrors bool

	// Logger receives structured progress events. A nil Logger
	// disables logging entirely.
	Logger *logrus.Logger
}

// DefaultOptions returns the Options a plain Engine should use absent
// any caller configuration: catch expression errors, no caps, a
// standard logrus logger at Info level.
func DefaultOptions() Options {
	return Options{
		CatchExpressionErrors: true,
		Logger:                logrus.StandardLogger(),
	}
}

func (o Options) log() *logrus.Logger {
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return o.Logger
}
