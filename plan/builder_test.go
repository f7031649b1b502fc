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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/THU-IMOD/monacgraph/family"
)

func TestBuildDecisionPlan(t *testing.T) {
	require := require.New(t)
	p, err := NewBuilder().
		Exists("x").
		ForAll("y").
		Filter(`g.V(x).out("knows").is(y)`).
		Build()
	require.NoError(err)
	require.Len(p.Prefix, 2)
	require.Equal(Decision, p.Mode)
}

func TestBuildRejectsEmptyPrefix(t *testing.T) {
	require := require.New(t)
	_, err := NewBuilder().Filter("true").Build()
	require.Error(err)
}

func TestBuildRejectsEmptyFilter(t *testing.T) {
	require := require.New(t)
	_, err := NewBuilder().Exists("x").Build()
	require.Error(err)
}

func TestBuildRejectsDuplicateNames(t *testing.T) {
	require := require.New(t)
	_, err := NewBuilder().Exists("x").ForAll("x").Filter("true").Build()
	require.Error(err)
}

func TestBuildRejectsMissingFamilySelector(t *testing.T) {
	require := require.New(t)
	_, err := NewBuilder().
		Collection().
		ExistsSubset("s").
		Filter("true").
		Build()
	require.Error(err)
}

func TestBuildRejectsCollectionWithoutTrailingSubset(t *testing.T) {
	require := require.New(t)
	_, err := NewBuilder().
		Collection().
		ExistsSubset("s").
		ForAll("x").
		Filter("true").
		Family(family.PowerSet, nil).
		Build()
	require.Error(err)
}

func TestBuildAcceptsValidCollectionPlan(t *testing.T) {
	require := require.New(t)
	p, err := NewBuilder().
		Collection().
		ExistsSubset("s").
		Filter("true").
		Aggregate("Size > 1").
		Family(family.PowerSet, nil).
		Build()
	require.NoError(err)
	require.Equal(Collection, p.Mode)
	require.Equal("Size > 1", p.Aggregation)
}

func TestBuildRejectsBFSWithoutSeed(t *testing.T) {
	require := require.New(t)
	_, err := NewBuilder().
		ExistsSubset("s").
		Filter("true").
		Family(family.BFS, nil).
		Build()
	require.Error(err)
}
