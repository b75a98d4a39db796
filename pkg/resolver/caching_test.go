// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/ir"
)

type countingResolver struct {
	calls int
}

func (c *countingResolver) Resolve(required ir.RequiredPackage) ([]Match, error) {
	c.calls++
	return []Match{{Version: ir.Version{Major: 1}}}, nil
}

func (c *countingResolver) ResolveByPrefix(prefix ir.Package) ([]ir.Package, error) {
	return nil, nil
}

func TestCaching_SecondResolveHitsCache(t *testing.T) {
	inner := &countingResolver{}
	c := NewCaching(inner)

	hits := 0
	c.OnHit = func() { hits++ }

	required := ir.RequiredPackage{Package: ir.Package{"foo"}}
	_, err := c.Resolve(required)
	require.NoError(t, err)
	_, err = c.Resolve(required)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, hits)
}

func TestCaching_DistinctPackagesBothMiss(t *testing.T) {
	inner := &countingResolver{}
	c := NewCaching(inner)

	_, err := c.Resolve(ir.RequiredPackage{Package: ir.Package{"foo"}})
	require.NoError(t, err)
	_, err = c.Resolve(ir.RequiredPackage{Package: ir.Package{"bar"}})
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
