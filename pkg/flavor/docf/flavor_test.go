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
package docf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/source"
)

func TestFlavor_PrimitivesRenderSchemaSyntax(t *testing.T) {
	f := New()
	assert.Equal(t, "u32", f.Number(ir.NumberU32).Code)
	assert.Equal(t, "i64", f.Number(ir.NumberI64).Code)
	assert.Equal(t, "string", f.StringType(ir.StringPlain).Code)
	assert.Equal(t, "datetime", f.DateTime().Code)
	assert.Equal(t, "bytes", f.Bytes().Code)
}

func TestFlavor_ArrayAndMap(t *testing.T) {
	f := New()
	arr := f.Array(f.Number(ir.NumberI64))
	assert.Equal(t, "[i64]", arr.Code)

	m := f.Map(f.StringType(ir.StringPlain), f.Boolean())
	assert.Equal(t, "map<string, boolean>", m.Code)
}

func TestFlavor_NameCarriesFullyQualifiedLinkTarget(t *testing.T) {
	f := New()
	own := ir.VersionedPackage{Package: ir.Package{"billing", "core"}}
	table := ir.NewTable()
	name := ir.Name{Package: own, Path: []string{"Money"}}
	table.Insert(ir.NewType(name, source.NewSpan(0, 1), &ir.TypeBody{}))

	ty, err := f.Name(table, name)
	require.NoError(t, err)
	assert.Equal(t, "Money", ty.Code)
	assert.Equal(t, "billing.core.Money", ty.Name)
}

func TestFlavor_FieldLeavesTypeUnwrapped(t *testing.T) {
	f := New()
	ty := f.StringType(ir.StringPlain)
	rendered, wire := f.Field(ir.Field{Ident: "nickname", Optional: true}, ty)
	assert.Equal(t, "string", rendered.Code)
	assert.Equal(t, "nickname", wire)
}
