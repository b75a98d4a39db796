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
package javaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/source"
)

func TestFlavor_BoxedPrimitives(t *testing.T) {
	f := New()
	assert.Equal(t, "Integer", f.Number(ir.NumberU32).Code)
	assert.Equal(t, "Long", f.Number(ir.NumberI64).Code)
	assert.Equal(t, "Float", f.Float().Code)
	assert.Equal(t, "Double", f.Double().Code)
	assert.Equal(t, "Boolean", f.Boolean().Code)
	assert.Equal(t, "String", f.StringType(ir.StringPlain).Code)
}

func TestFlavor_DateTimeAndBytesImportQualifiedTypes(t *testing.T) {
	f := New()
	dt := f.DateTime()
	assert.Equal(t, "Instant", dt.Code)
	assert.Equal(t, "java.time.Instant", dt.Import)

	b := f.Bytes()
	assert.Equal(t, "ByteBuffer", b.Code)
	assert.Equal(t, "java.nio.ByteBuffer", b.Import)
}

func TestFlavor_ArrayAndMap(t *testing.T) {
	f := New()
	arr := f.Array(f.Number(ir.NumberI32))
	assert.Equal(t, "List<Integer>", arr.Code)
	assert.Equal(t, "java.util.List", arr.Import)

	m := f.Map(f.StringType(ir.StringPlain), f.Boolean())
	assert.Equal(t, "Map<String, Boolean>", m.Code)
}

func TestFlavor_OptionalFieldWrapsType(t *testing.T) {
	f := New()
	ty := f.StringType(ir.StringPlain)
	rendered, wire := f.Field(ir.Field{Ident: "nickname", Optional: true}, ty)
	assert.Equal(t, "Optional<String>", rendered.Code)
	assert.Equal(t, "java.util.Optional", rendered.Import)
	assert.Equal(t, "nickname", wire)

	rendered2, _ := f.Field(ir.Field{Ident: "name"}, ty)
	assert.Equal(t, ty, rendered2)
}

func TestFlavor_NameQualifiesWithPackage(t *testing.T) {
	f := New()
	own := ir.VersionedPackage{Package: ir.Package{"com", "example"}}
	table := ir.NewTable()
	name := ir.Name{Package: own, Path: []string{"Outer", "Inner"}}
	table.Insert(ir.NewType(name, source.NewSpan(0, 1), &ir.TypeBody{}))

	ty, err := f.Name(table, name)
	require.NoError(t, err)
	assert.Equal(t, "Outer.Inner", ty.Code)
	assert.Equal(t, "com.example.Outer.Inner", ty.Import)
}
