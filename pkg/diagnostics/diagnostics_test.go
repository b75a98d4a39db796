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
package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/source"
)

func TestDiagnostics_HasErrors(t *testing.T) {
	src := source.New("foo.schema", []byte("type Foo {}"))
	d := New(src)
	assert.False(t, d.HasErrors())

	d.Infof(source.NewSpan(0, 4), "note")
	assert.False(t, d.HasErrors())

	d.Errorf(source.NewSpan(5, 8), "unexpected %q", "{}")
	assert.True(t, d.HasErrors())
	require.Len(t, d.Errors(), 1)
	assert.Equal(t, `unexpected "{}"`, d.Errors()[0].Message)
}

func TestDiagnostics_Symbol(t *testing.T) {
	src := source.New("foo.schema", []byte("type Foo {}"))
	d := New(src)
	d.Symbol(SymbolType, source.NewSpan(0, 8), "foo.Foo")

	require.Len(t, d.Items, 1)
	item := d.Items[0]
	assert.Equal(t, SeveritySymbol, item.Severity)
	assert.Equal(t, SymbolType, item.Kind)
	assert.Equal(t, "foo.Foo", item.Name)
	assert.False(t, d.HasErrors())
}

func TestBundle_AggregatesAcrossSources(t *testing.T) {
	b := NewBundle()

	a := New(source.New("a.schema", nil))
	a.Errorf(source.NewSpan(0, 1), "bad a")
	b.Add(a)

	c := New(source.New("c.schema", nil))
	c.Infof(source.NewSpan(0, 1), "fine c")
	b.Add(c)

	assert.True(t, b.HasErrors())
	assert.Equal(t, 1, b.ErrorCount())
	assert.ElementsMatch(t, []string{"a.schema", "c.schema"}, b.Sources())

	lines := b.Render()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a.schema")
	assert.Contains(t, lines[0], "bad a")
}

func TestBundle_AddMergesSameSource(t *testing.T) {
	b := NewBundle()

	first := New(source.New("a.schema", nil))
	first.Errorf(source.NewSpan(0, 1), "first")
	b.Add(first)

	second := New(source.New("a.schema", nil))
	second.Errorf(source.NewSpan(2, 3), "second")
	b.Add(second)

	require.Len(t, b.Sources(), 1)
	assert.Equal(t, 2, b.ErrorCount())
}
