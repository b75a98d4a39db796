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
package gobackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/gof"
	"github.com/kraklabs/schemac/pkg/ir"
)

func TestCompiler_RenderPackage_StructWithJSONTags(t *testing.T) {
	pkg := &flavor.Package[gof.Type, gof.Name]{
		Import: "models",
		Decls: []*flavor.Decl[gof.Type, gof.Name]{
			{
				Kind: ir.DeclTypeKind,
				Name: gof.Name{Local: "Point"},
				Fields: []flavor.Field[gof.Type]{
					{Ident: "x", Type: gof.Type{Code: "int64"}, WireName: "x"},
					{Ident: "label", Type: gof.Type{Code: "string"}, WireName: "label", Optional: true},
				},
			},
		},
	}

	c := New()
	spec, err := c.RenderPackage(pkg)
	require.NoError(t, err)

	assert.Equal(t, "models_lib.go", spec.Path)
	src := string(spec.Content)
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "type Point struct")
	assert.Contains(t, src, `json:"x"`)
	assert.Contains(t, src, `json:"label,omitempty"`)
}

func TestCompiler_RenderPackage_TupleGetsPositionalCodec(t *testing.T) {
	pkg := &flavor.Package[gof.Type, gof.Name]{
		Import: "models",
		Decls: []*flavor.Decl[gof.Type, gof.Name]{
			{
				Kind: ir.DeclTupleKind,
				Name: gof.Name{Local: "Pair"},
				Fields: []flavor.Field[gof.Type]{
					{Ident: "a", Type: gof.Type{Code: "int64"}, WireName: "a"},
					{Ident: "b", Type: gof.Type{Code: "string"}, WireName: "b"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "func (v Pair) MarshalJSON()")
	assert.Contains(t, src, "func (v *Pair) UnmarshalJSON(data []byte) error")
	assert.Contains(t, src, "expected 2 elements")
}

func TestCompiler_RenderPackage_InterfaceGetsDiscriminatorDispatch(t *testing.T) {
	pkg := &flavor.Package[gof.Type, gof.Name]{
		Import: "models",
		Decls: []*flavor.Decl[gof.Type, gof.Name]{
			{
				Kind:             ir.DeclInterfaceKind,
				Name:             gof.Name{Local: "Shape"},
				DiscriminatorKey: "kind",
				SubTypes: []*flavor.SubType[gof.Type, gof.Name]{
					{Name: gof.Name{Local: "Circle"}, Discriminator: "circle"},
					{Name: gof.Name{Local: "Square"}, Discriminator: "square"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "type Shape interface")
	assert.Contains(t, src, "func (v *Circle) isShape()")
	assert.Contains(t, src, "func UnmarshalShape(data []byte) (Shape, error)")
	assert.Contains(t, src, `case "circle":`)
	assert.Contains(t, src, `json:"kind"`)
}

func TestCompiler_RenderPackage_EnumRendersConstants(t *testing.T) {
	pkg := &flavor.Package[gof.Type, gof.Name]{
		Import: "models",
		Decls: []*flavor.Decl[gof.Type, gof.Name]{
			{
				Kind:     ir.DeclEnumKind,
				Name:     gof.Name{Local: "Color"},
				EnumRepr: gof.Type{Code: "string"},
				Variants: []flavor.Variant{
					{Ident: "Red", Value: "red"},
					{Ident: "Blue", Value: "blue"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "type Color int")
	assert.Contains(t, src, "ColorRed Color = iota")
	assert.Contains(t, src, "ColorBlue")
	assert.NotContains(t, src, `"red"`)
}

func TestCompiler_RenderPackage_ServiceRendersInterfaceMethods(t *testing.T) {
	pkg := &flavor.Package[gof.Type, gof.Name]{
		Import: "models",
		Decls: []*flavor.Decl[gof.Type, gof.Name]{
			{
				Kind: ir.DeclServiceKind,
				Name: gof.Name{Local: "Greeter"},
				Endpoints: []flavor.Endpoint[gof.Type]{
					{
						Ident:    "greet",
						Request:  []flavor.Channel[gof.Type]{{Type: gof.Type{Code: "string"}}},
						Response: &flavor.Channel[gof.Type]{Type: gof.Type{Code: "string"}},
					},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "type Greeter interface")
	assert.Contains(t, src, "Greet(req string) (string, error)")
}

func TestCompiler_Lang(t *testing.T) {
	assert.Equal(t, "go", New().Lang())
}
