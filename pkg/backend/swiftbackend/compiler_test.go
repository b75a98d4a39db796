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
package swiftbackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/ir"
)

func TestCompiler_RenderPackage_StructWithCodingKeys(t *testing.T) {
	pkg := &flavor.Package[swiftf.Type, swiftf.Name]{
		Import: "Example",
		Decls: []*flavor.Decl[swiftf.Type, swiftf.Name]{
			{
				Kind: ir.DeclTypeKind,
				Name: swiftf.Name{Local: "Foo"},
				Fields: []flavor.Field[swiftf.Type]{
					{Ident: "a", Type: swiftf.Type{Target: "UInt32"}, WireName: "a"},
					{Ident: "createdAt", Type: swiftf.Type{Target: "Date", Import: "Foundation"}, WireName: "created_at"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	assert.Equal(t, "Example.swift", spec.Path)
	src := string(spec.Content)
	assert.Contains(t, src, "import Foundation")
	assert.Contains(t, src, "struct Foo: Codable {")
	assert.Contains(t, src, "let a: UInt32")
	assert.Contains(t, src, "let createdAt: Date")
	assert.Contains(t, src, `case createdAt = "created_at"`)
	assert.NotContains(t, src, `case a = "a"`)
}

func TestCompiler_RenderPackage_TupleGetsUnkeyedCodec(t *testing.T) {
	pkg := &flavor.Package[swiftf.Type, swiftf.Name]{
		Import: "Example",
		Decls: []*flavor.Decl[swiftf.Type, swiftf.Name]{
			{
				Kind: ir.DeclTupleKind,
				Name: swiftf.Name{Local: "Pair"},
				Fields: []flavor.Field[swiftf.Type]{
					{Ident: "a", Type: swiftf.Type{Target: "Int64"}, WireName: "a"},
					{Ident: "b", Type: swiftf.Type{Target: "String"}, WireName: "b"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "init(from decoder: Decoder) throws")
	assert.Contains(t, src, "var container = try decoder.unkeyedContainer()")
	assert.Contains(t, src, "self.a = try container.decode(Int64.self)")
	assert.Contains(t, src, "func encode(to encoder: Encoder) throws")
}

func TestCompiler_RenderPackage_InterfaceRendersEnumOfCases(t *testing.T) {
	pkg := &flavor.Package[swiftf.Type, swiftf.Name]{
		Import: "Example",
		Decls: []*flavor.Decl[swiftf.Type, swiftf.Name]{
			{
				Kind:             ir.DeclInterfaceKind,
				Name:             swiftf.Name{Local: "Shape"},
				DiscriminatorKey: "kind",
				SubTypes: []*flavor.SubType[swiftf.Type, swiftf.Name]{
					{Name: swiftf.Name{Local: "Circle"}, Discriminator: "circle"},
					{Name: swiftf.Name{Local: "Square"}, Discriminator: "square"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "enum Shape: Codable {")
	assert.Contains(t, src, "case circle(Circle)")
	assert.Contains(t, src, "struct Circle: Codable {")
	assert.Contains(t, src, `case "circle":`)
	assert.Contains(t, src, "self = .circle(try Circle(from: decoder))")
}

func TestCompiler_RenderPackage_EnumIsNativeRawRepresentable(t *testing.T) {
	pkg := &flavor.Package[swiftf.Type, swiftf.Name]{
		Import: "Example",
		Decls: []*flavor.Decl[swiftf.Type, swiftf.Name]{
			{
				Kind:     ir.DeclEnumKind,
				Name:     swiftf.Name{Local: "Color"},
				EnumRepr: swiftf.Type{Target: "String"},
				Variants: []flavor.Variant{
					{Ident: "Red", Value: "red"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "enum Color: String, Codable {")
	assert.Contains(t, src, `case red = "red"`)
}

func TestCompiler_RenderPackage_ServiceRendersAsyncProtocol(t *testing.T) {
	pkg := &flavor.Package[swiftf.Type, swiftf.Name]{
		Import: "Example",
		Decls: []*flavor.Decl[swiftf.Type, swiftf.Name]{
			{
				Kind: ir.DeclServiceKind,
				Name: swiftf.Name{Local: "Greeter"},
				Endpoints: []flavor.Endpoint[swiftf.Type]{
					{
						Ident:    "greet",
						Request:  []flavor.Channel[swiftf.Type]{{Type: swiftf.Type{Target: "String"}}},
						Response: &flavor.Channel[swiftf.Type]{Type: swiftf.Type{Target: "String"}},
					},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "protocol Greeter {")
	assert.Contains(t, src, "func greet(req: String) async throws -> String")
}

func TestCompiler_Lang(t *testing.T) {
	assert.Equal(t, "swift", New().Lang())
}
