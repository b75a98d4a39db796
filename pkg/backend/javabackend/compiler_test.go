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
package javabackend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/ir"
)

func TestCompiler_RenderPackage_ClassWithGettersAndImports(t *testing.T) {
	pkg := &flavor.Package[javaf.Type, javaf.Name]{
		Import: "com.example.models",
		Decls: []*flavor.Decl[javaf.Type, javaf.Name]{
			{
				Kind: ir.DeclTypeKind,
				Name: javaf.Name{Local: "Point"},
				Fields: []flavor.Field[javaf.Type]{
					{Ident: "x", Type: javaf.Type{Code: "Long"}, WireName: "x"},
					{Ident: "createdAt", Type: javaf.Type{Code: "Instant", Import: "java.time.Instant"}, WireName: "created_at"},
				},
				FieldAnnotations: map[string][]string{
					"x": {`@com.fasterxml.jackson.annotation.JsonProperty("x")`},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	assert.Equal(t, "com/example/models/Point.java", spec.Path)
	src := string(spec.Content)
	assert.Contains(t, src, "package com.example.models;")
	assert.Contains(t, src, "import java.time.Instant;")
	assert.Contains(t, src, "public class Point {")
	assert.Contains(t, src, "private final Long x;")
	assert.Contains(t, src, "public Point(Long x, Instant createdAt) {")
	assert.Contains(t, src, "public Long getX()")
	assert.Contains(t, src, `@com.fasterxml.jackson.annotation.JsonProperty("x")`)
}

func TestCompiler_RenderPackage_MutableMarkerAddsSetters(t *testing.T) {
	pkg := &flavor.Package[javaf.Type, javaf.Name]{
		Import: "models",
		Decls: []*flavor.Decl[javaf.Type, javaf.Name]{
			{
				Kind:        ir.DeclTypeKind,
				Name:        javaf.Name{Local: "Counter"},
				Annotations: []string{"// schemac:mutable"},
				Fields: []flavor.Field[javaf.Type]{
					{Ident: "count", Type: javaf.Type{Code: "Integer"}, WireName: "count"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "private Integer count;")
	assert.NotContains(t, src, "private final Integer count;")
	assert.Contains(t, src, "public void setCount(Integer count)")
}

func TestCompiler_RenderPackage_TupleCarriesExtraCode(t *testing.T) {
	pkg := &flavor.Package[javaf.Type, javaf.Name]{
		Import: "models",
		Decls: []*flavor.Decl[javaf.Type, javaf.Name]{
			{
				Kind: ir.DeclTupleKind,
				Name: javaf.Name{Local: "Pair"},
				Fields: []flavor.Field[javaf.Type]{
					{Ident: "a", Type: javaf.Type{Code: "Long"}, WireName: "a"},
					{Ident: "b", Type: javaf.Type{Code: "String"}, WireName: "b"},
				},
				ExtraCode: []string{
					"public static final class Serializer {",
					"}",
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "class Pair {")
	assert.Contains(t, src, "public static final class Serializer {")
}

func TestCompiler_RenderPackage_InterfaceGetsSubTypesAndAnnotations(t *testing.T) {
	pkg := &flavor.Package[javaf.Type, javaf.Name]{
		Import: "models",
		Decls: []*flavor.Decl[javaf.Type, javaf.Name]{
			{
				Kind:             ir.DeclInterfaceKind,
				Name:             javaf.Name{Local: "Shape"},
				DiscriminatorKey: "kind",
				Annotations: []string{
					`@com.fasterxml.jackson.annotation.JsonTypeInfo(use = com.fasterxml.jackson.annotation.JsonTypeInfo.Id.NAME, include = com.fasterxml.jackson.annotation.JsonTypeInfo.As.PROPERTY, property = "kind")`,
				},
				SubTypes: []*flavor.SubType[javaf.Type, javaf.Name]{
					{
						Name:          javaf.Name{Local: "Circle"},
						Discriminator: "circle",
						Fields: []flavor.Field[javaf.Type]{
							{Ident: "radius", Type: javaf.Type{Code: "Double"}, WireName: "radius"},
						},
					},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "public interface Shape {")
	assert.Contains(t, src, "final class Circle implements Shape {")
	assert.Contains(t, src, "private final Double radius;")
	assert.Contains(t, src, "@com.fasterxml.jackson.annotation.JsonTypeInfo")
}

func TestCompiler_RenderPackage_EnumHasAccessorAndFactory(t *testing.T) {
	pkg := &flavor.Package[javaf.Type, javaf.Name]{
		Import: "models",
		Decls: []*flavor.Decl[javaf.Type, javaf.Name]{
			{
				Kind:     ir.DeclEnumKind,
				Name:     javaf.Name{Local: "Color"},
				EnumRepr: javaf.Type{Code: "String"},
				Variants: []flavor.Variant{
					{Ident: "RED", Value: "red"},
					{Ident: "BLUE", Value: "blue"},
				},
				MethodAnnotations: map[string][]string{
					"value":     {"@com.fasterxml.jackson.annotation.JsonValue"},
					"fromValue": {"@com.fasterxml.jackson.annotation.JsonCreator"},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "public enum Color {")
	assert.Contains(t, src, `RED("red")`)
	assert.Contains(t, src, "@com.fasterxml.jackson.annotation.JsonValue")
	assert.Contains(t, src, "public static Color fromValue(String value)")
}

func TestCompiler_RenderPackage_ServiceRendersInterfaceMethods(t *testing.T) {
	pkg := &flavor.Package[javaf.Type, javaf.Name]{
		Import: "models",
		Decls: []*flavor.Decl[javaf.Type, javaf.Name]{
			{
				Kind: ir.DeclServiceKind,
				Name: javaf.Name{Local: "Greeter"},
				Endpoints: []flavor.Endpoint[javaf.Type]{
					{
						Ident:    "greet",
						Request:  []flavor.Channel[javaf.Type]{{Type: javaf.Type{Code: "String"}}},
						Response: &flavor.Channel[javaf.Type]{Type: javaf.Type{Code: "String"}},
					},
				},
			},
		},
	}

	spec, err := New().RenderPackage(pkg)
	require.NoError(t, err)

	src := string(spec.Content)
	assert.Contains(t, src, "public interface Greeter {")
	assert.Contains(t, src, "String greet(String req);")
}

func TestCompiler_Lang(t *testing.T) {
	assert.Equal(t, "java", New().Lang())
}

func TestCompiler_RenderPackage_EmptyPackageErrors(t *testing.T) {
	_, err := New().RenderPackage(&flavor.Package[javaf.Type, javaf.Name]{Import: "models"})
	assert.Error(t, err)
}
