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
package listener

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/ir"
)

func TestJavaSerde_TupleAddedEmitsPositionalSerializerAndDeserializer(t *testing.T) {
	d := &flavor.Decl[javaf.Type, javaf.Name]{
		Kind: ir.DeclTupleKind,
		Name: javaf.Name{Local: "Pair"},
		Fields: []flavor.Field[javaf.Type]{
			{Ident: "x", Type: javaf.Type{Code: "Integer"}},
			{Ident: "label", Type: javaf.Type{Code: "String"}},
		},
	}

	r := NewRegistry[javaf.Type, javaf.Name]()
	r.Register(JavaSerde())
	r.Apply(d)

	joined := strings.Join(d.ExtraCode, "\n")
	assert.Contains(t, joined, "class Serializer extends com.fasterxml.jackson.databind.JsonSerializer<Pair>")
	assert.Contains(t, joined, "gen.writeNumber(value.x);")
	assert.Contains(t, joined, "gen.writeString(value.label);")
	assert.Contains(t, joined, "class Deserializer extends com.fasterxml.jackson.databind.JsonDeserializer<Pair>")
	assert.Contains(t, joined, "return new Pair(x, label);")
}

func TestJavaSerde_InterfaceAddedEmitsDiscriminatorAnnotations(t *testing.T) {
	d := &flavor.Decl[javaf.Type, javaf.Name]{
		Kind:             ir.DeclInterfaceKind,
		Name:             javaf.Name{Local: "Shape"},
		DiscriminatorKey: "kind",
		SubTypes: []*flavor.SubType[javaf.Type, javaf.Name]{
			{Name: javaf.Name{Local: "Circle"}, Discriminator: "circle"},
			{Name: javaf.Name{Local: "Square"}, Discriminator: "square"},
		},
	}

	r := NewRegistry[javaf.Type, javaf.Name]()
	r.Register(JavaSerde())
	r.Apply(d)

	require := assert.New(t)
	require.Len(d.Annotations, 2)
	require.Contains(d.Annotations[0], `property = "kind"`)
	require.Contains(d.Annotations[1], `name = "circle", value = Shape.Circle.class`)
	require.Contains(d.Annotations[1], `name = "square", value = Shape.Square.class`)
}

func TestJavaSerde_ClassAddedAnnotatesConstructorAndFieldWireNames(t *testing.T) {
	d := &flavor.Decl[javaf.Type, javaf.Name]{
		Kind: ir.DeclTypeKind,
		Name: javaf.Name{Local: "Point"},
		Fields: []flavor.Field[javaf.Type]{
			{Ident: "xCoord", WireName: "x_coord", Type: javaf.Type{Code: "Integer"}},
		},
	}

	r := NewRegistry[javaf.Type, javaf.Name]()
	r.Register(JavaSerde())
	r.Apply(d)

	assert.Equal(t, []string{"@com.fasterxml.jackson.annotation.JsonCreator"}, d.MethodAnnotations["constructor"])
	assert.Equal(t, []string{`@com.fasterxml.jackson.annotation.JsonProperty("x_coord")`}, d.FieldAnnotations["xCoord"])
}
