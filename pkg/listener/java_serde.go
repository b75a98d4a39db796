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
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/ir"
)

// JavaSerde implements the Java serialization module described in spec
// §4.7: positional array (de)serializers for tuples, and Jackson
// polymorphism annotations plus per-field wire-name annotations and a
// creator-annotated constructor for ordinary record classes.
func JavaSerde() Hooks[javaf.Type, javaf.Name] {
	return Hooks[javaf.Type, javaf.Name]{
		Name:           "java-serde",
		TupleAdded:     tupleSerde,
		InterfaceAdded: interfaceDiscriminator,
		ClassAdded:     recordCreator,
		FieldAdded:     recordFieldWireName,
	}
}

func tupleSerde(d *flavor.Decl[javaf.Type, javaf.Name]) {
	class := d.Name.Local
	var ser, deser []string

	ser = append(ser,
		fmt.Sprintf("public static final class Serializer extends com.fasterxml.jackson.databind.JsonSerializer<%s> {", class),
		fmt.Sprintf("    public void serialize(%s value, com.fasterxml.jackson.core.JsonGenerator gen, com.fasterxml.jackson.databind.SerializerProvider provider) throws java.io.IOException {", class),
		"        gen.writeStartArray();",
	)
	for _, f := range d.Fields {
		ser = append(ser, "        "+writerCall(f))
	}
	ser = append(ser, "        gen.writeEndArray();", "    }", "}")

	deser = append(deser,
		fmt.Sprintf("public static final class Deserializer extends com.fasterxml.jackson.databind.JsonDeserializer<%s> {", class),
		fmt.Sprintf("    public %s deserialize(com.fasterxml.jackson.core.JsonParser p, com.fasterxml.jackson.databind.DeserializationContext ctxt) throws java.io.IOException {", class),
		"        if (p.currentToken() != com.fasterxml.jackson.core.JsonToken.START_ARRAY) {",
		"            throw new com.fasterxml.jackson.databind.exc.MismatchedInputException(p, " + class + ".class, \"expected START_ARRAY\");",
		"        }",
	)
	var args []string
	for _, f := range d.Fields {
		deser = append(deser, tokenCheckAndRead(f)...)
		args = append(args, f.Ident)
	}
	deser = append(deser,
		"        if (p.nextToken() != com.fasterxml.jackson.core.JsonToken.END_ARRAY) {",
		"            throw new com.fasterxml.jackson.databind.exc.MismatchedInputException(p, " + class + ".class, \"expected END_ARRAY\");",
		"        }",
		fmt.Sprintf("        return new %s(%s);", class, strings.Join(args, ", ")),
		"    }",
		"}",
	)

	AddExtraCode(d, ser...)
	AddExtraCode(d, deser...)
}

// writerCall reads the field directly off value rather than through a
// getter: Serializer is a static nested class of the tuple it
// serializes, so it can see the tuple's private fields.
func writerCall(f flavor.Field[javaf.Type]) string {
	switch f.Type.Code {
	case "Integer", "Long", "Float", "Double":
		return fmt.Sprintf("gen.writeNumber(value.%s);", f.Ident)
	case "String":
		return fmt.Sprintf("gen.writeString(value.%s);", f.Ident)
	default:
		return fmt.Sprintf("gen.writeObject(value.%s);", f.Ident)
	}
}

func tokenCheckAndRead(f flavor.Field[javaf.Type]) []string {
	ident := f.Ident
	switch f.Type.Code {
	case "Integer":
		return []string{
			"        p.nextToken();",
			fmt.Sprintf("        int %s = p.getIntValue();", ident),
		}
	case "Long":
		return []string{
			"        p.nextToken();",
			fmt.Sprintf("        long %s = p.getLongValue();", ident),
		}
	case "Float":
		return []string{
			"        p.nextToken();",
			fmt.Sprintf("        float %s = p.getFloatValue();", ident),
		}
	case "Double":
		return []string{
			"        p.nextToken();",
			fmt.Sprintf("        double %s = p.getDoubleValue();", ident),
		}
	case "String":
		return []string{
			"        if (p.nextToken() != com.fasterxml.jackson.core.JsonToken.VALUE_STRING) {",
			"            throw com.fasterxml.jackson.databind.exc.InvalidFormatException.from(p, \"expected VALUE_STRING\", null, String.class);",
			"        }",
			fmt.Sprintf("        String %s = p.getText();", ident),
		}
	default:
		return []string{
			"        p.nextToken();",
			fmt.Sprintf("        %s %s = p.readValueAs(%s.class);", f.Type.Code, ident, f.Type.Code),
		}
	}
}

// interfaceDiscriminator emits the @JsonTypeInfo/@JsonSubTypes pair
// (spec §4.7 / §8 scenario 4) naming the discriminator property and
// every sub-type's wire name and nested class.
func interfaceDiscriminator(d *flavor.Decl[javaf.Type, javaf.Name]) {
	key := d.DiscriminatorKey
	if key == "" {
		key = "type"
	}
	AddAnnotation(d, fmt.Sprintf(
		"@com.fasterxml.jackson.annotation.JsonTypeInfo(use = com.fasterxml.jackson.annotation.JsonTypeInfo.Id.NAME, include = com.fasterxml.jackson.annotation.JsonTypeInfo.As.PROPERTY, property = %q)",
		key,
	))

	var entries []string
	for _, st := range d.SubTypes {
		entries = append(entries, fmt.Sprintf(
			"@com.fasterxml.jackson.annotation.JsonSubTypes.Type(name = %q, value = %s.%s.class)",
			st.Discriminator, d.Name.Local, st.Name.Local,
		))
	}
	AddAnnotation(d, fmt.Sprintf(
		"@com.fasterxml.jackson.annotation.JsonSubTypes({%s})",
		strings.Join(entries, ", "),
	))
}

// recordCreator annotates a Type declaration's all-args constructor as
// the Jackson creator.
func recordCreator(d *flavor.Decl[javaf.Type, javaf.Name]) {
	AddMethodAnnotation(d, "constructor", "@com.fasterxml.jackson.annotation.JsonCreator")
}

// recordFieldWireName annotates each field of a Type declaration with
// its wire name, so a getter/constructor parameter pair round-trips
// through Jackson under f.WireName even when the Java identifier
// differs.
func recordFieldWireName(owner *flavor.Decl[javaf.Type, javaf.Name], f *flavor.Field[javaf.Type]) {
	if owner.Kind != ir.DeclTypeKind {
		return
	}
	AddFieldAnnotation(owner, f.Ident, fmt.Sprintf(
		"@com.fasterxml.jackson.annotation.JsonProperty(%q)", f.WireName,
	))
}
