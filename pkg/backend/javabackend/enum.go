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
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderEnum renders an `enum` declaration as a Java enum carrying its
// repr value, a fixed "value" accessor and "fromValue" factory method
// (the two fixed method-name keys pkg/listener.EnumAccessor always
// annotates, per spec §4.7's Enum modules).
func renderEnum(tree *token.Tree, d *flavor.Decl[javaf.Type, javaf.Name], public bool) {
	writeDocAndAnnotations(tree, d.Doc, d.Annotations)
	pushImport(tree, d.EnumRepr)
	tree.Push(token.Lit(fmt.Sprintf("%senum %s {\n", classModifier(public), d.Name.Local)))

	constants := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		constants[i] = fmt.Sprintf("    %s(%s)", v.Ident, enumLiteral(d.EnumRepr.Code, v.Value))
	}
	tree.Push(token.Lit(strings.Join(constants, ",\n") + ";\n\n"))

	tree.Push(token.Lit(fmt.Sprintf("    private final %s value;\n\n", d.EnumRepr.Code)))
	tree.Push(token.Lit(fmt.Sprintf(
		"    %s(%s value) {\n        this.value = value;\n    }\n\n",
		d.Name.Local, d.EnumRepr.Code,
	)))

	for _, ann := range d.MethodAnnotations["value"] {
		tree.Push(token.Lit(fmt.Sprintf("    %s\n", ann)))
	}
	tree.Push(token.Lit(fmt.Sprintf("    public %s value() {\n        return value;\n    }\n\n", d.EnumRepr.Code)))

	for _, ann := range d.MethodAnnotations["fromValue"] {
		tree.Push(token.Lit(fmt.Sprintf("    %s\n", ann)))
	}
	tree.Push(token.Lit(fmt.Sprintf(
		"    public static %s fromValue(%s value) {\n"+
			"        for (%s v : values()) {\n"+
			"            if (v.value.equals(value)) {\n"+
			"                return v;\n"+
			"            }\n"+
			"        }\n"+
			"        throw new IllegalArgumentException(\"unknown value: \" + value);\n"+
			"    }\n",
		d.Name.Local, d.EnumRepr.Code, d.Name.Local,
	)))

	tree.Push(token.Lit("}\n"))
}

func enumLiteral(reprCode, value string) string {
	if reprCode == "String" {
		return fmt.Sprintf("%q", value)
	}
	return value
}
