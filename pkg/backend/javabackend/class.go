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

// renderClass renders a `type` or `tuple` declaration: a field per
// schema field, an all-args constructor, and a getter per field.
// Fields are final unless the class carries the mutable marker, in
// which case a setter is emitted alongside each getter (spec §4.7's
// Mutable module, wired through pkg/listener.JavaMutable). A tuple's
// ExtraCode (the Serializer/Deserializer pair pkg/listener.JavaSerde
// appends) is emitted as a nested block before the closing brace.
func renderClass(tree *token.Tree, d *flavor.Decl[javaf.Type, javaf.Name], public, tuple bool) {
	mutable := hasMutableMarker(d.Annotations)

	writeDocAndAnnotations(tree, d.Doc, d.Annotations)
	tree.Push(token.Lit(fmt.Sprintf("%sclass %s {\n", classModifier(public), d.Name.Local)))

	for _, f := range d.Fields {
		pushImport(tree, f.Type)
		for _, doc := range f.Doc {
			tree.Push(token.Lit(fmt.Sprintf("    // %s\n", doc)))
		}
		for _, ann := range d.FieldAnnotations[f.Ident] {
			tree.Push(token.Lit(fmt.Sprintf("    %s\n", ann)))
		}
		mod := "private final "
		if mutable {
			mod = "private "
		}
		tree.Push(token.Lit(fmt.Sprintf("    %s%s %s;\n", mod, f.Type.Code, f.Ident)))
	}
	tree.Push(token.Lit("\n"))

	for _, ann := range d.MethodAnnotations["constructor"] {
		tree.Push(token.Lit(fmt.Sprintf("    %s\n", ann)))
	}
	tree.Push(token.Lit(fmt.Sprintf("    public %s(%s) {\n", d.Name.Local, paramList(d.Fields))))
	for _, f := range d.Fields {
		tree.Push(token.Lit(fmt.Sprintf("        this.%s = %s;\n", f.Ident, f.Ident)))
	}
	tree.Push(token.Lit("    }\n\n"))

	for _, f := range d.Fields {
		tree.Push(token.Lit(fmt.Sprintf(
			"    public %s get%s() {\n        return %s;\n    }\n\n",
			f.Type.Code, exported(f.Ident), f.Ident,
		)))
		if mutable {
			tree.Push(token.Lit(fmt.Sprintf(
				"    public void set%s(%s %s) {\n        this.%s = %s;\n    }\n\n",
				exported(f.Ident), f.Type.Code, f.Ident, f.Ident, f.Ident,
			)))
		}
	}

	if tuple && len(d.ExtraCode) > 0 {
		for _, line := range d.ExtraCode {
			tree.Push(token.Lit("    " + line + "\n"))
		}
	}

	tree.Push(token.Lit("}\n"))
}

func paramList(fields []flavor.Field[javaf.Type]) string {
	params := make([]string, len(fields))
	for i, f := range fields {
		params[i] = fmt.Sprintf("%s %s", f.Type.Code, f.Ident)
	}
	return strings.Join(params, ", ")
}
