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

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderInterface renders an `interface` declaration as a Java
// interface exposing a getter per common field, plus one nested final
// class per sub-type implementing it (public and static, as every
// member class of a Java interface implicitly is). The
// @JsonTypeInfo/@JsonSubTypes pair pkg/listener.JavaSerde attaches
// lands in d.Annotations and is emitted immediately above the
// interface declaration.
func renderInterface(tree *token.Tree, d *flavor.Decl[javaf.Type, javaf.Name], public bool) {
	writeDocAndAnnotations(tree, d.Doc, d.Annotations)
	tree.Push(token.Lit(fmt.Sprintf("%sinterface %s {\n", classModifier(public), d.Name.Local)))

	for _, f := range d.Fields {
		pushImport(tree, f.Type)
		tree.Push(token.Lit(fmt.Sprintf("    %s get%s();\n", f.Type.Code, exported(f.Ident))))
	}
	tree.Push(token.Lit("\n"))

	for _, st := range d.SubTypes {
		renderSubType(tree, d, st)
	}

	tree.Push(token.Lit("}\n"))
}

func renderSubType(tree *token.Tree, owner *flavor.Decl[javaf.Type, javaf.Name], st *flavor.SubType[javaf.Type, javaf.Name]) {
	for _, line := range st.Doc {
		tree.Push(token.Lit(fmt.Sprintf("    // %s\n", line)))
	}
	tree.Push(token.Lit(fmt.Sprintf("    final class %s implements %s {\n", st.Name.Local, owner.Name.Local)))

	all := append(append([]flavor.Field[javaf.Type]{}, owner.Fields...), st.Fields...)
	for _, f := range all {
		pushImport(tree, f.Type)
		tree.Push(token.Lit(fmt.Sprintf("        private final %s %s;\n", f.Type.Code, f.Ident)))
	}
	tree.Push(token.Lit("\n"))

	params := paramList(all)
	tree.Push(token.Lit(fmt.Sprintf("        public %s(%s) {\n", st.Name.Local, params)))
	for _, f := range all {
		tree.Push(token.Lit(fmt.Sprintf("            this.%s = %s;\n", f.Ident, f.Ident)))
	}
	tree.Push(token.Lit("        }\n\n"))

	for _, f := range all {
		tree.Push(token.Lit(fmt.Sprintf(
			"        public %s get%s() {\n            return %s;\n        }\n\n",
			f.Type.Code, exported(f.Ident), f.Ident,
		)))
	}

	tree.Push(token.Lit("    }\n\n"))
}
