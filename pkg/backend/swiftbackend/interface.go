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
	"fmt"
	"unicode"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderEnumInterface renders an `interface` declaration as a Swift
// enum with one associated-value case per sub-type — the idiomatic
// Swift rendering of a discriminated union, standing in for Go's
// marker-interface-plus-Unmarshal function and Java's sealed-interface-
// plus-@JsonTypeInfo pair. Each sub-type becomes a nested Codable
// struct carrying the interface's common fields plus its own; the
// enum's own init(from:)/encode(to:) peek and dispatch on the
// discriminator key the same way the other two targets' hand-written
// codecs do.
func renderEnumInterface(tree *token.Tree, d *flavor.Decl[swiftf.Type, swiftf.Name]) {
	key := d.DiscriminatorKey
	if key == "" {
		key = "type"
	}

	writeDoc(tree, d.Doc)
	tree.Push(token.Lit(fmt.Sprintf("enum %s: Codable {\n", d.Name.Local)))

	for _, st := range d.SubTypes {
		tree.Push(token.Lit(fmt.Sprintf("    case %s(%s)\n", lowerFirst(st.Name.Local), st.Name.Local)))
	}
	tree.Push(token.Lit("\n"))
	tree.Push(token.Lit(fmt.Sprintf("    private enum CodingKeys: String, CodingKey {\n        case discriminator = %q\n    }\n\n", key)))

	for _, st := range d.SubTypes {
		renderSubTypeStruct(tree, d, st)
	}

	tree.Push(token.Lit("    init(from decoder: Decoder) throws {\n"))
	tree.Push(token.Lit("        let container = try decoder.container(keyedBy: CodingKeys.self)\n"))
	tree.Push(token.Lit("        let discriminator = try container.decode(String.self, forKey: .discriminator)\n"))
	tree.Push(token.Lit("        switch discriminator {\n"))
	for _, st := range d.SubTypes {
		tree.Push(token.Lit(fmt.Sprintf(
			"        case %q:\n            self = .%s(try %s(from: decoder))\n",
			st.Discriminator, lowerFirst(st.Name.Local), st.Name.Local,
		)))
	}
	tree.Push(token.Lit(fmt.Sprintf(
		"        default:\n            throw DecodingError.dataCorruptedError(forKey: .discriminator, in: container, debugDescription: \"unknown %s: \\(discriminator)\")\n",
		key,
	)))
	tree.Push(token.Lit("        }\n    }\n\n"))

	tree.Push(token.Lit("    func encode(to encoder: Encoder) throws {\n        switch self {\n"))
	for _, st := range d.SubTypes {
		tree.Push(token.Lit(fmt.Sprintf(
			"        case .%s(let v):\n            try v.encode(to: encoder)\n",
			lowerFirst(st.Name.Local),
		)))
	}
	tree.Push(token.Lit("        }\n    }\n"))

	tree.Push(token.Lit("}\n"))
}

func renderSubTypeStruct(tree *token.Tree, owner *flavor.Decl[swiftf.Type, swiftf.Name], st *flavor.SubType[swiftf.Type, swiftf.Name]) {
	for _, line := range st.Doc {
		tree.Push(token.Lit(fmt.Sprintf("    /// %s\n", line)))
	}
	tree.Push(token.Lit(fmt.Sprintf("    struct %s: Codable {\n", st.Name.Local)))
	for _, f := range owner.Fields {
		pushImport(tree, f.Type)
		tree.Push(token.Lit(fmt.Sprintf("        let %s: %s\n", f.Ident, f.Type.Target)))
	}
	for _, f := range st.Fields {
		pushImport(tree, f.Type)
		tree.Push(token.Lit(fmt.Sprintf("        let %s: %s\n", f.Ident, f.Type.Target)))
	}
	tree.Push(token.Lit("    }\n\n"))
}

func lowerFirst(ident string) string {
	if ident == "" {
		return ident
	}
	r := []rune(ident)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
