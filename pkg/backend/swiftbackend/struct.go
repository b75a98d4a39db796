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

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderStruct renders a `type` declaration as a Codable struct with,
// when any field's wire name differs from its identifier, a CodingKeys
// enum listing every field (a raw value only on the fields whose wire
// name differs), or a `tuple` declaration as a Codable struct with a
// hand-written init(from:)/encode(to:) pair reading and writing its
// fields through an unkeyed container, in source order — the Swift
// equivalent of the positional-array codec gobackend and javabackend
// generate for tuples.
func renderStruct(tree *token.Tree, d *flavor.Decl[swiftf.Type, swiftf.Name], tuple bool) {
	writeDoc(tree, d.Doc)
	tree.Push(token.Lit(fmt.Sprintf("struct %s: Codable {\n", d.Name.Local)))

	for _, f := range d.Fields {
		pushImport(tree, f.Type)
		for _, doc := range f.Doc {
			tree.Push(token.Lit(fmt.Sprintf("    /// %s\n", doc)))
		}
		tree.Push(token.Lit(fmt.Sprintf("    let %s: %s\n", f.Ident, f.Type.Target)))
	}

	if tuple {
		tree.Push(token.Lit("\n"))
		renderTupleCodable(tree, d)
	} else if needsCodingKeys(d.Fields) {
		tree.Push(token.Lit("\n"))
		tree.Push(token.Lit("    enum CodingKeys: String, CodingKey {\n"))
		for _, f := range d.Fields {
			if f.Ident == f.WireName {
				tree.Push(token.Lit(fmt.Sprintf("        case %s\n", f.Ident)))
				continue
			}
			tree.Push(token.Lit(fmt.Sprintf("        case %s = %q\n", f.Ident, f.WireName)))
		}
		tree.Push(token.Lit("    }\n"))
	}

	tree.Push(token.Lit("}\n"))
}

func needsCodingKeys(fields []flavor.Field[swiftf.Type]) bool {
	for _, f := range fields {
		if f.Ident != f.WireName {
			return true
		}
	}
	return false
}

func renderTupleCodable(tree *token.Tree, d *flavor.Decl[swiftf.Type, swiftf.Name]) {
	tree.Push(token.Lit("    init(from decoder: Decoder) throws {\n"))
	tree.Push(token.Lit("        var container = try decoder.unkeyedContainer()\n"))
	for _, f := range d.Fields {
		tree.Push(token.Lit(fmt.Sprintf("        self.%s = try container.decode(%s.self)\n", f.Ident, f.Type.Target)))
	}
	tree.Push(token.Lit("    }\n\n"))

	tree.Push(token.Lit("    func encode(to encoder: Encoder) throws {\n"))
	tree.Push(token.Lit("        var container = encoder.unkeyedContainer()\n"))
	for _, f := range d.Fields {
		tree.Push(token.Lit(fmt.Sprintf("        try container.encode(%s)\n", f.Ident)))
	}
	tree.Push(token.Lit("    }\n"))
}
