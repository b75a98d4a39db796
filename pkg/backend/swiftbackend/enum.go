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
	"strings"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderEnum renders an `enum` declaration as a native Swift
// RawRepresentable enum: unlike Go and Java, Swift's standard library
// already synthesizes Codable for any enum with a String or Int raw
// value, so no hand-written accessor/factory pair is needed here.
func renderEnum(tree *token.Tree, d *flavor.Decl[swiftf.Type, swiftf.Name]) {
	writeDoc(tree, d.Doc)
	pushImport(tree, d.EnumRepr)
	tree.Push(token.Lit(fmt.Sprintf("enum %s: %s, Codable {\n", d.Name.Local, d.EnumRepr.Target)))

	var cases []string
	for _, v := range d.Variants {
		cases = append(cases, fmt.Sprintf("    case %s = %s", lowerFirst(v.Ident), enumLiteral(d.EnumRepr.Target, v.Value)))
	}
	tree.Push(token.Lit(strings.Join(cases, "\n") + "\n"))

	tree.Push(token.Lit("}\n"))
}

func enumLiteral(reprTarget, value string) string {
	if reprTarget == "String" {
		return fmt.Sprintf("%q", value)
	}
	return value
}
