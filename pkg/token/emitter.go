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
package token

import "strings"

// Emit renders a Tree as complete source text for lang: first the
// import header (every distinct Symbol module, gathered once,
// deduplicated, lexicographically ordered — so two symbols from the
// same module never produce two import lines), then the body with
// each KindNested child indented one level deeper than its parent.
//
// The same Tree always renders to the same bytes: Emit performs no
// I/O and consults no ambient state, matching the "exact mapping...
// must be reproducible bit-for-bit" requirement the flavor layer
// already upholds for type rendering.
func Emit(t *Tree, lang Lang) string {
	var b strings.Builder
	b.WriteString(lang.ImportHeader(t.Symbols()))
	writeNodes(&b, t.Nodes, 0, lang)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []*Node, depth int, lang Lang) {
	for _, n := range nodes {
		writeNode(b, n, depth, lang)
	}
}

func writeNode(b *strings.Builder, n *Node, depth int, lang Lang) {
	switch n.Kind {
	case KindLiteral:
		b.WriteString(n.Text)
	case KindSymbol:
		b.WriteString(n.Symbol.Name)
	case KindLine:
		b.WriteString("\n")
		b.WriteString(strings.Repeat(lang.Indent(), depth))
	case KindNested:
		writeNodes(b, n.Children, depth+1, lang)
	}
}
