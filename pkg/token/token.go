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

// Package token is a small, language-agnostic token tree and two-pass
// emitter for generated source text: push literals, imported symbols,
// and nested (indented) groups onto a Tree, then Emit walks it once to
// gather every distinct import and once more to print an indented
// body, so a backend never hand-formats import headers or tracks
// indentation itself.
//
// The shape (a rose tree of pushed tokens, an import-gathering pass
// separate from the body-printing pass) is adapted from the token/
// import model the Rust original leans on for its Java and Swift
// backends; the Go backend instead drives github.com/dave/jennifer
// directly; see pkg/backend/gobackend.
package token

import "sort"

// Kind discriminates a Node's shape.
type Kind int

const (
	// KindLiteral is verbatim source text.
	KindLiteral Kind = iota
	// KindSymbol is a reference to a name that may require an import.
	KindSymbol
	// KindNested is an indented child group (a struct/class body, a
	// block, a parameter list spread over lines).
	KindNested
	// KindLine is an explicit line break.
	KindLine
)

// Symbol is an importable reference: Module is the import path or
// module name a Lang's ImportHeader renders; Name is the identifier
// written at the point of use.
type Symbol struct {
	Module string
	Name   string
}

// Node is one element of a Tree. Only the fields matching Kind are
// meaningful.
type Node struct {
	Kind     Kind
	Text     string
	Symbol   Symbol
	Children []*Node
}

// Lit pushes verbatim text.
func Lit(text string) *Node { return &Node{Kind: KindLiteral, Text: text} }

// Sym pushes a reference to name, imported from module. An empty
// module marks a same-file reference that needs no import.
func Sym(module, name string) *Node {
	return &Node{Kind: KindSymbol, Symbol: Symbol{Module: module, Name: name}}
}

// Line pushes an explicit line break between sibling nodes.
func Line() *Node { return &Node{Kind: KindLine} }

// Nested groups children as one indented block.
func Nested(children ...*Node) *Node {
	return &Node{Kind: KindNested, Children: children}
}

// Tree is a sequence of top-level nodes — one compilation unit's body,
// before any import header is known.
type Tree struct {
	Nodes []*Node
}

// Push appends nodes to the tree.
func (t *Tree) Push(nodes ...*Node) {
	t.Nodes = append(t.Nodes, nodes...)
}

// Symbols walks the whole tree and returns every distinct imported
// symbol's module, deduplicated and sorted lexicographically — the
// "gather imports" pass Emit runs before printing the body.
func (t *Tree) Symbols() []string {
	seen := map[string]bool{}
	var modules []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == KindSymbol && n.Symbol.Module != "" {
			if !seen[n.Symbol.Module] {
				seen[n.Symbol.Module] = true
				modules = append(modules, n.Symbol.Module)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range t.Nodes {
		walk(n)
	}
	sort.Strings(modules)
	return modules
}
