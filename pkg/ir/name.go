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
package ir

import (
	"strings"

	"github.com/kraklabs/schemac/pkg/source"
)

// Name identifies a declaration: an optional local alias for an
// imported package (Prefix), the versioned package it ultimately
// resolves to, and a non-empty path of identifier parts (the outer
// type name followed by any nested-type names). Two names are equal
// iff all three fields match; Span is carried for diagnostics only and
// plays no part in equality.
type Name struct {
	Prefix  string
	Package VersionedPackage
	Path    []string
	Span    source.Span
}

// String renders a Name for diagnostics as "prefix::pkg.path::Outer.Nested".
func (n Name) String() string {
	var b strings.Builder
	if n.Prefix != "" {
		b.WriteString(n.Prefix)
		b.WriteString("::")
	}
	b.WriteString(n.Package.String())
	if len(n.Path) > 0 {
		b.WriteString("::")
		b.WriteString(strings.Join(n.Path, "."))
	}
	return b.String()
}

// Equal compares Prefix, Package, and Path for exact equality, per the
// data model's definition of name equality.
func (n Name) Equal(other Name) bool {
	if n.Prefix != other.Prefix {
		return false
	}
	if !n.Package.Equal(other.Package) {
		return false
	}
	if len(n.Path) != len(other.Path) {
		return false
	}
	for i := range n.Path {
		if n.Path[i] != other.Path[i] {
			return false
		}
	}
	return true
}

// Local returns the final path component, the declaration's own
// identifier ignoring any enclosing nesting.
func (n Name) Local() string {
	if len(n.Path) == 0 {
		return ""
	}
	return n.Path[len(n.Path)-1]
}

// WithPath returns a copy of n with Path replaced, used when
// qualifying a nested declaration's name from its parent's.
func (n Name) WithPath(path []string) Name {
	n.Path = path
	return n
}

// Nested returns a copy of n with an extra path component appended,
// used when converting AST nested-decl nodes into IR.
func (n Name) Nested(ident string) Name {
	path := make([]string, len(n.Path)+1)
	copy(path, n.Path)
	path[len(path)-1] = ident
	return Name{Prefix: n.Prefix, Package: n.Package, Path: path, Span: n.Span}
}

// Key returns a value suitable for use as a map key uniquely
// identifying this Name within a decl table — Go's comparison for
// struct equality would work here too since every field is itself
// comparable-by-value except Path, which must be quoted into the key
// string since slices are not comparable.
func (n Name) Key() string {
	return n.Prefix + "\x00" + n.Package.String() + "\x00" + strings.Join(n.Path, "\x00")
}
