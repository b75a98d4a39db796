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

// Package swiftf is the Swift target flavor: Int32/Int64/UInt32/UInt64
// for sized integers, Foundation.Data for bytes, Foundation.Date for
// datetime, and identifiers joined with "_" and rendered in upper
// camel case for nested declarations (spec §4.4).
package swiftf

import (
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/ir"
)

// Type carries both the plain Swift type name and, where it differs,
// the fully-qualified form a field declaration needs — mirroring the
// original backend's separate "simple" and raw target-type tracking,
// which exists so a struct's own member types can stay unqualified
// while cross-module references carry their module prefix.
type Type struct {
	Simple string // unqualified, e.g. "Int32" or "Money"
	Target string // as it must appear in a field/parameter position
	Import string // Swift module name to import, empty if none needed
}

// Name is the Swift rendering of a declaration's own identifier.
type Name struct {
	Package ir.VersionedPackage
	Local   string
}

// Flavor implements flavor.Translator[Type, Name] for Swift.
type Flavor struct{}

func New() *Flavor { return &Flavor{} }

func simple(name string) Type { return Type{Simple: name, Target: name} }

func (f *Flavor) Number(kind ir.NumberKind) Type {
	switch kind {
	case ir.NumberU32:
		return simple("UInt32")
	case ir.NumberU64:
		return simple("UInt64")
	case ir.NumberI32:
		return simple("Int32")
	default:
		return simple("Int64")
	}
}

func (f *Flavor) Float() Type                   { return simple("Float") }
func (f *Flavor) Double() Type                  { return simple("Double") }
func (f *Flavor) Boolean() Type                 { return simple("Bool") }
func (f *Flavor) StringType(ir.StringKind) Type { return simple("String") }

func (f *Flavor) DateTime() Type {
	return Type{Simple: "Date", Target: "Date", Import: "Foundation"}
}

func (f *Flavor) Bytes() Type {
	return Type{Simple: "Data", Target: "Data", Import: "Foundation"}
}

func (f *Flavor) Any() Type { return simple("Any") }

func (f *Flavor) Array(elem Type) Type {
	t := fmt.Sprintf("[%s]", elem.Target)
	return Type{Simple: t, Target: t, Import: elem.Import}
}

func (f *Flavor) Map(key, value Type) Type {
	t := fmt.Sprintf("[%s: %s]", key.Target, value.Target)
	imp := key.Import
	if imp == "" {
		imp = value.Import
	}
	return Type{Simple: t, Target: t, Import: imp}
}

// upperCamel renders a dotted nested path as Swift would a nested
// type reference: each component capitalized and directly
// concatenated, matching the original source's ToUpperCamel join.
func upperCamel(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// flattenName renders a declaration's package and path as one flat
// Swift identifier, package and local path joined by "_" — there is no
// Swift-native scoping for this compiler's package tree, so every
// declaration (and every reference to it, same package or foreign)
// collapses into a single global namespace instead.
func flattenName(name ir.Name) string {
	return upperCamel(name.Package.Package) + "_" + upperCamel(name.Path)
}

func (f *Flavor) Name(table *ir.Table, name ir.Name) (Type, error) {
	if _, ok := table.Lookup(name); !ok {
		return Type{}, fmt.Errorf("unresolved name %s", name)
	}
	flat := flattenName(name)
	return Type{Simple: flat, Target: flat}, nil
}

func (f *Flavor) Package(vp ir.VersionedPackage) string {
	return upperCamel(vp.Package)
}

func (f *Flavor) LocalName(_ *ir.Table, name ir.Name) Name {
	return Name{Package: name.Package, Local: flattenName(name)}
}

func (f *Flavor) EnumType(repr ir.EnumRepr) Type {
	if repr.Kind == ir.KindString {
		return simple("String")
	}
	return f.Number(repr.Number)
}

// Field wraps an optional field's target type in Swift's native "?"
// optional suffix rather than a wrapper type.
func (f *Flavor) Field(field ir.Field, ty Type) (Type, string) {
	if field.Optional {
		ty.Target = ty.Target + "?"
	}
	return ty, field.WireName()
}

func (f *Flavor) Endpoint(e ir.Endpoint) string {
	return e.Ident
}
