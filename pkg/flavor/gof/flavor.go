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

// Package gof is the Go target flavor: it maps core IR onto Go's own
// type syntax, following the mapping table in spec §4.4 (string,
// datetime, and bytes all render as "string"; arrays are native;
// foreign packages import as relative paths joined with "_").
package gof

import (
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/ir"
)

// TypeSep joins nested declaration path components into one Go
// identifier, e.g. a type Outer with nested Inner renders as
// "Outer_Inner" — there is no Go equivalent of a nested type name.
const TypeSep = "_"

// Import is a foreign package reference a rendered Type or Name needs;
// nil for primitives and same-package references.
type Import struct {
	// Path is the relative import path, "../" plus the package parts
	// joined by "_", matching the flavor mapping's import rule.
	Path string
	// Alias is the local identifier used to qualify the type, the
	// package parts joined by "_" with no relative prefix.
	Alias string
}

// Type is the Go rendering of a core IR type: literal Go source syntax
// plus, for a Name reference to another package, the import it needs.
type Type struct {
	Code   string
	Import *Import
}

// Name is the Go rendering of a declaration's own identifier.
type Name struct {
	Package ir.VersionedPackage
	Local   string
}

// Flavor implements flavor.Translator[Type, Name] for Go.
type Flavor struct{}

// New returns a Go Flavor. It carries no state — the Name operation
// always fully qualifies a foreign reference; dropping the
// self-package qualifier for references within the same output file
// is the Go backend's job at emission time, not the flavor's.
func New() *Flavor {
	return &Flavor{}
}

func (f *Flavor) Number(kind ir.NumberKind) Type {
	switch kind {
	case ir.NumberU32:
		return Type{Code: "uint32"}
	case ir.NumberU64:
		return Type{Code: "uint64"}
	case ir.NumberI32:
		return Type{Code: "int32"}
	case ir.NumberI64:
		return Type{Code: "int64"}
	default:
		return Type{Code: "int64"}
	}
}

func (f *Flavor) Float() Type               { return Type{Code: "float32"} }
func (f *Flavor) Double() Type              { return Type{Code: "float64"} }
func (f *Flavor) Boolean() Type             { return Type{Code: "bool"} }
func (f *Flavor) StringType(ir.StringKind) Type { return Type{Code: "string"} }
func (f *Flavor) DateTime() Type            { return Type{Code: "string"} }
func (f *Flavor) Bytes() Type               { return Type{Code: "string"} }
func (f *Flavor) Any() Type                 { return Type{Code: "interface{}"} }

func (f *Flavor) Array(elem Type) Type {
	return Type{Code: "[]" + elem.Code, Import: elem.Import}
}

func (f *Flavor) Map(key, value Type) Type {
	imp := key.Import
	if imp == nil {
		imp = value.Import
	}
	return Type{Code: fmt.Sprintf("map[%s]%s", key.Code, value.Code), Import: imp}
}

func (f *Flavor) Name(table *ir.Table, name ir.Name) (Type, error) {
	if _, ok := table.Lookup(name); !ok {
		return Type{}, fmt.Errorf("unresolved name %s", name)
	}
	local := strings.Join(name.Path, TypeSep)
	alias := strings.Join(name.Package.Package, TypeSep)
	return Type{
		Code:   alias + "." + local,
		Import: &Import{Path: "../" + alias, Alias: alias},
	}, nil
}

func (f *Flavor) Package(vp ir.VersionedPackage) string {
	return strings.Join(vp.Package, TypeSep)
}

func (f *Flavor) LocalName(_ *ir.Table, name ir.Name) Name {
	return Name{Package: name.Package, Local: strings.Join(name.Path, TypeSep)}
}

func (f *Flavor) EnumType(repr ir.EnumRepr) Type {
	if repr.Kind == ir.KindString {
		return Type{Code: "string"}
	}
	return f.Number(repr.Number)
}

func (f *Flavor) Field(field ir.Field, ty Type) (Type, string) {
	if field.Optional {
		ty = Type{Code: "*" + ty.Code, Import: ty.Import}
	}
	return ty, field.WireName()
}

func (f *Flavor) Endpoint(e ir.Endpoint) string {
	return e.Ident
}
