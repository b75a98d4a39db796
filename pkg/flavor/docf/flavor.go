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

// Package docf is the documentation target flavor: unlike gof/javaf/
// swiftf, it does not map primitives onto a host language's types —
// it renders every type back into the schema's own surface syntax
// (u32, map<string, Money>, and so on), since the doc backend
// describes the schema itself rather than generated bindings for it.
package docf

import (
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/ir"
)

// Type is the doc rendering of a core IR type: its surface-syntax
// spelling, plus the fully-qualified name a cross-package reference
// resolves to, for linking.
type Type struct {
	Code string
	Name string // non-empty only for a Name reference, for doc linking
}

// Name is the doc rendering of a declaration's identifier.
type Name struct {
	Package ir.VersionedPackage
	Local   string
}

// Flavor implements flavor.Translator[Type, Name] for documentation.
type Flavor struct{}

func New() *Flavor { return &Flavor{} }

func (f *Flavor) Number(kind ir.NumberKind) Type { return Type{Code: kind.String()} }
func (f *Flavor) Float() Type                    { return Type{Code: "f32"} }
func (f *Flavor) Double() Type                   { return Type{Code: "f64"} }
func (f *Flavor) Boolean() Type                  { return Type{Code: "boolean"} }
func (f *Flavor) StringType(ir.StringKind) Type  { return Type{Code: "string"} }
func (f *Flavor) DateTime() Type                 { return Type{Code: "datetime"} }
func (f *Flavor) Bytes() Type                    { return Type{Code: "bytes"} }
func (f *Flavor) Any() Type                      { return Type{Code: "any"} }

func (f *Flavor) Array(elem Type) Type {
	return Type{Code: fmt.Sprintf("[%s]", elem.Code)}
}

func (f *Flavor) Map(key, value Type) Type {
	return Type{Code: fmt.Sprintf("map<%s, %s>", key.Code, value.Code)}
}

func (f *Flavor) Name(table *ir.Table, name ir.Name) (Type, error) {
	if _, ok := table.Lookup(name); !ok {
		return Type{}, fmt.Errorf("unresolved name %s", name)
	}
	local := strings.Join(name.Path, ".")
	full := name.Package.String() + "." + local
	return Type{Code: local, Name: full}, nil
}

func (f *Flavor) Package(vp ir.VersionedPackage) string {
	return vp.String()
}

func (f *Flavor) LocalName(_ *ir.Table, name ir.Name) Name {
	return Name{Package: name.Package, Local: strings.Join(name.Path, ".")}
}

func (f *Flavor) EnumType(repr ir.EnumRepr) Type {
	if repr.Kind == ir.KindString {
		return Type{Code: "string"}
	}
	return f.Number(repr.Number)
}

// Field renders an optional field's type unchanged — optionality is a
// presentation detail (the doc backend's field table has its own
// Optional column), not a type-level wrapper, matching how spec §6's grammar
// itself marks optional fields.
func (f *Flavor) Field(field ir.Field, ty Type) (Type, string) {
	return ty, field.WireName()
}

func (f *Flavor) Endpoint(e ir.Endpoint) string {
	return e.Ident
}
