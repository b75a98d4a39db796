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

// Package javaf is the Java target flavor: boxed primitive wrappers,
// List<T>/Map<K,V> for structural types, java.time.Instant for
// datetime, java.nio.ByteBuffer for bytes, and Optional<T> wrapping at
// the field level for optional fields (spec §4.4).
package javaf

import (
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/ir"
)

// Type is the Java rendering of a core IR type: the simple class name
// plus the fully qualified import it needs, if any (boxed primitives
// like Integer need no import; Instant and ByteBuffer do).
type Type struct {
	Code   string
	Import string // fully qualified import, empty if none needed
}

// Name is the Java rendering of a declaration's identifier: simple
// name plus enclosing package.
type Name struct {
	Package ir.VersionedPackage
	Local   string
}

// Flavor implements flavor.Translator[Type, Name] for Java.
type Flavor struct{}

func New() *Flavor { return &Flavor{} }

func (f *Flavor) Number(kind ir.NumberKind) Type {
	switch kind {
	case ir.NumberU32, ir.NumberI32:
		return Type{Code: "Integer"}
	default:
		return Type{Code: "Long"}
	}
}

func (f *Flavor) Float() Type   { return Type{Code: "Float"} }
func (f *Flavor) Double() Type  { return Type{Code: "Double"} }
func (f *Flavor) Boolean() Type { return Type{Code: "Boolean"} }

func (f *Flavor) StringType(ir.StringKind) Type { return Type{Code: "String"} }

func (f *Flavor) DateTime() Type {
	return Type{Code: "Instant", Import: "java.time.Instant"}
}

func (f *Flavor) Bytes() Type {
	return Type{Code: "ByteBuffer", Import: "java.nio.ByteBuffer"}
}

func (f *Flavor) Any() Type { return Type{Code: "Object"} }

func (f *Flavor) Array(elem Type) Type {
	return Type{Code: fmt.Sprintf("List<%s>", elem.Code), Import: "java.util.List"}
}

func (f *Flavor) Map(key, value Type) Type {
	return Type{Code: fmt.Sprintf("Map<%s, %s>", key.Code, value.Code), Import: "java.util.Map"}
}

func (f *Flavor) Name(table *ir.Table, name ir.Name) (Type, error) {
	if _, ok := table.Lookup(name); !ok {
		return Type{}, fmt.Errorf("unresolved name %s", name)
	}
	local := strings.Join(name.Path, ".") // nested classes address as Outer.Inner in Java
	pkg := strings.Join(name.Package.Package, ".")
	full := pkg + "." + local
	return Type{Code: local, Import: full}, nil
}

func (f *Flavor) Package(vp ir.VersionedPackage) string {
	return strings.Join(vp.Package, ".")
}

func (f *Flavor) LocalName(_ *ir.Table, name ir.Name) Name {
	return Name{Package: name.Package, Local: strings.Join(name.Path, ".")}
}

func (f *Flavor) EnumType(repr ir.EnumRepr) Type {
	if repr.Kind == ir.KindString {
		return Type{Code: "String"}
	}
	return f.Number(repr.Number)
}

// Field wraps an optional field's type in Optional<T>, per the data
// model's field-level optional handling for Java.
func (f *Flavor) Field(field ir.Field, ty Type) (Type, string) {
	if field.Optional {
		return Type{Code: fmt.Sprintf("Optional<%s>", ty.Code), Import: "java.util.Optional"}, field.WireName()
	}
	return ty, field.WireName()
}

func (f *Flavor) Endpoint(e ir.Endpoint) string {
	return e.Ident
}
