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

import "fmt"

// Kind tags the variant a Type value holds.
type Kind int

const (
	KindString Kind = iota
	KindDateTime
	KindBytes
	KindNumber
	KindFloat
	KindDouble
	KindBoolean
	KindArray
	KindMap
	KindName
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDateTime:
		return "datetime"
	case KindBytes:
		return "bytes"
	case KindNumber:
		return "number"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindName:
		return "name"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// NumberKind distinguishes the width and signedness of KindNumber.
type NumberKind int

const (
	NumberU32 NumberKind = iota
	NumberU64
	NumberI32
	NumberI64
)

func (k NumberKind) String() string {
	switch k {
	case NumberU32:
		return "u32"
	case NumberU64:
		return "u64"
	case NumberI32:
		return "i32"
	case NumberI64:
		return "i64"
	default:
		return "unknown"
	}
}

// StringKind distinguishes surface-syntax string flavors; the schema
// grammar has only one today (a plain quoted string) but the IR keeps
// this as its own tagged field, matching the data model's
// `String{string_kind}` shape, so a future grammar addition (e.g. a
// raw/unescaped string literal kind) doesn't change Type's shape.
type StringKind int

const (
	StringPlain StringKind = iota
)

func (k StringKind) String() string {
	return "plain"
}

// Type is the IR's tagged-variant type tree: String, DateTime, Bytes,
// Number, Float, Double, Boolean, Array, Map, Name, Any. Only the
// fields relevant to Kind are populated. Type is passed by value, but
// copies share what Inner, Key, Value and Name point to: the Resolver
// fills in a referenced Name's Package in place. The translate step
// (pkg/flavor) builds entirely new trees rather than mutating in
// place.
type Type struct {
	Kind       Kind
	Number     NumberKind
	StringKind StringKind
	Inner      *Type // Array
	Key        *Type // Map
	Value      *Type // Map
	Name       *Name // Name
}

func String() Type   { return Type{Kind: KindString, StringKind: StringPlain} }
func DateTime() Type  { return Type{Kind: KindDateTime} }
func Bytes() Type     { return Type{Kind: KindBytes} }
func Float() Type     { return Type{Kind: KindFloat} }
func Double() Type    { return Type{Kind: KindDouble} }
func Boolean() Type   { return Type{Kind: KindBoolean} }
func Any() Type       { return Type{Kind: KindAny} }

func Number(kind NumberKind) Type { return Type{Kind: KindNumber, Number: kind} }

func Array(inner Type) Type { return Type{Kind: KindArray, Inner: &inner} }

func Map(key, value Type) Type { return Type{Kind: KindMap, Key: &key, Value: &value} }

func NameType(name Name) Type { return Type{Kind: KindName, Name: &name} }

// String renders the type for diagnostics and test fixtures.
func (t Type) String() string {
	switch t.Kind {
	case KindNumber:
		return t.Number.String()
	case KindArray:
		return fmt.Sprintf("[%s]", t.Inner.String())
	case KindMap:
		return fmt.Sprintf("{%s: %s}", t.Key.String(), t.Value.String())
	case KindName:
		return t.Name.String()
	default:
		return t.Kind.String()
	}
}

// Equal performs a deep structural comparison of two types.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindNumber:
		return t.Number == other.Number
	case KindString:
		return t.StringKind == other.StringKind
	case KindArray:
		return t.Inner.Equal(*other.Inner)
	case KindMap:
		return t.Key.Equal(*other.Key) && t.Value.Equal(*other.Value)
	case KindName:
		return t.Name.Equal(*other.Name)
	default:
		return true
	}
}
