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

import "github.com/kraklabs/schemac/pkg/source"

// DeclKind tags which of the five declaration shapes a Decl holds.
type DeclKind int

const (
	DeclTypeKind DeclKind = iota
	DeclTupleKind
	DeclInterfaceKind
	DeclEnumKind
	DeclServiceKind
)

func (k DeclKind) String() string {
	switch k {
	case DeclTypeKind:
		return "type"
	case DeclTupleKind:
		return "tuple"
	case DeclInterfaceKind:
		return "interface"
	case DeclEnumKind:
		return "enum"
	case DeclServiceKind:
		return "service"
	default:
		return "unknown"
	}
}

// Decl is a top-level (or nested) named schema entity. Exactly one of
// Type, Tuple, Interface, Enum, Service is populated, selected by Kind
// — the Go rendering of the data model's tagged Decl variant.
type Decl struct {
	Kind DeclKind
	Name Name
	Doc  []string
	Span source.Span

	Type      *TypeBody
	Tuple     *TupleBody
	Interface *InterfaceBody
	Enum      *EnumBody
	Service   *ServiceBody
}

// TypeBody is the body of a `type` declaration.
type TypeBody struct {
	Fields []Field
	Code   []CodeBlock
	Nested []*Decl
}

// TupleBody is the body of a `tuple` declaration: fields are
// positional, encoded in declared order rather than by name.
type TupleBody struct {
	Fields []Field
	Code   []CodeBlock
	Nested []*Decl
}

// PolymorphismPolicy controls how an interface's discriminator is
// read off the wire. Discriminator is the default policy; a schema
// written for a target lacking structural discriminators would need a
// different policy, but the grammar today only produces Discriminator.
type PolymorphismPolicy int

const (
	PolicyDiscriminator PolymorphismPolicy = iota
)

// InterfaceBody is the body of an `interface` declaration: fields
// common to every sub-type, plus a discriminator-keyed map of
// SubTypes. DiscriminatorKey defaults to "type" per the serialization
// module contract.
type InterfaceBody struct {
	Common           []Field
	DiscriminatorKey string
	SubTypes         map[string]*SubType
	SubTypeOrder     []string // discriminator keys in declared order
	Policy           PolymorphismPolicy
}

// SubType is one variant of a polymorphic interface.
type SubType struct {
	Name          Name
	Discriminator string // the wire value identifying this sub-type
	Fields        []Field
	Nested        []*Decl
	Span          source.Span
	Doc           []string
}

// EnumRepr is an enum's wire representation: a string or an integral
// number kind.
type EnumRepr struct {
	Kind   Kind // KindString or KindNumber
	Number NumberKind
}

// Variant is one member of an enum.
type Variant struct {
	Ident string
	// Value holds the explicit wire value from `as "..."`/`as N`, if
	// given; nil means the variant's value is its ordinal position
	// (for numeric enums) or its identifier (for string enums).
	Value *string
	Doc   []string
	Span  source.Span
}

// EnumBody is the body of an `enum` declaration.
type EnumBody struct {
	Repr     EnumRepr
	Variants []Variant
	Code     []CodeBlock
}

// Channel describes one side of an endpoint's request/response
// exchange: a payload type plus whether it is a stream of values
// rather than a single value.
type Channel struct {
	Type      Type
	Streaming bool
}

// HTTPBinding attaches REST-style metadata to an Endpoint.
type HTTPBinding struct {
	Method string
	Path   string
}

// Endpoint is one operation of a `service` declaration.
type Endpoint struct {
	Ident    string
	Request  []Channel
	Response *Channel
	HTTP     *HTTPBinding
	Doc      []string
	Span     source.Span
}

// ServiceBody is the body of a `service` declaration.
type ServiceBody struct {
	Endpoints []Endpoint
}

// NewType constructs a Decl of kind type.
func NewType(name Name, span source.Span, body *TypeBody) *Decl {
	return &Decl{Kind: DeclTypeKind, Name: name, Span: span, Type: body}
}

// NewTuple constructs a Decl of kind tuple.
func NewTuple(name Name, span source.Span, body *TupleBody) *Decl {
	return &Decl{Kind: DeclTupleKind, Name: name, Span: span, Tuple: body}
}

// NewInterface constructs a Decl of kind interface.
func NewInterface(name Name, span source.Span, body *InterfaceBody) *Decl {
	return &Decl{Kind: DeclInterfaceKind, Name: name, Span: span, Interface: body}
}

// NewEnum constructs a Decl of kind enum.
func NewEnum(name Name, span source.Span, body *EnumBody) *Decl {
	return &Decl{Kind: DeclEnumKind, Name: name, Span: span, Enum: body}
}

// NewService constructs a Decl of kind service.
func NewService(name Name, span source.Span, body *ServiceBody) *Decl {
	return &Decl{Kind: DeclServiceKind, Name: name, Span: span, Service: body}
}

// Nested returns this declaration's nested declarations, if its kind
// carries any, for uniform tree-walking (symbol indexing, name
// resolution).
func (d *Decl) Nested() []*Decl {
	switch d.Kind {
	case DeclTypeKind:
		return d.Type.Nested
	case DeclTupleKind:
		return d.Tuple.Nested
	case DeclInterfaceKind:
		var out []*Decl
		for _, key := range d.Interface.SubTypeOrder {
			out = append(out, d.Interface.SubTypes[key].Nested...)
		}
		return out
	default:
		return nil
	}
}
