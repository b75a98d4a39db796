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

// Package ast holds the surface syntax tree produced by Parse: an
// almost literal transcription of the schema grammar (spec §6),
// deliberately untyped with respect to the IR's Name resolution and
// merge discipline — that conversion happens in pkg/trans's
// into_model step.
package ast

import "github.com/kraklabs/schemac/pkg/source"

// File is the root of a parsed translation unit.
type File struct {
	Package *PackageHeader
	Uses    []Use
	Decls   []Decl
}

// PackageHeader is the `#![package(...), version(...)]` header.
type PackageHeader struct {
	Package []string
	Version string // empty if not given
	Span    source.Span
}

// Use is a parsed `use a.b.c [as alias] [version("RANGE")];` (the
// parentheses around RANGE are optional).
type Use struct {
	Package []string
	Alias   string
	Range   string
	Span    source.Span
}

// DeclKind tags which declaration form a Decl node holds.
type DeclKind int

const (
	DeclType DeclKind = iota
	DeclTuple
	DeclInterface
	DeclEnum
	DeclService
)

// Decl is one parsed declaration, in whichever of the five surface
// forms DeclKind selects.
type Decl struct {
	Kind DeclKind
	Name string
	Doc  []string
	Span source.Span

	Fields  []Field     // type, tuple, interface common fields
	Code    []CodeBlock // type, tuple, enum
	Nested  []Decl      // type, tuple
	SubType []SubType   // interface

	EnumType string    // "STRING", "INT32", ... from `enum X as TYPE`
	Variants []Variant // enum

	Endpoints []Endpoint // service
}

// Field is a parsed `ident[?]: type [as "wire"];`.
type Field struct {
	Ident    string
	Optional bool
	Type     TypeExpr
	Alias    string
	Doc      []string
	Span     source.Span
}

// TypeExpr is the parsed form of a type reference, kept as loosely
// typed strings/children until into_model resolves names.
type TypeExpr struct {
	// Primitive is one of: string, datetime, bytes, u32, u64, i32, i64,
	// float, double, boolean, any. Empty when this is a name reference.
	Primitive string
	// Name reference fields, used when Primitive == "".
	Prefix string
	Path   []string
	// Array/Map structure.
	ArrayOf *TypeExpr
	MapKey  *TypeExpr
	MapValue *TypeExpr
	Span    source.Span
}

// CodeBlock is a parsed `{{ ... }}` verbatim block. The parser reads
// no language tag, so Language is empty for every parsed block.
type CodeBlock struct {
	Language string
	Lines    []string
	Span     source.Span
}

// SubType is a parsed `type Name { ... }` nested inside an interface.
type SubType struct {
	Name   string
	Fields []Field
	Nested []Decl
	Doc    []string
	Span   source.Span
}

// Variant is a parsed enum member: `IDENT [as VALUE];`.
type Variant struct {
	Ident string
	Value string // empty if not given
	Doc   []string
	Span  source.Span
}

// Channel is one side of an endpoint's exchange.
type Channel struct {
	Type      TypeExpr
	Streaming bool
}

// Endpoint is a parsed service operation.
type Endpoint struct {
	Ident      string
	Request    []Channel
	Response   *Channel
	HTTPMethod string
	HTTPPath   string
	Doc        []string
	Span       source.Span
}
