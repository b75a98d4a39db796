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
package trans

import (
	"strings"

	"github.com/kraklabs/schemac/pkg/ast"
	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/source"
)

// ParseFile parses and lowers one source into IR without touching an
// Environment's import graph or merge state — the per-file half of
// what importPackage does, exported for the workspace (C11), which
// reparses one edited buffer at a time against an already-built Table
// rather than re-walking the whole package graph.
func ParseFile(src source.Source, own ir.VersionedPackage, diags *diagnostics.Diagnostics) *ir.File {
	astFile := ast.Parse(src, diags)
	return toModel(astFile, src, own)
}

// toModel converts one parsed translation unit into core IR, the
// into_model half of the translation driver's contract (spec §4.3 step
// 4). Every Decl's own Name is fully qualified with own immediately;
// every Name a field or endpoint type references is left with only
// Prefix/Path set — the Environment's later resolve pass fills in
// Package once every import in the file has itself resolved.
func toModel(af *ast.File, src source.Source, own ir.VersionedPackage) *ir.File {
	f := &ir.File{Source: src, Package: own.Package, Version: own.Version}

	for _, u := range af.Uses {
		rng, _ := ir.ParseVersionRange(u.Range) // parser only accepts well-formed range text
		f.Uses = append(f.Uses, ir.Use{
			Required: ir.RequiredPackage{Package: ir.Package(u.Package), Range: rng},
			Alias:    u.Alias,
			Span:     u.Span,
		})
	}

	root := ir.Name{Package: own}
	for _, d := range af.Decls {
		f.Decls = append(f.Decls, toDecl(d, root))
	}
	return f
}

func toDecl(d ast.Decl, parent ir.Name) *ir.Decl {
	name := parent.Nested(d.Name)

	var decl *ir.Decl
	switch d.Kind {
	case ast.DeclType:
		body := &ir.TypeBody{Fields: toFields(d.Fields), Code: toCodeBlocks(d.Code)}
		for _, n := range d.Nested {
			body.Nested = append(body.Nested, toDecl(n, name))
		}
		decl = ir.NewType(name, d.Span, body)

	case ast.DeclTuple:
		body := &ir.TupleBody{Fields: toFields(d.Fields), Code: toCodeBlocks(d.Code)}
		for _, n := range d.Nested {
			body.Nested = append(body.Nested, toDecl(n, name))
		}
		decl = ir.NewTuple(name, d.Span, body)

	case ast.DeclInterface:
		body := &ir.InterfaceBody{
			Common:           toFields(d.Fields),
			DiscriminatorKey: "type",
			SubTypes:         make(map[string]*ir.SubType, len(d.SubType)),
			Policy:           ir.PolicyDiscriminator,
		}
		for _, st := range d.SubType {
			subName := name.Nested(st.Name)
			sub := &ir.SubType{
				Name:          subName,
				Discriminator: st.Name,
				Fields:        toFields(st.Fields),
				Span:          st.Span,
				Doc:           st.Doc,
			}
			for _, n := range st.Nested {
				sub.Nested = append(sub.Nested, toDecl(n, subName))
			}
			body.SubTypes[sub.Discriminator] = sub
			body.SubTypeOrder = append(body.SubTypeOrder, sub.Discriminator)
		}
		decl = ir.NewInterface(name, d.Span, body)

	case ast.DeclEnum:
		body := &ir.EnumBody{Repr: toEnumRepr(d.EnumType), Code: toCodeBlocks(d.Code)}
		for _, v := range d.Variants {
			body.Variants = append(body.Variants, toVariant(v))
		}
		decl = ir.NewEnum(name, d.Span, body)

	case ast.DeclService:
		body := &ir.ServiceBody{}
		for _, e := range d.Endpoints {
			body.Endpoints = append(body.Endpoints, toEndpoint(e))
		}
		decl = ir.NewService(name, d.Span, body)
	}

	decl.Doc = d.Doc
	return decl
}

func toFields(fields []ast.Field) []ir.Field {
	out := make([]ir.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, ir.Field{
			Ident:    f.Ident,
			Optional: f.Optional,
			Type:     toType(f.Type),
			Doc:      f.Doc,
			Span:     f.Span,
			Alias:    f.Alias,
		})
	}
	return out
}

func toCodeBlocks(blocks []ast.CodeBlock) []ir.CodeBlock {
	out := make([]ir.CodeBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, ir.CodeBlock{Language: b.Language, Lines: b.Lines, Span: b.Span})
	}
	return out
}

func toVariant(v ast.Variant) ir.Variant {
	var value *string
	if v.Value != "" {
		val := v.Value
		value = &val
	}
	return ir.Variant{Ident: v.Ident, Value: value, Doc: v.Doc, Span: v.Span}
}

func toEndpoint(e ast.Endpoint) ir.Endpoint {
	ep := ir.Endpoint{Ident: e.Ident, Doc: e.Doc, Span: e.Span}
	for _, ch := range e.Request {
		ep.Request = append(ep.Request, ir.Channel{Type: toType(ch.Type), Streaming: ch.Streaming})
	}
	if e.Response != nil {
		ep.Response = &ir.Channel{Type: toType(e.Response.Type), Streaming: e.Response.Streaming}
	}
	if e.HTTPMethod != "" || e.HTTPPath != "" {
		ep.HTTP = &ir.HTTPBinding{Method: e.HTTPMethod, Path: e.HTTPPath}
	}
	return ep
}

// toType converts a surface type expression to core IR. A Name
// reference's Package is left unset here — the Environment's resolve
// pass fills it in once the file's own use bindings are known.
func toType(t ast.TypeExpr) ir.Type {
	switch {
	case t.ArrayOf != nil:
		return ir.Array(toType(*t.ArrayOf))
	case t.MapKey != nil && t.MapValue != nil:
		return ir.Map(toType(*t.MapKey), toType(*t.MapValue))
	case t.Primitive != "":
		return toPrimitive(t.Primitive)
	default:
		return ir.NameType(ir.Name{Prefix: t.Prefix, Path: t.Path, Span: t.Span})
	}
}

func toPrimitive(name string) ir.Type {
	switch strings.ToLower(name) {
	case "string":
		return ir.String()
	case "datetime":
		return ir.DateTime()
	case "bytes":
		return ir.Bytes()
	case "u32":
		return ir.Number(ir.NumberU32)
	case "u64":
		return ir.Number(ir.NumberU64)
	case "i32":
		return ir.Number(ir.NumberI32)
	case "i64":
		return ir.Number(ir.NumberI64)
	case "float":
		return ir.Float()
	case "double":
		return ir.Double()
	case "boolean", "bool":
		return ir.Boolean()
	default:
		return ir.Any()
	}
}

// toEnumRepr maps the grammar's `enum X as TYPE` annotation onto an
// EnumRepr; an absent or unrecognized annotation defaults to a string
// representation, matching the default the surface grammar documents
// for a bare `enum X { ... }`.
func toEnumRepr(declared string) ir.EnumRepr {
	switch strings.ToLower(declared) {
	case "u32":
		return ir.EnumRepr{Kind: ir.KindNumber, Number: ir.NumberU32}
	case "u64":
		return ir.EnumRepr{Kind: ir.KindNumber, Number: ir.NumberU64}
	case "i32":
		return ir.EnumRepr{Kind: ir.KindNumber, Number: ir.NumberI32}
	case "i64":
		return ir.EnumRepr{Kind: ir.KindNumber, Number: ir.NumberI64}
	default:
		return ir.EnumRepr{Kind: ir.KindString}
	}
}
