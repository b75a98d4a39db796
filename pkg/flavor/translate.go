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
package flavor

import (
	"fmt"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
)

// Field is a translated field: the target's rendered type plus the
// identifying data that survives translation unchanged.
type Field[T any] struct {
	Ident    string
	Optional bool
	Type     T
	Doc      []string
	WireName string
}

// Channel is a translated endpoint channel.
type Channel[T any] struct {
	Type      T
	Streaming bool
}

// Endpoint is a translated service endpoint.
type Endpoint[T any] struct {
	Ident    string
	Name     string
	Request  []Channel[T]
	Response *Channel[T]
	HTTP     *ir.HTTPBinding
	Doc      []string
}

// SubType is a translated interface sub-type.
type SubType[T any, N any] struct {
	Name          N
	Discriminator string
	Fields        []Field[T]
	Nested        []*Decl[T, N]
	Doc           []string
}

// Variant is a translated enum variant; Value is always populated
// (resolved from an explicit `as` value or the variant's ordinal/
// identifier default) so every backend sees a concrete wire value.
type Variant struct {
	Ident string
	Value string
	Doc   []string
}

// Decl is one translated declaration: same five-way shape as ir.Decl,
// rendered through a Translator[T, N].
//
// Annotations, FieldAnnotations, MethodAnnotations, and ExtraCode exist
// only so a listener (pkg/listener, spec C10) has somewhere
// flavor-agnostic to append its cross-cutting output: listener hooks
// may only grow these slices/maps, never remove or rewrite prior
// content, matching the "must not remove previously added content"
// hook contract.
type Decl[T any, N any] struct {
	Kind ir.DeclKind
	Name N
	Doc  []string

	Fields           []Field[T] // Type, Tuple, Interface common
	Code             []ir.CodeBlock
	Nested           []*Decl[T, N]
	DiscriminatorKey string
	SubTypes         []*SubType[T, N] // declared order
	EnumRepr         T
	Variants         []Variant
	Endpoints        []Endpoint[T]

	// Annotations are listener-appended lines rendered immediately
	// above the declaration (e.g. Java's @JsonTypeInfo/@JsonSubTypes).
	Annotations []string
	// FieldAnnotations holds per-field annotation lines keyed by
	// Field.Ident (e.g. Java's @JsonProperty("wire") per field).
	FieldAnnotations map[string][]string
	// MethodAnnotations holds annotation lines for a backend-emitted
	// synthetic method keyed by the backend's fixed method name for
	// that role (e.g. Java enum backend always emits "value" and
	// "fromValue" methods a listener can annotate).
	MethodAnnotations map[string][]string
	// ExtraCode holds verbatim source lines a listener appends after
	// the declaration's own body (e.g. a tuple's generated
	// Serializer/Deserializer nested classes).
	ExtraCode []string
}

// Package groups translated declarations under one output package —
// the unit the package processor (C9) writes one file per.
type Package[T any, N any] struct {
	Package ir.VersionedPackage
	Import  string // Translator.Package(vp)
	Decls   []*Decl[T, N]
}

// Translated is the full output of one Translate call: every
// declaration the Environment produced, grouped by output package in
// the stable order the data model requires (package, then file, then
// source order — preserved here because callers feed decls to
// Translate already in that order).
type Translated[T any, N any] struct {
	Packages []*Package[T, N]
}

// Translate performs the generic structural rewrite (spec C7): for
// each package of merged core-IR declarations, produce the
// target-rendered equivalent through tr, without mutating the source
// IR. Errors surface through diags (spec §7 category 3: "unsupported
// type for a given target... surfaces as a diagnostic and skips the
// declaration") rather than failing the whole translation.
func Translate[T any, N any](table *ir.Table, groups []PackageDecls, tr Translator[T, N], diags *diagnostics.Diagnostics) Translated[T, N] {
	var out Translated[T, N]
	for _, group := range groups {
		pkg := &Package[T, N]{
			Package: group.Package,
			Import:  tr.Package(group.Package),
		}
		for _, d := range group.Decls {
			td, err := translateDecl(table, d, tr)
			if err != nil {
				diags.Errorf(d.Span, "%s", err)
				continue
			}
			pkg.Decls = append(pkg.Decls, td)
		}
		out.Packages = append(out.Packages, pkg)
	}
	return out
}

// PackageDecls is the input grouping Translate expects: every merged
// declaration belonging to one output package, already in source
// order.
type PackageDecls struct {
	Package ir.VersionedPackage
	Decls   []*ir.Decl
}

func translateDecl[T any, N any](table *ir.Table, d *ir.Decl, tr Translator[T, N]) (*Decl[T, N], error) {
	name := tr.LocalName(table, d.Name)
	out := &Decl[T, N]{Kind: d.Kind, Name: name, Doc: d.Doc}

	switch d.Kind {
	case ir.DeclTypeKind:
		fields, err := translateFields(table, d.Type.Fields, tr)
		if err != nil {
			return nil, err
		}
		out.Fields = fields
		out.Code = d.Type.Code
		for _, n := range d.Type.Nested {
			nested, err := translateDecl(table, n, tr)
			if err != nil {
				return nil, err
			}
			out.Nested = append(out.Nested, nested)
		}

	case ir.DeclTupleKind:
		fields, err := translateFields(table, d.Tuple.Fields, tr)
		if err != nil {
			return nil, err
		}
		out.Fields = fields
		out.Code = d.Tuple.Code
		for _, n := range d.Tuple.Nested {
			nested, err := translateDecl(table, n, tr)
			if err != nil {
				return nil, err
			}
			out.Nested = append(out.Nested, nested)
		}

	case ir.DeclInterfaceKind:
		common, err := translateFields(table, d.Interface.Common, tr)
		if err != nil {
			return nil, err
		}
		out.Fields = common
		key := d.Interface.DiscriminatorKey
		if key == "" {
			key = "type"
		}
		out.DiscriminatorKey = key
		for _, subKey := range d.Interface.SubTypeOrder {
			sub := d.Interface.SubTypes[subKey]
			fields, err := translateFields(table, sub.Fields, tr)
			if err != nil {
				return nil, err
			}
			ts := &SubType[T, N]{
				Name:          tr.LocalName(table, sub.Name),
				Discriminator: sub.Discriminator,
				Fields:        fields,
				Doc:           sub.Doc,
			}
			for _, n := range sub.Nested {
				nested, err := translateDecl(table, n, tr)
				if err != nil {
					return nil, err
				}
				ts.Nested = append(ts.Nested, nested)
			}
			out.SubTypes = append(out.SubTypes, ts)
		}

	case ir.DeclEnumKind:
		out.EnumRepr = tr.EnumType(d.Enum.Repr)
		out.Code = d.Enum.Code
		for i, v := range d.Enum.Variants {
			out.Variants = append(out.Variants, Variant{
				Ident: v.Ident,
				Value: resolveVariantValue(v, i, d.Enum.Repr),
				Doc:   v.Doc,
			})
		}

	case ir.DeclServiceKind:
		for _, e := range d.Service.Endpoints {
			te, err := translateEndpoint(table, e, tr)
			if err != nil {
				return nil, err
			}
			out.Endpoints = append(out.Endpoints, te)
		}
	}

	return out, nil
}

func resolveVariantValue(v ir.Variant, ordinal int, repr ir.EnumRepr) string {
	if v.Value != nil {
		return *v.Value
	}
	if repr.Kind == ir.KindString {
		return v.Ident
	}
	return fmt.Sprintf("%d", ordinal)
}

func translateFields[T any, N any](table *ir.Table, fields []ir.Field, tr Translator[T, N]) ([]Field[T], error) {
	out := make([]Field[T], 0, len(fields))
	for _, f := range fields {
		ty, err := translateType(table, f.Type, tr)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Ident, err)
		}
		renderedType, wireName := tr.Field(f, ty)
		out = append(out, Field[T]{
			Ident:    f.Ident,
			Optional: f.Optional,
			Type:     renderedType,
			Doc:      f.Doc,
			WireName: wireName,
		})
	}
	return out, nil
}

func translateEndpoint[T any, N any](table *ir.Table, e ir.Endpoint, tr Translator[T, N]) (Endpoint[T], error) {
	out := Endpoint[T]{Ident: e.Ident, Name: tr.Endpoint(e), HTTP: e.HTTP, Doc: e.Doc}
	for _, ch := range e.Request {
		ty, err := translateType(table, ch.Type, tr)
		if err != nil {
			return Endpoint[T]{}, fmt.Errorf("endpoint %q request: %w", e.Ident, err)
		}
		out.Request = append(out.Request, Channel[T]{Type: ty, Streaming: ch.Streaming})
	}
	if e.Response != nil {
		ty, err := translateType(table, e.Response.Type, tr)
		if err != nil {
			return Endpoint[T]{}, fmt.Errorf("endpoint %q response: %w", e.Ident, err)
		}
		out.Response = &Channel[T]{Type: ty, Streaming: e.Response.Streaming}
	}
	return out, nil
}

func translateType[T any, N any](table *ir.Table, t ir.Type, tr Translator[T, N]) (T, error) {
	var zero T
	switch t.Kind {
	case ir.KindString:
		return tr.StringType(t.StringKind), nil
	case ir.KindDateTime:
		return tr.DateTime(), nil
	case ir.KindBytes:
		return tr.Bytes(), nil
	case ir.KindNumber:
		return tr.Number(t.Number), nil
	case ir.KindFloat:
		return tr.Float(), nil
	case ir.KindDouble:
		return tr.Double(), nil
	case ir.KindBoolean:
		return tr.Boolean(), nil
	case ir.KindAny:
		return tr.Any(), nil
	case ir.KindArray:
		elem, err := translateType(table, *t.Inner, tr)
		if err != nil {
			return zero, err
		}
		return tr.Array(elem), nil
	case ir.KindMap:
		key, err := translateType(table, *t.Key, tr)
		if err != nil {
			return zero, err
		}
		value, err := translateType(table, *t.Value, tr)
		if err != nil {
			return zero, err
		}
		return tr.Map(key, value), nil
	case ir.KindName:
		return tr.Name(table, *t.Name)
	default:
		return zero, fmt.Errorf("unsupported type kind %s", t.Kind)
	}
}
