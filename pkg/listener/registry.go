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

// Package listener implements the cross-cutting transform layer (spec
// C10): modules observe class/tuple/enum/interface/field/endpoint
// events as the package processor (C9) walks a target's translated
// declarations, and may only append annotations, nested declarations,
// or generated code — never remove what an earlier module added.
//
// The capability-set-over-inheritance shape (a struct of optional hook
// functions, composed by ordered registration) follows the same
// pattern the teacher's ingestion pipeline uses for its own pluggable
// per-language parsers (pkg/ingestion.Parser registered by file
// extension), generalized from "one parser per language" to "every
// hook runs for every applicable declaration, in registration order".
package listener

import (
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/ir"
)

// Hooks is one module's contribution: any nil field is simply skipped.
// T and N are the flavor's rendered type/name representations (e.g.
// javaf.Type, javaf.Name for the Java modules in this package).
type Hooks[T any, N any] struct {
	Name string

	ClassAdded     func(d *flavor.Decl[T, N])
	TupleAdded     func(d *flavor.Decl[T, N])
	EnumAdded      func(d *flavor.Decl[T, N])
	InterfaceAdded func(d *flavor.Decl[T, N])
	FieldAdded     func(owner *flavor.Decl[T, N], f *flavor.Field[T])
	EndpointAdded  func(owner *flavor.Decl[T, N], e *flavor.Endpoint[T])
}

// Registry composes Hooks by ordered registration and dispatches every
// applicable event to each in turn (spec §5: "listener application
// order follows registration order").
type Registry[T any, N any] struct {
	modules []Hooks[T, N]
}

// NewRegistry returns an empty Registry.
func NewRegistry[T any, N any]() *Registry[T, N] {
	return &Registry[T, N]{}
}

// Register appends h to the registry. Registration order is dispatch
// order; there is no way to insert ahead of an already-registered
// module.
func (r *Registry[T, N]) Register(h Hooks[T, N]) {
	r.modules = append(r.modules, h)
}

// Names lists every registered module's name in registration order.
func (r *Registry[T, N]) Names() []string {
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name
	}
	return names
}

// Apply runs every applicable hook for d against d's own kind, then
// recurses into nested declarations, sub-types, fields, and endpoints
// so a listener sees every event the declaration tree produces.
func (r *Registry[T, N]) Apply(d *flavor.Decl[T, N]) {
	r.dispatchDecl(d)

	for _, f := range d.Fields {
		f := f
		r.dispatchField(d, &f)
	}
	for _, st := range d.SubTypes {
		for _, f := range st.Fields {
			f := f
			r.dispatchField(d, &f)
		}
		for _, nested := range st.Nested {
			r.Apply(nested)
		}
	}
	for _, nested := range d.Nested {
		r.Apply(nested)
	}
	for i := range d.Endpoints {
		r.dispatchEndpoint(d, &d.Endpoints[i])
	}
}

func (r *Registry[T, N]) dispatchDecl(d *flavor.Decl[T, N]) {
	for _, m := range r.modules {
		var hook func(*flavor.Decl[T, N])
		switch d.Kind {
		case ir.DeclTypeKind:
			hook = m.ClassAdded
		case ir.DeclTupleKind:
			hook = m.TupleAdded
		case ir.DeclInterfaceKind:
			hook = m.InterfaceAdded
		case ir.DeclEnumKind:
			hook = m.EnumAdded
		}
		if hook != nil {
			hook(d)
		}
	}
}

func (r *Registry[T, N]) dispatchField(owner *flavor.Decl[T, N], f *flavor.Field[T]) {
	for _, m := range r.modules {
		if m.FieldAdded != nil {
			m.FieldAdded(owner, f)
		}
	}
}

func (r *Registry[T, N]) dispatchEndpoint(owner *flavor.Decl[T, N], e *flavor.Endpoint[T]) {
	for _, m := range r.modules {
		if m.EndpointAdded != nil {
			m.EndpointAdded(owner, e)
		}
	}
}

// AddAnnotation appends a class-level annotation line to d. Append-
// only: it never touches an existing entry.
func AddAnnotation[T any, N any](d *flavor.Decl[T, N], line string) {
	d.Annotations = append(d.Annotations, line)
}

// AddFieldAnnotation appends an annotation line for the field named
// ident, creating the map on first use.
func AddFieldAnnotation[T any, N any](d *flavor.Decl[T, N], ident, line string) {
	if d.FieldAnnotations == nil {
		d.FieldAnnotations = make(map[string][]string)
	}
	d.FieldAnnotations[ident] = append(d.FieldAnnotations[ident], line)
}

// AddMethodAnnotation appends an annotation line for a backend's fixed
// synthetic method name (e.g. an enum backend's "value"/"fromValue"
// accessor and creator methods).
func AddMethodAnnotation[T any, N any](d *flavor.Decl[T, N], method, line string) {
	if d.MethodAnnotations == nil {
		d.MethodAnnotations = make(map[string][]string)
	}
	d.MethodAnnotations[method] = append(d.MethodAnnotations[method], line)
}

// AddExtraCode appends verbatim source lines after d's own rendered
// body (e.g. a tuple's generated Serializer/Deserializer classes).
func AddExtraCode[T any, N any](d *flavor.Decl[T, N], lines ...string) {
	d.ExtraCode = append(d.ExtraCode, lines...)
}
