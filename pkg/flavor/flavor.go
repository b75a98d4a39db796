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

// Package flavor implements the Flavor Translator capability (spec
// C7): a per-target tuple of rendered type (T) and rendered name (N)
// representations, plus the generic structural rewrite (Translate)
// that walks merged core IR and substitutes every primitive,
// structural, and name-shaped value through a concrete target's
// Translator.
//
// Go has no associated-type mechanism, so the data model's "tuple of
// associated semantic types" (Type, Name, Field, Endpoint, Package,
// EnumType) is collapsed to the two type parameters that actually vary
// in shape across targets — T (a type-position rendering) and N (a
// name-position rendering) — with Field, Endpoint, Package, and
// EnumType expressed as T or N values plus plain data, not further
// type parameters. Each concrete target (pkg/flavor/gof, javaf,
// swiftf) instantiates Translator[T, N] with its own T and N.
package flavor

import "github.com/kraklabs/schemac/pkg/ir"

// Translator is a target's complete mapping from core IR onto its own
// type and name representations. Implementations must be pure: the
// same input must always render the same output (the "exact mapping
// table... must be reproducible bit-for-bit" requirement).
type Translator[T any, N any] interface {
	// Per-primitive mappers.
	Number(kind ir.NumberKind) T
	Float() T
	Double() T
	Boolean() T
	StringType(kind ir.StringKind) T
	DateTime() T
	Bytes() T
	Any() T

	// Structural mappers.
	Array(elem T) T
	Map(key, value T) T
	Name(table *ir.Table, name ir.Name) (T, error)

	// Package renders a versioned package as the target's import path
	// or module reference (e.g. Go's "_"-joined relative import).
	Package(vp ir.VersionedPackage) string

	// LocalName renders the declaration's own target-facing identifier.
	// Defaultable per spec: DefaultLocalName below implements the
	// fallback "just use the last path component" behavior a target
	// can call from its own LocalName if it doesn't need anything
	// fancier.
	LocalName(table *ir.Table, name ir.Name) N

	// EnumType renders an enum's wire representation type.
	EnumType(repr ir.EnumRepr) T

	// Field lets a target adjust a field's rendered type (e.g. Java
	// wraps an optional field's type in Optional<T>) and choose its
	// wire name; the default behavior (DefaultFieldWireName) leaves ty
	// untouched and exposes the field's own alias-or-ident.
	Field(f ir.Field, ty T) (renderedType T, wireName string)

	// Endpoint lets a target override endpoint rendering; the default
	// (DefaultEndpointName) exposes the endpoint's own identifier.
	Endpoint(e ir.Endpoint) (name string)
}

// DefaultLocalName implements the spec's defaultable local_name
// operation: the last path component of the Name, unqualified.
func DefaultLocalName(name ir.Name) string {
	return name.Local()
}

// DefaultFieldWireName implements the spec's defaultable field
// operation: identity translation, i.e. the field's own wire name.
func DefaultFieldWireName(f ir.Field) string {
	return f.WireName()
}

// DefaultEndpointName implements the spec's defaultable endpoint
// operation: identity translation, i.e. the endpoint's own identifier.
func DefaultEndpointName(e ir.Endpoint) string {
	return e.Ident
}
