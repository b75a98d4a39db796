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
package listener

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/ir"
)

func TestRegistry_AppliesHooksInRegistrationOrder(t *testing.T) {
	r := NewRegistry[string, string]()
	r.Register(Hooks[string, string]{
		Name: "first",
		ClassAdded: func(d *flavor.Decl[string, string]) {
			AddAnnotation(d, "first")
		},
	})
	r.Register(Hooks[string, string]{
		Name: "second",
		ClassAdded: func(d *flavor.Decl[string, string]) {
			AddAnnotation(d, "second")
		},
	})

	d := &flavor.Decl[string, string]{Kind: ir.DeclTypeKind, Name: "Point"}
	r.Apply(d)

	assert.Equal(t, []string{"first", "second"}, d.Annotations)
	assert.Equal(t, []string{"first", "second"}, r.Names())
}

func TestRegistry_SkipsHookForWrongDeclKind(t *testing.T) {
	r := NewRegistry[string, string]()
	r.Register(Hooks[string, string]{
		Name: "enum-only",
		EnumAdded: func(d *flavor.Decl[string, string]) {
			AddAnnotation(d, "enum")
		},
	})

	d := &flavor.Decl[string, string]{Kind: ir.DeclTypeKind, Name: "Point"}
	r.Apply(d)

	assert.Empty(t, d.Annotations)
}

func TestRegistry_AppliesToNestedDeclsFieldsAndEndpoints(t *testing.T) {
	r := NewRegistry[string, string]()
	var fieldsSeen []string
	var endpointsSeen []string
	r.Register(Hooks[string, string]{
		Name: "observer",
		ClassAdded: func(d *flavor.Decl[string, string]) {
			AddAnnotation(d, "class:"+d.Name)
		},
		FieldAdded: func(owner *flavor.Decl[string, string], f *flavor.Field[string]) {
			fieldsSeen = append(fieldsSeen, owner.Name+"."+f.Ident)
		},
		EndpointAdded: func(owner *flavor.Decl[string, string], e *flavor.Endpoint[string]) {
			endpointsSeen = append(endpointsSeen, owner.Name+"."+e.Ident)
		},
	})

	nested := &flavor.Decl[string, string]{
		Kind:   ir.DeclTypeKind,
		Name:   "Nested",
		Fields: []flavor.Field[string]{{Ident: "id"}},
	}
	root := &flavor.Decl[string, string]{
		Kind:      ir.DeclServiceKind,
		Name:      "Svc",
		Nested:    []*flavor.Decl[string, string]{nested},
		Endpoints: []flavor.Endpoint[string]{{Ident: "get"}},
	}

	r.Apply(root)

	assert.Equal(t, []string{"class:Nested"}, nested.Annotations)
	assert.Equal(t, []string{"Nested.id"}, fieldsSeen)
	assert.Equal(t, []string{"Svc.get"}, endpointsSeen)
}

func TestAddFieldAnnotation_AccumulatesPerField(t *testing.T) {
	d := &flavor.Decl[string, string]{Kind: ir.DeclTypeKind, Name: "Point"}
	AddFieldAnnotation(d, "x", "@First")
	AddFieldAnnotation(d, "x", "@Second")
	AddFieldAnnotation(d, "y", "@Only")

	assert.Equal(t, []string{"@First", "@Second"}, d.FieldAnnotations["x"])
	assert.Equal(t, []string{"@Only"}, d.FieldAnnotations["y"])
}

func TestAddExtraCode_AppendsWithoutOverwriting(t *testing.T) {
	d := &flavor.Decl[string, string]{Kind: ir.DeclTupleKind, Name: "Pair"}
	AddExtraCode(d, "line one")
	AddExtraCode(d, "line two", "line three")

	assert.Equal(t, []string{"line one", "line two", "line three"}, d.ExtraCode)
}
