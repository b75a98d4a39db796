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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/source"
)

func testName(local string) Name {
	return Name{Package: VersionedPackage{Package: Package{"foo"}}, Path: []string{local}}
}

func emptyType(name Name) *Decl {
	return NewType(name, source.NewSpan(0, 1), &TypeBody{})
}

func TestMergeDecl_Identity(t *testing.T) {
	name := testName("Foo")
	d := NewType(name, source.NewSpan(0, 10), &TypeBody{
		Fields: []Field{{Ident: "a", Type: Number(NumberU32), Span: source.NewSpan(1, 2)}},
	})
	empty := emptyType(name)

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(d, empty, diags)

	require.True(t, ok)
	assert.False(t, diags.HasErrors())
	require.Len(t, d.Type.Fields, 1)
	assert.Equal(t, "a", d.Type.Fields[0].Ident)
}

func TestMergeDecl_DisjointFieldsCommute(t *testing.T) {
	name := testName("Foo")
	d1 := NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "a", Type: String(), Span: source.NewSpan(0, 1)}},
	})
	d2 := NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "b", Type: String(), Span: source.NewSpan(0, 1)}},
	})

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(d1, d2, diags)
	require.True(t, ok)

	idents := map[string]bool{}
	for _, f := range d1.Type.Fields {
		idents[f.Ident] = true
	}
	assert.True(t, idents["a"])
	assert.True(t, idents["b"])
}

// TestMergeDecl_CommutesRegardlessOfDirection merges the same two
// fragments in both orders and requires the resulting field sets to be
// byte-for-byte identical once sorted by Ident — commutativity is
// exactly the kind of whole-structure property a diff states more
// clearly than a field-by-field assertion would.
func TestMergeDecl_CommutesRegardlessOfDirection(t *testing.T) {
	name := testName("Foo")
	fragment := func() *TypeBody {
		return &TypeBody{Fields: []Field{
			{Ident: "a", Type: String(), Span: source.NewSpan(0, 1)},
			{Ident: "b", Type: Number(NumberU32), Span: source.NewSpan(2, 3)},
		}}
	}

	forward := NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "a", Type: String(), Span: source.NewSpan(0, 1)}},
	})
	backward := NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "b", Type: Number(NumberU32), Span: source.NewSpan(2, 3)}},
	})

	diags := diagnostics.New(source.New("t", nil))
	require.True(t, MergeDecl(forward, NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "b", Type: Number(NumberU32), Span: source.NewSpan(2, 3)}},
	}), diags))
	require.True(t, MergeDecl(backward, NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "a", Type: String(), Span: source.NewSpan(0, 1)}},
	}), diags))

	byIdent := func(fields []Field) map[string]Field {
		m := make(map[string]Field, len(fields))
		for _, f := range fields {
			m[f.Ident] = f
		}
		return m
	}

	want := byIdent(fragment().Fields)
	if diff := cmp.Diff(want, byIdent(forward.Type.Fields)); diff != "" {
		t.Errorf("merge order a-then-b produced an unexpected field set (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, byIdent(backward.Type.Fields)); diff != "" {
		t.Errorf("merge order b-then-a produced an unexpected field set (-want +got):\n%s", diff)
	}
}

func TestMergeDecl_FieldConflict(t *testing.T) {
	name := testName("Foo")
	dst := NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "a", Type: String(), Span: source.NewSpan(1, 2)}},
	})
	src := NewType(name, source.NewSpan(0, 1), &TypeBody{
		Fields: []Field{{Ident: "a", Type: Number(NumberU32), Span: source.NewSpan(10, 11)}},
	})

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(dst, src, diags)

	assert.False(t, ok)
	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Errors()[0].Message, `"a"`)
}

func TestMergeDecl_ExtendEnumRejected(t *testing.T) {
	name := testName("Bar")
	dst := NewEnum(name, source.NewSpan(0, 1), &EnumBody{
		Repr:     EnumRepr{Kind: KindString},
		Variants: []Variant{{Ident: "A", Span: source.NewSpan(1, 2)}},
	})
	src := NewEnum(name, source.NewSpan(0, 1), &EnumBody{
		Repr:     EnumRepr{Kind: KindString},
		Variants: []Variant{{Ident: "B", Span: source.NewSpan(5, 6)}},
	})

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(dst, src, diags)

	assert.False(t, ok)
	require.Len(t, dst.Enum.Variants, 1, "new variants must not be added")
}

func TestMergeDecl_EnumCodeBlocksMerge(t *testing.T) {
	name := testName("Bar")
	dst := NewEnum(name, source.NewSpan(0, 1), &EnumBody{Repr: EnumRepr{Kind: KindString}})
	src := NewEnum(name, source.NewSpan(0, 1), &EnumBody{
		Repr: EnumRepr{Kind: KindString},
		Code: []CodeBlock{{Language: "go", Lines: []string{"// extra"}}},
	})

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(dst, src, diags)

	require.True(t, ok)
	require.Len(t, dst.Enum.Code, 1)
}

func TestMergeDecl_CrossKindRejected(t *testing.T) {
	name := testName("Foo")
	dst := NewType(name, source.NewSpan(0, 1), &TypeBody{})
	src := NewTuple(name, source.NewSpan(0, 1), &TupleBody{})

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(dst, src, diags)

	assert.False(t, ok)
	require.True(t, diags.HasErrors())
}

func TestMergeDecl_InterfaceSubTypesMapMerge(t *testing.T) {
	name := testName("Shape")
	dst := NewInterface(name, source.NewSpan(0, 1), &InterfaceBody{
		DiscriminatorKey: "type",
		SubTypes: map[string]*SubType{
			"Circle": {Name: name.Nested("Circle"), Discriminator: "Circle"},
		},
		SubTypeOrder: []string{"Circle"},
	})
	src := NewInterface(name, source.NewSpan(0, 1), &InterfaceBody{
		DiscriminatorKey: "type",
		SubTypes: map[string]*SubType{
			"Square": {Name: name.Nested("Square"), Discriminator: "Square"},
		},
		SubTypeOrder: []string{"Square"},
	})

	diags := diagnostics.New(source.New("t", nil))
	ok := MergeDecl(dst, src, diags)

	require.True(t, ok)
	assert.Len(t, dst.Interface.SubTypes, 2)
	assert.Contains(t, dst.Interface.SubTypeOrder, "Circle")
	assert.Contains(t, dst.Interface.SubTypeOrder, "Square")
}

func TestValidate_InterfaceSubTypeShadowsCommon(t *testing.T) {
	name := testName("Shape")
	body := &InterfaceBody{
		Common: []Field{{Ident: "name", Type: String(), Span: source.NewSpan(0, 1)}},
		SubTypes: map[string]*SubType{
			"Circle": {
				Name:   name.Nested("Circle"),
				Fields: []Field{{Ident: "name", Type: String(), Span: source.NewSpan(5, 6)}},
			},
		},
		SubTypeOrder: []string{"Circle"},
	}
	d := NewInterface(name, source.NewSpan(0, 1), body)

	diags := diagnostics.New(source.New("t", nil))
	ok := Validate(d, diags)

	assert.False(t, ok)
	require.True(t, diags.HasErrors())
}
