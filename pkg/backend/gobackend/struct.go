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
package gobackend

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/gof"
)

// renderStruct renders a `type` declaration as an ordinary exported Go
// struct with a json tag per field, the idiomatic shape
// encoding/json's reflection-based (Un)marshal already round-trips
// without any generated methods.
func renderStruct(f *jen.File, d *flavor.Decl[gof.Type, gof.Name]) {
	var fields []jen.Code
	for _, fld := range d.Fields {
		fields = append(fields, structField(fld, d.FieldAnnotations[fld.Ident]))
	}
	st := docStatement(d.Doc, d.Annotations)
	st.Type().Id(d.Name.Local).Struct(fields...)
	f.Add(st)
}

// structField renders one exported field plus its json tag, tagging
// optional fields with omitempty so an absent value round-trips as
// the zero value rather than an explicit null/empty entry.
func structField(fld flavor.Field[gof.Type], annotations []string) jen.Code {
	st := docStatement(fld.Doc, annotations)
	jsonTag := fld.WireName
	if fld.Optional {
		jsonTag += ",omitempty"
	}
	st.Id(exported(fld.Ident)).Add(goType(fld.Type)).Tag(map[string]string{"json": jsonTag})
	return st
}

// renderTuple renders a `tuple` declaration as a struct whose wire
// form is a positional JSON array rather than an object, matching the
// same shape the Java serialization module builds by hand for its own
// target (spec §4.7): MarshalJSON writes every field in declared
// order; UnmarshalJSON checks the array length before decoding each
// element back into its field.
func renderTuple(f *jen.File, d *flavor.Decl[gof.Type, gof.Name]) {
	var fields []jen.Code
	for _, fld := range d.Fields {
		fields = append(fields, structField(fld, d.FieldAnnotations[fld.Ident]))
	}
	st := docStatement(d.Doc, d.Annotations)
	st.Type().Id(d.Name.Local).Struct(fields...)
	f.Add(st)

	f.Add(marshalTuple(d))
	f.Add(unmarshalTuple(d))
}

func marshalTuple(d *flavor.Decl[gof.Type, gof.Name]) jen.Code {
	var values []jen.Code
	for _, fld := range d.Fields {
		values = append(values, jen.Id("v").Dot(exported(fld.Ident)))
	}
	return jen.Func().
		Params(jen.Id("v").Id(d.Name.Local)).
		Id("MarshalJSON").
		Params().
		Params(jen.Index().Byte(), jen.Error()).
		Block(
			jen.Return(jen.Qual("encoding/json", "Marshal").Call(
				jen.Index().Interface().Values(values...),
			)),
		)
}

func unmarshalTuple(d *flavor.Decl[gof.Type, gof.Name]) jen.Code {
	n := len(d.Fields)
	body := []jen.Code{
		jen.Var().Id("raw").Index().Qual("encoding/json", "RawMessage"),
		jen.If(jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("raw")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.If(jen.Len(jen.Id("raw")).Op("!=").Lit(n)).Block(
			jen.Return(jen.Qual("fmt", "Errorf").Call(
				jen.Lit(fmt.Sprintf("%s: expected %d elements, got %%d", d.Name.Local, n)),
				jen.Len(jen.Id("raw")),
			)),
		),
	}
	for i, fld := range d.Fields {
		body = append(body, jen.If(
			jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("raw").Index(jen.Lit(i)), jen.Op("&").Id("v").Dot(exported(fld.Ident))),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Err())))
	}
	body = append(body, jen.Return(jen.Nil()))

	return jen.Func().
		Params(jen.Id("v").Op("*").Id(d.Name.Local)).
		Id("UnmarshalJSON").
		Params(jen.Id("data").Index().Byte()).
		Params(jen.Error()).
		Block(body...)
}
