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

// renderInterface renders a polymorphic `interface` declaration as a
// marker Go interface plus one concrete struct per sub-type, and a
// package-level UnmarshalXxx function that peeks the discriminator
// field before delegating to the matching concrete type — Go has no
// open-class JSON dispatch of its own, so the discriminator switch
// plays the role the Java serialization module's @JsonSubTypes
// annotation plays there (spec §4.7).
func renderInterface(f *jen.File, d *flavor.Decl[gof.Type, gof.Name]) error {
	marker := "is" + d.Name.Local

	st := docStatement(d.Doc, d.Annotations)
	st.Type().Id(d.Name.Local).Interface(jen.Id(marker).Params())
	f.Add(st)

	for _, sub := range d.SubTypes {
		var fields []jen.Code
		for _, fld := range d.Fields {
			fields = append(fields, structField(fld, d.FieldAnnotations[fld.Ident]))
		}
		for _, fld := range sub.Fields {
			fields = append(fields, structField(fld, nil))
		}

		subSt := docStatement(sub.Doc, nil)
		subSt.Type().Id(sub.Name.Local).Struct(fields...)
		f.Add(subSt)

		f.Add(jen.Func().Params(jen.Id("v").Op("*").Id(sub.Name.Local)).Id(marker).Params().Block())

		for _, nested := range sub.Nested {
			if err := renderDecl(f, nested); err != nil {
				return err
			}
		}
	}

	f.Add(unmarshalInterface(d, marker))
	return nil
}

func unmarshalInterface(d *flavor.Decl[gof.Type, gof.Name], marker string) jen.Code {
	key := d.DiscriminatorKey
	if key == "" {
		key = "type"
	}

	body := []jen.Code{
		jen.Var().Id("probe").Struct(
			jen.Id("Discriminator").String().Tag(map[string]string{"json": key}),
		),
		jen.If(
			jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("probe")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), jen.Err())),
	}

	var cases []jen.Code
	for _, sub := range d.SubTypes {
		cases = append(cases, jen.Case(jen.Lit(sub.Discriminator)).Block(
			jen.Var().Id("v").Id(sub.Name.Local),
			jen.If(
				jen.Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(jen.Id("data"), jen.Op("&").Id("v")),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())),
			jen.Return(jen.Op("&").Id("v"), jen.Nil()),
		))
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(
			jen.Lit(fmt.Sprintf("%s: unknown discriminator %%q", d.Name.Local)),
			jen.Id("probe").Dot("Discriminator"),
		)),
	))
	body = append(body, jen.Switch(jen.Id("probe").Dot("Discriminator")).Block(cases...))

	return jen.Func().
		Id("Unmarshal" + d.Name.Local).
		Params(jen.Id("data").Index().Byte()).
		Params(jen.Id(d.Name.Local), jen.Error()).
		Block(body...)
}
