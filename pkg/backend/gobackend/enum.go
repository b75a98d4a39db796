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
	"github.com/dave/jennifer/jen"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/gof"
)

// renderEnum renders an `enum` declaration as a named int type plus an
// iota-incrementing constant per variant, regardless of the schema's
// declared repr or any explicit variant values — Go has no native
// string-backed enum, so every target enum collapses to the same
// ordinal int shape here.
func renderEnum(f *jen.File, d *flavor.Decl[gof.Type, gof.Name]) {
	st := docStatement(d.Doc, d.Annotations)
	st.Type().Id(d.Name.Local).Int()
	f.Add(st)

	var defs []jen.Code
	for i, v := range d.Variants {
		def := docStatement(v.Doc, nil)
		def.Id(d.Name.Local + exported(v.Ident)).Id(d.Name.Local)
		if i == 0 {
			def.Op("=").Iota()
		}
		defs = append(defs, def)
	}
	f.Add(jen.Const().Defs(defs...))
}
