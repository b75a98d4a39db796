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
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/kraklabs/schemac/pkg/flavor/gof"
)

// exported capitalizes ident's first rune so encoding/json (and any
// caller outside the package) can see the field, matching the
// contract that generated types round-trip through the standard
// library's reflection-based marshaling.
func exported(ident string) string {
	if ident == "" {
		return ident
	}
	r := []rune(ident)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// goType renders a gof.Type as a jennifer type expression. Bare and
// array-of-named references route through jen.Qual so the import
// block reflects real usage; anything more deeply nested (maps keyed
// or valued by a foreign name) falls back to pasting the flavor's own
// rendered Go syntax verbatim, since gof.Type only carries the import
// for the outermost foreign reference it wraps.
func goType(t gof.Type) jen.Code {
	code := t.Code
	pointer := strings.HasPrefix(code, "*")
	if pointer {
		code = strings.TrimPrefix(code, "*")
	}

	var rendered jen.Code
	switch {
	case t.Import == nil:
		rendered = jen.Id(code)
	case code == t.Import.Alias+"."+strings.TrimPrefix(code, t.Import.Alias+"."):
		rendered = jen.Qual(t.Import.Path, strings.TrimPrefix(code, t.Import.Alias+"."))
	case strings.HasPrefix(code, "[]"+t.Import.Alias+"."):
		inner := strings.TrimPrefix(code, "[]"+t.Import.Alias+".")
		rendered = jen.Index().Qual(t.Import.Path, inner)
	default:
		rendered = jen.Id(code)
	}

	if pointer {
		return jen.Op("*").Add(rendered)
	}
	return rendered
}
