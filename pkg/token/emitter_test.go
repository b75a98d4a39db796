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
package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmit_DeterministicAcrossRuns(t *testing.T) {
	build := func() *Tree {
		tr := &Tree{}
		tr.Push(
			Lit("public class Money {"),
			Nested(
				Line(),
				Lit("private "), Sym("java.math.BigDecimal", "BigDecimal"), Lit(" amount;"),
				Line(),
				Lit("private "), Sym("java.util.Currency", "Currency"), Lit(" currency;"),
			),
			Line(),
			Lit("}"),
		)
		return tr
	}

	out1 := Emit(build(), JavaLang{})
	out2 := Emit(build(), JavaLang{})
	assert.Equal(t, out1, out2)
}

func TestEmit_SingleImportPerSymbol(t *testing.T) {
	tr := &Tree{}
	tr.Push(
		Sym("java.util.List", "List"), Lit(" a;"), Line(),
		Sym("java.util.List", "List"), Lit(" b;"),
	)

	out := Emit(tr, JavaLang{})
	assert.Equal(t, 1, strings.Count(out, "import java.util.List;"))
}

func TestEmit_NestingIndentsOneLevelDeeper(t *testing.T) {
	tr := &Tree{}
	tr.Push(
		Lit("struct Foo {"),
		Nested(Line(), Lit("X int")),
		Line(),
		Lit("}"),
	)

	out := Emit(tr, GoLang{})
	assert.Equal(t, "struct Foo {\n\tX int\n}", out)
}

func TestEmit_ImportHeaderSortedAndDeduped(t *testing.T) {
	tr := &Tree{}
	tr.Push(Sym("pkg/b", "B"), Sym("pkg/a", "A"), Sym("pkg/b", "B2"))

	out := Emit(tr, GoLang{})
	assert.Contains(t, out, "import (\n\t\"pkg/a\"\n\t\"pkg/b\"\n)\n\n")
}
