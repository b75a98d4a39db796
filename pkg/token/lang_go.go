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
	"fmt"
	"strconv"
	"strings"
)

// GoLang formats Go source fragments. No backend or listener uses it:
// the Go package compiler renders full files through jennifer
// (pkg/backend/gobackend), not through this package.
type GoLang struct{}

func (GoLang) Indent() string { return "\t" }

func (GoLang) ImportHeader(modules []string) string {
	if len(modules) == 0 {
		return ""
	}
	if len(modules) == 1 {
		return fmt.Sprintf("import %q\n\n", modules[0])
	}
	var b strings.Builder
	b.WriteString("import (\n")
	for _, m := range modules {
		fmt.Fprintf(&b, "\t%q\n", m)
	}
	b.WriteString(")\n\n")
	return b.String()
}

func (GoLang) QuoteEscape(s string) string {
	return strconv.Quote(s)
}
