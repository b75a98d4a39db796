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

// JavaLang formats Java source fragments for the Java package
// compiler (pkg/backend/javabackend).
type JavaLang struct{}

func (JavaLang) Indent() string { return "    " }

func (JavaLang) ImportHeader(modules []string) string {
	if len(modules) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range modules {
		fmt.Fprintf(&b, "import %s;\n", m)
	}
	b.WriteString("\n")
	return b.String()
}

func (JavaLang) QuoteEscape(s string) string {
	return strconv.Quote(s)
}
