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

import "strings"

// Lang is the per-language formatting a Tree needs to become source
// text: how literals quote special characters, how an import header
// is written, and how much a nested block indents.
type Lang interface {
	// Indent is the whitespace prefix for one nesting level.
	Indent() string
	// ImportHeader renders the sorted, deduplicated import modules
	// Symbols returned as the file's leading import block. Returns ""
	// if modules is empty.
	ImportHeader(modules []string) string
	// QuoteEscape escapes a string literal's contents for this
	// language's string syntax. Emit does not call it, and neither
	// does any other code in this module.
	QuoteEscape(s string) string
}

// joinLines is a small shared helper: non-empty lines joined with "\n"
// and a trailing newline, or "" if there are none.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
