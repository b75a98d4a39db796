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

import "github.com/kraklabs/schemac/pkg/source"

// Field is one member of a Type, Tuple, or interface SubType. Ident is
// unique within its container (invariant 2); Alias is the optional
// wire-name override from `as "WIRE"` surface syntax.
type Field struct {
	Ident    string
	Optional bool
	Type     Type
	Doc      []string
	Span     source.Span
	Alias    string
}

// WireName returns Alias if set, otherwise Ident — the name used when
// encoding this field on the wire.
func (f Field) WireName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Ident
}

// CodeBlock is a verbatim code fragment attached to a Type, Tuple, or
// Enum body. Language is copied from the parsed block, whose parser
// sets no language tag. Code blocks are carried through translation
// (flavor.Decl.Code) but no backend writes them to generated output,
// and none filters them by Language.
type CodeBlock struct {
	Language string
	Lines    []string
	Span     source.Span
}
