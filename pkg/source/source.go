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
// Package source holds byte-accurate source buffers for the schema
// parser and its diagnostics. A Source is a named, immutable view of
// one input file; Span (see span.go) addresses a byte range within it.
package source

import "fmt"

// Source is one parsed translation unit's raw bytes plus a display name.
// Sources are never mutated after construction; the parser and IR hold
// them by value and copy is cheap (a string header and a slice header).
type Source struct {
	// Name is how this source is presented in diagnostics, typically
	// a file path or "<package>/<file>" for package-resolved sources.
	Name string
	// Bytes is the raw file content.
	Bytes []byte
}

// New wraps raw bytes with a display name.
func New(name string, data []byte) Source {
	return Source{Name: name, Bytes: data}
}

// String returns the source's display name.
func (s Source) String() string {
	return s.Name
}

// Slice returns the bytes in [start,end). It panics if the range is
// out of bounds, matching the parser's invariant that spans are always
// constructed from offsets the lexer actually visited.
func (s Source) Slice(start, end int) []byte {
	if start < 0 || end > len(s.Bytes) || start > end {
		panic(fmt.Sprintf("source: slice [%d,%d) out of bounds for %q (len %d)", start, end, s.Name, len(s.Bytes)))
	}
	return s.Bytes[start:end]
}

// Text is a convenience over Slice that returns a string.
func (s Source) Text(start, end int) string {
	return string(s.Slice(start, end))
}

// Len returns the number of bytes in the source.
func (s Source) Len() int {
	return len(s.Bytes)
}
