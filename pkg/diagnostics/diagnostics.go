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
// Package diagnostics implements the compiler's single user-visible
// error channel (spec §7): typed, span-carrying errors, informational
// notes, and symbol sightings, collected per source and then
// aggregated across a whole compilation by Bundle.
package diagnostics

import (
	"fmt"

	"github.com/kraklabs/schemac/pkg/source"
)

// SymbolKind tags what kind of declaration a Symbol diagnostic names.
type SymbolKind int

const (
	SymbolType SymbolKind = iota
	SymbolInterface
	SymbolTuple
	SymbolEnum
	SymbolService
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolType:
		return "type"
	case SymbolInterface:
		return "interface"
	case SymbolTuple:
		return "tuple"
	case SymbolEnum:
		return "enum"
	case SymbolService:
		return "service"
	default:
		return "unknown"
	}
}

// Severity classifies a Diagnostic for rendering and exit-code
// purposes; only Error affects Diagnostics.HasErrors.
type Severity int

const (
	SeverityError Severity = iota
	SeverityInfo
	SeveritySymbol
)

// Diagnostic is one item reported against a single source. Name, not
// Message, carries a resolved symbol's qualified name for Symbol
// diagnostics; Message is empty in that case.
type Diagnostic struct {
	Severity Severity
	Span     source.Span
	Message  string
	Kind     SymbolKind // meaningful only when Severity == SeveritySymbol
	Name     string     // meaningful only when Severity == SeveritySymbol
}

// Diagnostics accumulates diagnostics against exactly one Source, the
// unit the parser and the per-file IR conversion step work against.
type Diagnostics struct {
	Source source.Source
	Items  []Diagnostic
}

// New creates an empty diagnostics collection for src.
func New(src source.Source) *Diagnostics {
	return &Diagnostics{Source: src}
}

// Errorf reports a span-carrying error, matching reproto's
// Diagnostics::err.
func (d *Diagnostics) Errorf(span source.Span, format string, args ...any) {
	d.Items = append(d.Items, Diagnostic{
		Severity: SeverityError,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof reports a span-carrying informational note.
func (d *Diagnostics) Infof(span source.Span, format string, args ...any) {
	d.Items = append(d.Items, Diagnostic{
		Severity: SeverityInfo,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Symbol records that a declaration of the given kind and qualified
// name was encountered at span, feeding the workspace's outline and
// the doc generator's symbol table.
func (d *Diagnostics) Symbol(kind SymbolKind, span source.Span, name string) {
	d.Items = append(d.Items, Diagnostic{
		Severity: SeveritySymbol,
		Span:     span,
		Kind:     kind,
		Name:     name,
	})
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.Items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the Error-severity diagnostics.
func (d *Diagnostics) Errors() []Diagnostic {
	var out []Diagnostic
	for _, item := range d.Items {
		if item.Severity == SeverityError {
			out = append(out, item)
		}
	}
	return out
}
