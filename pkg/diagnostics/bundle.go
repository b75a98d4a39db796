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
package diagnostics

import (
	"fmt"
	"sort"
)

// Bundle aggregates per-source Diagnostics across a whole compilation,
// the Go analogue of reproto's SourceDiagnostics. The package processor
// (spec C9) accumulates one Bundle for an entire build and the CLI
// renders it once at the end.
type Bundle struct {
	bySource map[string]*Diagnostics
	order    []string
}

// NewBundle creates an empty, ready-to-use Bundle.
func NewBundle() *Bundle {
	return &Bundle{bySource: make(map[string]*Diagnostics)}
}

// Add merges d into the bundle under d.Source.Name. Calling Add twice
// for the same source name appends to the existing entry rather than
// overwriting it, so incremental workspace reloads can add diagnostics
// for a file in more than one pass (e.g. parse errors, then later
// resolution errors).
func (b *Bundle) Add(d *Diagnostics) {
	if d == nil {
		return
	}
	name := d.Source.Name
	existing, ok := b.bySource[name]
	if !ok {
		b.bySource[name] = d
		b.order = append(b.order, name)
		return
	}
	existing.Items = append(existing.Items, d.Items...)
}

// HasErrors reports whether any source in the bundle has an
// Error-severity diagnostic.
func (b *Bundle) HasErrors() bool {
	for _, name := range b.order {
		if b.bySource[name].HasErrors() {
			return true
		}
	}
	return false
}

// Sources returns source names in the order they were first added.
func (b *Bundle) Sources() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// For returns the Diagnostics for a given source name, or nil if no
// diagnostics were ever recorded against it.
func (b *Bundle) For(sourceName string) *Diagnostics {
	return b.bySource[sourceName]
}

// ErrorCount returns the total number of Error-severity diagnostics
// across every source, used by the CLI to print a final "N errors"
// summary line and to pick the process exit code (spec §6).
func (b *Bundle) ErrorCount() int {
	n := 0
	for _, name := range b.order {
		n += len(b.bySource[name].Errors())
	}
	return n
}

// Render flattens the bundle into human-readable lines, one per
// diagnostic, sorted by source name then span start. Symbol
// diagnostics are omitted — they exist to feed the workspace index,
// not the CLI's terminal output.
func (b *Bundle) Render() []string {
	names := append([]string(nil), b.order...)
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		d := b.bySource[name]
		items := append([]Diagnostic(nil), d.Items...)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Span.Start < items[j].Span.Start
		})
		for _, item := range items {
			if item.Severity == SeveritySymbol {
				continue
			}
			level := "error"
			if item.Severity == SeverityInfo {
				level = "info"
			}
			lines = append(lines, fmt.Sprintf("%s: %s:%d: %s", level, name, item.Span.Start, item.Message))
		}
	}
	return lines
}
