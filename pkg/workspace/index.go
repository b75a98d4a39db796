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
package workspace

import (
	"sort"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/source"
)

// JumpKind tags which shape of go-to-definition target a Jump carries.
type JumpKind int

const (
	// JumpAbsolute points at a concrete declaration path, e.g. a `::`
	// type reference or a `prefix::Name` reference.
	JumpAbsolute JumpKind = iota
	// JumpPackage points at the package a `use` alias binds.
	JumpPackage
	// JumpPrefix points at the `use` statement itself, for an alias
	// token with no further path segment under the cursor.
	JumpPrefix
)

// Jump is the go-to-definition answer for one source range.
type Jump struct {
	Kind    JumpKind
	Prefix  string   // the alias in play, for Package and Prefix jumps
	Package string   // dot-joined target package, for Absolute and Package jumps
	Path    []string // declaration path within Package, for Absolute jumps
}

// CompletionKind tags which shape of completion candidates a
// Completion carries.
type CompletionKind int

const (
	// CompletionAbsolute offers path completion under a known prefix.
	CompletionAbsolute CompletionKind = iota
	// CompletionPackage offers the packages visible under a prefix.
	CompletionPackage
	// CompletionAny offers no prefix-scoped filtering — every name in
	// scope is a candidate, for an empty or unrecognized prefix token.
	CompletionAny
)

// Completion is the candidate set for one source range's completion
// request, computed by inspecting the token under the cursor.
type Completion struct {
	Kind       CompletionKind
	Prefix     string
	Path       []string
	Suffix     string
	Candidates []string
}

// Rename is the rename target for one alias occurrence.
type Rename struct {
	Prefix string
}

// Symbol is one outline entry: a declaration's name and its leading
// doc comment, joined into one line for a symbol list.
type Symbol struct {
	Name    string
	Comment string
	Span    source.Span
}

// rangeEntry pairs a span with its query value inside a RangeIndex.
type rangeEntry[V any] struct {
	span  source.Span
	value V
}

// RangeIndex answers "what value is associated with the range
// containing this position" in O(log n), per spec's workspace query
// contract. Entries are assumed non-overlapping — every jump,
// completion, and rename range here covers exactly one identifier
// token in the source, so the floor search below never needs to back
// up past the range it lands on.
type RangeIndex[V any] struct {
	entries []rangeEntry[V]
	sorted  bool
}

// NewRangeIndex returns an empty index.
func NewRangeIndex[V any]() *RangeIndex[V] {
	return &RangeIndex[V]{}
}

// Add records span -> value. The index is re-sorted lazily on the next
// Lookup, so a caller building an index from a file walk can call Add
// in any order.
func (idx *RangeIndex[V]) Add(span source.Span, value V) {
	idx.entries = append(idx.entries, rangeEntry[V]{span: span, value: value})
	idx.sorted = false
}

func (idx *RangeIndex[V]) ensureSorted() {
	if idx.sorted {
		return
	}
	sort.Slice(idx.entries, func(i, j int) bool {
		return idx.entries[i].span.Start < idx.entries[j].span.Start
	})
	idx.sorted = true
}

// Lookup finds the largest range whose start is at or before pos and
// whose Contains(pos) holds, via binary search over range starts.
func (idx *RangeIndex[V]) Lookup(pos int) (source.Span, V, bool) {
	idx.ensureSorted()

	lo, hi, best := 0, len(idx.entries)-1, -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if idx.entries[mid].span.Start <= pos {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	var zero V
	if best < 0 || !idx.entries[best].span.Contains(pos) {
		return source.Span{}, zero, false
	}
	return idx.entries[best].span, idx.entries[best].value, true
}

// Len reports how many ranges are indexed.
func (idx *RangeIndex[V]) Len() int { return len(idx.entries) }

// FileIndex is everything the workspace records for one parsed file:
// jump, completion, and rename ranges, alias occurrence/renameability
// tracking, and the outline symbol list.
type FileIndex struct {
	Jumps       *RangeIndex[Jump]
	Completions *RangeIndex[Completion]
	Renames     *RangeIndex[Rename]

	// PrefixRanges lists every occurrence of an alias, for a rename
	// that must touch every use site at once.
	PrefixRanges map[string][]source.Span
	// ImplicitPrefixes marks aliases derived from the package path
	// itself (no explicit `as ALIAS`), which renaming cannot safely
	// touch without also rewriting the import.
	ImplicitPrefixes map[string]bool

	Symbols      []Symbol
	SymbolByPath map[string]source.Span

	// Sightings is every declaration's SeveritySymbol diagnostic, one
	// per decl in this file — the same channel spec §7's diagnostics
	// contract uses for everything else, so a future "find all
	// declared symbols across a workspace" query can aggregate it
	// across files without walking ir.File trees a second time.
	Sightings *diagnostics.Diagnostics
}

// newFileIndex returns an empty FileIndex over src ready for population.
func newFileIndex(src source.Source) *FileIndex {
	return &FileIndex{
		Jumps:            NewRangeIndex[Jump](),
		Completions:      NewRangeIndex[Completion](),
		Renames:          NewRangeIndex[Rename](),
		PrefixRanges:     make(map[string][]source.Span),
		ImplicitPrefixes: make(map[string]bool),
		SymbolByPath:     make(map[string]source.Span),
		Sightings:        diagnostics.New(src),
	}
}
