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
	"strings"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/resolver"
)

// buildFileIndex walks one parsed file's uses and declarations and
// populates a FileIndex: one jump/completion/rename range per `use`
// alias occurrence, one jump/completion range per Name-kind type
// reference (plus a rename range when the reference carries a
// prefix), and the outline
// symbol list. Go-to-definition resolves at the granularity the IR
// actually carries spans for — a Name reference's own Span — since
// field and declaration spans are the finest-grained position
// information the parser records.
func buildFileIndex(f *ir.File, table *ir.Table, res resolver.Resolver) *FileIndex {
	idx := newFileIndex(f.Source)

	for _, u := range f.Uses {
		indexUse(idx, u, res)
	}
	for _, d := range f.Decls {
		indexDecl(idx, d, table)
	}

	return idx
}

func indexUse(idx *FileIndex, u ir.Use, res resolver.Resolver) {
	alias := u.EffectiveAlias()
	pkg := u.Required.Package.String()

	idx.PrefixRanges[alias] = append(idx.PrefixRanges[alias], u.Span)
	if u.Alias == "" {
		idx.ImplicitPrefixes[alias] = true
	}

	idx.Jumps.Add(u.Span, Jump{Kind: JumpPackage, Prefix: alias, Package: pkg})
	idx.Renames.Add(u.Span, Rename{Prefix: alias})

	candidates := packageCandidates(res, u.Required.Package)
	idx.Completions.Add(u.Span, Completion{Kind: CompletionPackage, Prefix: alias, Candidates: candidates})
}

func indexDecl(idx *FileIndex, d *ir.Decl, table *ir.Table) {
	idx.Symbols = append(idx.Symbols, Symbol{
		Name:    d.Name.String(),
		Comment: strings.Join(d.Doc, " "),
		Span:    d.Span,
	})
	idx.SymbolByPath[d.Name.String()] = d.Span
	idx.Sightings.Symbol(symbolKind(d.Kind), d.Span, d.Name.String())

	var fields []ir.Field
	var nested []*ir.Decl
	switch d.Kind {
	case ir.DeclTypeKind:
		fields, nested = d.Type.Fields, d.Type.Nested
	case ir.DeclTupleKind:
		fields, nested = d.Tuple.Fields, d.Tuple.Nested
	case ir.DeclInterfaceKind:
		fields = d.Interface.Common
		for _, key := range d.Interface.SubTypeOrder {
			st := d.Interface.SubTypes[key]
			indexFields(idx, st.Fields, table)
			nested = append(nested, st.Nested...)
		}
	case ir.DeclServiceKind:
		for _, e := range d.Service.Endpoints {
			for _, ch := range e.Request {
				indexType(idx, ch.Type, table)
			}
			if e.Response != nil {
				indexType(idx, e.Response.Type, table)
			}
		}
	}

	indexFields(idx, fields, table)
	for _, n := range nested {
		indexDecl(idx, n, table)
	}
}

func indexFields(idx *FileIndex, fields []ir.Field, table *ir.Table) {
	for _, f := range fields {
		indexType(idx, f.Type, table)
	}
}

// indexType walks a type tree looking for Name references, the only
// shape that carries a jumpable/renamable span of its own.
func indexType(idx *FileIndex, t ir.Type, table *ir.Table) {
	switch t.Kind {
	case ir.KindArray:
		indexType(idx, *t.Inner, table)
	case ir.KindMap:
		indexType(idx, *t.Key, table)
		indexType(idx, *t.Value, table)
	case ir.KindName:
		indexNameRef(idx, *t.Name, table)
	}
}

func indexNameRef(idx *FileIndex, name ir.Name, table *ir.Table) {
	if name.Prefix != "" {
		idx.PrefixRanges[name.Prefix] = append(idx.PrefixRanges[name.Prefix], name.Span)
		idx.Renames.Add(name.Span, Rename{Prefix: name.Prefix})
	}

	if decl, ok := table.Lookup(name); ok {
		idx.Jumps.Add(name.Span, Jump{
			Kind:    JumpAbsolute,
			Prefix:  name.Prefix,
			Package: decl.Name.Package.String(),
			Path:    decl.Name.Path,
		})
	} else {
		// Unresolved reference (a stale edit, or a forward reference
		// the table hasn't merged yet): still worth a Package jump so
		// go-to-definition can land on the import if nothing more
		// precise is available.
		idx.Jumps.Add(name.Span, Jump{Kind: JumpPackage, Prefix: name.Prefix, Package: name.Package.String()})
	}

	kind := CompletionAny
	if name.Prefix != "" {
		kind = CompletionAbsolute
	}
	idx.Completions.Add(name.Span, Completion{Kind: kind, Prefix: name.Prefix, Path: name.Path})
}

func packageCandidates(res resolver.Resolver, prefix ir.Package) []string {
	if res == nil {
		return nil
	}
	pkgs, err := res.ResolveByPrefix(prefix)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.String())
	}
	return out
}

func symbolKind(k ir.DeclKind) diagnostics.SymbolKind {
	switch k {
	case ir.DeclTypeKind:
		return diagnostics.SymbolType
	case ir.DeclTupleKind:
		return diagnostics.SymbolTuple
	case ir.DeclInterfaceKind:
		return diagnostics.SymbolInterface
	case ir.DeclEnumKind:
		return diagnostics.SymbolEnum
	case ir.DeclServiceKind:
		return diagnostics.SymbolService
	default:
		return diagnostics.SymbolType
	}
}
