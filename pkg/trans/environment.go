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

// Package trans is the Environment/Translation driver (spec C6): it
// resolves a root package via C5, parses and lowers every file it and
// its transitive `use` statements pull in, merges same-named
// declarations across files, and resolves every name reference,
// producing one flavor-agnostic ir.Table a flavor.Translate call can
// walk for any target.
//
// The step-by-step orchestration — resolve, parse, merge, validate,
// each step logged at its own "component.step" key before the next
// begins — follows the shape of the teacher's ingestion pipeline
// (pkg/ingestion.LocalPipeline.Run), generalized from a fixed
// load/parse/embed/write sequence to a recursive import graph walk.
package trans

import (
	"log/slog"

	"github.com/kraklabs/schemac/pkg/ast"
	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/resolver"
	"github.com/kraklabs/schemac/pkg/source"
)

// Environment accumulates every declaration reachable from a root
// package import, across however many files and transitive packages
// that requires.
type Environment struct {
	resolver resolver.Resolver
	logger   *slog.Logger

	table   *ir.Table
	files   []*ir.File
	order   []*ir.Decl
	loading map[string]bool
	loaded  map[string]ir.VersionedPackage

	diags *diagnostics.Bundle
}

// Result is everything Build produces: the full cross-file declaration
// table, every loaded file, the top-level declarations in canonical
// first-insertion order (one entry per merged identity, safe to feed
// straight to GroupByPackage), and the accumulated diagnostics.
type Result struct {
	Table       *ir.Table
	Files       []*ir.File
	Decls       []*ir.Decl
	Diagnostics *diagnostics.Bundle
	OK          bool
}

// NewEnvironment builds an Environment over r. A nil logger uses
// slog.Default.
func NewEnvironment(r resolver.Resolver, logger *slog.Logger) *Environment {
	if logger == nil {
		logger = slog.Default()
	}
	return &Environment{
		resolver: r,
		logger:   logger,
		table:    ir.NewTable(),
		loading:  make(map[string]bool),
		loaded:   make(map[string]ir.VersionedPackage),
		diags:    diagnostics.NewBundle(),
	}
}

// Build resolves root and every package it transitively imports,
// merges and validates the result, and returns the full declaration
// table plus every loaded file, each file listed after the files of
// the packages it imports (so the root's file comes last). Result.OK
// is false if any step produced a diagnostic error.
func (e *Environment) Build(root ir.RequiredPackage) *Result {
	e.logger.Info("trans.build.start", "package", root.Package.String())

	ok := true
	if _, imported := e.importPackage(root, "<root>"); !imported {
		ok = false
	}

	e.logger.Info("trans.build.resolve_names", "files", len(e.files))
	for _, f := range e.files {
		diags := diagnostics.New(f.Source)
		_, fileOK := ir.NewResolver(e.table).ResolveFile(f, diags)
		e.diags.Add(diags)
		if !fileOK {
			ok = false
		}
	}

	e.logger.Info("trans.build.validate", "decls", e.table.Len())
	for _, f := range e.files {
		diags := diagnostics.New(f.Source)
		for _, d := range f.Decls {
			if !ir.Validate(d, diags) {
				ok = false
			}
		}
		e.diags.Add(diags)
	}

	if e.diags.HasErrors() {
		ok = false
	}

	e.logger.Info("trans.build.complete", "ok", ok, "files", len(e.files), "decls", e.table.Len())
	return &Result{
		Table:       e.table,
		Files:       e.files,
		Decls:       e.order,
		Diagnostics: e.diags,
		OK:          ok,
	}
}

// importPackage resolves required, recursively importing every `use`
// its winning file declares, and merges its declarations into the
// shared table. forSource names the importing file for diagnostics
// when resolution itself fails (there is no file yet to anchor the
// diagnostic on).
func (e *Environment) importPackage(required ir.RequiredPackage, forSource string) (*ir.VersionedPackage, bool) {
	matches, err := e.resolver.Resolve(required)
	if err != nil || len(matches) == 0 {
		diags := diagnostics.New(source.New(forSource, nil))
		diags.Errorf(source.Span{}, "cannot resolve package %s", required)
		e.diags.Add(diags)
		return nil, false
	}

	chosen := matches[0] // Resolve returns newest first
	vp := ir.VersionedPackage{Package: required.Package, Version: &chosen.Version}
	key := vp.String()

	if already, ok := e.loaded[key]; ok {
		return &already, true
	}
	if e.loading[key] {
		diags := diagnostics.New(source.New(forSource, nil))
		diags.Errorf(source.Span{}, "import cycle detected at package %s", vp)
		e.diags.Add(diags)
		return nil, false
	}

	e.loading[key] = true
	defer delete(e.loading, key)

	e.logger.Info("trans.import", "package", vp.String(), "source", chosen.Source.Name)

	diags := diagnostics.New(chosen.Source)
	astFile := ast.Parse(chosen.Source, diags)
	irFile := toModel(astFile, chosen.Source, vp)

	ok := true
	for i := range irFile.Uses {
		resolved, imported := e.importPackage(irFile.Uses[i].Required, chosen.Source.Name)
		if !imported {
			ok = false
			continue
		}
		irFile.Uses[i].Resolved = resolved
	}

	for _, d := range irFile.Decls {
		e.mergeInto(d, diags)
	}

	e.files = append(e.files, irFile)
	e.loaded[key] = vp
	e.diags.Add(diags)

	if diags.HasErrors() {
		ok = false
	}
	return &vp, ok
}

// mergeInto inserts d into the shared table, merging it into an
// existing declaration of the same Name if one is already present
// (spec's split-across-files merge discipline), else inserting it
// fresh. Only a fresh insert extends e.order: a decl merged into an
// earlier one is folded into that earlier object and must not appear
// a second time when callers later walk top-level declarations.
func (e *Environment) mergeInto(d *ir.Decl, diags *diagnostics.Diagnostics) {
	if existing, found := e.table.Lookup(d.Name); found {
		ir.MergeDecl(existing, d, diags)
		return
	}
	e.table.Insert(d)
	e.order = append(e.order, d)
}
