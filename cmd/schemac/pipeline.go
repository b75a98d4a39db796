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
package main

import (
	"log/slog"

	"github.com/kraklabs/schemac/internal/errors"
	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/manifest"
	"github.com/kraklabs/schemac/pkg/resolver"
	"github.com/kraklabs/schemac/pkg/trans"
)

// buildResult is one manifest root package's compiled output: the
// canonical declaration table plus every top-level declaration
// flavor.Translate needs, kept per root so a manifest naming several
// root packages keeps each root's table and OK status separate (the
// diagnostics of every root go into one shared bundle).
type buildResult struct {
	Root  ir.RequiredPackage
	Table *ir.Table
	Decls []*ir.Decl
	OK    bool
}

// loadManifest reads and validates path, turning every failure into
// the *errors.SchemaError category spec §6 assigns it.
func loadManifest(path string) *manifest.Manifest {
	m, err := manifest.Load(path)
	if err != nil {
		errors.FatalError(err, false)
	}
	return m
}

// buildAll resolves and translates every root package the manifest
// names, against one shared resolver built from its repository
// section. Each root is built independently — the Environment
// contract only takes a single root — and their diagnostics are
// merged into one bundle the caller renders once.
//
// The shared resolver is wrapped in resolver.Caching so that a
// manifest naming several root packages which share a dependency only
// resolves that dependency once; metrics may be nil (doc and check
// don't collect any).
func buildAll(m *manifest.Manifest, logger *slog.Logger, metrics *backend.Metrics) ([]buildResult, *diagnostics.Bundle, error) {
	base, err := resolver.NewResolver(m.ResolverOptions())
	if err != nil {
		return nil, nil, errors.NewConfigError(
			"Cannot build resolver",
			err.Error(),
			"Check the manifest's repository.url and paths entries.",
			err,
		)
	}
	cached := resolver.NewCaching(base)
	if metrics != nil {
		cached.OnHit = metrics.ResolverCacheHits.Inc
	}
	res := resolver.Resolver(cached)

	roots, err := m.RequirePackages()
	if err != nil {
		return nil, nil, err
	}
	if len(roots) == 0 {
		return nil, nil, errors.NewInputError(
			"Manifest names no packages",
			"The manifest's packages list is empty.",
			"Add at least one entry under packages: to compile.",
		)
	}

	bundle := diagnostics.NewBundle()
	var results []buildResult
	for _, root := range roots {
		env := trans.NewEnvironment(res, logger)
		result := env.Build(root)
		mergeBundle(bundle, result.Diagnostics)
		results = append(results, buildResult{Root: root, Table: result.Table, Decls: result.Decls, OK: result.OK})
	}

	return results, bundle, nil
}

// mergeBundle replays every source in src into dst, since Bundle.Add
// only takes one source's Diagnostics at a time and a multi-root
// manifest builds one Environment (and one Bundle) per root.
func mergeBundle(dst, src *diagnostics.Bundle) {
	if src == nil {
		return
	}
	for _, name := range src.Sources() {
		dst.Add(src.For(name))
	}
}
