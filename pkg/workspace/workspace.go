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

// Package workspace is the incremental façade over the parser,
// resolver, and translation driver (C3-C6) an editor integration talks
// to, keyed by file URL rather than by compile invocation. It owns
// three maps — files loaded from disk, files open in an editor buffer,
// and a package-to-URL index — and answers go-to-definition,
// completion, rename, and outline queries against per-file range
// indexes (index.go).
//
// The workspace is single-threaded by contract, matching spec §5's
// concurrency model: there is no internal locking, and a caller
// driving it from multiple goroutines must serialize its own calls.
package workspace

import (
	"fmt"
	"log/slog"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/resolver"
	"github.com/kraklabs/schemac/pkg/source"
	"github.com/kraklabs/schemac/pkg/trans"
)

// Workspace is an incremental façade over one Environment, indexed by
// file URL for editor queries.
type Workspace struct {
	resolver resolver.Resolver
	logger   *slog.Logger

	table *ir.Table

	// loaded holds files imported from disk by the last Reload.
	loaded map[string]*ir.File
	// edited holds files whose source comes from an open editor
	// buffer rather than disk, overriding the loaded copy for the
	// same URL until the buffer closes.
	edited map[string]*ir.File

	// packageIndex maps a package's dotted path to every URL
	// currently providing it (normally one, briefly two mid-rename).
	packageIndex map[string][]string

	indexes map[string]*FileIndex

	diags *diagnostics.Bundle
}

// New builds an empty Workspace over r. A nil logger uses slog.Default.
func New(r resolver.Resolver, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{
		resolver:     r,
		logger:       logger,
		table:        ir.NewTable(),
		loaded:       make(map[string]*ir.File),
		edited:       make(map[string]*ir.File),
		packageIndex: make(map[string][]string),
		indexes:      make(map[string]*FileIndex),
		diags:        diagnostics.NewBundle(),
	}
}

// Diagnostics returns the bundle accumulated by the last Reload.
func (w *Workspace) Diagnostics() *diagnostics.Bundle { return w.diags }

// Reload performs a full rebuild: it re-resolves and re-translates
// root from scratch via a fresh Environment, replacing every loaded
// file, the shared table, and the package index. Open edited buffers
// survive a Reload — the loop below re-applies each one over the fresh
// table, matching "edit applies per-file" without discarding in-flight
// editor state on every reload.
func (w *Workspace) Reload(root ir.RequiredPackage) error {
	env := trans.NewEnvironment(w.resolver, w.logger)
	result := env.Build(root)

	w.table = result.Table
	w.diags = result.Diagnostics
	w.loaded = make(map[string]*ir.File, len(result.Files))
	w.packageIndex = make(map[string][]string, len(result.Files))
	w.indexes = make(map[string]*FileIndex, len(result.Files))

	for _, f := range result.Files {
		url := f.Source.Name
		w.loaded[url] = f
		pkg := f.Package.String()
		w.packageIndex[pkg] = append(w.packageIndex[pkg], url)
		w.indexes[url] = buildFileIndex(f, w.table, w.resolver)
	}

	edited := w.edited
	w.edited = make(map[string]*ir.File, len(edited))
	for url, f := range edited {
		if err := w.Edit(url, f.Source.Bytes); err != nil {
			w.logger.Warn("workspace.reload.edit_replay_failed", "url", url, "error", err)
		}
	}

	if !result.OK {
		return fmt.Errorf("workspace: reload of %s completed with diagnostics", root.Package.String())
	}
	return nil
}

// Edit replaces url's source with an editor buffer's content and
// rebuilds that single file's index against the workspace's current
// table. Name references the edit introduces that the table does not
// yet know about simply fail to resolve until the next Reload — this
// is the per-file half of spec §4.8's "reload is a full rebuild; edit
// applies per-file" split.
func (w *Workspace) Edit(url string, content []byte) error {
	own := w.ownerPackage(url)
	src := source.New(url, content)

	diags := diagnostics.New(src)
	f := trans.ParseFile(src, own, diags)

	fileDiags := diagnostics.New(src)
	ir.NewResolver(w.table).ResolveFile(f, fileDiags)
	diags.Add(fileDiags.Diagnostics())

	w.edited[url] = f
	w.indexes[url] = buildFileIndex(f, w.table, w.resolver)

	if diags.HasErrors() {
		return fmt.Errorf("workspace: edit of %s has %d diagnostic error(s)", url, diags.ErrorCount())
	}
	return nil
}

// Close discards an editor buffer for url, reverting queries to the
// last loaded-from-disk copy if one exists.
func (w *Workspace) Close(url string) {
	delete(w.edited, url)
	if f, ok := w.loaded[url]; ok {
		w.indexes[url] = buildFileIndex(f, w.table, w.resolver)
		return
	}
	delete(w.indexes, url)
}

// ownerPackage returns the package the file at url last belonged to
// (from an edited or loaded copy), so a re-edit keeps resolving
// relative to the same package identity rather than an empty one.
func (w *Workspace) ownerPackage(url string) ir.VersionedPackage {
	if f, ok := w.edited[url]; ok {
		return ir.VersionedPackage{Package: f.Package, Version: f.Version}
	}
	if f, ok := w.loaded[url]; ok {
		return ir.VersionedPackage{Package: f.Package, Version: f.Version}
	}
	return ir.VersionedPackage{}
}

// Index returns the query index for url, if it has been loaded or edited.
func (w *Workspace) Index(url string) (*FileIndex, bool) {
	idx, ok := w.indexes[url]
	return idx, ok
}

// URLsForPackage returns every URL currently providing pkg, per the
// workspace's shared package-to-URL index.
func (w *Workspace) URLsForPackage(pkg string) []string {
	return w.packageIndex[pkg]
}
