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

// Package resolver implements the compiler's package resolution
// contract (spec C5): given a RequiredPackage, return every matching
// (version, source) pair ordered newest-to-oldest, and support
// prefix-based completion for editor tooling.
//
// Backend selection by URL scheme (filesystem, git+X, http) is part of
// the contract, but only the filesystem backend is implemented here —
// git and http resolution are external collaborators out of scope for
// this module (spec §1); FilesystemResolver is what a git backend
// would delegate to once it has a working tree checked out locally.
package resolver

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/source"
)

// Match is one resolved candidate: the concrete version chosen and the
// parsed source that defines it.
type Match struct {
	Version ir.Version
	Source  source.Source
}

// Resolver is the capability the Environment (C6) consumes to turn a
// RequiredPackage into candidate sources.
type Resolver interface {
	// Resolve returns every version of required.Package satisfying
	// required.Range, newest first.
	Resolve(required ir.RequiredPackage) ([]Match, error)
	// ResolveByPrefix returns every known package whose path starts
	// with prefix, supporting `use` path completion in the workspace.
	ResolveByPrefix(prefix ir.Package) ([]ir.Package, error)
}

// Session correlates every diagnostic and log line produced while
// resolving one compile's imports, surfaced to the CLI's `--json`
// output as a stable identifier.
type Session struct {
	ID string
}

// NewSession mints a Session with a fresh correlation ID.
func NewSession() Session {
	return Session{ID: uuid.NewString()}
}

// Logging wraps a Resolver to log each call at debug level, matching
// the teacher's component.event structured-logging convention.
type Logging struct {
	Resolver
	Log     *slog.Logger
	Session Session
}

// NewLogging wraps r with debug logging. A nil logger uses slog.Default.
func NewLogging(r Resolver, log *slog.Logger, session Session) *Logging {
	if log == nil {
		log = slog.Default()
	}
	return &Logging{Resolver: r, Log: log, Session: session}
}

func (l *Logging) Resolve(required ir.RequiredPackage) ([]Match, error) {
	matches, err := l.Resolver.Resolve(required)
	if err != nil {
		l.Log.Debug("resolver.resolve_failed",
			"session", l.Session.ID, "package", required.Package.String(), "range", required.Range.String(), "error", err)
		return nil, err
	}
	l.Log.Debug("resolver.resolve",
		"session", l.Session.ID, "package", required.Package.String(), "range", required.Range.String(), "matches", len(matches))
	return matches, nil
}

func (l *Logging) ResolveByPrefix(prefix ir.Package) ([]ir.Package, error) {
	pkgs, err := l.Resolver.ResolveByPrefix(prefix)
	if err != nil {
		return nil, err
	}
	l.Log.Debug("resolver.resolve_by_prefix", "session", l.Session.ID, "prefix", prefix.String(), "candidates", len(pkgs))
	return pkgs, nil
}

// sortNewestFirst orders matches by version descending, the ordering
// every backend's Resolve must return.
func sortNewestFirst(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Version.Compare(matches[j].Version) > 0
	})
}

// ErrNotFound is returned when a required package has no
// matching version in a backend's search paths.
type ErrNotFound struct {
	Required ir.RequiredPackage
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("resolver: no version of %s satisfies %s", e.Required.Package, e.Required.Range)
}
