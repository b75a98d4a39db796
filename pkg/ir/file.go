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

// Use is one `use PACKAGE [as ALIAS] [version RANGE];` statement.
type Use struct {
	Required RequiredPackage
	Alias    string // local prefix bound to Required; defaults to Required's last package part
	Span     source.Span
	// Resolved is filled in by the Environment (C6) once the resolver
	// has picked a concrete version satisfying Required.Range; it is
	// nil until then, and name resolution requires it to be set.
	Resolved *VersionedPackage
}

// EffectiveAlias returns Alias if explicitly given, otherwise the
// required package's last path component, matching the grammar's
// `use foo.bar;` binding `bar` as the default prefix.
func (u Use) EffectiveAlias() string {
	if u.Alias != "" {
		return u.Alias
	}
	if len(u.Required.Package) == 0 {
		return ""
	}
	return u.Required.Package[len(u.Required.Package)-1]
}

// File is one parsed translation unit: the `#![…]` package/version
// header, its `use` statements, and its top-level declarations in
// source order.
type File struct {
	Source  source.Source
	Package Package
	Version *Version
	Uses    []Use
	Decls   []*Decl
}
