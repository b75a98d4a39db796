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

// Package backend implements the Package Processor (spec C9): it
// drives a target's emission by iterating translated declarations
// grouped by output package, applying registered listeners (C10) to
// each before a target-specific compiler renders and writes one file
// per package.
package backend

import (
	"github.com/kraklabs/schemac/pkg/flavor"
)

// FileSpec is one target's fully rendered output for a single package:
// the resolved output path (spec §4.6's resolve_full_path) plus the
// bytes to write there.
type FileSpec struct {
	Path    string
	Content []byte
}

// Target is what varies per backend (spec §4.6 step 2 and 4): how a
// package's declarations render to source text, and where that text
// is written. T and N are the target flavor's rendered type/name
// representations.
type Target[T any, N any] interface {
	// Lang names the target for logging and metrics labels, e.g. "go",
	// "java", "swift", "doc".
	Lang() string
	// RenderPackage renders every declaration of pkg into one file.
	RenderPackage(pkg *flavor.Package[T, N]) (FileSpec, error)
}
