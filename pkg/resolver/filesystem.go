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
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/source"
)

// FilesystemResolver resolves packages from a set of source roots on
// local disk, each laid out as <root>/<pkg/path/parts>/<version>/lib.schema
// (a version directory per published version, consistent with the
// manifest's `paths` entries — spec §6).
//
// A git-backed resolver (out of scope here) would clone or update a
// repository into a local working tree and then point a
// FilesystemResolver at it, reusing this type exactly as the original
// contract in spec §4.2 describes.
type FilesystemResolver struct {
	roots []string
}

// NewFilesystemResolver builds a resolver searching roots in order.
func NewFilesystemResolver(roots ...string) *FilesystemResolver {
	return &FilesystemResolver{roots: roots}
}

func (f *FilesystemResolver) Resolve(required ir.RequiredPackage) ([]Match, error) {
	var matches []Match
	for _, root := range f.roots {
		pkgDir := filepath.Join(append([]string{root}, required.Package...)...)
		entries, err := os.ReadDir(pkgDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolver: reading %s: %w", pkgDir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			ver, err := ir.ParseVersion(entry.Name())
			if err != nil {
				continue // not a version directory
			}
			if !required.Range.Matches(ver) {
				continue
			}
			libPath := filepath.Join(pkgDir, entry.Name(), "lib.schema")
			data, err := os.ReadFile(libPath)
			if err != nil {
				continue
			}
			matches = append(matches, Match{
				Version: ver,
				Source:  source.New(libPath, data),
			})
		}
	}
	if len(matches) == 0 {
		return nil, &ErrNotFound{Required: required}
	}
	sortNewestFirst(matches)
	return matches, nil
}

func (f *FilesystemResolver) ResolveByPrefix(prefix ir.Package) ([]ir.Package, error) {
	var out []ir.Package
	for _, root := range f.roots {
		base := filepath.Join(append([]string{root}, prefix...)...)
		_ = filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil || rel == "." {
				return nil
			}
			parts := strings.Split(filepath.ToSlash(rel), "/")
			if _, verErr := ir.ParseVersion(parts[len(parts)-1]); verErr == nil {
				parts = parts[:len(parts)-1] // strip the trailing version directory
			}
			if len(parts) > 0 {
				out = append(out, ir.Package(parts))
			}
			return nil
		})
	}
	return dedupPackages(out), nil
}

func dedupPackages(pkgs []ir.Package) []ir.Package {
	seen := map[string]bool{}
	var out []ir.Package
	for _, p := range pkgs {
		key := p.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
