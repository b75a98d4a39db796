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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/ir"
)

func writeSchemaFixture(t *testing.T, root, pkg, version string) {
	t.Helper()
	dir := filepath.Join(root, pkg, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.schema"), []byte("type Foo {}"), 0o644))
}

func TestFilesystemResolver_NewestFirst(t *testing.T) {
	root := t.TempDir()
	writeSchemaFixture(t, root, "foo", "1.0.0")
	writeSchemaFixture(t, root, "foo", "1.2.0")
	writeSchemaFixture(t, root, "foo", "2.0.0")

	r := NewFilesystemResolver(root)
	rng, err := ir.ParseVersionRange(">=1.0.0,<2.0.0")
	require.NoError(t, err)

	matches, err := r.Resolve(ir.RequiredPackage{Package: ir.Package{"foo"}, Range: rng})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "1.2.0", matches[0].Version.String())
	assert.Equal(t, "1.0.0", matches[1].Version.String())
}

func TestFilesystemResolver_NotFound(t *testing.T) {
	root := t.TempDir()
	r := NewFilesystemResolver(root)
	_, err := r.Resolve(ir.RequiredPackage{Package: ir.Package{"missing"}})
	require.Error(t, err)
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestFilesystemResolver_ResolveByPrefix(t *testing.T) {
	root := t.TempDir()
	writeSchemaFixture(t, root, filepath.Join("foo", "bar"), "1.0.0")

	r := NewFilesystemResolver(root)
	pkgs, err := r.ResolveByPrefix(ir.Package{"foo"})
	require.NoError(t, err)

	var found bool
	for _, p := range pkgs {
		if p.String() == "foo.bar" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNewResolver_RejectsRemoteSchemes(t *testing.T) {
	_, err := NewResolver(Options{RemoteURL: "git+https://example.com/schemas.git"})
	require.Error(t, err)
	var unavailable *ErrBackendUnavailable
	assert.ErrorAs(t, err, &unavailable)
}
