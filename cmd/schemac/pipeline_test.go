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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/manifest"
	"github.com/kraklabs/schemac/pkg/trans"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writePackage lays out one version directory under root, matching
// resolver.FilesystemResolver's <root>/<pkg/parts>/<version>/lib.schema
// convention.
func writePackage(t *testing.T, root, pkg, version, text string) {
	t.Helper()
	dir := filepath.Join(root, filepath.FromSlash(pkg), version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.schema"), []byte(text), 0o644))
}

func TestBuildAll_ResolvesAndTranslatesManifestPackages(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "demo", "1.0.0", `#![package(demo), version("1.0.0")]
	type Greeting { text: string; }`)

	m := &manifest.Manifest{
		Language: "go",
		Packages: []manifest.PackageRef{{Name: "demo", Range: ">=1.0.0"}},
		Paths:    []string{root},
	}

	results, bundle, err := buildAll(m, discardLogger(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
	assert.False(t, bundle.HasErrors())
	assert.Len(t, results[0].Decls, 1)
}

func TestBuildAll_ReportsUnresolvedPackageWithoutError(t *testing.T) {
	root := t.TempDir()

	m := &manifest.Manifest{
		Language: "go",
		Packages: []manifest.PackageRef{{Name: "missing", Range: ">=1.0.0"}},
		Paths:    []string{root},
	}

	results, bundle, err := buildAll(m, discardLogger(), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK)
	assert.True(t, bundle.HasErrors())
}

func TestBuildAll_RejectsManifestWithNoPackages(t *testing.T) {
	m := &manifest.Manifest{Language: "go"}
	_, _, err := buildAll(m, discardLogger(), nil)
	assert.Error(t, err)
}

func TestCompileTarget_GoProducesOneFileSpecPerPackage(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "demo", "1.0.0", `#![package(demo), version("1.0.0")]
	type Greeting { text: string; }`)

	m := &manifest.Manifest{
		Language: "go",
		Packages: []manifest.PackageRef{{Name: "demo", Range: ">=1.0.0"}},
		Paths:    []string{root},
	}

	results, bundle, err := buildAll(m, discardLogger(), nil)
	require.NoError(t, err)
	require.True(t, results[0].OK)

	groups := trans.GroupByPackage(results[0].Decls)
	specs, err := compileTarget("go", results[0].Table, groups, bundle, backend.OSWriter{Root: t.TempDir()}, nil, false, nil)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Contains(t, specs[0].Path, "_lib.go")
	assert.Contains(t, string(specs[0].Content), "Greeting")
}

func TestCompileTarget_UnimplementedLanguageReportsInputError(t *testing.T) {
	_, err := compileTarget("rust", nil, nil, diagnostics.NewBundle(), backend.OSWriter{Root: t.TempDir()}, nil, false, nil)
	assert.Error(t, err)
}

func TestCompileTarget_UnknownLanguageReportsInputError(t *testing.T) {
	_, err := compileTarget("cobol", nil, nil, diagnostics.NewBundle(), backend.OSWriter{Root: t.TempDir()}, nil, false, nil)
	assert.Error(t, err)
}

func TestJavaListenerRegistry_DefaultsToEveryKnownModule(t *testing.T) {
	r := javaListenerRegistry(nil)
	assert.Len(t, r.Names(), len(javaModuleNames))
}

func TestJavaListenerRegistry_AppliesOnlyNamedModules(t *testing.T) {
	r := javaListenerRegistry([]string{"java-builder"})
	assert.Equal(t, []string{"java-builder"}, r.Names())
}

func TestLanguageListModules_EmptyForNonJavaTargets(t *testing.T) {
	assert.Nil(t, languageListModules("go"))
	assert.Nil(t, languageListModules("swift"))
	assert.NotEmpty(t, languageListModules("java"))
}
