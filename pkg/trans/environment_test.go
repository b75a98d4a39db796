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
package trans

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/resolver"
	"github.com/kraklabs/schemac/pkg/source"
)

// fakeResolver resolves a fixed set of in-memory sources by package
// path, newest version first, standing in for resolver.FilesystemResolver
// so these tests never touch disk.
type fakeResolver struct {
	byPackage map[string][]resolver.Match
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{byPackage: make(map[string][]resolver.Match)}
}

func (r *fakeResolver) add(pkg string, version string, text string) {
	v, err := ir.ParseVersion(version)
	if err != nil {
		panic(err)
	}
	src := source.New(pkg+"@"+version+".schema", []byte(text))
	r.byPackage[pkg] = append(r.byPackage[pkg], resolver.Match{Version: v, Source: src})
}

func (r *fakeResolver) Resolve(required ir.RequiredPackage) ([]resolver.Match, error) {
	return r.byPackage[required.Package.String()], nil
}

func (r *fakeResolver) ResolveByPrefix(prefix ir.Package) ([]ir.Package, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnvironment_BuildResolvesCrossPackageReference(t *testing.T) {
	r := newFakeResolver()
	r.add("foo", "1.0.0", `#![package(foo), version("1.0.0")]
	tuple Baz { x: u32; }`)
	r.add("root", "1.0.0", `#![package(root), version("1.0.0")]
	use foo as f version(">=1.0.0");
	type Holder { b: f::Baz; }`)

	env := NewEnvironment(r, discardLogger())
	result := env.Build(ir.RequiredPackage{Package: ir.ParsePackage("root")})

	require.True(t, result.OK, "%+v", result.Diagnostics)
	assert.False(t, result.Diagnostics.HasErrors())

	rootVersion := ir.Version{Major: 1}
	holder, found := result.Table.Lookup(ir.Name{
		Package: ir.VersionedPackage{Package: ir.ParsePackage("root"), Version: &rootVersion},
		Path:    []string{"Holder"},
	})
	require.True(t, found)
	require.Len(t, holder.Type.Fields, 1)

	fieldName := holder.Type.Fields[0].Type.Name
	require.NotNil(t, fieldName)
	assert.Equal(t, "foo", fieldName.Package.Package.String())
	assert.Equal(t, []string{"Baz"}, fieldName.Path)
}

func TestEnvironment_BuildDeclsHoldsOneCanonicalEntryPerTopLevelName(t *testing.T) {
	r := newFakeResolver()
	r.add("root", "1.0.0", `#![package(root), version("1.0.0")]
	type Holder { a: u32; }
	tuple Point { x: double; y: double; }`)

	env := NewEnvironment(r, discardLogger())
	result := env.Build(ir.RequiredPackage{Package: ir.ParsePackage("root")})

	require.True(t, result.OK)
	require.Len(t, result.Decls, 2)
	assert.Equal(t, "Holder", result.Decls[0].Name.Local())
	assert.Equal(t, "Point", result.Decls[1].Name.Local())
}

func TestEnvironment_BuildReportsUnresolvablePackage(t *testing.T) {
	r := newFakeResolver()

	env := NewEnvironment(r, discardLogger())
	result := env.Build(ir.RequiredPackage{Package: ir.ParsePackage("missing")})

	assert.False(t, result.OK)
	assert.True(t, result.Diagnostics.HasErrors())
}

func TestEnvironment_BuildDetectsImportCycle(t *testing.T) {
	r := newFakeResolver()
	r.add("a", "1.0.0", `#![package(a), version("1.0.0")]
	use b version(">=1.0.0");
	type A { x: u32; }`)
	r.add("b", "1.0.0", `#![package(b), version("1.0.0")]
	use a version(">=1.0.0");
	type B { x: u32; }`)

	env := NewEnvironment(r, discardLogger())
	result := env.Build(ir.RequiredPackage{Package: ir.ParsePackage("a")})

	assert.False(t, result.OK)
	assert.True(t, result.Diagnostics.HasErrors())
}

func TestGroupByPackage_OrdersPackagesDeterministically(t *testing.T) {
	r := newFakeResolver()
	r.add("foo", "1.0.0", `#![package(foo), version("1.0.0")]
	tuple Baz { x: u32; }`)
	r.add("root", "1.0.0", `#![package(root), version("1.0.0")]
	use foo as f version(">=1.0.0");
	type Holder { b: f::Baz; }`)

	env := NewEnvironment(r, discardLogger())
	result := env.Build(ir.RequiredPackage{Package: ir.ParsePackage("root")})
	require.True(t, result.OK)

	groups := GroupByPackage(result.Decls)
	require.Len(t, groups, 2)
	assert.Equal(t, "foo", groups[0].Package.Package.String())
	assert.Equal(t, "root", groups[1].Package.Package.String())
}
