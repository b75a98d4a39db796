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
package backend

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/listener"
)

// memWriter records every spec it receives instead of touching disk.
type memWriter struct {
	specs []FileSpec
}

func (w *memWriter) Write(spec FileSpec) error {
	w.specs = append(w.specs, spec)
	return nil
}

// stubTarget renders a package by joining its decl names, annotations
// included, so tests can assert a listener ran before rendering.
type stubTarget struct {
	failOn string
}

func (stubTarget) Lang() string { return "stub" }

func (s stubTarget) RenderPackage(pkg *flavor.Package[string, string]) (FileSpec, error) {
	if pkg.Import == s.failOn {
		return FileSpec{}, errors.New("boom")
	}
	body := ""
	for _, d := range pkg.Decls {
		body += d.Name
		for _, ann := range d.Annotations {
			body += "|" + ann
		}
	}
	return FileSpec{Path: pkg.Import + ".stub", Content: []byte(body)}, nil
}

func newPackage(importPath string, names ...string) *flavor.Package[string, string] {
	pkg := &flavor.Package[string, string]{Import: importPath}
	for _, n := range names {
		pkg.Decls = append(pkg.Decls, &flavor.Decl[string, string]{Kind: ir.DeclTypeKind, Name: n})
	}
	return pkg
}

func TestProcessor_AppliesListenersBeforeRendering(t *testing.T) {
	reg := listener.NewRegistry[string, string]()
	reg.Register(listener.Hooks[string, string]{
		Name: "mark",
		ClassAdded: func(d *flavor.Decl[string, string]) {
			listener.AddAnnotation(d, "marked")
		},
	})

	w := &memWriter{}
	p := &Processor[string, string]{
		Target:   stubTarget{},
		Registry: reg,
		Writer:   w,
	}

	tr := flavor.Translated[string, string]{Packages: []*flavor.Package[string, string]{newPackage("pkg.a", "Foo")}}
	written, err := p.Run(tr, diagnostics.NewBundle())

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "Foo|marked", string(written[0].Content))
	assert.Len(t, w.specs, 1)
}

func TestProcessor_AbortsOnFirstErrorWithoutKeepGoing(t *testing.T) {
	w := &memWriter{}
	p := &Processor[string, string]{
		Target: stubTarget{failOn: "pkg.bad"},
		Writer: w,
	}

	tr := flavor.Translated[string, string]{Packages: []*flavor.Package[string, string]{
		newPackage("pkg.bad", "Foo"),
		newPackage("pkg.good", "Bar"),
	}}

	diags := diagnostics.NewBundle()
	_, err := p.Run(tr, diags)

	require.Error(t, err)
	assert.True(t, diags.HasErrors())
	assert.Empty(t, w.specs)
}

func TestProcessor_KeepGoingSkipsFailedPackages(t *testing.T) {
	w := &memWriter{}
	p := &Processor[string, string]{
		Target:    stubTarget{failOn: "pkg.bad"},
		Writer:    w,
		KeepGoing: true,
	}

	tr := flavor.Translated[string, string]{Packages: []*flavor.Package[string, string]{
		newPackage("pkg.bad", "Foo"),
		newPackage("pkg.good", "Bar"),
	}}

	diags := diagnostics.NewBundle()
	written, err := p.Run(tr, diags)

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "pkg.good.stub", written[0].Path)
	assert.True(t, diags.HasErrors())
}

func TestProcessor_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	w := &memWriter{}
	p := &Processor[string, string]{
		Target:    stubTarget{failOn: "pkg.bad"},
		Writer:    w,
		Metrics:   m,
		KeepGoing: true,
	}

	tr := flavor.Translated[string, string]{Packages: []*flavor.Package[string, string]{
		newPackage("pkg.bad", "Foo"),
		newPackage("pkg.good", "Bar"),
	}}

	_, err := p.Run(tr, diagnostics.NewBundle())
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.PackagesCompiled.WithLabelValues("stub")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RenderErrors.WithLabelValues("stub")))
}
