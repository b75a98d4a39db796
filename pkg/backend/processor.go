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
	"fmt"
	"time"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/listener"
	"github.com/kraklabs/schemac/pkg/source"
)

// Processor drives one target's emission over an already-translated
// set of packages: apply every registered listener module to each
// declaration, render the package, then write the result. Listeners
// run ahead of RenderPackage rather than after it — a module's
// annotations and extra code must already be present on the Decl
// before a target turns it into source text, since there is no later
// point at which rendered text could still be amended without
// re-parsing it.
type Processor[T any, N any] struct {
	Target   Target[T, N]
	Registry *listener.Registry[T, N]
	Writer   Writer
	Metrics  *Metrics

	// KeepGoing controls whether one package's render/write failure
	// aborts the whole run or is recorded and skipped so later
	// packages still get a chance to compile.
	KeepGoing bool
}

// Run processes every package in tr, returning the FileSpecs written.
// Failures are reported through diags; Run itself only returns an
// error when KeepGoing is false and a package failed.
func (p *Processor[T, N]) Run(tr flavor.Translated[T, N], diags *diagnostics.Bundle) ([]FileSpec, error) {
	lang := p.Target.Lang()
	var written []FileSpec

	for _, pkg := range tr.Packages {
		start := time.Now()

		if p.Registry != nil {
			for _, d := range pkg.Decls {
				p.Registry.Apply(d)
			}
		}

		spec, err := p.Target.RenderPackage(pkg)
		if err == nil {
			err = p.Writer.Write(spec)
		}

		if p.Metrics != nil {
			p.Metrics.WriteDuration.WithLabelValues(lang).Observe(time.Since(start).Seconds())
		}

		if err != nil {
			if p.Metrics != nil {
				p.Metrics.RenderErrors.WithLabelValues(lang).Inc()
			}
			name := pkg.Package.String()
			d := diagnostics.New(source.Source{Name: name})
			d.Errorf(source.Span{}, "%s: %s", lang, err)
			diags.Add(d)
			if !p.KeepGoing {
				return written, fmt.Errorf("render package %s: %w", name, err)
			}
			continue
		}

		written = append(written, spec)
		if p.Metrics != nil {
			p.Metrics.PackagesCompiled.WithLabelValues(lang).Inc()
			p.Metrics.FilesWritten.WithLabelValues(lang).Inc()
		}
	}

	return written, nil
}
