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
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/schemac/internal/errors"
	"github.com/kraklabs/schemac/internal/ui"
	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/backend/docgen"
	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/docf"
	"github.com/kraklabs/schemac/pkg/source"
	"github.com/kraklabs/schemac/pkg/trans"
)

// runDoc always renders Markdown documentation regardless of the
// manifest's language — doc generation is not one of the --lang
// choices build dispatches over.
func runDoc(args []string, g globals) {
	fs := flag.NewFlagSet("doc", flag.ExitOnError)
	manifestPath := fs.StringP("manifest", "m", "schemac.yaml", "Path to the manifest")
	outDir := fs.String("out", "", "Output directory (overrides the manifest's output)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	m := loadManifest(*manifestPath)

	logger := g.logger()
	results, bundle, err := buildAll(m, logger, nil)
	if err != nil {
		errors.FatalError(err, g.JSON)
	}

	out := *outDir
	if out == "" {
		out = m.Output
	}
	writer := backend.OSWriter{Root: out}

	var written []backend.FileSpec
	for _, res := range results {
		if !res.OK {
			continue
		}
		groups := trans.GroupByPackage(res.Decls)
		diags := diagnostics.New(source.Source{Name: "doc translate"})
		tr := flavor.Translate(res.Table, groups, docf.New(), diags)
		bundle.Add(diags)

		p := &backend.Processor[docf.Type, docf.Name]{Target: docgen.New(), Writer: writer}
		specs, runErr := p.Run(tr, bundle)
		if runErr != nil {
			errors.FatalError(runErr, g.JSON)
		}
		written = append(written, specs...)
	}

	if !g.Quiet {
		ui.Successf("wrote %d documentation file(s) to %s", len(written), out)
	}

	if bundle.HasErrors() {
		renderDiagnostics(bundle)
		os.Exit(errors.NewCompilationError(
			"Documentation build finished with errors",
			fmt.Sprintf("%d diagnostic error(s) across %d source(s)", bundle.ErrorCount(), len(bundle.Sources())),
			"Fix the reported errors and rebuild.",
		).ExitCode())
	}
}
