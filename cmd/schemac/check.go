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
)

// runCheck resolves and translates every manifest package without
// writing any output, reporting diagnostics and exiting per spec §6's
// exit code scheme. It shares buildAll with build and doc but never
// touches a Writer or a Processor, since validation has nothing to
// render.
func runCheck(args []string, g globals) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	manifestPath := fs.StringP("manifest", "m", "schemac.yaml", "Path to the manifest")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	m := loadManifest(*manifestPath)

	logger := g.logger()
	results, bundle, err := buildAll(m, logger, nil)
	if err != nil {
		errors.FatalError(err, g.JSON)
	}

	ok := true
	for _, res := range results {
		ok = ok && res.OK
	}

	if bundle.HasErrors() || !ok {
		renderDiagnostics(bundle)
		os.Exit(errors.NewCompilationError(
			"Check failed",
			fmt.Sprintf("%d diagnostic error(s) across %d source(s)", bundle.ErrorCount(), len(bundle.Sources())),
			"Fix the reported errors.",
		).ExitCode())
	}

	if !g.Quiet {
		ui.Successf("%d package(s) checked, no errors", len(results))
	}
}
