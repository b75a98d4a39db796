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

// Package main implements the schemac CLI: a schema compiler and
// toolchain driving the resolver, translation, and package-processor
// pipeline against a YAML manifest.
//
// Usage:
//
//	schemac build [--manifest schemac.yaml] [--lang go|java|swift] [--keep-going] [--metrics-addr :9090]
//	schemac doc [--manifest schemac.yaml]
//	schemac check [--manifest schemac.yaml]
package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/schemac/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globals holds the flags common to every subcommand.
type globals struct {
	JSON    bool
	NoColor bool
	Verbose int
	Quiet   bool
}

func (g globals) logger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case g.Verbose >= 2:
		level = slog.LevelDebug
	case g.Verbose >= 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	var (
		showVersion = flag.BoolP("version", "V", false, "Show version and exit")
		jsonOutput  = flag.Bool("json", false, "Output diagnostics as JSON")
		noColor     = flag.Bool("no-color", false, "Disable color output")
		verbose     = flag.CountP("verbose", "v", "Increase verbosity (-v for info, -vv for debug)")
		quiet       = flag.BoolP("quiet", "q", false, "Suppress non-essential output")
	)

	flag.SetInterspersed(false)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `schemac - schema compiler and toolchain

Usage:
  schemac <command> [options]

Commands:
  build    Compile schema packages to a target language
  doc      Render schema packages as Markdown documentation
  check    Validate schema packages without writing output

Global Options:
  --json         Output diagnostics as JSON
  --no-color     Disable color output (respects NO_COLOR env var)
  -v, --verbose  Increase verbosity (-v for info, -vv for debug)
  -q, --quiet    Suppress non-essential output
  -V, --version  Show version and exit

For detailed command help: schemac <command> --help
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("schemac version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	if os.Getenv("NO_COLOR") != "" {
		*noColor = true
	}
	if *jsonOutput {
		*quiet = true
	}

	g := globals{JSON: *jsonOutput, NoColor: *noColor, Verbose: *verbose, Quiet: *quiet}
	ui.InitColors(g.NoColor)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command, cmdArgs := args[0], args[1:]
	switch command {
	case "build":
		runBuild(cmdArgs, g)
	case "doc":
		runDoc(cmdArgs, g)
	case "check":
		runCheck(cmdArgs, g)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
