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
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/schemac/internal/errors"
	"github.com/kraklabs/schemac/internal/ui"
	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/backend/gobackend"
	"github.com/kraklabs/schemac/pkg/backend/javabackend"
	"github.com/kraklabs/schemac/pkg/backend/swiftbackend"
	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/gof"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/listener"
	"github.com/kraklabs/schemac/pkg/source"
	"github.com/kraklabs/schemac/pkg/trans"
)

// javaModuleNames lists every Java listener module this build knows
// about, in manifest-friendly identifiers.
var javaModuleNames = []string{"java-serde", "java-builder", "java-nullable", "java-mutable", "java-enum-accessor"}

// languageListModules names every module a build for lang could
// apply, for --list-modules — only java has any registered modules
// today; every other target's list is simply empty.
func languageListModules(lang string) []string {
	if lang != "java" {
		return nil
	}
	names := append([]string(nil), javaModuleNames...)
	return names
}

// javaListenerRegistry builds the Java listener registry, applying
// only the modules named in enabled (nil or empty means apply every
// known module, matching an unset manifest modules: list).
func javaListenerRegistry(enabled []string) *listener.Registry[javaf.Type, javaf.Name] {
	all := map[string]listener.Hooks[javaf.Type, javaf.Name]{
		"java-serde":         listener.JavaSerde(),
		"java-builder":       listener.JavaBuilder(),
		"java-nullable":      listener.JavaNullable(),
		"java-mutable":       listener.JavaMutable(),
		"java-enum-accessor": listener.EnumAccessor(),
	}
	names := enabled
	if len(names) == 0 {
		names = javaModuleNames
	}

	r := listener.NewRegistry[javaf.Type, javaf.Name]()
	for _, name := range names {
		if h, ok := all[name]; ok {
			r.Register(h)
		}
	}
	return r
}

func runBuild(args []string, g globals) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	manifestPath := fs.StringP("manifest", "m", "schemac.yaml", "Path to the manifest")
	lang := fs.String("lang", "", "Target language (overrides the manifest's language)")
	outDir := fs.String("out", "", "Output directory (overrides the manifest's output)")
	keepGoing := fs.Bool("keep-going", false, "Continue compiling remaining packages after a render failure")
	metricsAddr := fs.String("metrics-addr", "", "HTTP listen address for Prometheus metrics (empty to disable)")
	listModules := fs.Bool("list-modules", false, "List modules available for the selected language and exit")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	m := loadManifest(*manifestPath)

	targetLang, err := m.ResolveLanguage(*lang)
	if err != nil {
		errors.FatalError(err, g.JSON)
	}

	if *listModules {
		for _, name := range languageListModules(targetLang) {
			fmt.Println(name)
		}
		return
	}

	if *metricsAddr != "" {
		startMetricsServer(*metricsAddr, g)
	}

	logger := g.logger()
	metrics := backend.NewMetrics(nil)
	results, bundle, err := buildAll(m, logger, metrics)
	if err != nil {
		errors.FatalError(err, g.JSON)
	}

	out := *outDir
	if out == "" {
		out = m.Output
	}
	writer := backend.OSWriter{Root: out}

	bar := progressbar.Default(int64(totalDecls(results)), fmt.Sprintf("compiling (%s)", targetLang))
	var written []backend.FileSpec
	for _, res := range results {
		if !res.OK {
			continue
		}
		groups := trans.GroupByPackage(res.Decls)
		specs, buildErr := compileTarget(targetLang, res.Table, groups, bundle, writer, metrics, *keepGoing, m.Modules)
		if buildErr != nil {
			errors.FatalError(buildErr, g.JSON)
		}
		written = append(written, specs...)
		_ = bar.Add(len(res.Decls))
	}
	_ = bar.Finish()

	if !g.Quiet {
		ui.Successf("wrote %d file(s) to %s", len(written), out)
	}

	if bundle.HasErrors() {
		renderDiagnostics(bundle)
		os.Exit(errors.NewCompilationError(
			"Compilation finished with errors",
			fmt.Sprintf("%d diagnostic error(s) across %d source(s)", bundle.ErrorCount(), len(bundle.Sources())),
			"Fix the reported errors and rebuild.",
		).ExitCode())
	}
}

// compileTarget instantiates the generic translate/process pipeline
// for one concrete target language. Each language pins its own T, N
// pair, so the switch exists because Go generics cannot be
// instantiated with a runtime-chosen type parameter.
func compileTarget(lang string, table *ir.Table, groups []flavor.PackageDecls, bundle *diagnostics.Bundle, writer backend.Writer, metrics *backend.Metrics, keepGoing bool, modules []string) ([]backend.FileSpec, error) {
	translateDiags := diagnostics.New(source.Source{Name: fmt.Sprintf("%s translate", lang)})

	switch lang {
	case "go":
		tr := flavor.Translate(table, groups, gof.New(), translateDiags)
		bundle.Add(translateDiags)
		p := &backend.Processor[gof.Type, gof.Name]{Target: gobackend.New(), Writer: writer, Metrics: metrics, KeepGoing: keepGoing}
		return p.Run(tr, bundle)

	case "java":
		tr := flavor.Translate(table, groups, javaf.New(), translateDiags)
		bundle.Add(translateDiags)
		p := &backend.Processor[javaf.Type, javaf.Name]{
			Target:    javabackend.New(),
			Registry:  javaListenerRegistry(modules),
			Writer:    writer,
			Metrics:   metrics,
			KeepGoing: keepGoing,
		}
		return p.Run(tr, bundle)

	case "swift":
		tr := flavor.Translate(table, groups, swiftf.New(), translateDiags)
		bundle.Add(translateDiags)
		p := &backend.Processor[swiftf.Type, swiftf.Name]{Target: swiftbackend.New(), Writer: writer, Metrics: metrics, KeepGoing: keepGoing}
		return p.Run(tr, bundle)

	case "csharp", "js", "json", "openapi", "python", "python3", "reproto", "rust":
		return nil, errors.NewInputError(
			"Target language not implemented",
			fmt.Sprintf("%q is a recognized language identifier but this build has no compiler for it.", lang),
			"Use one of: go, java, swift.",
		)

	default:
		return nil, errors.NewInputError(
			"Unknown target language",
			fmt.Sprintf("%q is not a recognized language identifier.", lang),
			"Use one of: csharp, go, java, js, json, openapi, python, python3, reproto, rust, swift.",
		)
	}
}

func startMetricsServer(addr string, g globals) {
	logger := g.logger()
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		logger.Info("metrics.http.start", "addr", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics.http.error", "err", err)
		}
	}()
}

func totalDecls(results []buildResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Decls)
	}
	return n
}

func renderDiagnostics(bundle *diagnostics.Bundle) {
	for _, line := range bundle.Render() {
		fmt.Fprintln(os.Stderr, ui.DimText(line))
	}
}
