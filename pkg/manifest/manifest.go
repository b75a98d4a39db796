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

// Package manifest loads the project manifest the build/doc/check
// commands take as input: a YAML document naming the target language,
// the root packages to compile, per-language modules to apply, the
// output directory, source search paths, and resolver repository
// configuration. It is a CLI convenience — the core compiler packages
// never see a Manifest, only the already-resolved values it produces.
package manifest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/schemac/internal/errors"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/resolver"
)

// PackageRef is one entry of the manifest's `packages` list.
type PackageRef struct {
	Name  string `yaml:"name"`
	Range string `yaml:"version-range"`
}

// Repository is the manifest's `repository` section: resolver
// configuration. Unknown fields are ignored by yaml.v3 by default, so
// a manifest written against a newer schemac still loads.
type Repository struct {
	URL            string `yaml:"url"`
	FetchTimeoutMS int    `yaml:"fetch-timeout-ms"`
	ObjectStore    string `yaml:"object-store"`
}

// Manifest is the decoded form of spec §6's YAML manifest document.
type Manifest struct {
	Language   string       `yaml:"language"`
	Packages   []PackageRef `yaml:"packages"`
	Modules    []string     `yaml:"modules"`
	Output     string       `yaml:"output"`
	Paths      []string     `yaml:"paths"`
	Repository Repository   `yaml:"repository"`
}

// Load reads and parses the manifest at path. A syntactically invalid
// document is a CategoryUser error (exit code 1 per spec §6), never a
// bare Go error, since this is always the caller's file to fix.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(
			"Cannot read manifest",
			fmt.Sprintf("failed to read %s", path),
			"check that the file exists and is readable",
			err,
		)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewConfigError(
			"Invalid manifest",
			fmt.Sprintf("%s is not valid YAML", path),
			"fix the syntax error reported above",
			err,
		)
	}
	return &m, nil
}

// RequirePackages decodes every manifest package entry into an
// ir.RequiredPackage the Environment can resolve, validating each
// version-range expression eagerly rather than deferring the error to
// resolution time.
func (m *Manifest) RequirePackages() ([]ir.RequiredPackage, error) {
	out := make([]ir.RequiredPackage, 0, len(m.Packages))
	for _, p := range m.Packages {
		rng, err := ir.ParseVersionRange(p.Range)
		if err != nil {
			return nil, errors.NewConfigError(
				"Invalid package version range",
				fmt.Sprintf("package %q: %v", p.Name, err),
				"use a range like \">=1.0.0,<2.0.0\"",
				err,
			)
		}
		out = append(out, ir.RequiredPackage{Package: ir.ParsePackage(p.Name), Range: rng})
	}
	return out, nil
}

// ResolverOptions converts the manifest's `repository` section plus
// `paths` into resolver.Options.
func (m *Manifest) ResolverOptions() resolver.Options {
	opts := resolver.Options{
		Paths:           m.Paths,
		RemoteURL:       m.Repository.URL,
		ObjectStoreRoot: m.Repository.ObjectStore,
	}
	if m.Repository.FetchTimeoutMS > 0 {
		opts.FetchTimeout = time.Duration(m.Repository.FetchTimeoutMS) * time.Millisecond
	}
	return opts
}

// ResolveLanguage returns override when it is non-empty, otherwise the
// manifest's language. A blank language with no override is a
// CategoryUser error, matching spec §6's "missing language requires a
// command-line override".
func (m *Manifest) ResolveLanguage(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if m.Language != "" {
		return m.Language, nil
	}
	return "", errors.NewInputError(
		"No target language",
		"the manifest does not set `language` and --lang was not given",
		"add `language: go` (or similar) to the manifest, or pass --lang",
	)
}
