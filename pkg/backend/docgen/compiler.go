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

// Package docgen is the documentation backend (original_source's
// src/backend/doc, supplemented into this repository since spec.md's
// CLI section lists a `doc` subcommand without assigning it a
// component): it renders one Markdown file per package describing
// every declaration, its fields, and its doc comments. It
// deliberately stops at Markdown rather than HTML — HTML formatting
// is the out-of-scope "documentation HTML formatter" external
// collaborator; a Markdown renderer is the structural intermediate
// such a collaborator would consume.
package docgen

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/docf"
	"github.com/kraklabs/schemac/pkg/ir"
)

// Compiler implements backend.Target[docf.Type, docf.Name].
type Compiler struct{}

// New returns a documentation compiler.
func New() *Compiler { return &Compiler{} }

func (c *Compiler) Lang() string { return "doc" }

// RenderPackage renders every declaration of pkg as a Markdown
// section, in source order, into one file.
func (c *Compiler) RenderPackage(pkg *flavor.Package[docf.Type, docf.Name]) (backend.FileSpec, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", pkg.Import)

	for _, d := range pkg.Decls {
		if err := renderDecl(&b, d, 2); err != nil {
			return backend.FileSpec{}, fmt.Errorf("package %s: %w", pkg.Import, err)
		}
	}

	path := filepath.Join(strings.ReplaceAll(pkg.Import, ".", "/"), "index.md")
	return backend.FileSpec{Path: path, Content: []byte(b.String())}, nil
}

func renderDecl(b *strings.Builder, d *flavor.Decl[docf.Type, docf.Name], level int) error {
	heading := strings.Repeat("#", level)
	fmt.Fprintf(b, "%s %s `%s`\n\n", heading, capitalize(d.Kind.String()), d.Name.Local)
	writeDoc(b, d.Doc)

	switch d.Kind {
	case ir.DeclTypeKind, ir.DeclTupleKind:
		writeFieldsTable(b, d.Fields)
	case ir.DeclInterfaceKind:
		if len(d.Fields) > 0 {
			b.WriteString("Common fields:\n\n")
			writeFieldsTable(b, d.Fields)
		}
		for _, st := range d.SubTypes {
			fmt.Fprintf(b, "%s# `%s` (`%s = %q`)\n\n", heading, st.Name.Local, d.DiscriminatorKey, st.Discriminator)
			writeDoc(b, st.Doc)
			writeFieldsTable(b, st.Fields)
		}
	case ir.DeclEnumKind:
		b.WriteString("| Variant | Value |\n|---|---|\n")
		for _, v := range d.Variants {
			fmt.Fprintf(b, "| `%s` | `%s` |\n", v.Ident, v.Value)
		}
		b.WriteString("\n")
	case ir.DeclServiceKind:
		for _, e := range d.Endpoints {
			fmt.Fprintf(b, "- `%s`", e.Ident)
			if len(e.Request) > 0 {
				fmt.Fprintf(b, " request `%s`", e.Request[0].Type.Code)
			}
			if e.Response != nil {
				fmt.Fprintf(b, " returns `%s`", e.Response.Type.Code)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	default:
		return fmt.Errorf("decl %s: unhandled kind %s", d.Name.Local, d.Kind)
	}

	for _, nested := range d.Nested {
		if err := renderDecl(b, nested, level+1); err != nil {
			return err
		}
	}
	return nil
}

func writeDoc(b *strings.Builder, doc []string) {
	for _, line := range doc {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(doc) > 0 {
		b.WriteString("\n")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func writeFieldsTable(b *strings.Builder, fields []flavor.Field[docf.Type]) {
	if len(fields) == 0 {
		return
	}
	b.WriteString("| Field | Type | Optional | Wire name |\n|---|---|---|---|\n")
	for _, f := range fields {
		fmt.Fprintf(b, "| `%s` | `%s` | %t | `%s` |\n", f.Ident, f.Type.Code, f.Optional, f.WireName)
	}
	b.WriteString("\n")
}
