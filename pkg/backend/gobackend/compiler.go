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

// Package gobackend is the Go package compiler (spec §4.4's Go
// translator, driven by the package processor in pkg/backend): it
// renders one flavor.Package[gof.Type, gof.Name] into a single Go
// source file using github.com/dave/jennifer rather than pkg/token —
// jennifer already owns import tracking and gofmt-equivalent
// formatting for real Go syntax, which the token/emitter pair (built
// for Java and Swift, languages that don't have a mature native
// Go-rooted code-builder in this stack) would only reimplement.
package gobackend

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/gof"
	"github.com/kraklabs/schemac/pkg/ir"
)

// Compiler implements backend.Target[gof.Type, gof.Name].
type Compiler struct{}

// New returns a Go package compiler.
func New() *Compiler { return &Compiler{} }

func (c *Compiler) Lang() string { return "go" }

// RenderPackage renders every declaration of pkg in source order into
// one file named "<joined>_lib.go", joined package parts flat at the
// output root rather than nested per directory — the naming rule this
// target uses for generated output.
func (c *Compiler) RenderPackage(pkg *flavor.Package[gof.Type, gof.Name]) (backend.FileSpec, error) {
	f := jen.NewFile(pkg.Import)
	f.HeaderComment("Code generated by schemac. DO NOT EDIT.")

	for _, d := range pkg.Decls {
		if err := renderDecl(f, d); err != nil {
			return backend.FileSpec{}, fmt.Errorf("package %s: %w", pkg.Package.String(), err)
		}
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return backend.FileSpec{}, fmt.Errorf("render package %s: %w", pkg.Package.String(), err)
	}

	path := pkg.Import + "_lib.go"
	return backend.FileSpec{Path: path, Content: buf.Bytes()}, nil
}

func renderDecl(f *jen.File, d *flavor.Decl[gof.Type, gof.Name]) error {
	switch d.Kind {
	case ir.DeclTypeKind:
		renderStruct(f, d)
	case ir.DeclTupleKind:
		renderTuple(f, d)
	case ir.DeclInterfaceKind:
		if err := renderInterface(f, d); err != nil {
			return err
		}
	case ir.DeclEnumKind:
		renderEnum(f, d)
	case ir.DeclServiceKind:
		renderService(f, d)
	default:
		return fmt.Errorf("decl %s: unhandled kind %s", d.Name.Local, d.Kind)
	}

	for _, nested := range d.Nested {
		if err := renderDecl(f, nested); err != nil {
			return err
		}
	}
	if len(d.ExtraCode) > 0 {
		f.Add(jen.Id(strings.Join(d.ExtraCode, "\n")))
	}
	return nil
}

// docStatement seeds a *jen.Statement with one doc comment per line,
// the annotation lines a listener appended, and then a trailing line
// break — ready for the caller to chain the declaration itself onto,
// so the whole thing renders as one ungapped top-level group.
func docStatement(doc, annotations []string) *jen.Statement {
	st := jen.Empty()
	for _, line := range doc {
		st.Comment(line).Line()
	}
	for _, ann := range annotations {
		st.Comment(ann).Line()
	}
	return st
}
