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

// Package javabackend is the Java package compiler (spec §4.4's Java
// translator): it renders one flavor.Package[javaf.Type, javaf.Name]
// into a single .java source file using pkg/token's Tree/Emit pair,
// since Go has no mature Java-syntax code-builder in this stack the
// way dave/jennifer covers Go (see pkg/backend/gobackend).
//
// Only the package's first declaration is rendered public, matching
// Java's one-public-top-level-type-per-file rule; every later
// declaration renders as a package-private top-level type in the same
// file.
package javabackend

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/token"
)

// Compiler implements backend.Target[javaf.Type, javaf.Name].
type Compiler struct{}

// New returns a Java package compiler.
func New() *Compiler { return &Compiler{} }

func (c *Compiler) Lang() string { return "java" }

// RenderPackage renders every declaration of pkg, in source order,
// into one file named after the package's first declaration.
func (c *Compiler) RenderPackage(pkg *flavor.Package[javaf.Type, javaf.Name]) (backend.FileSpec, error) {
	if len(pkg.Decls) == 0 {
		return backend.FileSpec{}, fmt.Errorf("package %s: no declarations", pkg.Import)
	}

	body := &token.Tree{}
	for i, d := range pkg.Decls {
		if err := renderDecl(body, d, i == 0); err != nil {
			return backend.FileSpec{}, fmt.Errorf("package %s: %w", pkg.Import, err)
		}
		body.Push(token.Lit("\n"))
	}

	// The package statement must precede any import, so it is written
	// directly rather than through a Tree node: Emit's import-gathering
	// pass would otherwise place imports before it.
	header := fmt.Sprintf("// Code generated by schemac. DO NOT EDIT.\npackage %s;\n\n", pkg.Import)
	src := header + token.Emit(body, token.JavaLang{})

	fileName := pkg.Decls[0].Name.Local
	path := filepath.Join(strings.ReplaceAll(pkg.Import, ".", "/"), fileName+".java")
	return backend.FileSpec{Path: path, Content: []byte(src)}, nil
}

func renderDecl(tree *token.Tree, d *flavor.Decl[javaf.Type, javaf.Name], public bool) error {
	switch d.Kind {
	case ir.DeclTypeKind:
		renderClass(tree, d, public, false)
	case ir.DeclTupleKind:
		renderClass(tree, d, public, true)
	case ir.DeclInterfaceKind:
		renderInterface(tree, d, public)
	case ir.DeclEnumKind:
		renderEnum(tree, d, public)
	case ir.DeclServiceKind:
		renderService(tree, d, public)
	default:
		return fmt.Errorf("decl %s: unhandled kind %s", d.Name.Local, d.Kind)
	}

	for _, nested := range d.Nested {
		if err := renderDecl(tree, nested, false); err != nil {
			return err
		}
	}
	return nil
}

func writeDocAndAnnotations(tree *token.Tree, doc, annotations []string) {
	for _, line := range doc {
		tree.Push(token.Lit("// " + line + "\n"))
	}
	for _, ann := range annotations {
		tree.Push(token.Lit(ann + "\n"))
	}
}

func classModifier(public bool) string {
	if public {
		return "public "
	}
	return ""
}

// pushImport records t's import, if any, as a zero-width symbol so
// Emit's gather pass picks it up without the literal text printing
// anything at the point of use (the type name itself is always
// written out verbatim via Lit).
func pushImport(tree *token.Tree, t javaf.Type) {
	if t.Import != "" {
		tree.Push(token.Sym(t.Import, ""))
	}
}
