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

// Package swiftbackend is the Swift package compiler (spec §4.4's
// Swift translator): it renders one flavor.Package[swiftf.Type,
// swiftf.Name] into a single .swift source file using pkg/token's
// Tree/Emit pair, the same emitter javabackend drives.
//
// Every output package becomes its own Swift file named after the
// package (spec §5's "Swift uses <PackageName>.swift"), but since
// Swift has no native cross-file scoping for this compiler's package
// tree, swiftf.Flavor flattens every declaration's package and path
// into one global "Package_Type" identifier (see swiftf.flattenName)
// before it ever reaches this file — renderDecl and its helpers just
// emit whatever already-flattened d.Name.Local they're given.
package swiftbackend

import (
	"fmt"
	"path/filepath"

	"github.com/kraklabs/schemac/pkg/backend"
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/token"
)

// Compiler implements backend.Target[swiftf.Type, swiftf.Name].
type Compiler struct{}

// New returns a Swift package compiler.
func New() *Compiler { return &Compiler{} }

func (c *Compiler) Lang() string { return "swift" }

// RenderPackage renders every declaration of pkg, in source order,
// into one file.
func (c *Compiler) RenderPackage(pkg *flavor.Package[swiftf.Type, swiftf.Name]) (backend.FileSpec, error) {
	body := &token.Tree{}
	for _, d := range pkg.Decls {
		if err := renderDecl(body, d); err != nil {
			return backend.FileSpec{}, fmt.Errorf("package %s: %w", pkg.Import, err)
		}
		body.Push(token.Lit("\n"))
	}

	header := "// Code generated by schemac. DO NOT EDIT.\n\n"
	src := header + token.Emit(body, token.SwiftLang{})

	path := filepath.Join(pkg.Import + ".swift")
	return backend.FileSpec{Path: path, Content: []byte(src)}, nil
}

func renderDecl(tree *token.Tree, d *flavor.Decl[swiftf.Type, swiftf.Name]) error {
	switch d.Kind {
	case ir.DeclTypeKind:
		renderStruct(tree, d, false)
	case ir.DeclTupleKind:
		renderStruct(tree, d, true)
	case ir.DeclInterfaceKind:
		renderEnumInterface(tree, d)
	case ir.DeclEnumKind:
		renderEnum(tree, d)
	case ir.DeclServiceKind:
		renderService(tree, d)
	default:
		return fmt.Errorf("decl %s: unhandled kind %s", d.Name.Local, d.Kind)
	}

	for _, nested := range d.Nested {
		if err := renderDecl(tree, nested); err != nil {
			return err
		}
	}
	return nil
}

func writeDoc(tree *token.Tree, doc []string) {
	for _, line := range doc {
		tree.Push(token.Lit("/// " + line + "\n"))
	}
}

func pushImport(tree *token.Tree, t swiftf.Type) {
	if t.Import != "" {
		tree.Push(token.Sym(t.Import, ""))
	}
}
