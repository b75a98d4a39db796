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
package javabackend

import (
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderService renders a `service` declaration as a plain Java
// interface, one method per endpoint. As in gobackend, the wire
// transport a concrete client/server binds to is an external
// collaborator's concern, not this target's.
func renderService(tree *token.Tree, d *flavor.Decl[javaf.Type, javaf.Name], public bool) {
	writeDocAndAnnotations(tree, d.Doc, d.Annotations)
	tree.Push(token.Lit(fmt.Sprintf("%sinterface %s {\n", classModifier(public), d.Name.Local)))

	for _, e := range d.Endpoints {
		var params []string
		for i, ch := range e.Request {
			pushImport(tree, ch.Type)
			name := "req"
			if len(e.Request) > 1 {
				name = fmt.Sprintf("req%d", i+1)
			}
			params = append(params, fmt.Sprintf("%s %s", channelType(ch), name))
		}

		ret := "void"
		if e.Response != nil {
			pushImport(tree, e.Response.Type)
			ret = channelType(*e.Response)
		}

		for _, line := range e.Doc {
			tree.Push(token.Lit(fmt.Sprintf("    // %s\n", line)))
		}
		tree.Push(token.Lit(fmt.Sprintf("    %s %s(%s);\n", ret, e.Ident, strings.Join(params, ", "))))
	}

	tree.Push(token.Lit("}\n"))
}

// channelType renders a streamed channel as java.util.stream.Stream<T>,
// the closest Java standard-library analogue to a streaming endpoint
// leg; a non-streaming channel renders as its bare element type.
func channelType(ch flavor.Channel[javaf.Type]) string {
	if ch.Streaming {
		return fmt.Sprintf("java.util.stream.Stream<%s>", ch.Type.Code)
	}
	return ch.Type.Code
}
