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
package swiftbackend

import (
	"fmt"
	"strings"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/swiftf"
	"github.com/kraklabs/schemac/pkg/token"
)

// renderService renders a `service` declaration as a Swift protocol,
// one async throwing function per endpoint — async/await is the
// idiomatic shape for a remote call in current Swift, replacing the
// completion-handler style older generators would use. As with the
// other two targets, no transport binding is rendered.
func renderService(tree *token.Tree, d *flavor.Decl[swiftf.Type, swiftf.Name]) {
	writeDoc(tree, d.Doc)
	tree.Push(token.Lit(fmt.Sprintf("protocol %s {\n", d.Name.Local)))

	for _, e := range d.Endpoints {
		var params []string
		for i, ch := range e.Request {
			pushImport(tree, ch.Type)
			name := "req"
			if len(e.Request) > 1 {
				name = fmt.Sprintf("req%d", i+1)
			}
			params = append(params, fmt.Sprintf("%s: %s", name, channelType(ch)))
		}

		ret := ""
		if e.Response != nil {
			pushImport(tree, e.Response.Type)
			ret = " -> " + channelType(*e.Response)
		}

		for _, line := range e.Doc {
			tree.Push(token.Lit(fmt.Sprintf("    /// %s\n", line)))
		}
		tree.Push(token.Lit(fmt.Sprintf(
			"    func %s(%s) async throws%s\n", e.Ident, strings.Join(params, ", "), ret,
		)))
	}

	tree.Push(token.Lit("}\n"))
}

// channelType renders a streamed channel as an AsyncThrowingStream, the
// standard-library primitive for a streamed leg introduced alongside
// async/await.
func channelType(ch flavor.Channel[swiftf.Type]) string {
	if ch.Streaming {
		return fmt.Sprintf("AsyncThrowingStream<%s, Error>", ch.Type.Target)
	}
	return ch.Type.Target
}
