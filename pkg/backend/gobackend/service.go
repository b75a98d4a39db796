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
package gobackend

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/gof"
)

// renderService renders a `service` declaration as a plain Go
// interface, one method per endpoint: the wire transport a concrete
// client/server binds to (HTTP, in spec §4.1's Endpoint.HTTP) is an
// external collaborator's concern, not this target's.
func renderService(f *jen.File, d *flavor.Decl[gof.Type, gof.Name]) {
	var methods []jen.Code
	for _, e := range d.Endpoints {
		var params []jen.Code
		for i, ch := range e.Request {
			name := "req"
			if len(e.Request) > 1 {
				name = fmt.Sprintf("req%d", i+1)
			}
			params = append(params, jen.Id(name).Add(channelType(ch)))
		}

		var returns []jen.Code
		if e.Response != nil {
			returns = append(returns, channelType(*e.Response))
		}
		returns = append(returns, jen.Error())

		method := docStatement(e.Doc, nil)
		method.Id(exported(e.Ident)).Params(params...).Params(returns...)
		methods = append(methods, method)
	}

	st := docStatement(d.Doc, d.Annotations)
	st.Type().Id(d.Name.Local).Interface(methods...)
	f.Add(st)
}

func channelType(ch flavor.Channel[gof.Type]) jen.Code {
	t := goType(ch.Type)
	if ch.Streaming {
		return jen.Op("<-").Chan().Add(t)
	}
	return t
}
