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
package trans

import (
	"sort"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/ir"
)

// GroupByPackage arranges canonical top-level declarations (Result.Decls
// from Environment.Build — one entry per merged identity, already in
// first-insertion order) into the flavor.PackageDecls slices
// flavor.Translate expects: every declaration belonging to one output
// package, in the order it was first reached, packages then sorted by
// name for a deterministic backend write order.
func GroupByPackage(decls []*ir.Decl) []flavor.PackageDecls {
	byKey := make(map[string]*flavor.PackageDecls)
	var order []string

	for _, d := range decls {
		key := d.Name.Package.String()
		group, ok := byKey[key]
		if !ok {
			group = &flavor.PackageDecls{Package: d.Name.Package}
			byKey[key] = group
			order = append(order, key)
		}
		group.Decls = append(group.Decls, d)
	}

	sort.Strings(order)
	out := make([]flavor.PackageDecls, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}
