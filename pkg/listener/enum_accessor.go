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
package listener

import (
	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
)

// EnumAccessor annotates the javabackend's fixed enum accessor/factory
// method pair (spec §4.7's "Enum modules"): "value" as the Jackson
// value provider, "fromValue" as the creator.
func EnumAccessor() Hooks[javaf.Type, javaf.Name] {
	return Hooks[javaf.Type, javaf.Name]{
		Name: "java-enum-accessor",
		EnumAdded: func(d *flavor.Decl[javaf.Type, javaf.Name]) {
			AddMethodAnnotation(d, "value", "@com.fasterxml.jackson.annotation.JsonValue")
			AddMethodAnnotation(d, "fromValue", "@com.fasterxml.jackson.annotation.JsonCreator")
		},
	}
}
