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
	"fmt"

	"github.com/kraklabs/schemac/pkg/flavor"
	"github.com/kraklabs/schemac/pkg/flavor/javaf"
)

// JavaBuilder toggles Lombok's @Builder on every record-shaped
// declaration (spec §4.7's "Builder / Lombok ... modules"), giving the
// generated class a fluent builder without touching field presence or
// finality — a pure class-level annotation addition.
func JavaBuilder() Hooks[javaf.Type, javaf.Name] {
	add := func(d *flavor.Decl[javaf.Type, javaf.Name]) {
		AddAnnotation(d, "@lombok.Builder")
	}
	return Hooks[javaf.Type, javaf.Name]{
		Name:       "java-builder",
		ClassAdded: add,
		TupleAdded: add,
	}
}

// JavaNullable annotates every optional field with @Nullable, the
// toggle spec §4.7 calls the "Nullable module".
func JavaNullable() Hooks[javaf.Type, javaf.Name] {
	return Hooks[javaf.Type, javaf.Name]{
		Name: "java-nullable",
		FieldAdded: func(owner *flavor.Decl[javaf.Type, javaf.Name], f *flavor.Field[javaf.Type]) {
			if f.Optional {
				AddFieldAnnotation(owner, f.Ident, "@javax.annotation.Nullable")
			}
		},
	}
}

// JavaMutable drops the default immutable-field stance by marking the
// class for non-final field generation; the javabackend checks this
// annotation marker (rather than emitting "final") when present.
func JavaMutable() Hooks[javaf.Type, javaf.Name] {
	mark := func(d *flavor.Decl[javaf.Type, javaf.Name]) {
		AddAnnotation(d, fmt.Sprintf("// %s", mutableMarker))
	}
	return Hooks[javaf.Type, javaf.Name]{
		Name:       "java-mutable",
		ClassAdded: mark,
	}
}

// mutableMarker is the sentinel javabackend's class renderer scans for in
// Decl.Annotations to switch field generation from final to mutable
// with setters; it is a comment, never emitted as a real Java
// annotation, so it does not collide with Jackson/Lombok output.
const mutableMarker = "schemac:mutable"
