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

import "unicode"

// mutableMarker mirrors the sentinel comment pkg/listener's JavaMutable
// hook appends to Decl.Annotations; its presence switches field
// generation from final-with-getters to mutable-with-setters.
const mutableMarker = "// schemac:mutable"

func hasMutableMarker(annotations []string) bool {
	for _, a := range annotations {
		if a == mutableMarker {
			return true
		}
	}
	return false
}

// exported capitalizes ident's first rune so it reads as a Java
// method-name suffix ("name" -> "Name" for getName/setName).
func exported(ident string) string {
	if ident == "" {
		return ident
	}
	r := []rune(ident)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
