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
package ir

import "github.com/kraklabs/schemac/pkg/diagnostics"

// Validate checks the shape invariants that must hold on a freshly
// converted declaration, before it ever reaches merge: field
// identifiers unique within a container (invariant 2), enum variant
// identifiers and explicit values unique (invariant 3), and
// interface sub-types not shadowing a common field (invariant 4).
//
// It reports every violation found and returns false if any were,
// mirroring MergeDecl's report-everything-then-fail shape.
func Validate(d *Decl, diags *diagnostics.Diagnostics) bool {
	switch d.Kind {
	case DeclTypeKind:
		return validateUniqueFields(d.Type.Fields, diags)
	case DeclTupleKind:
		return validateUniqueFields(d.Tuple.Fields, diags)
	case DeclInterfaceKind:
		return validateInterface(d.Interface, diags)
	case DeclEnumKind:
		return validateEnum(d.Enum, diags)
	case DeclServiceKind:
		return validateUniqueEndpoints(d.Service.Endpoints, diags)
	default:
		return true
	}
}

func validateUniqueFields(fields []Field, diags *diagnostics.Diagnostics) bool {
	ok := true
	seen := make(map[string]Field, len(fields))
	for _, f := range fields {
		if prior, exists := seen[f.Ident]; exists {
			diags.Errorf(f.Span, "duplicate field %q", f.Ident)
			diags.Infof(prior.Span, "%q first declared here", f.Ident)
			ok = false
			continue
		}
		seen[f.Ident] = f
	}
	return ok
}

func validateUniqueEndpoints(endpoints []Endpoint, diags *diagnostics.Diagnostics) bool {
	ok := true
	seen := make(map[string]Endpoint, len(endpoints))
	for _, e := range endpoints {
		if prior, exists := seen[e.Ident]; exists {
			diags.Errorf(e.Span, "duplicate endpoint %q", e.Ident)
			diags.Infof(prior.Span, "%q first declared here", e.Ident)
			ok = false
			continue
		}
		seen[e.Ident] = e
	}
	return ok
}

func validateEnum(body *EnumBody, diags *diagnostics.Diagnostics) bool {
	ok := true
	seenIdent := make(map[string]Variant, len(body.Variants))
	seenValue := make(map[string]Variant, len(body.Variants))
	for _, v := range body.Variants {
		if prior, exists := seenIdent[v.Ident]; exists {
			diags.Errorf(v.Span, "duplicate variant %q", v.Ident)
			diags.Infof(prior.Span, "%q first declared here", v.Ident)
			ok = false
		} else {
			seenIdent[v.Ident] = v
		}
		if v.Value == nil {
			continue
		}
		if prior, exists := seenValue[*v.Value]; exists {
			diags.Errorf(v.Span, "duplicate explicit value %q", *v.Value)
			diags.Infof(prior.Span, "value %q first used here", *v.Value)
			ok = false
		} else {
			seenValue[*v.Value] = v
		}
	}
	return ok
}

func validateInterface(body *InterfaceBody, diags *diagnostics.Diagnostics) bool {
	ok := true
	common := make(map[string]Field, len(body.Common))
	for _, f := range body.Common {
		common[f.Ident] = f
	}
	if !validateUniqueFields(body.Common, diags) {
		ok = false
	}
	for _, key := range body.SubTypeOrder {
		sub := body.SubTypes[key]
		if !validateUniqueFields(sub.Fields, diags) {
			ok = false
		}
		for _, f := range sub.Fields {
			if commonField, shadows := common[f.Ident]; shadows {
				diags.Errorf(f.Span, "sub-type field %q shadows common field of the same name", f.Ident)
				diags.Infof(commonField.Span, "%q declared as a common field here", f.Ident)
				ok = false
			}
		}
	}
	return ok
}
