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

// MergeDecl merges src into dst in place, following the per-kind
// contracts of the merge discipline: field lists are a disjoint union
// by identifier, code blocks append in source order, interface
// sub-types map-merge by discriminator key, enums accept only new code
// blocks, and merging declarations of different kinds is always an
// error.
//
// It reports every conflict it finds to diags (rather than stopping at
// the first) and returns false if any conflict was found, in which
// case dst must be treated as not merged — the caller emits no output
// for the owning package.
func MergeDecl(dst, src *Decl, diags *diagnostics.Diagnostics) bool {
	if dst.Kind != src.Kind {
		diags.Errorf(src.Span, "cannot merge %s declaration %s into existing %s declaration %s", src.Kind, src.Name, dst.Kind, dst.Name)
		diags.Infof(dst.Span, "%s first declared here", dst.Name)
		return false
	}

	switch dst.Kind {
	case DeclTypeKind:
		fields, ok := mergeFields(dst.Type.Fields, src.Type.Fields, diags)
		dst.Type.Fields = fields
		dst.Type.Code = append(dst.Type.Code, src.Type.Code...)
		dst.Type.Nested = append(dst.Type.Nested, src.Type.Nested...)
		return ok

	case DeclTupleKind:
		fields, ok := mergeFields(dst.Tuple.Fields, src.Tuple.Fields, diags)
		dst.Tuple.Fields = fields
		dst.Tuple.Code = append(dst.Tuple.Code, src.Tuple.Code...)
		dst.Tuple.Nested = append(dst.Tuple.Nested, src.Tuple.Nested...)
		return ok

	case DeclInterfaceKind:
		common, ok := mergeFields(dst.Interface.Common, src.Interface.Common, diags)
		dst.Interface.Common = common
		if !mergeSubTypes(dst.Interface, src.Interface, diags) {
			ok = false
		}
		return ok

	case DeclEnumKind:
		ok := true
		if len(src.Enum.Variants) > 0 {
			diags.Errorf(src.Enum.Variants[0].Span, "cannot add variants to enum %s after its first declaration", dst.Name)
			diags.Infof(dst.Span, "%s first declared here", dst.Name)
			ok = false
		}
		dst.Enum.Code = append(dst.Enum.Code, src.Enum.Code...)
		return ok

	case DeclServiceKind:
		endpoints, ok := mergeEndpoints(dst.Service.Endpoints, src.Service.Endpoints, diags)
		dst.Service.Endpoints = endpoints
		return ok

	default:
		return true
	}
}

// mergeFields performs the disjoint-union-by-identifier merge shared
// by Type, Tuple, and SubType field lists.
func mergeFields(dst, src []Field, diags *diagnostics.Diagnostics) ([]Field, bool) {
	index := make(map[string]int, len(dst))
	for i, f := range dst {
		index[f.Ident] = i
	}

	ok := true
	result := dst
	for _, f := range src {
		if existingIdx, exists := index[f.Ident]; exists {
			diags.Errorf(f.Span, "field %q conflicts with an existing field of the same name", f.Ident)
			diags.Infof(result[existingIdx].Span, "%q first declared here", f.Ident)
			ok = false
			continue
		}
		result = append(result, f)
		index[f.Ident] = len(result) - 1
	}
	return result, ok
}

// mergeEndpoints mirrors mergeFields for a service's endpoint list.
func mergeEndpoints(dst, src []Endpoint, diags *diagnostics.Diagnostics) ([]Endpoint, bool) {
	index := make(map[string]int, len(dst))
	for i, e := range dst {
		index[e.Ident] = i
	}

	ok := true
	result := dst
	for _, e := range src {
		if existingIdx, exists := index[e.Ident]; exists {
			diags.Errorf(e.Span, "endpoint %q conflicts with an existing endpoint of the same name", e.Ident)
			diags.Infof(result[existingIdx].Span, "%q first declared here", e.Ident)
			ok = false
			continue
		}
		result = append(result, e)
		index[e.Ident] = len(result) - 1
	}
	return result, ok
}

// mergeSubTypes map-merges src's sub-types into dst by discriminator
// key: a key absent from dst is added wholesale, a key present in both
// recurses into a field-list merge of the two sub-type bodies.
func mergeSubTypes(dst, src *InterfaceBody, diags *diagnostics.Diagnostics) bool {
	if dst.SubTypes == nil {
		dst.SubTypes = make(map[string]*SubType, len(src.SubTypes))
	}

	ok := true
	for _, key := range src.SubTypeOrder {
		srcSub := src.SubTypes[key]
		dstSub, exists := dst.SubTypes[key]
		if !exists {
			dst.SubTypes[key] = srcSub
			dst.SubTypeOrder = append(dst.SubTypeOrder, key)
			continue
		}
		fields, fok := mergeFields(dstSub.Fields, srcSub.Fields, diags)
		dstSub.Fields = fields
		dstSub.Nested = append(dstSub.Nested, srcSub.Nested...)
		if !fok {
			ok = false
		}
	}
	return ok
}
