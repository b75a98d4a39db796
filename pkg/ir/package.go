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

// Package ir implements the compiler's core, flavor-agnostic
// intermediate representation: packages, names, declarations, field
// and type trees, and the merge discipline that lets a schema be split
// across files sharing one fully-qualified name.
//
// No third-party semver library appears anywhere in the example pack
// this module was grounded on, so Version/VersionRange below are a
// deliberately small hand-rolled comparator rather than a dependency —
// recorded in DESIGN.md as the one stdlib-only exception in this
// package.
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Package is an ordered sequence of identifier parts, e.g. ["foo","bar"]
// for the schema package `foo.bar`.
type Package []string

// String renders the package as a dot-joined path.
func (p Package) String() string {
	return strings.Join(p, ".")
}

// Equal reports whether two packages have the same parts in the same order.
func (p Package) Equal(other Package) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ParsePackage splits a dot-separated package path into parts.
func ParsePackage(s string) Package {
	if s == "" {
		return nil
	}
	return Package(strings.Split(s, "."))
}

// Version is a semantic version, compared numerically on
// major/minor/patch and then lexically on pre-release.
type Version struct {
	Major, Minor, Patch int
	Pre                 string
}

// ParseVersion parses "MAJOR[.MINOR[.PATCH]][-PRE]".
func ParseVersion(s string) (Version, error) {
	var v Version
	rest := s
	if idx := strings.IndexByte(rest, '-'); idx >= 0 {
		v.Pre = rest[idx+1:]
		rest = rest[:idx]
	}
	parts := strings.Split(rest, ".")
	nums := [3]*int{&v.Major, &v.Minor, &v.Patch}
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("ir: invalid version %q", s)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("ir: invalid version %q: %w", s, err)
		}
		*nums[i] = n
	}
	return v, nil
}

// String renders the version back to "MAJOR.MINOR.PATCH[-PRE]".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	return s
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than other. A non-empty Pre sorts before the same numeric version
// with no Pre, matching common semver precedence.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return cmpInt(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return cmpInt(v.Minor, other.Minor)
	}
	if v.Patch != other.Patch {
		return cmpInt(v.Patch, other.Patch)
	}
	switch {
	case v.Pre == other.Pre:
		return 0
	case v.Pre == "":
		return 1
	case other.Pre == "":
		return -1
	default:
		return strings.Compare(v.Pre, other.Pre)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// VersionedPackage pairs a package with the concrete version a
// resolver has chosen for it. Version is nil for a package that
// carries no version; the Environment gives every package it loads,
// the root included, the version its resolver chose.
type VersionedPackage struct {
	Package Package
	Version *Version
}

// String renders "pkg.path@version" or just "pkg.path" when unversioned.
func (vp VersionedPackage) String() string {
	if vp.Version == nil {
		return vp.Package.String()
	}
	return fmt.Sprintf("%s@%s", vp.Package.String(), vp.Version.String())
}

// Equal compares package parts and versions: two unversioned packages
// are equal when their parts match, and a versioned package never
// equals an unversioned one.
func (vp VersionedPackage) Equal(other VersionedPackage) bool {
	if !vp.Package.Equal(other.Package) {
		return false
	}
	switch {
	case vp.Version == nil && other.Version == nil:
		return true
	case vp.Version == nil || other.Version == nil:
		return false
	default:
		return vp.Version.Compare(*other.Version) == 0
	}
}

// VersionRange constrains which versions of a RequiredPackage satisfy
// an import. It supports the operators "=", ">", ">=", "<", "<=" and a
// comma-separated conjunction of them (e.g. ">=1.2.0,<2.0.0"); an empty
// range matches any version.
type VersionRange struct {
	raw         string
	constraints []rangeConstraint
}

type rangeOp int

const (
	opEQ rangeOp = iota
	opGT
	opGE
	opLT
	opLE
)

type rangeConstraint struct {
	op      rangeOp
	version Version
}

// ParseVersionRange parses a comma-separated constraint list.
func ParseVersionRange(s string) (VersionRange, error) {
	vr := VersionRange{raw: s}
	s = strings.TrimSpace(s)
	if s == "" {
		return vr, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		op, verStr := splitOp(part)
		ver, err := ParseVersion(verStr)
		if err != nil {
			return VersionRange{}, fmt.Errorf("ir: invalid version range %q: %w", s, err)
		}
		vr.constraints = append(vr.constraints, rangeConstraint{op: op, version: ver})
	}
	return vr, nil
}

func splitOp(part string) (rangeOp, string) {
	switch {
	case strings.HasPrefix(part, ">="):
		return opGE, strings.TrimSpace(part[2:])
	case strings.HasPrefix(part, "<="):
		return opLE, strings.TrimSpace(part[2:])
	case strings.HasPrefix(part, ">"):
		return opGT, strings.TrimSpace(part[1:])
	case strings.HasPrefix(part, "<"):
		return opLT, strings.TrimSpace(part[1:])
	case strings.HasPrefix(part, "="):
		return opEQ, strings.TrimSpace(part[1:])
	default:
		return opEQ, strings.TrimSpace(part)
	}
}

// Matches reports whether v satisfies every constraint in the range.
func (vr VersionRange) Matches(v Version) bool {
	for _, c := range vr.constraints {
		cmp := v.Compare(c.version)
		ok := false
		switch c.op {
		case opEQ:
			ok = cmp == 0
		case opGT:
			ok = cmp > 0
		case opGE:
			ok = cmp >= 0
		case opLT:
			ok = cmp < 0
		case opLE:
			ok = cmp <= 0
		}
		if !ok {
			return false
		}
	}
	return true
}

// String returns the original range text as parsed.
func (vr VersionRange) String() string {
	return vr.raw
}

// RequiredPackage pairs a package with the version range an import
// statement or manifest entry asked the resolver to satisfy.
type RequiredPackage struct {
	Package Package
	Range   VersionRange
}

// String renders "pkg.path RANGE" or just "pkg.path" for an open range.
func (rp RequiredPackage) String() string {
	if rp.Range.raw == "" {
		return rp.Package.String()
	}
	return fmt.Sprintf("%s %s", rp.Package.String(), rp.Range.raw)
}
