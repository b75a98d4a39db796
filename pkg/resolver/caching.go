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
package resolver

import "github.com/kraklabs/schemac/pkg/ir"

// Caching wraps a Resolver with an in-memory result cache keyed by the
// required package's string form, so a single compilation's repeated
// `use` of the same package (common across sibling files) doesn't
// re-hit a filesystem/git/http backend. Results are cached for the
// lifetime of the Caching value; callers construct one per
// compilation, matching the Environment's own per-build lifetime.
type Caching struct {
	Resolver
	// OnHit, if set, runs once per cache hit — cmd/schemac's buildAll
	// wires a Prometheus counter here (backend.Metrics.ResolverCacheHits).
	OnHit func()

	cache map[string][]Match
}

// NewCaching wraps r with an empty cache.
func NewCaching(r Resolver) *Caching {
	return &Caching{Resolver: r, cache: make(map[string][]Match)}
}

func (c *Caching) Resolve(required ir.RequiredPackage) ([]Match, error) {
	key := required.String()
	if matches, ok := c.cache[key]; ok {
		if c.OnHit != nil {
			c.OnHit()
		}
		return matches, nil
	}
	matches, err := c.Resolver.Resolve(required)
	if err != nil {
		return nil, err
	}
	c.cache[key] = matches
	return matches, nil
}
