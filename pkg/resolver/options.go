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

import "time"

// Options configures how the Environment builds its Resolver from a
// manifest's `repository` section. Only the filesystem path list is
// consumed by this module today; the network fields exist so a
// manifest can be written once and still validate even though the
// http/git backends that would read them are out of scope here.
type Options struct {
	// Paths lists local filesystem roots searched in order, each laid
	// out as <root>/<pkg/parts>/<version>/lib.schema.
	Paths []string

	// RemoteURL is the repository URL from the manifest's `repository`
	// section, when given. NewResolver accepts a URL that starts with
	// '/' or '.' but does not search it (only Paths are searched); any
	// other URL, file:// and the git+ssh/git+https/http(s) schemes
	// included, makes NewResolver return ErrBackendUnavailable rather
	// than silently ignoring the configured remote.
	RemoteURL string

	// FetchTimeout bounds a single object-store Get call; zero means
	// no timeout.
	FetchTimeout time.Duration

	// ObjectStoreRoot is the local cache directory content-addressed
	// blobs are written to and read from.
	ObjectStoreRoot string
}

// DefaultOptions returns the zero-configuration Options: no search
// paths, no remote, no timeout.
func DefaultOptions() Options {
	return Options{}
}

// NewResolver builds the Resolver this module can actually serve for
// opts: a FilesystemResolver over opts.Paths. RemoteURL schemes this
// module doesn't implement report ErrBackendUnavailable instead of
// being silently ignored.
func NewResolver(opts Options) (Resolver, error) {
	if opts.RemoteURL != "" && !isLocalURL(opts.RemoteURL) {
		return nil, &ErrBackendUnavailable{URL: opts.RemoteURL}
	}
	return NewFilesystemResolver(opts.Paths...), nil
}

func isLocalURL(url string) bool {
	return len(url) == 0 || url[0] == '/' || url[0] == '.'
}

// ErrBackendUnavailable is returned when a manifest names a remote
// repository scheme (git+ssh, git+https, http, https) this module
// does not implement a backend for.
type ErrBackendUnavailable struct {
	URL string
}

func (e *ErrBackendUnavailable) Error() string {
	return "resolver: no backend available for repository URL " + e.URL
}
