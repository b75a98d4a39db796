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
package backend

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists a FileSpec. OSWriter is the only production
// implementation; tests substitute an in-memory one.
type Writer interface {
	Write(spec FileSpec) error
}

// OSWriter writes under Root using the temp-file-then-rename sequence
// so a reader never observes a partially-written output file, the
// same pattern the teacher's ingestion manifest manager uses to
// persist project state.
type OSWriter struct {
	Root string
}

func (w OSWriter) Write(spec FileSpec) error {
	path := spec.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.Root, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, spec.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
