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
package workspace

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kraklabs/schemac/pkg/ir"
)

// watchSkipDirs lists directory base names a recursive watch never
// descends into: version control, dependency, and build-output trees
// that only add descriptor pressure and reload noise.
var watchSkipDirs = map[string]bool{
	".git": true, "node_modules": true, "vendor": true,
	"dist": true, "build": true, "out": true,
}

const watchDebounce = 2 * time.Second

// Watch follows every source file under dir and calls Reload(root)
// after a burst of changes settles, until ctx is canceled or the
// watcher itself fails. It blocks the calling goroutine, so a caller
// wanting a background watch runs it in its own goroutine.
//
// Reload runs on the same goroutine that drives the event loop, never
// concurrently with itself or with a caller's own Edit/Index calls
// on this Workspace — the caller is responsible for not touching this
// Workspace from another goroutine while Watch runs, matching the
// single-threaded contract the rest of this package holds to.
func (w *Workspace) Watch(ctx context.Context, dir string, root ir.RequiredPackage) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := addWatchDirs(watcher, dir, w.logger)
	w.logger.Info("workspace.watch.started", "dir", dir, "watched_dirs", watched)

	var debounceTimer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.logger.Debug("workspace.watch.event", "path", event.Name, "op", event.Op.String())
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(watchDebounce)
			timerCh = debounceTimer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("workspace.watch.error", "error", err)

		case <-timerCh:
			timerCh = nil
			if err := w.Reload(root); err != nil {
				w.logger.Warn("workspace.watch.reload_failed", "error", err)
			} else {
				w.logger.Info("workspace.watch.reloaded", "root", root.Package.String())
			}
		}
	}
}

// addWatchDirs walks dir recursively, registering every directory not
// named in watchSkipDirs or hidden, and returns the count registered.
func addWatchDirs(watcher *fsnotify.Watcher, dir string, logger *slog.Logger) int {
	count := 0
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if watchSkipDirs[base] || (strings.HasPrefix(base, ".") && base != ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			logger.Warn("workspace.watch.add_failed", "path", path, "error", err)
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return nil
		}
		count++
		return nil
	})
	return count
}
