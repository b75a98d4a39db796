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

// Package errors classifies every fatal CLI failure into one of the
// three exit-code categories spec §6 defines — user error, compilation
// error, I/O error — and renders it either as a human-readable
// title/detail/hint block or as JSON for --json callers.
package errors

import (
	"encoding/json"
	"fmt"
	"os"

	stderrors "errors"

	"github.com/kraklabs/schemac/internal/ui"
)

// Category selects the exit code FatalError uses for a SchemaError.
type Category int

const (
	// CategoryUser covers a bad manifest, an unknown --lang, or any
	// other mistake in what the caller asked for. Exit code 1.
	CategoryUser Category = iota
	// CategoryCompilation covers a non-empty diagnostics bundle. Exit
	// code 2. The build/doc/check commands construct this through
	// NewCompilationError from the accumulated diagnostics.
	CategoryCompilation
	// CategoryIO covers filesystem, network, and object-store
	// failures, plus anything unexpected enough to call internal.
	// Exit code 3.
	CategoryIO
)

// SchemaError is a fatal, user-facing error: a short title, a longer
// detail line, a hint suggesting what to do next, and the underlying
// cause if there is one.
type SchemaError struct {
	Category Category
	Title    string
	Detail   string
	Hint     string
	Cause    error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Title, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// ExitCode maps Category to the process exit code spec §6 assigns it.
func (e *SchemaError) ExitCode() int {
	switch e.Category {
	case CategoryUser:
		return 1
	case CategoryCompilation:
		return 2
	default:
		return 3
	}
}

// Format renders the error for terminal or --json output.
func (e *SchemaError) Format(jsonOutput bool) string {
	if jsonOutput {
		payload := struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
			Hint   string `json:"hint,omitempty"`
			Cause  string `json:"cause,omitempty"`
		}{Title: e.Title, Detail: e.Detail, Hint: e.Hint}
		if e.Cause != nil {
			payload.Cause = e.Cause.Error()
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return e.Error()
		}
		return string(data)
	}

	out := fmt.Sprintf("%s: %s\n%s", ui.Label("Error"), e.Title, e.Detail)
	if e.Cause != nil {
		out += fmt.Sprintf("\n%s %v", ui.DimText("caused by:"), e.Cause)
	}
	if e.Hint != "" {
		out += fmt.Sprintf("\n%s %s", ui.Label("Hint:"), e.Hint)
	}
	return out
}

// NewConfigError reports a manifest or configuration file the CLI
// could not load or parse.
func NewConfigError(title, detail, hint string, cause error) *SchemaError {
	return &SchemaError{Category: CategoryUser, Title: title, Detail: detail, Hint: hint, Cause: cause}
}

// NewInputError reports a mistake in what the caller asked for — a
// missing argument, an unsupported flag combination — with no
// underlying cause to chain.
func NewInputError(title, detail, hint string) *SchemaError {
	return &SchemaError{Category: CategoryUser, Title: title, Detail: detail, Hint: hint}
}

// NewCompilationError reports a non-empty diagnostics bundle.
func NewCompilationError(title, detail, hint string) *SchemaError {
	return &SchemaError{Category: CategoryCompilation, Title: title, Detail: detail, Hint: hint}
}

// NewInternalError reports a failure that should not be possible —
// the CLI surfaces it rather than panicking, but it is not the
// caller's fault to fix.
func NewInternalError(title, detail, hint string, cause error) *SchemaError {
	return &SchemaError{Category: CategoryIO, Title: title, Detail: detail, Hint: hint, Cause: cause}
}

// NewPermissionError reports a filesystem permission failure reading
// or writing generated output, a manifest, or the object store.
func NewPermissionError(title, detail, hint string, cause error) *SchemaError {
	return &SchemaError{Category: CategoryIO, Title: title, Detail: detail, Hint: hint, Cause: cause}
}

// NewNetworkError reports a resolver backend that could not reach a
// git remote or an http object store.
func NewNetworkError(title, detail, hint string, cause error) *SchemaError {
	return &SchemaError{Category: CategoryIO, Title: title, Detail: detail, Hint: hint, Cause: cause}
}

// NewDatabaseError reports an object-store read/write failure.
func NewDatabaseError(title, detail, hint string, cause error) *SchemaError {
	return &SchemaError{Category: CategoryIO, Title: title, Detail: detail, Hint: hint, Cause: cause}
}

// FatalError prints err and terminates the process with the exit code
// its category maps to. A plain error not wrapping a *SchemaError
// exits 3, treated as an unclassified I/O failure.
func FatalError(err error, jsonOutput bool) {
	var se *SchemaError
	code := 3
	if stderrors.As(err, &se) {
		fmt.Fprintln(os.Stderr, se.Format(jsonOutput))
		code = se.ExitCode()
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(code)
}
