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

// Package ui formats schemac's CLI output: headers, labels, and
// severity-colored text. Color is enabled only when stdout is a real
// terminal and neither --no-color nor NO_COLOR asked it off.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	headerColor    = color.New(color.FgCyan, color.Bold)
	subHeaderColor = color.New(color.FgCyan)
	labelColor     = color.New(color.FgWhite, color.Bold)
	dimColor       = color.New(color.Faint)
	countColor     = color.New(color.FgYellow, color.Bold)
	successColor   = color.New(color.FgGreen, color.Bold)
	warningColor   = color.New(color.FgYellow, color.Bold)
	infoColor      = color.New(color.FgBlue)
)

// InitColors turns color output off when the caller passed --no-color,
// NO_COLOR is set, or stdout isn't a terminal fatih/color itself
// wouldn't otherwise detect (e.g. piped output on Windows).
func InitColors(disable bool) {
	if disable || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
		return
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// Header prints a bold top-level section title.
func Header(title string) {
	fmt.Println()
	headerColor.Println(title)
}

// SubHeader prints a secondary section title, one level below Header.
func SubHeader(title string) {
	subHeaderColor.Println(title)
}

// Label renders a field name for "Label: value" lines.
func Label(text string) string {
	return labelColor.Sprint(text)
}

// DimText renders secondary, low-emphasis text.
func DimText(text string) string {
	return dimColor.Sprint(text)
}

// CountText renders an integer count for summary lines.
func CountText(n int) string {
	return countColor.Sprint(n)
}

// Info prints an informational line.
func Info(msg string) { infoColor.Println(msg) }

// Infof prints a formatted informational line.
func Infof(format string, args ...interface{}) { infoColor.Printf(format+"\n", args...) }

// Success prints a success line.
func Success(msg string) { successColor.Println(msg) }

// Successf prints a formatted success line.
func Successf(format string, args ...interface{}) { successColor.Printf(format+"\n", args...) }

// Warning prints a warning line to stderr.
func Warning(msg string) { warningColor.Fprintln(os.Stderr, msg) }

// Warningf prints a formatted warning line to stderr.
func Warningf(format string, args ...interface{}) {
	warningColor.Fprintf(os.Stderr, format+"\n", args...)
}
