// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package component provides normalization and validation for dotted
// component names.
package component

import (
	"fmt"
	"regexp"
	"strings"
)

var validNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Normalize replaces every double-colon separator with a single dot.
// Stored component names are always dot-separated; no double-colon form
// survives normalization.
func Normalize(name string) string {
	return strings.ReplaceAll(name, "::", ".")
}

// ValidateName validates that a component name is a dot-separated sequence
// of identifier segments, where each segment starts with a letter or
// underscore followed by letters, digits, or underscores.
func ValidateName(name string) error {
	if name == "" || strings.TrimSpace(name) == "" {
		return fmt.Errorf("component name cannot be empty or consist only of whitespace")
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("component name must be dot-separated identifier segments: %q", name)
	}

	return nil
}
