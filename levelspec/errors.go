// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package levelspec

import "errors"

// Validation errors returned by Parse.
var (
	// ErrInvalidLevel indicates a level name outside the recognized table.
	ErrInvalidLevel = errors.New("invalid level name")

	// ErrInvalidComponentName indicates a component name that does not match
	// the dotted-identifier pattern after separator normalization.
	ErrInvalidComponentName = errors.New("invalid component name")

	// ErrDuplicateDefault indicates more than one bare level token in a
	// specification.
	ErrDuplicateDefault = errors.New("only one default level allowed")

	// ErrMalformedToken indicates a token that cannot be split into a
	// component half and a level half.
	ErrMalformedToken = errors.New("malformed token")
)
