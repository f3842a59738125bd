// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package component provides normalization and validation for dotted
component names.

Component names identify one node in a hierarchical logger tree, such as
"myapp.db". This package ensures names follow a consistent identifier
convention before they are stored in a parsed specification.

# Normalization

The double-colon separator is accepted as an input alias for the dot and
rewritten before validation:

	component.Normalize("myapp::core") // "myapp.core"

# Name Validation

Validate component names against the naming rules:

	if err := component.ValidateName("myapp.db"); err != nil {
		// Handle invalid component name
	}

Valid component names must:
  - Be non-empty
  - Consist of one or more dot-separated segments
  - Start each segment with a letter or underscore
  - Continue each segment with letters, digits, or underscores only

# Examples

Valid names:

	"myapp"
	"myapp.db"
	"_internal.cache_2"

Invalid names:

	""            // empty
	"1bad"        // segment starts with a digit
	"my-app"      // dash is not an identifier character
	"myapp."      // trailing separator leaves an empty segment
	".db"         // leading separator leaves an empty segment
*/
package component
