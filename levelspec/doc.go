// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package levelspec parses compact log-level specification strings of the kind
conventionally supplied through a single environment variable, such as:

	warn,myapp=info,myapp.db=debug

A specification is a comma-separated list of tokens. A bare level name sets
the default verbosity for every component; a component=level pair overrides
the verbosity of one dotted component and everything beneath it.

# Grammar

	spec      := token (',' token)*
	token     := level | component '=' level
	level     := trace | debug | info | warn | warning | error | critical | off
	component := segment (('.'|'::') segment)*
	segment   := [A-Za-z_][A-Za-z0-9_]*

Level names are case-insensitive. Whitespace around commas and '=' is
ignored, as are empty tokens from doubled or trailing commas. The
double-colon separator is accepted on input and normalized to dots, so
"myapp::core=debug" and "myapp.core=debug" parse identically.

# Usage

	spec, err := levelspec.Parse(os.Getenv("ENVLOG"))
	if err != nil {
		// Handle the malformed specification.
	}
	// spec.Default and spec.Components drive logger configuration.

An empty or whitespace-only input is valid and yields the default
[Specification]: WARNING with no component overrides.

# Errors

Parse failures wrap one of the sentinel errors [ErrInvalidLevel],
[ErrInvalidComponentName], [ErrDuplicateDefault], or [ErrMalformedToken],
so callers can classify failures with errors.Is. A single bad token fails
the whole specification; there is no partial recovery.

# Purity

Parse performs no I/O and touches no shared state. Equal inputs always
yield equal Specifications, so the parser can back validation tooling
without any isolation between calls.
*/
package levelspec
