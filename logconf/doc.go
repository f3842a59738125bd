// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logconf turns a parsed [levelspec.Specification] into a declarative
[ConfigurationDescription]: the handler, root logger, and named loggers an
applier should materialize against a real logging facility.

Build is pure. It never fails for a Specification produced by a successful
parse, never talks to a logging facility, and returns a freshly allocated
description owned solely by the caller.

# Basic Usage

	spec, err := levelspec.Parse("warn,myapp=debug")
	if err != nil {
		// ...
	}
	desc := logconf.Build(spec)

# Format Overrides

Use functional options to replace the default message and time format
templates:

	desc := logconf.Build(spec,
		logconf.WithMessageFormat("{time} [{level}] {logger}: {message}"),
		logconf.WithTimeFormat(time.RFC3339),
	)

# Shape

The description always contains exactly one stream handler bound to
standard error. The root logger carries the specification's default
severity and propagates; each named logger carries its override severity
and does not propagate, since its own level and handler already fully
determine its output. DisableExisting is always false: applying the
description must leave loggers outside the configuration untouched.

Named logger entries are sorted by name, so equal specifications always
produce structurally equal descriptions.
*/
package logconf
