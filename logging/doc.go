// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging materializes a [logconf.ConfigurationDescription] against
[log/slog], producing named component loggers that share one stderr handler.

# Basic Usage

	spec, _ := levelspec.Parse("warn,myapp=debug")
	factory := logging.NewFactory(logconf.Build(spec))

	log := factory.Logger("myapp.db")
	log.Debug("connection pool created", "size", 10)

A logger's effective level is resolved hierarchically: the longest
configured dotted prefix of its name wins, and the root level applies when
no prefix is configured. "myapp.db" above inherits the "myapp" override.

Each named logger owns its effective level outright, so records are
emitted exactly once; nothing propagates to ancestor loggers.

# Output Format

Records render through the description's message template, where {time},
{level}, {logger}, and {message} are substituted and {level} is
left-padded to eight characters:

	2026-08-31 10:30:00 DEBUG    myapp.db connection pool created size=10

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	factory := logging.NewFactory(desc, logging.WithOutput(&buf))
	factory.Logger("myapp").Info("test message")
	// inspect buf.String()
*/
package logging
