// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("ENVLOG")

# Testing

The Reader interface allows substituting the process environment in tests.
MapReader serves table-driven tests with fixed values:

	reader := env.MapReader{"ENVLOG": "warn,myapp=debug"}

and a generated mock is available in the mocks sub-package for tests that
assert on call counts:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("ENVLOG").Return("debug")

# Design

Production code accepts an env.Reader; tests substitute MapReader or the
generated mock. Nothing in this module reads the process environment
directly outside OSReader.
*/
package env
