// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"testing"
)

func TestOSReader_Getenv(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	// Cannot run in parallel because it modifies environment variables
	testKey := "ENVLOG_TEST_VARIABLE"
	testValue := "warn,myapp=debug"

	originalValue, wasSet := os.LookupEnv(testKey)
	os.Setenv(testKey, testValue)
	t.Cleanup(func() {
		if wasSet {
			os.Setenv(testKey, originalValue)
		} else {
			os.Unsetenv(testKey)
		}
	})

	reader := &OSReader{}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "existing environment variable",
			key:  testKey,
			want: testValue,
		},
		{
			name: "non-existing environment variable",
			key:  "ENVLOG_NONEXISTENT_VARIABLE_12345",
			want: "",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests { //nolint:paralleltest // Test modifies environment variables
		t.Run(tt.name, func(t *testing.T) {
			got := reader.Getenv(tt.key)
			if got != tt.want {
				t.Errorf("OSReader.Getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapReader_Getenv(t *testing.T) {
	t.Parallel()

	reader := MapReader{"ENVLOG": "debug"}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "mapped key",
			key:  "ENVLOG",
			want: "debug",
		},
		{
			name: "unmapped key",
			key:  "OTHER",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := reader.Getenv(tt.key)
			if got != tt.want {
				t.Errorf("MapReader.Getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestReader_InterfaceCompliance ensures both implementations satisfy the Reader interface
func TestReader_InterfaceCompliance(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
	var _ Reader = MapReader{}
	// If this compiles, the test passes
}
