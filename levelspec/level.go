// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package levelspec

import (
	"fmt"
	"strings"
)

// Severity is the verbosity rank a level name resolves to. The numeric
// values follow the conventional 10..50 scale so that ordering comparisons
// work directly on the type.
type Severity int

// Severities, ordered from most to least verbose.
const (
	SeverityDebug    Severity = 10
	SeverityInfo     Severity = 20
	SeverityWarning  Severity = 30
	SeverityError    Severity = 40
	SeverityCritical Severity = 50
)

// String returns the canonical upper-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("SEVERITY(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler so severities serialize as
// names rather than integers in JSON and YAML.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any name
// recognized by ParseSeverity, in any casing.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// ParseSeverity maps a level name to its Severity. Names are
// case-insensitive. "trace" maps to SeverityDebug and "off" to
// SeverityCritical (suppressing everything below critical); every other
// recognized name maps to the severity of the same name. An unrecognized
// name returns ErrInvalidLevel, never a silent default.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "trace", "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "critical", "off":
		return SeverityCritical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}
