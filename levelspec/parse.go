// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package levelspec

import (
	"fmt"
	"strings"

	"github.com/stacklok/envlog/validation/component"
)

// Specification is the parsed, validated form of a level specification
// string. It is freshly allocated on every Parse call and never retained
// or mutated by this package after being returned.
type Specification struct {
	// Default is the severity applied to every component without an
	// explicit override. WARNING when the input supplies none.
	Default Severity

	// Components maps normalized dot-separated component names to their
	// severities.
	Components map[string]Severity
}

// Parse parses a comma-separated level specification string into a
// Specification. An empty or whitespace-only input is valid and yields the
// default Specification (WARNING, no overrides).
//
// A later component=level token overrides an earlier one for the same
// normalized component name. A second bare level token is rejected with
// ErrDuplicateDefault.
func Parse(spec string) (Specification, error) {
	out := Specification{
		Default:    SeverityWarning,
		Components: make(map[string]Severity),
	}

	haveDefault := false
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if !strings.Contains(token, "=") {
			sev, err := ParseSeverity(token)
			if err != nil {
				return Specification{}, err
			}
			if haveDefault {
				return Specification{}, fmt.Errorf("%w: second default level %q", ErrDuplicateDefault, token)
			}
			out.Default = sev
			haveDefault = true
			continue
		}

		if strings.Count(token, "=") > 1 {
			return Specification{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		name, level, _ := strings.Cut(token, "=")
		name = strings.TrimSpace(name)
		level = strings.TrimSpace(level)
		if name == "" || level == "" {
			return Specification{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}

		name = component.Normalize(name)
		if err := component.ValidateName(name); err != nil {
			return Specification{}, fmt.Errorf("%w: %v", ErrInvalidComponentName, err)
		}
		sev, err := ParseSeverity(level)
		if err != nil {
			return Specification{}, err
		}

		// Last write wins for duplicate component names.
		out.Components[name] = sev
	}

	return out, nil
}
