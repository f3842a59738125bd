// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/envlog/levelspec"
	"github.com/stacklok/envlog/logconf"
)

func buildDesc(t *testing.T, spec string, opts ...logconf.Option) logconf.ConfigurationDescription {
	t.Helper()
	parsed, err := levelspec.Parse(spec)
	require.NoError(t, err)
	return logconf.Build(parsed, opts...)
}

func TestFactory_EffectiveLevels(t *testing.T) {
	t.Parallel()

	const spec = "warn,myapp=info,myapp.db=debug,requests=error"

	tests := []struct {
		name        string
		logger      string
		level       slog.Level
		shouldWrite bool
	}{
		{"override accepts its level", "myapp", slog.LevelInfo, true},
		{"override filters below its level", "myapp", slog.LevelDebug, false},
		{"child inherits deepest ancestor", "myapp.db", slog.LevelDebug, true},
		{"sibling inherits parent override", "myapp.api", slog.LevelInfo, true},
		{"sibling filters below parent override", "myapp.api", slog.LevelDebug, false},
		{"error override filters warn", "requests", slog.LevelWarn, false},
		{"error override accepts error", "requests", slog.LevelError, true},
		{"unconfigured component uses default", "somelib", slog.LevelInfo, false},
		{"unconfigured component accepts default level", "somelib", slog.LevelWarn, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			factory := NewFactory(buildDesc(t, spec), WithOutput(&buf))

			factory.Logger(tc.logger).Log(context.TODO(), tc.level, "test")

			if tc.shouldWrite {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestFactory_SingleEmission(t *testing.T) {
	t.Parallel()

	// A record from a named logger must appear exactly once; it does not
	// also surface through ancestor loggers sharing the writer.
	var buf bytes.Buffer
	factory := NewFactory(buildDesc(t, "warn,myapp=info,myapp.db=debug"), WithOutput(&buf))

	factory.Logger("myapp")
	factory.Logger("")
	factory.Logger("myapp.db").Info("connected")

	assert.Equal(t, 1, strings.Count(buf.String(), "connected"))
}

func TestFactory_DefaultFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	factory := NewFactory(buildDesc(t, "info"), WithOutput(&buf))

	factory.Logger("myapp").Info("hello", "key", "value")

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"), "output should be a single line")

	// Timestamp renders with the default layout.
	layout := logconf.DefaultTimeFormat
	require.GreaterOrEqual(t, len(out), len(layout))
	_, err := time.Parse(layout, out[:len(layout)])
	assert.NoError(t, err, "line should start with a %q timestamp", layout)

	// Level is left-padded to eight characters.
	assert.Contains(t, out, " INFO     myapp hello")
	assert.Contains(t, out, "key=value")
}

func TestFactory_CustomMessageFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	desc := buildDesc(t, "info", logconf.WithMessageFormat("{level} {logger}: {message}"))
	factory := NewFactory(desc, WithOutput(&buf))

	factory.Logger("myapp").Warn("look out")

	assert.Equal(t, "WARNING  myapp: look out\n", buf.String())
}

func TestFactory_RootLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	factory := NewFactory(buildDesc(t, "info"), WithOutput(&buf))

	factory.Logger("").Info("starting")

	assert.Contains(t, buf.String(), " root starting")
}

func TestFactory_CachesLoggers(t *testing.T) {
	t.Parallel()

	factory := NewFactory(buildDesc(t, "info"), WithOutput(&bytes.Buffer{}))

	assert.Same(t, factory.Logger("myapp"), factory.Logger("myapp"))
	assert.NotSame(t, factory.Logger("myapp"), factory.Logger("myapp.db"))
}

func TestFactory_OffSuppressesBelowCritical(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	factory := NewFactory(buildDesc(t, "off"), WithOutput(&buf))
	log := factory.Logger("myapp")

	log.Error("suppressed")
	assert.Empty(t, buf.String())

	log.Log(context.TODO(), slog.LevelError+4, "kept")
	assert.Contains(t, buf.String(), "CRITICAL myapp kept")
}

func TestFactory_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	factory := NewFactory(buildDesc(t, "info"), WithOutput(&buf))

	log := factory.Logger("myapp").With("app", "demo").WithGroup("req")
	log.Info("handled", "id", 7)

	out := buf.String()
	assert.Contains(t, out, "app=demo")
	assert.Contains(t, out, "req.id=7")
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sev  levelspec.Severity
		want slog.Level
	}{
		{levelspec.SeverityDebug, slog.LevelDebug},
		{levelspec.SeverityInfo, slog.LevelInfo},
		{levelspec.SeverityWarning, slog.LevelWarn},
		{levelspec.SeverityError, slog.LevelError},
		{levelspec.SeverityCritical, slog.LevelError + 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.sev.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slogLevel(tc.sev))
		})
	}
}
