// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/stacklok/envlog/levelspec"
	"github.com/stacklok/envlog/logconf"
)

// Factory hands out named component loggers for one configuration
// description. Loggers are cached per name and share a single writer, so
// concurrent use from multiple goroutines is safe.
type Factory struct {
	desc   logconf.ConfigurationDescription
	output io.Writer

	mu      sync.Mutex
	writeMu sync.Mutex
	loggers map[string]*slog.Logger
}

// config holds the resolved configuration for creating a factory.
type config struct {
	output io.Writer
}

// Option configures the factory created by NewFactory.
type Option func(*config)

// WithOutput sets the destination writer for log output.
// The default is [os.Stderr], per the description's handler.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// NewFactory creates a Factory for the given configuration description.
func NewFactory(desc logconf.ConfigurationDescription, opts ...Option) *Factory {
	cfg := &config{
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Factory{
		desc:    desc,
		output:  cfg.output,
		loggers: make(map[string]*slog.Logger),
	}
}

// Logger returns the component logger for a dotted name, creating it on
// first use. The empty name returns the root logger, which renders as
// "root" in output. Repeated calls with the same name return the same
// logger.
func (f *Factory) Logger(name string) *slog.Logger {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l
	}

	display := name
	if display == "" {
		display = "root"
	}

	l := slog.New(&handler{
		mu:      &f.writeMu,
		w:       f.output,
		name:    display,
		level:   slogLevel(f.desc.LevelFor(name)),
		msgFmt:  f.desc.Handler.MessageFormat,
		timeFmt: f.desc.Handler.TimeFormat,
	})
	f.loggers[name] = l
	return l
}

// slogLevel maps a severity onto the slog level scale. CRITICAL sits four
// above [slog.LevelError], mirroring the gap between the standard levels.
func slogLevel(s levelspec.Severity) slog.Level {
	switch s {
	case levelspec.SeverityDebug:
		return slog.LevelDebug
	case levelspec.SeverityInfo:
		return slog.LevelInfo
	case levelspec.SeverityWarning:
		return slog.LevelWarn
	case levelspec.SeverityError:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}
