// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger applies a level specification to the process-wide zap
// logging facility: it resolves the specification string, parses it, builds
// a configuration description, and installs a matching logger with
// zap.ReplaceGlobals, at most once per process unless reset or forced.
package logger

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/stacklok/envlog/env"
	"github.com/stacklok/envlog/levelspec"
	"github.com/stacklok/envlog/logconf"
)

const (
	// DefaultEnvVar is the environment variable consulted for the level
	// specification when none is supplied explicitly.
	DefaultEnvVar = "ENVLOG"

	// DefaultSpec is the hardcoded fallback used when neither an explicit
	// specification nor the environment variable supplies one.
	DefaultSpec = "warn"
)

// State is the explicit "already configured" flag guarding repeated
// initialization. The zero value is ready to use. A single State must not
// be shared between configurations that should apply independently.
type State struct {
	mu         sync.Mutex
	configured bool
}

// Configured reports whether a configuration has been applied through this
// state.
func (s *State) Configured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configured
}

// Reset clears the flag so the next Init applies again.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configured = false
}

// defaultState backs the package-level Init.
var defaultState State

// config holds the resolved options for one Init call.
type config struct {
	spec      string
	haveSpec  bool
	envVar    string
	force     bool
	buildOpts []logconf.Option
}

// Option configures Init.
type Option func(*config)

// WithSpec supplies the specification string directly, bypassing the
// environment lookup.
func WithSpec(spec string) Option {
	return func(c *config) {
		c.spec = spec
		c.haveSpec = true
	}
}

// WithEnvVar overrides the environment variable name consulted for the
// specification. The default is DefaultEnvVar.
func WithEnvVar(name string) Option {
	return func(c *config) {
		c.envVar = name
	}
}

// WithForce reapplies the configuration even when the state is already
// configured.
func WithForce() Option {
	return func(c *config) {
		c.force = true
	}
}

// WithMessageFormat overrides the handler message format template.
func WithMessageFormat(format string) Option {
	return func(c *config) {
		c.buildOpts = append(c.buildOpts, logconf.WithMessageFormat(format))
	}
}

// WithTimeFormat overrides the handler timestamp layout.
func WithTimeFormat(format string) Option {
	return func(c *config) {
		c.buildOpts = append(c.buildOpts, logconf.WithTimeFormat(format))
	}
}

// Init resolves, parses, and applies a level specification using the
// process environment and the package-level state.
func Init(opts ...Option) error {
	return InitWithOptions(&env.OSReader{}, &defaultState, opts...)
}

// InitWithOptions provides full control over environment access and
// configured-state ownership, for testing and for callers that wire their
// own state.
//
// The specification string is resolved in precedence order: WithSpec, then
// the environment variable, then DefaultSpec. A parse failure aborts
// initialization and leaves the state unconfigured; there is no silent
// fallback.
func InitWithOptions(envReader env.Reader, state *State, opts ...Option) error {
	cfg := &config{
		envVar: DefaultEnvVar,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.configured && !cfg.force {
		return nil
	}

	text := cfg.spec
	if !cfg.haveSpec {
		text = envReader.Getenv(cfg.envVar)
		if text == "" {
			text = DefaultSpec
		}
	}

	spec, err := levelspec.Parse(text)
	if err != nil {
		return fmt.Errorf("parsing level specification: %w", err)
	}

	zl, err := Apply(logconf.Build(spec, cfg.buildOpts...))
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(zl)
	state.configured = true
	return nil
}

// Named returns a component logger with the given dotted name, derived
// from the globals installed by Init.
func Named(name string) *zap.SugaredLogger {
	return zap.L().Named(name).Sugar()
}

// NewLogr returns a logr.Logger backed by the installed zap logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// Debug logs a message at debug level using the singleton logger.
func Debug(msg string) {
	zap.S().Debug(msg)
}

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warn logs a message at warning level using the singleton logger.
func Warn(msg string) {
	zap.S().Warn(msg)
}

// Warnf logs a message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Error logs a message at error level using the singleton logger.
func Error(msg string) {
	zap.S().Error(msg)
}

// Errorf logs a message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Fatal logs a message at fatal level using the singleton logger and exits the program.
func Fatal(msg string) {
	zap.S().Fatal(msg)
}

// Fatalf logs a message at fatal level using the singleton logger and exits the program.
func Fatalf(msg string, args ...any) {
	zap.S().Fatalf(msg, args...)
}
