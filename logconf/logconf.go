// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logconf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/envlog/levelspec"
)

const (
	// DefaultMessageFormat is the message template used when no override is
	// given. The {level} placeholder renders left-padded to eight
	// characters.
	DefaultMessageFormat = "{time} {level} {logger} {message}"

	// DefaultTimeFormat is the timestamp layout used when no override is
	// given.
	DefaultTimeFormat = "2006-01-02 15:04:05"

	// StreamStderr identifies the process standard error stream.
	StreamStderr = "stderr"
)

// HandlerDescription describes the single stream handler every logger in
// the configuration attaches to.
type HandlerDescription struct {
	Stream        string `json:"stream" yaml:"stream"`
	MessageFormat string `json:"message_format" yaml:"message_format"`
	TimeFormat    string `json:"time_format" yaml:"time_format"`
}

// LoggerDescription describes one logger to materialize. The root logger
// has an empty Name and propagates; named loggers do not propagate, so a
// record they emit is never duplicated through an ancestor that shares the
// handler.
type LoggerDescription struct {
	Name      string             `json:"name,omitempty" yaml:"name,omitempty"`
	Level     levelspec.Severity `json:"level" yaml:"level"`
	Propagate bool               `json:"propagate" yaml:"propagate"`
}

// ConfigurationDescription is the applier-agnostic output of Build. It is
// owned solely by the caller; this package retains no reference after
// returning it.
type ConfigurationDescription struct {
	Handler HandlerDescription  `json:"handler" yaml:"handler"`
	Root    LoggerDescription   `json:"root" yaml:"root"`
	Loggers []LoggerDescription `json:"loggers,omitempty" yaml:"loggers,omitempty"`

	// DisableExisting is always false: applying the description leaves
	// pre-existing loggers outside the configuration untouched.
	DisableExisting bool `json:"disable_existing" yaml:"disable_existing"`
}

// config holds the resolved format overrides for one Build call.
type config struct {
	messageFormat string
	timeFormat    string
}

// Option configures the description created by Build.
type Option func(*config)

// WithMessageFormat overrides the message format template.
// The default is DefaultMessageFormat.
func WithMessageFormat(format string) Option {
	return func(c *config) {
		c.messageFormat = format
	}
}

// WithTimeFormat overrides the timestamp layout.
// The default is DefaultTimeFormat.
func WithTimeFormat(format string) Option {
	return func(c *config) {
		c.timeFormat = format
	}
}

// Build materializes a Specification into a ConfigurationDescription.
// It never fails for a Specification produced by a successful Parse call.
func Build(spec levelspec.Specification, opts ...Option) ConfigurationDescription {
	cfg := &config{
		messageFormat: DefaultMessageFormat,
		timeFormat:    DefaultTimeFormat,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	desc := ConfigurationDescription{
		Handler: HandlerDescription{
			Stream:        StreamStderr,
			MessageFormat: cfg.messageFormat,
			TimeFormat:    cfg.timeFormat,
		},
		Root: LoggerDescription{
			Level:     spec.Default,
			Propagate: true,
		},
	}

	// Sorted so equal specifications yield structurally equal descriptions.
	names := make([]string, 0, len(spec.Components))
	for name := range spec.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		desc.Loggers = append(desc.Loggers, LoggerDescription{
			Name:      name,
			Level:     spec.Components[name],
			Propagate: false,
		})
	}

	return desc
}

// LevelFor returns the effective severity for a dotted logger name: the
// level of the longest configured ancestor (the name itself included), or
// the root level when no ancestor is configured.
func (d ConfigurationDescription) LevelFor(name string) levelspec.Severity {
	for name != "" {
		for _, l := range d.Loggers {
			if l.Name == name {
				return l.Level
			}
		}
		i := strings.LastIndex(name, ".")
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return d.Root.Level
}

// AsJSON returns the description as a JSON string, for diagnostics.
func (d ConfigurationDescription) AsJSON() string {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}

// AsYAML returns the description as a YAML string, for diagnostics.
func (d ConfigurationDescription) AsYAML() string {
	b, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Sprintf("error: failed to marshal YAML: %s\n", err)
	}
	return string(b)
}
