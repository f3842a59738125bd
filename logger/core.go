// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/envlog/levelspec"
	"github.com/stacklok/envlog/logconf"
)

// Apply materializes a configuration description into a zap logger whose
// core filters entries by the emitting logger's dotted name. It does not
// install the logger; Init does that via zap.ReplaceGlobals.
//
// Pre-existing loggers are untouched: Apply builds a fresh logger rather
// than reconfiguring anything already installed.
func Apply(desc logconf.ConfigurationDescription) (*zap.Logger, error) {
	if desc.Handler.Stream != logconf.StreamStderr {
		return nil, fmt.Errorf("unsupported handler stream %q", desc.Handler.Stream)
	}

	enc := zapcore.NewConsoleEncoder(encoderConfig(desc.Handler.TimeFormat))
	base := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	return zap.New(newComponentCore(base, desc)), nil
}

// encoderConfig builds the console encoder configuration for the given
// timestamp layout: time, eight-character padded level, full logger name,
// message.
func encoderConfig(timeFormat string) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeLevel:    paddedCapitalLevelEncoder,
		EncodeName:     zapcore.FullNameEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// paddedCapitalLevelEncoder renders the level name left-padded to eight
// characters, matching the default message format contract.
func paddedCapitalLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fmt.Sprintf("%-8s", l.CapitalString()))
}

// componentCore filters entries by the emitting logger's dotted name,
// applying the level of the longest configured ancestor and the root level
// otherwise. The wrapped core performs no level filtering of its own.
type componentCore struct {
	zapcore.Core
	desc logconf.ConfigurationDescription
}

func newComponentCore(inner zapcore.Core, desc logconf.ConfigurationDescription) zapcore.Core {
	return &componentCore{Core: inner, desc: desc}
}

// Enabled is a name-insensitive pre-check: it reports true when any
// configured logger would accept the level. Per-name filtering happens in
// Check, where the entry carries its logger name.
func (c *componentCore) Enabled(lvl zapcore.Level) bool {
	if lvl >= zapLevel(c.desc.Root.Level) {
		return true
	}
	for _, l := range c.desc.Loggers {
		if lvl >= zapLevel(l.Level) {
			return true
		}
	}
	return false
}

// Check adds the core to the checked entry only when the entry's level
// meets the effective level for its logger name.
func (c *componentCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if ent.Level < zapLevel(c.desc.LevelFor(ent.LoggerName)) {
		return ce
	}
	return ce.AddCore(ent, c)
}

// With preserves the name-aware filtering on child cores.
func (c *componentCore) With(fields []zapcore.Field) zapcore.Core {
	return &componentCore{Core: c.Core.With(fields), desc: c.desc}
}

// zapLevel maps a severity onto the zapcore level scale. CRITICAL maps to
// DPanicLevel, the rank between Error and Panic.
func zapLevel(s levelspec.Severity) zapcore.Level {
	switch s {
	case levelspec.SeverityDebug:
		return zapcore.DebugLevel
	case levelspec.SeverityInfo:
		return zapcore.InfoLevel
	case levelspec.SeverityWarning:
		return zapcore.WarnLevel
	case levelspec.SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}
