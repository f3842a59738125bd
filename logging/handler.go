// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// handler is a slog.Handler that renders records through the configuration
// description's message and time format templates. Each logger gets its own
// handler at its own fixed level; the shared mutex serializes writes across
// all loggers of a factory.
type handler struct {
	mu      *sync.Mutex
	w       io.Writer
	name    string
	level   slog.Level
	msgFmt  string
	timeFmt string

	attrs  []slog.Attr
	prefix string
}

var _ slog.Handler = (*handler)(nil)

// Enabled reports whether the record level meets the logger's effective
// level.
func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders the record and writes a single line to the shared writer.
func (h *handler) Handle(_ context.Context, r slog.Record) error {
	line := h.msgFmt
	line = strings.ReplaceAll(line, "{time}", r.Time.Format(h.timeFmt))
	line = strings.ReplaceAll(line, "{level}", fmt.Sprintf("%-8s", levelName(r.Level)))
	line = strings.ReplaceAll(line, "{logger}", h.name)
	line = strings.ReplaceAll(line, "{message}", r.Message)

	var b strings.Builder
	b.WriteString(line)
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s%s=%v", h.prefix, a.Key, a.Value)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a handler that prepends the given attributes to every
// record.
func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return h2
}

// WithGroup returns a handler that qualifies subsequent attribute keys with
// the group name.
func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.prefix = h.prefix + name + "."
	return h2
}

func (h *handler) clone() *handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+4)
	copy(h2.attrs, h.attrs)
	return &h2
}

// levelName maps slog levels back to canonical severity names for
// rendering.
func levelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	case l < slog.LevelError+4:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}
