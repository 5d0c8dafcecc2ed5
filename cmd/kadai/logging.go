package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
)

// cliHandler is a slog.Handler printing one colored line per record.
type cliHandler struct {
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
	group  string // dotted group path, prefixed to later attribute keys
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&cliHandler{writer: w, level: level})
}

func (h *cliHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *cliHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.group != "" {
		msg = "[" + h.group + "] " + msg
	}

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, fmt.Sprintf("%s=%v", h.qualify(a.Key), a.Value))
		return true
	})
	if len(attrs) > 0 {
		msg = msg + ": " + strings.Join(attrs, " ")
	}

	if r.Level >= slog.LevelError {
		msg = colorRed + msg + colorReset
	} else {
		msg = colorGreen + msg + colorReset
	}

	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *cliHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &cliHandler{writer: h.writer, level: h.level, attrs: merged, group: h.group}
}

func (h *cliHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &cliHandler{writer: h.writer, level: h.level, attrs: h.attrs, group: h.qualify(name)}
}

func (h *cliHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}
