// Package slogutil contains logging helpers for tests.
package slogutil

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// NewTestLogger returns a debug-level slog logger that writes through
// tb.Log, keeping library log output attached to the test that produced it
// during parallel runs.
func NewTestLogger(tb testing.TB) *slog.Logger {
	tb.Helper()
	return slog.New(&testHandler{tb: tb})
}

type testHandler struct {
	attrs []slog.Attr
	tb    testing.TB
}

func (h *testHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *testHandler) Handle(ctx context.Context, rec slog.Record) error {
	var sb strings.Builder
	sb.WriteString(rec.Message)

	appendAttr := func(attr slog.Attr) {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value)
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		appendAttr(attr)
		return true
	})

	h.tb.Log(sb.String())
	return nil
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &testHandler{attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...), tb: h.tb}
}

func (h *testHandler) WithGroup(name string) slog.Handler {
	// Groups aren't used by this module's logging.
	return h
}
