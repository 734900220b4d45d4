// Package testutil provides the structured logging helpers the
// gazetteer/resolver/engine test suites share, so a failing backing
// store load or resolve call surfaces its log lines alongside the
// test's own failure output instead of going to a discarded handler.
package testutil

import (
	"log/slog"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log(), so resolver
// and backing-store diagnostics only appear on test failure or -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// DiscardLogger returns the same safe-default discard logger the
// engine and gazetteer stores fall back to when none is supplied,
// for tests that want to assert on behavior without caring about logs.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
