// Package iotest provides I/O helpers for tests.
package iotest

import (
	"io"
	"log"
	"testing"

	"github.com/vallentin/pygmentize/internal/linebuf"
)

// Writer builds an io.Writer that writes to the given testing.TB,
// one log entry per line. A trailing partial line is logged when the
// test finishes.
func Writer(t testing.TB) io.Writer {
	w := linebuf.New(func(line string) {
		t.Logf("%s", line)
	})
	t.Cleanup(w.Flush)
	return w
}

// Logger builds a log.Logger that logs to the given testing.TB.
func Logger(t testing.TB) *log.Logger {
	return log.New(Writer(t), "", 0)
}
