// Package iotest bridges io-based APIs to the testing package's logging.
package iotest

import (
	"io"
	"strings"
)

// Logger is the subset of testing.TB that Writer records output through.
type Logger interface {
	Logf(format string, args ...interface{})
}

// Writer returns an io.Writer that reproduces everything written to it in
// the test's log, one entry per line.
func Writer(t Logger) io.Writer {
	return &writer{t: t}
}

type writer struct{ t Logger }

func (w *writer) Write(b []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(b), "\n"), "\n") {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}
