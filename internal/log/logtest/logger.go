// Package logtest provides a logger that writes to a testing.T.
package logtest

import (
	"log/slog"
	"testing"

	"go.abhg.dev/io/ioutil"
	"go.abhg.dev/tmux/internal/log"
)

// NewLogger builds a logger at debug level that posts messages to the given
// testing.T.
func NewLogger(t testing.TB) *slog.Logger {
	return log.New(ioutil.TestLogWriter(t, ""), slog.LevelDebug)
}
