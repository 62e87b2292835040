// Package log provides the logging backend for this library and its tools.
//
// Log output is intended to be user-facing: messages render as
// human-readable, optionally colored lines rather than machine-parseable
// records.
package log

import (
	"io"
	"log/slog"
)

// Discard is a logger that drops all messages sent to it.
var Discard = slog.New(slog.DiscardHandler)

// New builds a logger that writes messages at or above the given level to
// the provided writer.
func New(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(NewHandler(w, lvl))
}
