package log

import (
	"bytes"
	"context"
	"log/slog"
)

// Writer is an io.Writer that posts messages written to it to the provided
// logger, splitting writes on newlines into separate log entries.
//
// Close the Writer to flush any buffered partial line.
type Writer struct {
	Log   *slog.Logger
	Level slog.Level

	buff bytes.Buffer
}

func (w *Writer) Write(bs []byte) (int, error) {
	n := len(bs)
	for len(bs) > 0 {
		bs = w.takeNextLine(bs)
	}
	return n, nil
}

func (w *Writer) takeNextLine(line []byte) (remaining []byte) {
	idx := bytes.IndexByte(line, '\n')
	if idx < 0 {
		// No newline yet; hold on to the partial line.
		w.buff.Write(line)
		return nil
	}

	line, remaining = line[:idx], line[idx+1:]

	// Fast path: nothing buffered from a previous write, so the line can
	// be posted as-is.
	if w.buff.Len() == 0 {
		w.logLine(line)
		return remaining
	}

	w.buff.Write(line)

	// Post empty messages in the middle of the stream so that writes like
	// "foo\n\nbar" don't lose information.
	w.flush(true /* allowEmpty */)
	return remaining
}

// Close flushes any remaining buffered text to the logger.
func (w *Writer) Close() error {
	// Don't allow empty messages on Close: it's common for streams to end
	// with a trailing newline, and that shouldn't post an extra empty
	// entry.
	w.flush(false /* allowEmpty */)
	return nil
}

func (w *Writer) flush(allowEmpty bool) {
	if allowEmpty || w.buff.Len() > 0 {
		w.logLine(w.buff.Bytes())
	}
	w.buff.Reset()
}

func (w *Writer) logLine(b []byte) {
	w.Log.Log(context.Background(), w.Level, string(b))
}
