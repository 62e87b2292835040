package tmux

import (
	"fmt"
	"io"
	"os"

	"go.abhg.dev/tmux/internal/tail"
	"go.uber.org/multierr"
)

// PaneStream streams the output of a pane to an io.Writer as the pane
// produces it. Close it to stop streaming.
type PaneStream struct {
	pane     *Pane
	sink     io.Writer
	file     *os.File
	follower *tail.Follower
}

// Stream starts streaming everything the pane writes to its terminal into w.
//
// Under the hood, this pipes the pane's output into a temporary file with
// pipe-pane and follows that file. Output produced before Stream was called
// is not included. The caller must Close the stream to stop the pipe and
// release the file.
func (p *Pane) Stream(w io.Writer) (*PaneStream, error) {
	f, err := os.CreateTemp("", "tmux-pane-*.out")
	if err != nil {
		return nil, fmt.Errorf("create temporary file: %w", err)
	}

	if err := p.server.driver().PipePane(PipePaneRequest{
		Pane:    p.id,
		Command: fmt.Sprintf("cat >> %q", f.Name()),
	}); err != nil {
		err = multierr.Append(err, f.Close())
		err = multierr.Append(err, os.Remove(f.Name()))
		return nil, fmt.Errorf("pipe pane: %w", err)
	}

	follower := &tail.Follower{Sink: w, Source: f}
	follower.Start()

	return &PaneStream{
		pane:     p,
		sink:     w,
		file:     f,
		follower: follower,
	}, nil
}

// Close stops the pipe, drains any output still buffered in the pipe file,
// and deletes the file.
func (s *PaneStream) Close() error {
	var errs error

	errs = multierr.Append(errs, s.pane.StopPipe())
	errs = multierr.Append(errs, s.follower.Stop())

	// The follower may have stopped between polls. Drain whatever it
	// hadn't copied yet.
	if _, err := io.Copy(s.sink, s.file); err != nil {
		errs = multierr.Append(errs, err)
	}

	errs = multierr.Append(errs, s.file.Close())
	errs = multierr.Append(errs, os.Remove(s.file.Name()))
	return errs
}
