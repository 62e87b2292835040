// Package tail supports following readers that are still being written to,
// like a file that another process appends to.
package tail

import (
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	_defaultPoll       = 100 * time.Millisecond
	_defaultBufferSize = 32 * 1024 // 32kB
)

// Follower copies everything it can read from Source into Sink. Unlike
// io.Copy, it doesn't treat running out of input as final: when it drains
// the Source, it polls for more until the Source is closed or Stop is
// called.
type Follower struct {
	Sink   io.Writer // destination (required)
	Source io.Reader // source (required)

	// Time to wait before polling a drained Source again.
	// Defaults to 100 milliseconds.
	Poll time.Duration

	// Size of the copy buffer. Defaults to 32kB.
	BufferSize int

	Clock clock.Clock

	err        error
	buf        []byte
	quit, done chan struct{}
}

// Start begins following the Source in the background and returns
// immediately. The copy continues until the Source reports an error, the
// Source is closed, or Stop is called.
func (f *Follower) Start() {
	if f.Poll == 0 {
		f.Poll = _defaultPoll
	}
	if f.BufferSize == 0 {
		f.BufferSize = _defaultBufferSize
	}
	if f.Clock == nil {
		f.Clock = clock.New()
	}

	f.buf = make([]byte, f.BufferSize)
	f.quit = make(chan struct{})
	f.done = make(chan struct{})

	go f.follow()
}

// Stop ends the copy after the current drain and reports any error the copy
// hit. It blocks until the background goroutine has exited.
//
// If this freezes, make sure the Source was closed.
func (f *Follower) Stop() error {
	close(f.quit)
	return f.Wait()
}

// Wait blocks until the Follower stops on its own, from an error or the
// Source closing, and reports the error, if any.
func (f *Follower) Wait() error {
	<-f.done
	return f.err
}

func (f *Follower) follow() {
	defer close(f.done)

	ticker := f.Clock.Ticker(f.Poll)
	defer ticker.Stop()

	for {
		n, err := io.CopyBuffer(f.Sink, f.Source, f.buf)
		if err == nil && n > 0 {
			// May be more input already available.
			continue
		}

		switch {
		case errors.Is(err, fs.ErrClosed):
			// Source was closed. Nothing more is coming.
			return

		case err == nil || errors.Is(err, io.EOF):
			// Drained the source. Poll again after a delay.
			select {
			case <-f.quit:
				return
			case <-ticker.C:
			}

		default:
			f.err = err
			return
		}
	}
}
