package tmux

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// ErrWaitTimeout is reported by [Waiter] when a condition doesn't become
// true before the timeout expires.
var ErrWaitTimeout = errors.New("wait timed out")

const (
	_defaultWaitTimeout  = 8 * time.Second
	_defaultWaitInterval = 50 * time.Millisecond
)

// Waiter polls a condition until it becomes true or a timeout expires. tmux
// operations are asynchronous -- a shell started by new-session takes a
// moment to print its prompt -- so code that reads back pane contents
// usually needs to retry.
//
// The zero value is a valid Waiter that polls every 50ms for up to 8
// seconds.
type Waiter struct {
	// Timeout is the total time to wait for the condition.
	// Defaults to 8 seconds.
	Timeout time.Duration

	// Interval is the delay between attempts. Defaults to 50ms.
	Interval time.Duration

	// Clock used to measure time. Defaults to the system clock.
	Clock clock.Clock
}

func (w *Waiter) clock() clock.Clock {
	if w.Clock != nil {
		return w.Clock
	}
	return clock.New()
}

func (w *Waiter) timeout() time.Duration {
	if w.Timeout > 0 {
		return w.Timeout
	}
	return _defaultWaitTimeout
}

func (w *Waiter) interval() time.Duration {
	if w.Interval > 0 {
		return w.Interval
	}
	return _defaultWaitInterval
}

// WaitE polls fn until it returns nil or the timeout expires. On timeout it
// reports ErrWaitTimeout wrapping fn's last error.
func (w *Waiter) WaitE(fn func() error) error {
	clk := w.clock()
	deadline := clk.Now().Add(w.timeout())

	var last error
	for {
		last = fn()
		if last == nil {
			return nil
		}
		if !clk.Now().Before(deadline) {
			break
		}
		clk.Sleep(w.interval())
	}
	return fmt.Errorf("%w: %w", ErrWaitTimeout, last)
}

var errNotReady = errors.New("condition not met")

// Wait polls fn until it returns true or the timeout expires, reporting
// whether fn succeeded.
func (w *Waiter) Wait(fn func() bool) bool {
	err := w.WaitE(func() error {
		if fn() {
			return nil
		}
		return errNotReady
	})
	return err == nil
}

// WaitUntil polls fn with the default timeout and interval, reporting
// whether fn returned true before the timeout.
func WaitUntil(fn func() bool) bool {
	var w Waiter
	return w.Wait(fn)
}
