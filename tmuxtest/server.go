// Package tmuxtest provides test doubles and helpers for code built on the
// tmux package: a generated mock of the Driver interface, gomock matchers
// for common requests, and helpers that run tests against a real, throwaway
// tmux server.
package tmuxtest

import (
	"crypto/rand"
	"encoding/hex"
	"os/exec"
	"testing"

	"go.abhg.dev/tmux"
	"go.abhg.dev/tmux/internal/log/logtest"
)

// NewServer returns a Server handle on a private, randomly named socket so
// that the test can't disturb the user's tmux sessions. The server itself
// starts when the first session is created, and is killed when the test
// finishes.
//
// Skips the test if there's no tmux executable on the PATH.
func NewServer(t testing.TB) *tmux.Server {
	t.Helper()

	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skipf("tmux not found in PATH: %v", err)
	}

	srv := &tmux.Server{
		Driver: &tmux.ShellDriver{
			SocketName: randomName("tmuxtest-"),
			ConfigFile: "/dev/null",
			Log:        logtest.NewLogger(t),
		},
	}
	t.Cleanup(func() {
		// Best effort: the server may never have started, or the test
		// may have killed it already.
		_ = srv.KillServer()
	})
	return srv
}

// NewSession creates a detached, randomly named session on the server,
// killed when the test finishes.
func NewSession(t testing.TB, srv *tmux.Server) *tmux.Session {
	t.Helper()

	sess, err := srv.NewSession(tmux.NewSessionOptions{
		Name: randomName("tmuxtest_"),
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	t.Cleanup(func() { _ = sess.Kill() })
	return sess
}

// NewWindow creates a detached, randomly named window in the session, killed
// when the test finishes.
func NewWindow(t testing.TB, sess *tmux.Session) *tmux.Window {
	t.Helper()

	w, err := sess.NewWindow(tmux.NewWindowOptions{
		Name:     randomName("w"),
		Detached: true,
	})
	if err != nil {
		t.Fatalf("create window: %v", err)
	}
	t.Cleanup(func() { _ = w.Kill() })
	return w
}

func randomName(prefix string) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return prefix + hex.EncodeToString(b[:])
}
