package tmux

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported by this package. Errors returned by tmux
// operations can be tested against these with errors.Is.
var (
	// ErrNoServer indicates that no tmux server was running for the
	// requested socket.
	ErrNoServer = errors.New("no server running")

	// ErrSessionExists indicates that a session with the requested name
	// already exists.
	ErrSessionExists = errors.New("session already exists")

	// ErrSessionNotFound indicates that the requested session does not
	// exist on the server.
	ErrSessionNotFound = errors.New("session not found")

	// ErrWindowNotFound indicates that the requested window does not
	// exist.
	ErrWindowNotFound = errors.New("window not found")

	// ErrPaneNotFound indicates that the requested pane does not exist.
	ErrPaneNotFound = errors.New("pane not found")

	// ErrBadSessionName indicates a session name that tmux would reject:
	// empty, or containing "." or ":".
	ErrBadSessionName = errors.New("bad session name")

	// ErrUnknownOption indicates an option name tmux does not recognize.
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidOption indicates an option tmux rejected as invalid.
	ErrInvalidOption = errors.New("invalid option")

	// ErrAmbiguousOption indicates an abbreviated option name that
	// matches more than one option.
	ErrAmbiguousOption = errors.New("ambiguous option")
)

// CheckSessionName reports whether tmux would accept the given string as a
// session name. tmux rejects empty names and names containing "." or ":",
// which it reserves for window and pane targets.
func CheckSessionName(name string) error {
	switch {
	case len(name) == 0:
		return fmt.Errorf("%w: empty name", ErrBadSessionName)
	case strings.ContainsAny(name, ".:"):
		return fmt.Errorf("%w: %q must not contain \".\" or \":\"", ErrBadSessionName, name)
	default:
		return nil
	}
}

// Substrings of tmux stderr output mapped to the sentinel errors they
// indicate. The exact wording varies between tmux releases; these cover the
// variants in use since 1.8.
var _stderrSentinels = []struct {
	substr string
	err    error
}{
	{"no server running", ErrNoServer},
	{"failed to connect to server", ErrNoServer},
	{"no current session", ErrSessionNotFound},
	{"duplicate session", ErrSessionExists},
	{"can't find session", ErrSessionNotFound},
	{"session not found", ErrSessionNotFound},
	{"can't find window", ErrWindowNotFound},
	{"window not found", ErrWindowNotFound},
	{"can't find pane", ErrPaneNotFound},
	{"ambiguous option", ErrAmbiguousOption},
	{"invalid option", ErrInvalidOption},
	{"unknown option", ErrUnknownOption},
	{"bad option", ErrUnknownOption},
}

// cmdError is the error reported for a failed tmux invocation. It carries
// the subcommand name, the captured stderr text, and, if the stderr text was
// recognized, the matching sentinel error.
type cmdError struct {
	name   string // tmux subcommand
	stderr string // captured stderr text, if any
	kind   error  // matching sentinel, if any
	cause  error  // error from the subprocess
}

// wrapCmdError translates a subprocess failure into a *cmdError, matching
// the captured stderr text against known tmux error messages.
func wrapCmdError(name, stderr string, cause error) error {
	if cause == nil {
		return nil
	}

	stderr = strings.TrimSpace(stderr)
	err := &cmdError{name: name, stderr: stderr, cause: cause}
	for _, m := range _stderrSentinels {
		if strings.Contains(stderr, m.substr) {
			err.kind = m.err
			break
		}
	}
	return err
}

func (e *cmdError) Error() string {
	if len(e.stderr) > 0 {
		return "tmux " + e.name + ": " + e.stderr
	}
	return "tmux " + e.name + ": " + e.cause.Error()
}

func (e *cmdError) Unwrap() []error {
	if e.kind != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.cause}
}
