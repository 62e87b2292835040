package tmux

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Default size for detached sessions. tmux 2.6 and newer give unattached
// sessions a tiny default area unless told otherwise.
const (
	_defaultSessionWidth  = 800
	_defaultSessionHeight = 600
)

// Server is a typed handle to a tmux server.
//
// The zero value talks to the default tmux server through a zero
// [ShellDriver]. Point Driver at a configured ShellDriver to address a
// different socket, or at a fake to test code built on this package.
//
// A Server holds no state of its own besides a cached version: every method
// queries or mutates the live tmux server.
type Server struct {
	// Driver used to run tmux commands.
	Driver Driver

	getenv func(string) string // == os.Getenv

	versionOnce sync.Once
	version     Version
	versionErr  error
}

var _defaultDriver Driver = &ShellDriver{}

func (s *Server) driver() Driver {
	if s.Driver != nil {
		return s.Driver
	}
	return _defaultDriver
}

func (s *Server) getEnv(k string) string {
	if s.getenv != nil {
		return s.getenv(k)
	}
	return os.Getenv(k)
}

// Cmd runs an arbitrary tmux command against this server and returns its
// output. It's an escape hatch for operations without a dedicated method.
func (s *Server) Cmd(args ...string) ([]byte, error) {
	return s.driver().Exec(args...)
}

// Version reports the version of the tmux binary serving this Server.
// The version is fetched once and cached for the lifetime of the object.
func (s *Server) Version() (Version, error) {
	s.versionOnce.Do(func() {
		out, err := s.driver().Version()
		if err != nil {
			s.versionErr = fmt.Errorf("tmux version: %w", err)
			return
		}
		s.version, s.versionErr = ParseVersion(string(out))
	})
	return s.version, s.versionErr
}

// Sessions lists the sessions on the server.
func (s *Server) Sessions() ([]*Session, error) {
	fs := sessionFields()
	out, err := s.driver().ListSessions(ListSessionsRequest{Format: fs.Render()})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	records := fs.ParseLines(out)
	sessions := make([]*Session, len(records))
	for i, attrs := range records {
		sessions[i] = newSession(s, attrs)
	}
	return sessions, nil
}

// AttachedSessions lists the sessions that have at least one client
// attached.
func (s *Server) AttachedSessions() ([]*Session, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}

	attached := sessions[:0]
	for _, sess := range sessions {
		if sess.Attached() {
			attached = append(attached, sess)
		}
	}
	return attached, nil
}

// Windows lists the windows across all sessions on the server.
func (s *Server) Windows() ([]*Window, error) {
	fs := windowFields()
	out, err := s.driver().ListWindows(ListWindowsRequest{
		All:    true,
		Format: fs.Render(),
	})
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	records := fs.ParseLines(out)
	windows := make([]*Window, len(records))
	for i, attrs := range records {
		windows[i] = newWindow(s, attrs)
	}
	return windows, nil
}

// Panes lists the panes across all windows on the server.
func (s *Server) Panes() ([]*Pane, error) {
	fs := paneFields()
	out, err := s.driver().ListPanes(ListPanesRequest{
		All:    true,
		Format: fs.Render(),
	})
	if err != nil {
		return nil, fmt.Errorf("list panes: %w", err)
	}

	records := fs.ParseLines(out)
	panes := make([]*Pane, len(records))
	for i, attrs := range records {
		panes[i] = newPane(s, attrs)
	}
	return panes, nil
}

// SessionByID returns the session with the given "$id" identifier, or
// ErrSessionNotFound if no such session exists.
func (s *Server) SessionByID(id string) (*Session, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if sess.ID() == id {
			return sess, nil
		}
	}
	return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
}

// FindSession returns the session with the given name, or
// ErrSessionNotFound if no such session exists.
func (s *Server) FindSession(name string) (*Session, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return nil, err
	}
	for _, sess := range sessions {
		if sess.Name() == name {
			return sess, nil
		}
	}
	return nil, fmt.Errorf("session %q: %w", name, ErrSessionNotFound)
}

// HasSession reports whether a session with the given name exists.
//
// On tmux 2.1 and newer the name is matched exactly; older versions match
// with fnmatch(3) as tmux does natively.
func (s *Server) HasSession(name string) (bool, error) {
	if err := CheckSessionName(name); err != nil {
		return false, err
	}

	target := name
	if v, err := s.Version(); err == nil && v.AtLeast(_versionExactHasSession) {
		target = "=" + name
	}

	err := s.driver().HasSession(HasSessionRequest{Target: target})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrNoServer):
		return false, nil
	default:
		return false, fmt.Errorf("has session %q: %w", name, err)
	}
}

// NewSessionOptions configures Server.NewSession. The zero value creates an
// anonymous detached session.
type NewSessionOptions struct {
	// Name of the new session. tmux picks a numeric name if empty.
	Name string

	// Name of the initial window.
	WindowName string

	// Working directory for the new session.
	StartDirectory string

	// Attach the current client to the new session instead of creating
	// it in the background.
	Attach bool

	// Kill any existing session with the same name first.
	KillExisting bool

	// Size of the new session. Detached sessions without an explicit
	// size default to 800x600 on tmux 2.6 and newer when created outside
	// a client.
	Width, Height int

	// Additional environment variables for the command, in "K=V" form.
	// Requires Command.
	Env []string

	// Command to run in the initial window. The window closes when the
	// command exits.
	Command []string
}

// NewSession creates a session on the server and returns a handle to it.
//
// Returns ErrSessionExists if a session named opts.Name already exists and
// KillExisting wasn't set.
func (s *Server) NewSession(opts NewSessionOptions) (*Session, error) {
	if n := opts.Name; len(n) > 0 {
		if err := CheckSessionName(n); err != nil {
			return nil, err
		}

		switch ok, err := s.HasSession(n); {
		case err != nil:
			return nil, err
		case ok && !opts.KillExisting:
			return nil, fmt.Errorf("create session %q: %w", n, ErrSessionExists)
		case ok:
			if err := s.KillSession(n); err != nil {
				return nil, fmt.Errorf("kill session %q: %w", n, err)
			}
		}
	}

	fs := sessionFields()
	req := NewSessionRequest{
		Name:           opts.Name,
		WindowName:     opts.WindowName,
		StartDirectory: opts.StartDirectory,
		Format:         fs.Render(),
		Width:          opts.Width,
		Height:         opts.Height,
		Detached:       !opts.Attach,
		Env:            opts.Env,
		Command:        opts.Command,
	}

	if req.Detached && req.Width == 0 && req.Height == 0 && len(s.getEnv("TMUX")) == 0 {
		if v, err := s.Version(); err == nil && v.AtLeast(_versionDefaultSize) {
			req.Width = _defaultSessionWidth
			req.Height = _defaultSessionHeight
		}
	}

	out, err := s.driver().NewSession(req)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	record, _, _ := strings.Cut(string(out), "\n")
	return newSession(s, fs.Parse(record)), nil
}

// KillServer kills the tmux server and all sessions on it.
func (s *Server) KillServer() error {
	return s.driver().KillServer()
}

// KillSession kills the session with the given name or target.
func (s *Server) KillSession(target string) error {
	return s.driver().KillSession(KillSessionRequest{Target: target})
}

// AttachSession attaches the current client to the given session. With an
// empty target, tmux picks the most recently used session.
func (s *Server) AttachSession(target string) error {
	if len(target) > 0 {
		if err := CheckSessionName(target); err != nil {
			return err
		}
	}
	return s.driver().AttachSession(AttachSessionRequest{Target: target})
}

// SwitchClient switches the current client to the given session, window, or
// pane. Unlike AttachSession, this only works from inside a tmux client.
func (s *Server) SwitchClient(target string) error {
	return s.driver().SwitchClient(SwitchClientRequest{Target: target})
}

// ShowOptions reports the server's global options.
func (s *Server) ShowOptions() (map[string]string, error) {
	return showOptions(s.driver(), ShowOptionsRequest{Global: true})
}

// ShowOption reports the value of a single global option, or
// ErrUnknownOption if the option isn't set.
func (s *Server) ShowOption(name string) (string, error) {
	return showOption(s.driver(), ShowOptionsRequest{Global: true}, name)
}

// SetOption sets a global option.
func (s *Server) SetOption(name, value string) error {
	return s.driver().SetOption(SetOptionRequest{
		Global: true,
		Name:   name,
		Value:  value,
	})
}

// UnsetOption unsets a global option.
func (s *Server) UnsetOption(name string) error {
	return s.driver().SetOption(SetOptionRequest{
		Global: true,
		Name:   name,
		Unset:  true,
	})
}

// ShowEnvironment reports the server's global environment. Variables marked
// for removal are omitted.
func (s *Server) ShowEnvironment() (map[string]string, error) {
	return showEnvironment(s.driver(), ShowEnvironmentRequest{Global: true})
}

// ShowEnvironmentValue reports the value of a single variable in the global
// environment.
func (s *Server) ShowEnvironmentValue(name string) (string, error) {
	return showEnvironmentValue(s.driver(), ShowEnvironmentRequest{Global: true, Name: name})
}

// SetEnvironment sets a variable in the global environment.
func (s *Server) SetEnvironment(name, value string) error {
	return s.driver().SetEnvironment(SetEnvironmentRequest{
		Global: true,
		Name:   name,
		Value:  value,
	})
}

// UnsetEnvironment unsets a variable in the global environment.
func (s *Server) UnsetEnvironment(name string) error {
	return s.driver().SetEnvironment(SetEnvironmentRequest{
		Global: true,
		Name:   name,
		Unset:  true,
	})
}

// RemoveEnvironment removes a variable from the global environment entirely
// so that new sessions never inherit it.
func (s *Server) RemoveEnvironment(name string) error {
	return s.driver().SetEnvironment(SetEnvironmentRequest{
		Global: true,
		Name:   name,
		Remove: true,
	})
}
