package tmux

import (
	"fmt"
	"strings"
	"time"

	"go.abhg.dev/tmux/internal/stringobj"
)

// Session is a typed handle to a tmux session.
//
// Sessions are identified by their "$id" identifier, which is stable for the
// lifetime of the session even if the session is renamed. Attribute
// accessors report the values captured when the handle was created; call
// Refresh to re-read them from tmux.
type Session struct {
	server *Server
	id     string
	attrs  map[string]string
}

func newSession(server *Server, attrs map[string]string) *Session {
	return &Session{
		server: server,
		id:     attrs["session_id"],
		attrs:  attrs,
	}
}

// Server reports the server this session lives on.
func (s *Session) Server() *Server { return s.server }

// ID reports the "$id" identifier of the session.
func (s *Session) ID() string { return s.id }

// Name reports the name of the session.
func (s *Session) Name() string { return s.attrs["session_name"] }

// Path reports the working directory of the session.
func (s *Session) Path() string { return s.attrs["session_path"] }

// Attached reports whether any client is attached to the session.
func (s *Session) Attached() bool { return attrBool(s.attrs, "session_attached") }

// WindowCount reports the number of windows in the session.
func (s *Session) WindowCount() int { return attrInt(s.attrs, "session_windows") }

// Width reports the width of the session in cells.
func (s *Session) Width() int { return attrInt(s.attrs, "session_width") }

// Height reports the height of the session in cells.
func (s *Session) Height() int { return attrInt(s.attrs, "session_height") }

// Created reports when the session was created.
func (s *Session) Created() time.Time {
	return time.Unix(int64(attrInt(s.attrs, "session_created")), 0)
}

// Attr reports the raw value of any captured session attribute by its tmux
// format variable name, e.g. "session_group".
func (s *Session) Attr(name string) string { return s.attrs[name] }

func (s *Session) String() string {
	var b stringobj.Builder
	b.Put("id", s.id)
	b.Put("name", s.Name())
	return "Session" + b.String()
}

// Refresh re-reads the session's attributes from tmux. Returns
// ErrSessionNotFound if the session no longer exists.
func (s *Session) Refresh() error {
	sessions, err := s.server.Sessions()
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		if sess.id == s.id {
			s.attrs = sess.attrs
			return nil
		}
	}
	return fmt.Errorf("session %v: %w", s.id, ErrSessionNotFound)
}

// Rename renames the session.
func (s *Session) Rename(name string) error {
	if err := CheckSessionName(name); err != nil {
		return err
	}
	if err := s.server.driver().RenameSession(RenameSessionRequest{
		Target: s.id,
		Name:   name,
	}); err != nil {
		return err
	}
	s.attrs["session_name"] = name
	return nil
}

// Kill kills the session and all windows in it.
func (s *Session) Kill() error {
	return s.server.driver().KillSession(KillSessionRequest{Target: s.id})
}

// Attach attaches the current client to the session.
func (s *Session) Attach() error {
	return s.server.driver().AttachSession(AttachSessionRequest{Target: s.id})
}

// Switch switches the current client to the session. Only works from inside
// a tmux client.
func (s *Session) Switch() error {
	return s.server.driver().SwitchClient(SwitchClientRequest{Target: s.id})
}

// Windows lists the windows in the session.
func (s *Session) Windows() ([]*Window, error) {
	fs := windowFields()
	out, err := s.server.driver().ListWindows(ListWindowsRequest{
		Target: s.id,
		Format: fs.Render(),
	})
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	records := fs.ParseLines(out)
	windows := make([]*Window, len(records))
	for i, attrs := range records {
		windows[i] = newWindow(s.server, attrs)
	}
	return windows, nil
}

// ActiveWindow reports the currently active window in the session.
func (s *Session) ActiveWindow() (*Window, error) {
	windows, err := s.Windows()
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		if w.Active() {
			return w, nil
		}
	}
	return nil, fmt.Errorf("session %v: active window: %w", s.id, ErrWindowNotFound)
}

// Panes lists the panes across all windows in the session.
func (s *Session) Panes() ([]*Pane, error) {
	fs := paneFields()
	out, err := s.server.driver().ListPanes(ListPanesRequest{
		Session: true,
		Target:  s.id,
		Format:  fs.Render(),
	})
	if err != nil {
		return nil, fmt.Errorf("list panes: %w", err)
	}

	records := fs.ParseLines(out)
	panes := make([]*Pane, len(records))
	for i, attrs := range records {
		panes[i] = newPane(s.server, attrs)
	}
	return panes, nil
}

// ActivePane reports the active pane of the session's active window.
func (s *Session) ActivePane() (*Pane, error) {
	w, err := s.ActiveWindow()
	if err != nil {
		return nil, err
	}
	return w.ActivePane()
}

// NewWindowOptions configures Session.NewWindow. The zero value creates an
// unnamed window running the default shell.
type NewWindowOptions struct {
	// Name of the new window.
	Name string

	// Working directory for the new window.
	StartDirectory string

	// Don't make the new window the session's current window.
	Detached bool

	// Command to run in the new window. The window closes when the
	// command exits.
	Command []string
}

// NewWindow creates a window in the session and returns a handle to it.
func (s *Session) NewWindow(opts NewWindowOptions) (*Window, error) {
	fs := windowFields()
	out, err := s.server.driver().NewWindow(NewWindowRequest{
		Target:         s.id,
		Name:           opts.Name,
		StartDirectory: opts.StartDirectory,
		Format:         fs.Render(),
		Detached:       opts.Detached,
		Command:        opts.Command,
	})
	if err != nil {
		return nil, fmt.Errorf("new window: %w", err)
	}

	record, _, _ := strings.Cut(string(out), "\n")
	return newWindow(s.server, fs.Parse(record)), nil
}

// SelectWindow makes the window at the given index the session's current
// window.
func (s *Session) SelectWindow(index int) error {
	return s.server.driver().SelectWindow(SelectWindowRequest{
		Target: fmt.Sprintf("%v:%d", s.id, index),
	})
}

// ShowOptions reports the session's options.
func (s *Session) ShowOptions() (map[string]string, error) {
	return showOptions(s.server.driver(), ShowOptionsRequest{Target: s.id})
}

// ShowOption reports the value of a single session option, or
// ErrUnknownOption if the option isn't set at session scope.
func (s *Session) ShowOption(name string) (string, error) {
	return showOption(s.server.driver(), ShowOptionsRequest{Target: s.id}, name)
}

// SetOption sets a session option.
func (s *Session) SetOption(name, value string) error {
	return s.server.driver().SetOption(SetOptionRequest{
		Target: s.id,
		Name:   name,
		Value:  value,
	})
}

// UnsetOption unsets a session option so that it falls back to the global
// value.
func (s *Session) UnsetOption(name string) error {
	return s.server.driver().SetOption(SetOptionRequest{
		Target: s.id,
		Name:   name,
		Unset:  true,
	})
}

// ShowEnvironment reports the session's environment. Variables marked for
// removal are omitted.
func (s *Session) ShowEnvironment() (map[string]string, error) {
	return showEnvironment(s.server.driver(), ShowEnvironmentRequest{Session: s.id})
}

// ShowEnvironmentValue reports the value of a single variable in the
// session's environment.
func (s *Session) ShowEnvironmentValue(name string) (string, error) {
	return showEnvironmentValue(s.server.driver(), ShowEnvironmentRequest{
		Session: s.id,
		Name:    name,
	})
}

// SetEnvironment sets a variable in the session's environment.
func (s *Session) SetEnvironment(name, value string) error {
	return s.server.driver().SetEnvironment(SetEnvironmentRequest{
		Session: s.id,
		Name:    name,
		Value:   value,
	})
}

// UnsetEnvironment unsets a variable in the session's environment.
func (s *Session) UnsetEnvironment(name string) error {
	return s.server.driver().SetEnvironment(SetEnvironmentRequest{
		Session: s.id,
		Name:    name,
		Unset:   true,
	})
}

// RemoveEnvironment removes a variable from the session's environment
// entirely.
func (s *Session) RemoveEnvironment(name string) error {
	return s.server.driver().SetEnvironment(SetEnvironmentRequest{
		Session: s.id,
		Name:    name,
		Remove:  true,
	})
}
