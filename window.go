package tmux

import (
	"fmt"
	"strings"

	"go.abhg.dev/tmux/internal/stringobj"
)

// Window is a typed handle to a tmux window.
//
// Windows are identified by their "@id" identifier, which is stable for the
// lifetime of the window even if it's renamed or moved. Attribute accessors
// report the values captured when the handle was created; call Refresh to
// re-read them from tmux.
type Window struct {
	server *Server
	id     string
	attrs  map[string]string
}

func newWindow(server *Server, attrs map[string]string) *Window {
	return &Window{
		server: server,
		id:     attrs["window_id"],
		attrs:  attrs,
	}
}

// Server reports the server this window lives on.
func (w *Window) Server() *Server { return w.server }

// ID reports the "@id" identifier of the window.
func (w *Window) ID() string { return w.id }

// Name reports the name of the window.
func (w *Window) Name() string { return w.attrs["window_name"] }

// Index reports the index of the window in its session.
func (w *Window) Index() int { return attrInt(w.attrs, "window_index") }

// Width reports the width of the window in cells.
func (w *Window) Width() int { return attrInt(w.attrs, "window_width") }

// Height reports the height of the window in cells.
func (w *Window) Height() int { return attrInt(w.attrs, "window_height") }

// Active reports whether this is the current window of its session.
func (w *Window) Active() bool { return attrBool(w.attrs, "window_active") }

// Zoomed reports whether a pane in the window is zoomed.
func (w *Window) Zoomed() bool { return attrBool(w.attrs, "window_zoomed_flag") }

// Layout reports the window's layout description.
func (w *Window) Layout() string { return w.attrs["window_layout"] }

// PaneCount reports the number of panes in the window.
func (w *Window) PaneCount() int { return attrInt(w.attrs, "window_panes") }

// SessionID reports the "$id" identifier of the window's session.
func (w *Window) SessionID() string { return w.attrs["session_id"] }

// SessionName reports the name of the window's session.
func (w *Window) SessionName() string { return w.attrs["session_name"] }

// Attr reports the raw value of any captured window attribute by its tmux
// format variable name, e.g. "window_flags".
func (w *Window) Attr(name string) string { return w.attrs[name] }

func (w *Window) String() string {
	var b stringobj.Builder
	b.Put("id", w.id)
	b.Put("name", w.Name())
	b.Put("session", w.SessionName())
	return "Window" + b.String()
}

// Session reports the session this window belongs to.
func (w *Window) Session() (*Session, error) {
	return w.server.SessionByID(w.SessionID())
}

// Refresh re-reads the window's attributes from tmux. Returns
// ErrWindowNotFound if the window no longer exists.
func (w *Window) Refresh() error {
	windows, err := w.server.Windows()
	if err != nil {
		return err
	}
	for _, win := range windows {
		if win.id == w.id {
			w.attrs = win.attrs
			return nil
		}
	}
	return fmt.Errorf("window %v: %w", w.id, ErrWindowNotFound)
}

// Rename renames the window.
func (w *Window) Rename(name string) error {
	if err := w.server.driver().RenameWindow(RenameWindowRequest{
		Target: w.id,
		Name:   name,
	}); err != nil {
		return err
	}
	w.attrs["window_name"] = name
	return nil
}

// Kill kills the window and all panes in it.
func (w *Window) Kill() error {
	return w.server.driver().KillWindow(KillWindowRequest{Target: w.id})
}

// Select makes this the current window of its session.
func (w *Window) Select() error {
	return w.server.driver().SelectWindow(SelectWindowRequest{Target: w.id})
}

// Move moves the window to the given destination, in "session:index" form.
func (w *Window) Move(destination string) error {
	return w.server.driver().MoveWindow(MoveWindowRequest{
		Source:      w.id,
		Destination: destination,
	})
}

// Resize resizes the window. Zero dimensions are left unchanged.
func (w *Window) Resize(width, height int) error {
	return w.server.driver().ResizeWindow(ResizeWindowRequest{
		Window: w.id,
		Width:  width,
		Height: height,
	})
}

// SelectLayout applies the named layout to the window, e.g. "tiled" or
// "even-horizontal".
func (w *Window) SelectLayout(layout string) error {
	return w.server.driver().SelectLayout(SelectLayoutRequest{
		Target: w.id,
		Layout: layout,
	})
}

// Panes lists the panes in the window.
func (w *Window) Panes() ([]*Pane, error) {
	fs := paneFields()
	out, err := w.server.driver().ListPanes(ListPanesRequest{
		Target: w.id,
		Format: fs.Render(),
	})
	if err != nil {
		return nil, fmt.Errorf("list panes: %w", err)
	}

	records := fs.ParseLines(out)
	panes := make([]*Pane, len(records))
	for i, attrs := range records {
		panes[i] = newPane(w.server, attrs)
	}
	return panes, nil
}

// ActivePane reports the currently active pane in the window.
func (w *Window) ActivePane() (*Pane, error) {
	panes, err := w.Panes()
	if err != nil {
		return nil, err
	}
	for _, p := range panes {
		if p.Active() {
			return p, nil
		}
	}
	return nil, fmt.Errorf("window %v: active pane: %w", w.id, ErrPaneNotFound)
}

// SplitWindowOptions configures splitting a window or pane in two.
// The zero value splits the target in half top and bottom.
type SplitWindowOptions struct {
	// Split into left and right panes instead of top and bottom.
	Horizontal bool

	// Size of the new pane in lines (vertical) or columns (horizontal).
	Size int

	// Size of the new pane as a percentage of the available space.
	// Ignored if Size is set.
	Percent int

	// Working directory for the new pane.
	StartDirectory string

	// Don't make the new pane the active pane.
	Detached bool

	// Command to run in the new pane. The pane closes when the command
	// exits.
	Command []string
}

// Split splits the window's active pane in two and returns a handle to the
// new pane.
func (w *Window) Split(opts SplitWindowOptions) (*Pane, error) {
	return splitWindow(w.server, w.id, opts)
}

func splitWindow(server *Server, target string, opts SplitWindowOptions) (*Pane, error) {
	fs := paneFields()
	out, err := server.driver().SplitWindow(SplitWindowRequest{
		Target:         target,
		Horizontal:     opts.Horizontal,
		Size:           opts.Size,
		Percent:        opts.Percent,
		StartDirectory: opts.StartDirectory,
		Format:         fs.Render(),
		Detached:       opts.Detached,
		Command:        opts.Command,
	})
	if err != nil {
		return nil, fmt.Errorf("split window: %w", err)
	}

	record, _, _ := strings.Cut(string(out), "\n")
	return newPane(server, fs.Parse(record)), nil
}

// ShowOptions reports the window's options.
func (w *Window) ShowOptions() (map[string]string, error) {
	return showOptions(w.server.driver(), ShowOptionsRequest{
		Window: true,
		Target: w.id,
	})
}

// ShowOption reports the value of a single window option, or
// ErrUnknownOption if the option isn't set at window scope.
func (w *Window) ShowOption(name string) (string, error) {
	return showOption(w.server.driver(), ShowOptionsRequest{
		Window: true,
		Target: w.id,
	}, name)
}

// SetOption sets a window option.
func (w *Window) SetOption(name, value string) error {
	return w.server.driver().SetOption(SetOptionRequest{
		Window: true,
		Target: w.id,
		Name:   name,
		Value:  value,
	})
}

// UnsetOption unsets a window option so that it falls back to the global
// value.
func (w *Window) UnsetOption(name string) error {
	return w.server.driver().SetOption(SetOptionRequest{
		Window: true,
		Target: w.id,
		Name:   name,
		Unset:  true,
	})
}
