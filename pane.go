package tmux

import (
	"fmt"

	"go.abhg.dev/tmux/internal/stringobj"
)

// Pane is a typed handle to a tmux pane.
//
// Panes are identified by their "%id" identifier, which is stable for the
// lifetime of the pane even if it moves between windows. Attribute accessors
// report the values captured when the handle was created; call Refresh to
// re-read them from tmux.
type Pane struct {
	server *Server
	id     string
	attrs  map[string]string
}

func newPane(server *Server, attrs map[string]string) *Pane {
	return &Pane{
		server: server,
		id:     attrs["pane_id"],
		attrs:  attrs,
	}
}

// Server reports the server this pane lives on.
func (p *Pane) Server() *Server { return p.server }

// ID reports the "%id" identifier of the pane.
func (p *Pane) ID() string { return p.id }

// Index reports the index of the pane in its window.
func (p *Pane) Index() int { return attrInt(p.attrs, "pane_index") }

// Width reports the width of the pane in cells.
func (p *Pane) Width() int { return attrInt(p.attrs, "pane_width") }

// Height reports the height of the pane in cells.
func (p *Pane) Height() int { return attrInt(p.attrs, "pane_height") }

// Title reports the title of the pane.
func (p *Pane) Title() string { return p.attrs["pane_title"] }

// PID reports the process ID of the command running in the pane.
func (p *Pane) PID() int { return attrInt(p.attrs, "pane_pid") }

// Active reports whether this is the active pane of its window.
func (p *Pane) Active() bool { return attrBool(p.attrs, "pane_active") }

// Dead reports whether the command in the pane has exited.
func (p *Pane) Dead() bool { return attrBool(p.attrs, "pane_dead") }

// InMode reports whether the pane is in a mode, e.g. copy mode.
func (p *Pane) InMode() bool { return attrBool(p.attrs, "pane_in_mode") }

// CurrentPath reports the working directory of the pane.
func (p *Pane) CurrentPath() string { return p.attrs["pane_current_path"] }

// CurrentCommand reports the name of the command currently running in the
// pane.
func (p *Pane) CurrentCommand() string { return p.attrs["pane_current_command"] }

// StartCommand reports the command the pane was started with.
func (p *Pane) StartCommand() string { return p.attrs["pane_start_command"] }

// HistorySize reports the number of lines in the pane's history.
func (p *Pane) HistorySize() int { return attrInt(p.attrs, "history_size") }

// WindowID reports the "@id" identifier of the pane's window.
func (p *Pane) WindowID() string { return p.attrs["window_id"] }

// SessionID reports the "$id" identifier of the pane's session.
func (p *Pane) SessionID() string { return p.attrs["session_id"] }

// Attr reports the raw value of any captured pane attribute by its tmux
// format variable name, e.g. "history_limit".
func (p *Pane) Attr(name string) string { return p.attrs[name] }

func (p *Pane) String() string {
	var b stringobj.Builder
	b.Put("id", p.id)
	b.Put("window", p.attrs["window_name"])
	b.Put("session", p.attrs["session_name"])
	return "Pane" + b.String()
}

// Window reports the window this pane belongs to.
func (p *Pane) Window() (*Window, error) {
	id := p.WindowID()
	windows, err := p.server.Windows()
	if err != nil {
		return nil, err
	}
	for _, w := range windows {
		if w.ID() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("window %v: %w", id, ErrWindowNotFound)
}

// Session reports the session this pane belongs to.
func (p *Pane) Session() (*Session, error) {
	return p.server.SessionByID(p.SessionID())
}

// Refresh re-reads the pane's attributes from tmux. Returns ErrPaneNotFound
// if the pane no longer exists.
func (p *Pane) Refresh() error {
	panes, err := p.server.Panes()
	if err != nil {
		return err
	}
	for _, pane := range panes {
		if pane.id == p.id {
			p.attrs = pane.attrs
			return nil
		}
	}
	return fmt.Errorf("pane %v: %w", p.id, ErrPaneNotFound)
}

// Select makes this the active pane of its window.
func (p *Pane) Select() error {
	return p.server.driver().SelectPane(SelectPaneRequest{Target: p.id})
}

// Kill kills the pane.
func (p *Pane) Kill() error {
	return p.server.driver().KillPane(KillPaneRequest{Target: p.id})
}

// Swap swaps this pane with the other pane.
func (p *Pane) Swap(other *Pane) error {
	return p.server.driver().SwapPane(SwapPaneRequest{
		Source:      p.id,
		Destination: other.id,
	})
}

// Resize resizes the pane. Zero dimensions are left unchanged.
func (p *Pane) Resize(width, height int) error {
	return p.server.driver().ResizePane(ResizePaneRequest{
		Target: p.id,
		Width:  width,
		Height: height,
	})
}

// ToggleZoom zooms the pane to fill its window, or restores the window's
// layout if the pane is already zoomed.
func (p *Pane) ToggleZoom() error {
	return p.server.driver().ResizePane(ResizePaneRequest{
		Target:     p.id,
		ToggleZoom: true,
	})
}

// Split splits the pane in two and returns a handle to the new pane.
func (p *Pane) Split(opts SplitWindowOptions) (*Pane, error) {
	return splitWindow(p.server, p.id, opts)
}

// SendKeysOptions configures Pane.SendKeys. The zero value sends the text
// with tmux's usual key name interpretation, without a trailing newline.
type SendKeysOptions struct {
	// Send the "Enter" key after the text.
	Enter bool

	// Send the text literally instead of interpreting key names like
	// "Enter" or "C-c".
	Literal bool

	// Prefix the text with a space so that shells configured to ignore
	// space-prefixed commands keep it out of their history.
	SuppressHistory bool
}

// SendKeys types the given text into the pane.
func (p *Pane) SendKeys(text string, opts SendKeysOptions) error {
	if opts.SuppressHistory {
		text = " " + text
	}

	if err := p.server.driver().SendKeys(SendKeysRequest{
		Pane:    p.id,
		Literal: opts.Literal,
		Keys:    []string{text},
	}); err != nil {
		return fmt.Errorf("send keys: %w", err)
	}

	if opts.Enter {
		if err := p.server.driver().SendKeys(SendKeysRequest{
			Pane: p.id,
			Keys: []string{"Enter"},
		}); err != nil {
			return fmt.Errorf("send enter: %w", err)
		}
	}
	return nil
}

// CaptureOptions configures Pane.Capture. The zero value captures the
// visible contents of the pane without escape sequences.
type CaptureOptions struct {
	// Start and end positions of the captured text. Negative lines are
	// positions in the pane's history.
	StartLine, EndLine int

	// Include escape sequences for text and background attributes.
	EscapeSequences bool

	// Capture the alternate screen instead of the visible one.
	AlternateScreen bool
}

// Capture reports the contents of the pane.
func (p *Pane) Capture(opts CaptureOptions) (string, error) {
	out, err := p.server.driver().CapturePane(CapturePaneRequest{
		Pane:            p.id,
		StartLine:       opts.StartLine,
		EndLine:         opts.EndLine,
		EscapeSequences: opts.EscapeSequences,
		AlternateScreen: opts.AlternateScreen,
	})
	if err != nil {
		return "", fmt.Errorf("capture pane: %w", err)
	}
	return string(out), nil
}

// ClearHistory clears the pane's scrollback history.
func (p *Pane) ClearHistory() error {
	return p.server.driver().ClearHistory(ClearHistoryRequest{Pane: p.id})
}

// Reset resets the pane's terminal state and clears its history.
func (p *Pane) Reset() error {
	if err := p.server.driver().SendKeys(SendKeysRequest{
		Pane:  p.id,
		Reset: true,
		Keys:  []string{"C-c"},
	}); err != nil {
		return fmt.Errorf("reset pane: %w", err)
	}
	return p.ClearHistory()
}

// Pipe connects the pane's output to the given shell command. The command
// receives everything the pane writes to its terminal until StopPipe is
// called or the pane exits.
func (p *Pane) Pipe(command string) error {
	return p.server.driver().PipePane(PipePaneRequest{
		Pane:     p.id,
		Command:  command,
		OpenOnly: true,
	})
}

// StopPipe disconnects a pipe opened with Pipe.
func (p *Pane) StopPipe() error {
	return p.server.driver().PipePane(PipePaneRequest{Pane: p.id})
}

// DisplayMessage renders the given message in the context of this pane and
// reports the result. The message may reference tmux format variables.
func (p *Pane) DisplayMessage(msg string) (string, error) {
	out, err := p.server.driver().DisplayMessage(DisplayMessageRequest{
		Pane:    p.id,
		Message: msg,
	})
	if err != nil {
		return "", fmt.Errorf("display message: %w", err)
	}
	return string(out), nil
}
