package tmux

import (
	"log/slog"
	"strings"

	"go.abhg.dev/tmux/internal/log"
)

// Driver is a low-level API to access tmux. Its methods map one-to-one to
// tmux commands: each builds a single invocation of the tmux binary from the
// request it receives and reports the raw output, if any.
//
// Use [ShellDriver] to talk to a real tmux. The higher-level [Server],
// [Session], [Window], and [Pane] objects are built on top of this
// interface.
type Driver interface {
	// Version runs tmux -V and returns its output.
	Version() ([]byte, error)

	// Exec runs an arbitrary tmux command with the given arguments and
	// returns its output. It's an escape hatch for commands without a
	// dedicated method.
	Exec(args ...string) ([]byte, error)

	// KillServer runs the tmux kill-server command.
	KillServer() error

	// ListSessions runs the tmux list-sessions command and returns its
	// output.
	ListSessions(ListSessionsRequest) ([]byte, error)

	// ListWindows runs the tmux list-windows command and returns its
	// output.
	ListWindows(ListWindowsRequest) ([]byte, error)

	// ListPanes runs the tmux list-panes command and returns its output.
	ListPanes(ListPanesRequest) ([]byte, error)

	// HasSession runs the tmux has-session command. A nil error means
	// the session exists.
	HasSession(HasSessionRequest) error

	// NewSession runs the tmux new-session command and returns its
	// output.
	NewSession(NewSessionRequest) ([]byte, error)

	// KillSession runs the tmux kill-session command.
	KillSession(KillSessionRequest) error

	// RenameSession runs the tmux rename-session command.
	RenameSession(RenameSessionRequest) error

	// AttachSession runs the tmux attach-session command.
	AttachSession(AttachSessionRequest) error

	// SwitchClient runs the tmux switch-client command.
	SwitchClient(SwitchClientRequest) error

	// NewWindow runs the tmux new-window command and returns its output.
	NewWindow(NewWindowRequest) ([]byte, error)

	// KillWindow runs the tmux kill-window command.
	KillWindow(KillWindowRequest) error

	// SelectWindow runs the tmux select-window command.
	SelectWindow(SelectWindowRequest) error

	// MoveWindow runs the tmux move-window command.
	MoveWindow(MoveWindowRequest) error

	// RenameWindow runs the tmux rename-window command.
	RenameWindow(RenameWindowRequest) error

	// SelectLayout runs the tmux select-layout command.
	SelectLayout(SelectLayoutRequest) error

	// SplitWindow runs the tmux split-window command and returns its
	// output.
	SplitWindow(SplitWindowRequest) ([]byte, error)

	// ResizeWindow runs the tmux resize-window command.
	ResizeWindow(ResizeWindowRequest) error

	// SelectPane runs the tmux select-pane command.
	SelectPane(SelectPaneRequest) error

	// KillPane runs the tmux kill-pane command.
	KillPane(KillPaneRequest) error

	// SwapPane runs the tmux swap-pane command.
	SwapPane(SwapPaneRequest) error

	// ResizePane runs the tmux resize-pane command.
	ResizePane(ResizePaneRequest) error

	// CapturePane runs the tmux capture-pane command and returns its
	// output.
	CapturePane(CapturePaneRequest) ([]byte, error)

	// SendKeys runs the tmux send-keys command.
	SendKeys(SendKeysRequest) error

	// ClearHistory runs the tmux clear-history command.
	ClearHistory(ClearHistoryRequest) error

	// PipePane runs the tmux pipe-pane command.
	PipePane(PipePaneRequest) error

	// DisplayMessage runs the tmux display-message command and returns
	// its output.
	DisplayMessage(DisplayMessageRequest) ([]byte, error)

	// ShowOptions runs the tmux show-options command and returns its
	// output.
	ShowOptions(ShowOptionsRequest) ([]byte, error)

	// SetOption runs the tmux set-option command.
	SetOption(SetOptionRequest) error

	// ShowEnvironment runs the tmux show-environment command and returns
	// its output.
	ShowEnvironment(ShowEnvironmentRequest) ([]byte, error)

	// SetEnvironment runs the tmux set-environment command.
	SetEnvironment(SetEnvironmentRequest) error

	// WaitForSignal runs the tmux wait-for command, waiting for a
	// corresponding SendSignal.
	WaitForSignal(string) error

	// SendSignal runs the tmux wait-for -S command, unblocking anyone
	// waiting for this signal.
	SendSignal(string) error
}

//go:generate mockgen -destination tmuxtest/mockdriver.go -package tmuxtest go.abhg.dev/tmux Driver

// ListSessionsRequest specifies the parameters for a list-sessions command.
type ListSessionsRequest struct {
	// Format for each reported session record.
	Format string
}

func (r ListSessionsRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "format", r.Format),
	)
}

// ListWindowsRequest specifies the parameters for a list-windows command.
type ListWindowsRequest struct {
	// List windows across all sessions on the server.
	All bool

	// Session whose windows to list. Ignored if All is set.
	Target string

	// Format for each reported window record.
	Format string
}

func (r ListWindowsRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("all", r.All),
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.String, "format", r.Format),
	)
}

// ListPanesRequest specifies the parameters for a list-panes command.
type ListPanesRequest struct {
	// List panes across all sessions on the server.
	All bool

	// Treat Target as a session and list panes in all its windows.
	Session bool

	// Window (or session, if Session is set) whose panes to list.
	// Ignored if All is set.
	Target string

	// Format for each reported pane record.
	Format string
}

func (r ListPanesRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("all", r.All),
		slog.Bool("session", r.Session),
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.String, "format", r.Format),
	)
}

// HasSessionRequest specifies the parameters for a has-session command.
type HasSessionRequest struct {
	// Name or target of the session to check. Prefix with "=" for exact
	// matching on tmux 2.1 and newer; tmux matches with fnmatch(3)
	// otherwise.
	Target string
}

func (r HasSessionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// NewSessionRequest specifies the parameters for a new-session command.
type NewSessionRequest struct {
	// Name of the session, if any.
	Name string

	// Name of the initial window, if any.
	WindowName string

	// Working directory for the new session.
	StartDirectory string

	// Output format, if any. Without this, NewSession will not return
	// any output.
	Format string

	// Size of the new session's window.
	Width, Height int

	// Whether the new session should be detached from this client.
	Detached bool

	// Additional environment variables to pass to the command in the new
	// session.
	Env []string

	// Command to run in this new session. Required if Env is set.
	Command []string
}

func (r NewSessionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "name", r.Name),
		log.OmitEmpty(slog.String, "windowName", r.WindowName),
		log.OmitEmpty(slog.String, "dir", r.StartDirectory),
		log.OmitEmpty(slog.String, "format", r.Format),
		log.OmitEmpty(slog.Int, "width", r.Width),
		log.OmitEmpty(slog.Int, "height", r.Height),
		slog.Bool("detached", r.Detached),
		log.OmitEmpty(slog.String, "env", strings.Join(r.Env, " ")),
		log.OmitEmpty(slog.String, "command", strings.Join(r.Command, " ")),
	)
}

// KillSessionRequest specifies the parameters for a kill-session command.
type KillSessionRequest struct {
	// Session to kill. Defaults to current.
	Target string
}

func (r KillSessionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// RenameSessionRequest specifies the parameters for a rename-session
// command.
type RenameSessionRequest struct {
	// Session to rename. Defaults to current.
	Target string

	// New name for the session.
	Name string
}

func (r RenameSessionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.String, "name", r.Name),
	)
}

// AttachSessionRequest specifies the parameters for an attach-session
// command.
type AttachSessionRequest struct {
	// Session to attach to. Defaults to the most recently used session.
	Target string
}

func (r AttachSessionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// SwitchClientRequest specifies the parameters for a switch-client command.
type SwitchClientRequest struct {
	// Session, window, or pane to switch the current client to.
	Target string
}

func (r SwitchClientRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// NewWindowRequest specifies the parameters for a new-window command.
type NewWindowRequest struct {
	// Session (optionally with a ":index" suffix) in which to create the
	// window. Defaults to current.
	Target string

	// Name of the new window, if any.
	Name string

	// Working directory for the new window.
	StartDirectory string

	// Output format, if any. Without this, NewWindow will not return any
	// output.
	Format string

	// Don't make the new window the current window.
	Detached bool

	// Command to run in the new window, if any.
	Command []string
}

func (r NewWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.String, "name", r.Name),
		log.OmitEmpty(slog.String, "dir", r.StartDirectory),
		log.OmitEmpty(slog.String, "format", r.Format),
		slog.Bool("detached", r.Detached),
		log.OmitEmpty(slog.String, "command", strings.Join(r.Command, " ")),
	)
}

// KillWindowRequest specifies the parameters for a kill-window command.
type KillWindowRequest struct {
	// Window to kill. Defaults to current.
	Target string
}

func (r KillWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// SelectWindowRequest specifies the parameters for a select-window command.
type SelectWindowRequest struct {
	// Window to select.
	Target string
}

func (r SelectWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// MoveWindowRequest specifies the parameters for a move-window command.
type MoveWindowRequest struct {
	// Window to move. Defaults to current.
	Source string

	// New location of the window, in "session:index" form.
	Destination string
}

func (r MoveWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "source", r.Source),
		log.OmitEmpty(slog.String, "destination", r.Destination),
	)
}

// RenameWindowRequest specifies the parameters for a rename-window command.
type RenameWindowRequest struct {
	// Window to rename. Defaults to current.
	Target string

	// New name for the window.
	Name string
}

func (r RenameWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.String, "name", r.Name),
	)
}

// SelectLayoutRequest specifies the parameters for a select-layout command.
type SelectLayoutRequest struct {
	// Window whose layout to change. Defaults to current.
	Target string

	// Name of the layout, e.g. "even-horizontal" or "tiled".
	Layout string
}

func (r SelectLayoutRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.String, "layout", r.Layout),
	)
}

// SplitWindowRequest specifies the parameters for a split-window command.
type SplitWindowRequest struct {
	// Pane to split. Defaults to current.
	Target string

	// Split into left and right panes instead of top and bottom.
	Horizontal bool

	// Size of the new pane in lines (vertical) or columns (horizontal).
	Size int

	// Size of the new pane as a percentage of the available space.
	// Ignored if Size is set.
	Percent int

	// Working directory for the new pane.
	StartDirectory string

	// Output format, if any. Without this, SplitWindow will not return
	// any output.
	Format string

	// Don't make the new pane the current pane.
	Detached bool

	// Command to run in the new pane, if any.
	Command []string
}

func (r SplitWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
		slog.Bool("horizontal", r.Horizontal),
		log.OmitEmpty(slog.Int, "size", r.Size),
		log.OmitEmpty(slog.Int, "percent", r.Percent),
		log.OmitEmpty(slog.String, "dir", r.StartDirectory),
		log.OmitEmpty(slog.String, "format", r.Format),
		slog.Bool("detached", r.Detached),
		log.OmitEmpty(slog.String, "command", strings.Join(r.Command, " ")),
	)
}

// ResizeWindowRequest specifies the parameters for a resize-window command.
type ResizeWindowRequest struct {
	// Window to resize. Defaults to current.
	Window string

	// New size of the window. Zero values are left unchanged.
	Width, Height int
}

func (r ResizeWindowRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "window", r.Window),
		log.OmitEmpty(slog.Int, "width", r.Width),
		log.OmitEmpty(slog.Int, "height", r.Height),
	)
}

// SelectPaneRequest specifies the parameters for a select-pane command.
type SelectPaneRequest struct {
	// Pane to make the active pane in its window.
	Target string
}

func (r SelectPaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// KillPaneRequest specifies the parameters for a kill-pane command.
type KillPaneRequest struct {
	// Pane to kill. Defaults to current.
	Target string
}

func (r KillPaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// SwapPaneRequest specifies the parameters for a swap-pane command.
type SwapPaneRequest struct {
	// Source pane. Defaults to current.
	Source string

	// Destination pane to swap the source with.
	Destination string

	// Keep the window zoomed if it was zoomed.
	MaintainZoom bool
}

func (r SwapPaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "source", r.Source),
		log.OmitEmpty(slog.String, "destination", r.Destination),
		slog.Bool("maintainZoom", r.MaintainZoom),
	)
}

// ResizePaneRequest specifies the parameters for a resize-pane command.
type ResizePaneRequest struct {
	// Pane to resize. Defaults to current.
	Target string

	// New size of the pane. Zero values are left unchanged.
	Width, Height int

	// Toggle zoom for the pane instead of resizing it.
	ToggleZoom bool
}

func (r ResizePaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "target", r.Target),
		log.OmitEmpty(slog.Int, "width", r.Width),
		log.OmitEmpty(slog.Int, "height", r.Height),
		slog.Bool("toggleZoom", r.ToggleZoom),
	)
}

// CapturePaneRequest specifies the parameters for a capture-pane command.
type CapturePaneRequest struct {
	// Pane to capture. Defaults to current.
	Pane string

	// Start and end positions of the captured text. Negative lines are
	// positions in history.
	StartLine, EndLine int

	// Include escape sequences for text and background attributes.
	EscapeSequences bool

	// Capture the alternate screen instead of the visible one.
	AlternateScreen bool
}

func (r CapturePaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
		log.OmitEmpty(slog.Int, "startLine", r.StartLine),
		log.OmitEmpty(slog.Int, "endLine", r.EndLine),
		slog.Bool("escapes", r.EscapeSequences),
		slog.Bool("alternate", r.AlternateScreen),
	)
}

// SendKeysRequest specifies the parameters for a send-keys command.
type SendKeysRequest struct {
	// Pane to send keys to. Defaults to current.
	Pane string

	// Send the keys literally instead of interpreting key names like
	// "Enter" or "C-c".
	Literal bool

	// Reset the terminal state of the pane before sending keys.
	Reset bool

	// Keys to send. Each entry is a separate argument to send-keys.
	Keys []string
}

func (r SendKeysRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
		slog.Bool("literal", r.Literal),
		slog.Bool("reset", r.Reset),
		log.OmitEmpty(slog.String, "keys", strings.Join(r.Keys, " ")),
	)
}

// ClearHistoryRequest specifies the parameters for a clear-history command.
type ClearHistoryRequest struct {
	// Pane whose history to clear. Defaults to current.
	Pane string
}

func (r ClearHistoryRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
	)
}

// PipePaneRequest specifies the parameters for a pipe-pane command.
type PipePaneRequest struct {
	// Pane whose output to pipe. Defaults to current.
	Pane string

	// Shell command that receives the pane's output. An empty command
	// stops an existing pipe.
	Command string

	// Only open a new pipe if the pane isn't piped already.
	OpenOnly bool
}

func (r PipePaneRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
		log.OmitEmpty(slog.String, "command", r.Command),
		slog.Bool("openOnly", r.OpenOnly),
	)
}

// DisplayMessageRequest specifies the parameters for a display-message
// command.
type DisplayMessageRequest struct {
	// Pane for which to render the message. Defaults to current.
	Pane string

	// Message to render. May reference tmux format variables.
	Message string
}

func (r DisplayMessageRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "pane", r.Pane),
		log.OmitEmpty(slog.String, "message", r.Message),
	)
}

// ShowOptionsRequest specifies the parameters for a show-options command.
type ShowOptionsRequest struct {
	// Show global options instead of session options.
	Global bool

	// Show window options.
	Window bool

	// Session or window whose options to show. Defaults to current.
	Target string
}

func (r ShowOptionsRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("global", r.Global),
		slog.Bool("window", r.Window),
		log.OmitEmpty(slog.String, "target", r.Target),
	)
}

// SetOptionRequest specifies the parameters for a set-option command.
type SetOptionRequest struct {
	// Name of the option to set.
	Name string

	// Value to set the option to.
	Value string

	// Change the option globally.
	Global bool

	// Change a window option.
	Window bool

	// Session or window whose option to change. Defaults to current.
	Target string

	// Unset the option instead of setting it.
	Unset bool
}

func (r SetOptionRequest) LogValue() slog.Value {
	return slog.GroupValue(
		log.OmitEmpty(slog.String, "name", r.Name),
		log.OmitEmpty(slog.String, "value", r.Value),
		slog.Bool("global", r.Global),
		slog.Bool("window", r.Window),
		log.OmitEmpty(slog.String, "target", r.Target),
		slog.Bool("unset", r.Unset),
	)
}

// ShowEnvironmentRequest specifies the parameters for a show-environment
// command.
type ShowEnvironmentRequest struct {
	// Show the global environment instead of a session's.
	Global bool

	// Session whose environment to show. Defaults to current.
	Session string

	// Show only this variable, if set.
	Name string
}

func (r ShowEnvironmentRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("global", r.Global),
		log.OmitEmpty(slog.String, "session", r.Session),
		log.OmitEmpty(slog.String, "name", r.Name),
	)
}

// SetEnvironmentRequest specifies the parameters for a set-environment
// command.
type SetEnvironmentRequest struct {
	// Change the global environment instead of a session's.
	Global bool

	// Session whose environment to change. Defaults to current.
	Session string

	// Name of the variable.
	Name string

	// Value of the variable. Ignored if Unset or Remove is set.
	Value string

	// Unset the variable.
	Unset bool

	// Remove the variable from the environment entirely instead of
	// marking it unset. Implies Unset.
	Remove bool
}

func (r SetEnvironmentRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("global", r.Global),
		log.OmitEmpty(slog.String, "session", r.Session),
		log.OmitEmpty(slog.String, "name", r.Name),
		log.OmitEmpty(slog.String, "value", r.Value),
		slog.Bool("unset", r.Unset),
		slog.Bool("remove", r.Remove),
	)
}
