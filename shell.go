package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"go.abhg.dev/tmux/internal/log"
)

const (
	_defaultTmux = "tmux"
	_defaultEnv  = "/usr/bin/env"
)

// minimal hook to change how exec.Cmds are run. Tests provide a different
// implementation.
type runner struct {
	Run    func(*exec.Cmd) error
	Output func(*exec.Cmd) ([]byte, error)
}

var defaultRunner = runner{
	Run:    (*exec.Cmd).Run,
	Output: (*exec.Cmd).Output,
}

// ShellDriver is a Driver implementation that shells out to the tmux binary
// to run commands.
//
// The zero value is a usable driver talking to the default tmux server.
type ShellDriver struct {
	// Path to the tmux executable. Defaults to "tmux".
	Path string

	// Name of the server socket, as for tmux -L.
	SocketName string

	// Path to the server socket, as for tmux -S.
	SocketPath string

	// Alternative configuration file, as for tmux -f.
	ConfigFile string

	// Color mode for the control terminal: 256 for tmux -2, 88 for
	// tmux -8. Zero leaves the mode up to tmux; any other value is an
	// error.
	Colors int

	// Path to the env executable used to inject environment variables
	// into new sessions. Defaults to /usr/bin/env.
	Env string

	// Log receives a debug entry for every invocation and an error entry
	// for every line of stderr the tmux binary produces. By default, the
	// ShellDriver does not log anything.
	Log *slog.Logger

	log     *slog.Logger
	run     *runner
	environ func() []string // == os.Environ
	flags   []string        // global flags prepended to every invocation
	initErr error
	once    sync.Once
}

var _ Driver = (*ShellDriver)(nil)

func (s *ShellDriver) init() error {
	s.once.Do(func() {
		s.log = s.Log
		if s.log == nil {
			s.log = log.Discard
		}

		if s.Path == "" {
			s.Path = _defaultTmux
		}

		if s.Env == "" {
			s.Env = _defaultEnv
		}

		if s.run == nil {
			s.run = &defaultRunner
		}

		if s.environ == nil {
			s.environ = os.Environ
		}

		if n := s.SocketName; len(n) > 0 {
			s.flags = append(s.flags, "-L", n)
		}
		if p := s.SocketPath; len(p) > 0 {
			s.flags = append(s.flags, "-S", p)
		}
		if f := s.ConfigFile; len(f) > 0 {
			s.flags = append(s.flags, "-f", f)
		}

		switch s.Colors {
		case 0:
		case 256:
			s.flags = append(s.flags, "-2")
		case 88:
			s.flags = append(s.flags, "-8")
		default:
			s.initErr = fmt.Errorf("tmux colors must be 88 or 256, got %d", s.Colors)
		}
	})
	return s.initErr
}

func (s *ShellDriver) cmd(args ...string) *exec.Cmd {
	argv := make([]string, 0, len(s.flags)+len(args))
	argv = append(argv, s.flags...)
	argv = append(argv, args...)
	return exec.Command(s.Path, argv...)
}

// capture sets the provided io.Writers to a writer that both records the
// text and reproduces it in the log at Error level. Returns the record and a
// function that flushes the log writer.
//
//	cmd := s.cmd("some", "cmd")
//	stderr, done := s.capture(&cmd.Stderr)
//	defer done()
func (s *ShellDriver) capture(ws ...*io.Writer) (buf *bytes.Buffer, done func()) {
	logw := &log.Writer{Log: s.log, Level: slog.LevelError}
	buf = new(bytes.Buffer)
	w := io.MultiWriter(buf, logw)
	for _, p := range ws {
		*p = w
	}
	return buf, func() { _ = logw.Close() }
}

// output runs a command that produces output, translating failures with the
// captured stderr text.
func (s *ShellDriver) output(name string, cmd *exec.Cmd) ([]byte, error) {
	stderr, done := s.capture(&cmd.Stderr)
	defer done()

	out, err := s.run.Output(cmd)
	if err != nil {
		return nil, wrapCmdError(name, stderr.String(), err)
	}
	return out, nil
}

// exec runs a command whose output we don't care about, reproducing stdout
// in the log.
func (s *ShellDriver) exec(name string, cmd *exec.Cmd) error {
	stderr, done := s.capture(&cmd.Stdout, &cmd.Stderr)
	defer done()

	if err := s.run.Run(cmd); err != nil {
		return wrapCmdError(name, stderr.String(), err)
	}
	return nil
}

// Version runs tmux -V and returns its output.
func (s *ShellDriver) Version() ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	s.log.Debug("version")
	return s.output("-V", s.cmd("-V"))
}

// Exec runs an arbitrary tmux command and returns its output. The server's
// global flags are prepended to the given arguments.
func (s *ShellDriver) Exec(args ...string) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errors.New("exec: no command")
	}

	s.log.Debug("exec", "args", strings.Join(args, " "))
	return s.output(args[0], s.cmd(args...))
}

// KillServer runs the kill-server command.
func (s *ShellDriver) KillServer() error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("kill-server")
	return s.exec("kill-server", s.cmd("kill-server"))
}

// ListSessions runs the list-sessions command and returns its output.
func (s *ShellDriver) ListSessions(req ListSessionsRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"list-sessions"}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-F", f)
	}

	s.log.Debug("list-sessions", "req", req)
	return s.output("list-sessions", s.cmd(args...))
}

// ListWindows runs the list-windows command and returns its output.
func (s *ShellDriver) ListWindows(req ListWindowsRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"list-windows"}
	if req.All {
		args = append(args, "-a")
	} else if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-F", f)
	}

	s.log.Debug("list-windows", "req", req)
	return s.output("list-windows", s.cmd(args...))
}

// ListPanes runs the list-panes command and returns its output.
func (s *ShellDriver) ListPanes(req ListPanesRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"list-panes"}
	switch {
	case req.All:
		args = append(args, "-a")
	case req.Session:
		args = append(args, "-s")
		if t := req.Target; len(t) > 0 {
			args = append(args, "-t", t)
		}
	case len(req.Target) > 0:
		args = append(args, "-t", req.Target)
	}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-F", f)
	}

	s.log.Debug("list-panes", "req", req)
	return s.output("list-panes", s.cmd(args...))
}

// HasSession runs the has-session command. A nil error means the session
// exists.
func (s *ShellDriver) HasSession(req HasSessionRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("has-session", "req", req)
	return s.exec("has-session", s.cmd("has-session", "-t", req.Target))
}

// NewSession runs the new-session command and returns its output.
//
// The TMUX environment variable is stripped from the subprocess so that
// tmux doesn't refuse to create a session nested inside the current one.
func (s *ShellDriver) NewSession(req NewSessionRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"new-session"}
	if n := req.Name; len(n) > 0 {
		args = append(args, "-s", n)
	}
	if n := req.WindowName; len(n) > 0 {
		args = append(args, "-n", n)
	}
	if d := req.StartDirectory; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	if w := req.Width; w > 0 {
		args = append(args, "-x", strconv.Itoa(w))
	}
	if h := req.Height; h > 0 {
		args = append(args, "-y", strconv.Itoa(h))
	}
	if req.Detached {
		args = append(args, "-d")
	}

	// We could use the -e flag to set environment variables, but that
	// was added in tmux 3.2. Instead, use,
	//
	//	/usr/bin/env K1=V1 K2=V2 cmd "$1" "$2" ...
	if len(req.Env) > 0 {
		if len(req.Command) == 0 {
			return nil, errors.New("env can be set only if command is set")
		}
		setenv := make([]string, len(req.Env)+1)
		setenv[0] = s.Env
		copy(setenv[1:], req.Env)
		args = append(args, setenv...)
	}

	args = append(args, req.Command...)
	cmd := s.cmd(args...)
	cmd.Env = environWithoutTMUX(s.environ())

	s.log.Debug("new-session", "req", req)
	return s.output("new-session", cmd)
}

// environWithoutTMUX filters the TMUX variable out of the given environment.
func environWithoutTMUX(env []string) []string {
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if !strings.HasPrefix(kv, "TMUX=") {
			out = append(out, kv)
		}
	}
	return out
}

// KillSession runs the kill-session command.
func (s *ShellDriver) KillSession(req KillSessionRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"kill-session"}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}

	s.log.Debug("kill-session", "req", req)
	return s.exec("kill-session", s.cmd(args...))
}

// RenameSession runs the rename-session command.
func (s *ShellDriver) RenameSession(req RenameSessionRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"rename-session"}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Name)

	s.log.Debug("rename-session", "req", req)
	return s.exec("rename-session", s.cmd(args...))
}

// AttachSession runs the attach-session command.
func (s *ShellDriver) AttachSession(req AttachSessionRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"attach-session"}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}

	s.log.Debug("attach-session", "req", req)
	return s.exec("attach-session", s.cmd(args...))
}

// SwitchClient runs the switch-client command.
func (s *ShellDriver) SwitchClient(req SwitchClientRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("switch-client", "req", req)
	return s.exec("switch-client", s.cmd("switch-client", "-t", req.Target))
}

// NewWindow runs the new-window command and returns its output.
func (s *ShellDriver) NewWindow(req NewWindowRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"new-window"}
	if req.Detached {
		args = append(args, "-d")
	}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if n := req.Name; len(n) > 0 {
		args = append(args, "-n", n)
	}
	if d := req.StartDirectory; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	args = append(args, req.Command...)

	s.log.Debug("new-window", "req", req)
	return s.output("new-window", s.cmd(args...))
}

// KillWindow runs the kill-window command.
func (s *ShellDriver) KillWindow(req KillWindowRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("kill-window", "req", req)
	return s.exec("kill-window", s.cmd("kill-window", "-t", req.Target))
}

// SelectWindow runs the select-window command.
func (s *ShellDriver) SelectWindow(req SelectWindowRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("select-window", "req", req)
	return s.exec("select-window", s.cmd("select-window", "-t", req.Target))
}

// MoveWindow runs the move-window command.
func (s *ShellDriver) MoveWindow(req MoveWindowRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"move-window"}
	if src := req.Source; len(src) > 0 {
		args = append(args, "-s", src)
	}
	if dst := req.Destination; len(dst) > 0 {
		args = append(args, "-t", dst)
	}

	s.log.Debug("move-window", "req", req)
	return s.exec("move-window", s.cmd(args...))
}

// RenameWindow runs the rename-window command.
func (s *ShellDriver) RenameWindow(req RenameWindowRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"rename-window"}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Name)

	s.log.Debug("rename-window", "req", req)
	return s.exec("rename-window", s.cmd(args...))
}

// SelectLayout runs the select-layout command.
func (s *ShellDriver) SelectLayout(req SelectLayoutRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"select-layout"}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Layout)

	s.log.Debug("select-layout", "req", req)
	return s.exec("select-layout", s.cmd(args...))
}

// SplitWindow runs the split-window command and returns its output.
func (s *ShellDriver) SplitWindow(req SplitWindowRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"split-window"}
	if req.Horizontal {
		args = append(args, "-h")
	}
	if req.Detached {
		args = append(args, "-d")
	}
	switch {
	case req.Size > 0:
		args = append(args, "-l", strconv.Itoa(req.Size))
	case req.Percent > 0:
		args = append(args, "-p", strconv.Itoa(req.Percent))
	}
	if d := req.StartDirectory; len(d) > 0 {
		args = append(args, "-c", d)
	}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if f := req.Format; len(f) > 0 {
		args = append(args, "-P", "-F", f)
	}
	args = append(args, req.Command...)

	s.log.Debug("split-window", "req", req)
	return s.output("split-window", s.cmd(args...))
}

// ResizeWindow runs the resize-window command.
func (s *ShellDriver) ResizeWindow(req ResizeWindowRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"resize-window"}
	if w := req.Window; len(w) > 0 {
		args = append(args, "-t", w)
	}
	if w := req.Width; w > 0 {
		args = append(args, "-x", strconv.Itoa(w))
	}
	if h := req.Height; h > 0 {
		args = append(args, "-y", strconv.Itoa(h))
	}

	s.log.Debug("resize-window", "req", req)
	return s.exec("resize-window", s.cmd(args...))
}

// SelectPane runs the select-pane command.
func (s *ShellDriver) SelectPane(req SelectPaneRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("select-pane", "req", req)
	return s.exec("select-pane", s.cmd("select-pane", "-t", req.Target))
}

// KillPane runs the kill-pane command.
func (s *ShellDriver) KillPane(req KillPaneRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("kill-pane", "req", req)
	return s.exec("kill-pane", s.cmd("kill-pane", "-t", req.Target))
}

// SwapPane runs the swap-pane command.
func (s *ShellDriver) SwapPane(req SwapPaneRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"swap-pane", "-t", req.Destination}
	if src := req.Source; len(src) > 0 {
		args = append(args, "-s", src)
	}
	if req.MaintainZoom {
		args = append(args, "-Z")
	}

	s.log.Debug("swap-pane", "req", req)
	return s.exec("swap-pane", s.cmd(args...))
}

// ResizePane runs the resize-pane command.
func (s *ShellDriver) ResizePane(req ResizePaneRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"resize-pane", "-t", req.Target}
	if w := req.Width; w > 0 {
		args = append(args, "-x", strconv.Itoa(w))
	}
	if h := req.Height; h > 0 {
		args = append(args, "-y", strconv.Itoa(h))
	}
	if req.ToggleZoom {
		args = append(args, "-Z")
	}

	s.log.Debug("resize-pane", "req", req)
	return s.exec("resize-pane", s.cmd(args...))
}

// CapturePane runs the capture-pane command and returns its output. Wrapped
// lines are joined.
func (s *ShellDriver) CapturePane(req CapturePaneRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"capture-pane", "-p", "-J"}
	if req.EscapeSequences {
		args = append(args, "-e")
	}
	if req.AlternateScreen {
		args = append(args, "-a")
	}
	if p := req.Pane; len(p) > 0 {
		args = append(args, "-t", p)
	}
	if l := req.StartLine; l != 0 {
		args = append(args, "-S", strconv.Itoa(l))
	}
	if l := req.EndLine; l != 0 {
		args = append(args, "-E", strconv.Itoa(l))
	}

	s.log.Debug("capture-pane", "req", req)
	return s.output("capture-pane", s.cmd(args...))
}

// SendKeys runs the send-keys command.
func (s *ShellDriver) SendKeys(req SendKeysRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"send-keys"}
	if req.Reset {
		args = append(args, "-R")
	}
	if req.Literal {
		args = append(args, "-l")
	}
	if p := req.Pane; len(p) > 0 {
		args = append(args, "-t", p)
	}
	args = append(args, req.Keys...)

	s.log.Debug("send-keys", "req", req)
	return s.exec("send-keys", s.cmd(args...))
}

// ClearHistory runs the clear-history command.
func (s *ShellDriver) ClearHistory(req ClearHistoryRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"clear-history"}
	if p := req.Pane; len(p) > 0 {
		args = append(args, "-t", p)
	}

	s.log.Debug("clear-history", "req", req)
	return s.exec("clear-history", s.cmd(args...))
}

// PipePane runs the pipe-pane command. An empty command stops an existing
// pipe.
func (s *ShellDriver) PipePane(req PipePaneRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"pipe-pane"}
	if req.OpenOnly {
		args = append(args, "-o")
	}
	if p := req.Pane; len(p) > 0 {
		args = append(args, "-t", p)
	}
	if c := req.Command; len(c) > 0 {
		args = append(args, c)
	}

	s.log.Debug("pipe-pane", "req", req)
	return s.exec("pipe-pane", s.cmd(args...))
}

// DisplayMessage renders the given message for a pane and returns its
// output.
func (s *ShellDriver) DisplayMessage(req DisplayMessageRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"display-message", "-p"}
	if p := req.Pane; len(p) > 0 {
		args = append(args, "-t", p)
	}
	args = append(args, req.Message)

	s.log.Debug("display-message", "req", req)
	return s.output("display-message", s.cmd(args...))
}

// ShowOptions runs the show-options command and returns its output.
func (s *ShellDriver) ShowOptions(req ShowOptionsRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"show-options"}
	if req.Global {
		args = append(args, "-g")
	}
	if req.Window {
		args = append(args, "-w")
	}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}

	s.log.Debug("show-options", "req", req)
	return s.output("show-options", s.cmd(args...))
}

// SetOption runs the set-option command.
func (s *ShellDriver) SetOption(req SetOptionRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"set-option"}
	if req.Global {
		args = append(args, "-g")
	}
	if req.Window {
		args = append(args, "-w")
	}
	if req.Unset {
		args = append(args, "-u")
	}
	if t := req.Target; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Name)
	if !req.Unset {
		args = append(args, req.Value)
	}

	s.log.Debug("set-option", "req", req)
	return s.exec("set-option", s.cmd(args...))
}

// ShowEnvironment runs the show-environment command and returns its output.
func (s *ShellDriver) ShowEnvironment(req ShowEnvironmentRequest) ([]byte, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	args := []string{"show-environment"}
	if req.Global {
		args = append(args, "-g")
	}
	if t := req.Session; len(t) > 0 {
		args = append(args, "-t", t)
	}
	if n := req.Name; len(n) > 0 {
		args = append(args, n)
	}

	s.log.Debug("show-environment", "req", req)
	return s.output("show-environment", s.cmd(args...))
}

// SetEnvironment runs the set-environment command.
func (s *ShellDriver) SetEnvironment(req SetEnvironmentRequest) error {
	if err := s.init(); err != nil {
		return err
	}

	args := []string{"set-environment"}
	if req.Global {
		args = append(args, "-g")
	}
	switch {
	case req.Remove:
		args = append(args, "-r")
	case req.Unset:
		args = append(args, "-u")
	}
	if t := req.Session; len(t) > 0 {
		args = append(args, "-t", t)
	}
	args = append(args, req.Name)
	if !req.Unset && !req.Remove {
		args = append(args, req.Value)
	}

	s.log.Debug("set-environment", "req", req)
	return s.exec("set-environment", s.cmd(args...))
}

// WaitForSignal runs the wait-for command, blocking until the signal fires.
func (s *ShellDriver) WaitForSignal(sig string) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("wait-for", "signal", sig)
	return s.exec("wait-for", s.cmd("wait-for", sig))
}

// SendSignal runs the wait-for -S command, firing the given signal.
func (s *ShellDriver) SendSignal(sig string) error {
	if err := s.init(); err != nil {
		return err
	}

	s.log.Debug("wait-for -S", "signal", sig)
	return s.exec("wait-for", s.cmd("wait-for", "-S", sig))
}
