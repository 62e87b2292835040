package main

import (
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"go.abhg.dev/tmux/internal/log"
	"go.abhg.dev/tmux/internal/pick"
	"go.uber.org/multierr"
)

const (
	_placeholderArg = "{}"
	_targetEnvKey   = "TMUX_PICK_TARGET"
	_nameEnvKey     = "TMUX_PICK_NAME"
)

func targetEnvEntries(t pick.Target) []string {
	return []string{
		_targetEnvKey + "=" + t.ID,
		_nameEnvKey + "=" + t.Name,
	}
}

type actionFactory struct {
	Log     *slog.Logger
	Environ func() []string // == os.Environ
}

// New builds a command handler from the provided string.
//
// The string is a multi-word shell command. It should use "{}" as an argument
// to reference the selected target. If no "{}" is present, the target ID will
// be sent to the command over stdin.
func (f *actionFactory) New(action string) (action, error) {
	args, err := shellwords.Parse(action)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errors.New("empty action")
	}

	cmd, args := args[0], args[1:]
	for i, arg := range args {
		if arg == _placeholderArg {
			return &argAction{
				Cmd:        cmd,
				BeforeArgs: args[:i],
				AfterArgs:  args[i+1:],
				Log:        f.Log,
				Environ:    f.Environ,
			}, nil
		}
	}

	// No "{}" use stdin.
	return &stdinAction{
		Cmd:     cmd,
		Args:    args,
		Log:     f.Log,
		Environ: f.Environ,
	}, nil
}

// action specifies how to handle the user's selection.
type action interface {
	Run(pick.Selection) error
}

type stdinAction struct {
	Cmd     string
	Args    []string
	Log     *slog.Logger
	Environ func() []string // == os.Environ
}

func (h *stdinAction) Run(sel pick.Selection) (err error) {
	logw := &log.Writer{
		Log: h.Log.With("cmd", h.Cmd),
	}
	defer multierr.AppendInvoke(&err, multierr.Close(logw))

	cmd := exec.Command(h.Cmd, h.Args...)
	cmd.Stdin = strings.NewReader(sel.Target.ID)
	cmd.Stdout = logw
	cmd.Stderr = logw
	cmd.Env = append(h.Environ(), targetEnvEntries(sel.Target)...)
	return cmd.Run()
}

type argAction struct {
	Cmd                   string
	BeforeArgs, AfterArgs []string
	Log                   *slog.Logger
	Environ               func() []string // == os.Environ
}

func (h *argAction) Run(sel pick.Selection) (err error) {
	logw := &log.Writer{
		Log: h.Log.With("cmd", h.Cmd),
	}
	defer multierr.AppendInvoke(&err, multierr.Close(logw))

	args := make([]string, 0, len(h.BeforeArgs)+len(h.AfterArgs)+1)
	args = append(args, h.BeforeArgs...)
	args = append(args, sel.Target.ID)
	args = append(args, h.AfterArgs...)

	cmd := exec.Command(h.Cmd, args...)
	cmd.Stdout = logw
	cmd.Stderr = logw
	cmd.Env = append(h.Environ(), targetEnvEntries(sel.Target)...)
	return cmd.Run()
}
