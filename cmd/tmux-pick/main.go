// tmux-pick renders an overlay listing tmux sessions (and optionally
// windows), each tagged with a short label. Typing a label switches the
// attached client to that target, or feeds it to a configurable action.
//
// Bind it to a key in tmux.conf:
//
//	bind-key s run-shell -b tmux-pick
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tcell "github.com/gdamore/tcell/v2"
	"go.abhg.dev/tmux"
	"go.abhg.dev/tmux/internal/log"
	"go.abhg.dev/tmux/internal/paniclog"
)

const (
	_name    = "tmux-pick"
	_version = "0.1.0"

	_logfileEnv = "TMUX_PICK_LOG"
)

func main() {
	cmd := mainCmd{
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Executable: os.Executable,
		Getenv:     os.Getenv,
		Getpid:     os.Getpid,
	}
	if err := cmd.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Executable func() (string, error) // == os.Executable
	Getenv     func(string) string    // == os.Getenv
	Getpid     func() int             // == os.Getpid

	// To use a fake tmux driver in tests.
	newTmuxDriver func(*slog.Logger) tmux.Driver
}

const _usage = `usage: %v [options]

Renders an overlay listing your tmux sessions, each tagged with a short
label. Type a label to switch the attached client to that session.

The following flags are available:

	-pane PANE
		pane to draw the overlay over.
		This may be a pane index in the current window, or a unique
		pane identifier.
		Uses the current pane if unspecified.
	-action COMMAND
		shell command that handles the selection instead of
		switch-client.
		COMMAND may reference the target with a "{}" argument, or
		read it from stdin.
	-alphabet STRING
		letters used to generate labels.
		Defaults to the lowercase English alphabet.
	-windows
		list windows as well as sessions.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		print the version and exit.
`

func (cmd *mainCmd) Run(args []string) (err error) {
	// A panic past this point would leave the terminal in a bad state.
	defer paniclog.Recover(&err, cmd.Stderr)

	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage, flag.Name())
	}

	cfg := newConfig(flag)
	version := flag.Bool("version", false, "")

	if err := flag.Parse(args); err != nil {
		return err
	}

	if args := flag.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected arguments %q", args)
	}

	if *version {
		fmt.Fprintln(cmd.Stdout, _name, _version)
		return nil
	}

	if len(cfg.LogFile) == 0 {
		cfg.LogFile = cmd.Getenv(_logfileEnv)
	}

	logW, closeLog, err := cfg.BuildLogWriter(cmd.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	lvl := slog.LevelInfo
	if cfg.Verbose {
		lvl = slog.LevelDebug
	}
	logger := log.New(logW, lvl)

	newTmuxDriver := cmd.newTmuxDriver
	if newTmuxDriver == nil {
		newTmuxDriver = func(l *slog.Logger) tmux.Driver {
			return &tmux.ShellDriver{Log: l}
		}
	}
	tmuxDriver := newTmuxDriver(logger.With("mod", "tmux"))

	return (&wrapper{
		Wrapped: &app{
			Log:  logger,
			Tmux: tmuxDriver,
			NewAction: (&actionFactory{
				Log:     logger,
				Environ: os.Environ,
			}).New,
			NewScreen: tcell.NewScreen,
		},
		Log:        logger,
		Tmux:       tmuxDriver,
		Executable: cmd.Executable,
		Getenv:     cmd.Getenv,
		Getpid:     cmd.Getpid,
	}).Run(cfg)
}
