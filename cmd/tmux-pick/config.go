package main

import (
	"flag"
	"io"
	"os"

	"go.abhg.dev/tmux/tmuxopt"
)

var _defaultConfig = config{
	Alphabet: _defaultAlphabet,
}

type config struct {
	Pane     string
	Action   string
	Alphabet alphabet
	Windows  bool
	LogFile  string
	Verbose  bool
}

func newConfig(flag *flag.FlagSet) *config {
	var c config
	c.RegisterFlags(flag)
	return &c
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.Pane, "pane", "", "")
	flag.StringVar(&c.Action, "action", "", "")
	flag.Var(&c.Alphabet, "alphabet", "")
	flag.BoolVar(&c.Windows, "windows", false, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

func (c *config) RegisterOptions(load *tmuxopt.Loader) {
	load.StringVar(&c.Action, "@pick-action")
	load.Var(&c.Alphabet, "@pick-alphabet")
	load.BoolVar(&c.Windows, "@pick-windows")
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Pane) == 0 {
		c.Pane = o.Pane
	}
	if len(c.Action) == 0 {
		c.Action = o.Action
	}
	if len(c.Alphabet) == 0 {
		c.Alphabet = o.Alphabet
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Windows = c.Windows || o.Windows
	c.Verbose = c.Verbose || o.Verbose
}

// Flags rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Flags() []string {
	var args []string
	if len(c.Pane) > 0 {
		args = append(args, "-pane", c.Pane)
	}
	if len(c.Action) > 0 {
		args = append(args, "-action", c.Action)
	}
	if len(c.Alphabet) > 0 {
		args = append(args, "-alphabet", c.Alphabet.String())
	}
	if c.Windows {
		args = append(args, "-windows")
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	return args
}

// BuildLogWriter builds the writer that log output should be sent to, and a
// function to flush and close it. Logs go to the given fallback writer,
// usually stderr, unless a log file was configured.
func (c *config) BuildLogWriter(fallback io.Writer) (w io.Writer, close func(), err error) {
	if len(c.LogFile) == 0 {
		return fallback, func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
