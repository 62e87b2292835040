package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/tmux/internal/iotest"
)

func TestConfigParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want config
	}{
		{desc: "no args"}, // zero values
		{
			desc: "pane",
			give: []string{"--pane", "42"},
			want: config{Pane: "42"},
		},
		{
			desc: "action",
			give: []string{"-action", "tmux display-message {}"},
			want: config{Action: "tmux display-message {}"},
		},
		{
			desc: "alphabet",
			give: []string{"-alphabet", "asdf"},
			want: config{Alphabet: "asdf"},
		},
		{
			desc: "windows",
			give: []string{"-windows"},
			want: config{Windows: true},
		},
		{
			desc: "log",
			give: []string{"--log", "log.txt"},
			want: config{LogFile: "log.txt"},
		},
		{
			desc: "verbose",
			give: []string{"--verbose"},
			want: config{Verbose: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
			fset.SetOutput(iotest.Writer(t))
			cfg := newConfig(fset)

			require.NoError(t, fset.Parse(tt.give))
			assert.Equal(t, &tt.want, cfg)

			t.Run("round trip", func(t *testing.T) {
				args := cfg.Flags()

				fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
				fset.SetOutput(iotest.Writer(t))
				got := newConfig(fset)

				require.NoError(t, fset.Parse(args))
				assert.Equal(t, cfg, got)
			})
		})
	}
}

func TestConfigFillFrom(t *testing.T) {
	t.Parallel()

	cfg := config{Action: "pbcopy"}
	cfg.FillFrom(&config{
		Action:   "ignored",
		Alphabet: "asdf",
		Windows:  true,
	})

	assert.Equal(t, config{
		Action:   "pbcopy",
		Alphabet: "asdf",
		Windows:  true,
	}, cfg)
}

func TestConfigBuildLogWriter(t *testing.T) {
	t.Parallel()

	t.Run("stderr", func(t *testing.T) {
		t.Parallel()

		var (
			cfg  config
			buff bytes.Buffer
		)
		w, closew, err := cfg.BuildLogWriter(&buff)
		require.NoError(t, err)
		defer closew()

		_, err = io.WriteString(w, "foo")
		require.NoError(t, err)

		assert.Equal(t, "foo", buff.String())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		logFile := filepath.Join(t.TempDir(), "log.out")
		cfg := config{LogFile: logFile}

		var buff bytes.Buffer
		defer func() { assert.Empty(t, buff.String()) }()

		w, closew, err := cfg.BuildLogWriter(&buff)
		require.NoError(t, err)

		_, err = io.WriteString(w, "foo")
		require.NoError(t, err)
		closew()

		got, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Equal(t, "foo", string(got))
	})

	t.Run("file/open error", func(t *testing.T) {
		t.Parallel()

		logFile := filepath.Join(t.TempDir(), "does/not/exist/log.out")

		cfg := config{LogFile: logFile}
		_, _, err := cfg.BuildLogWriter(io.Discard)
		require.Error(t, err)

		_, err = os.Stat(logFile)
		assert.Error(t, err)
	})
}

func TestUsageHasAllConfigFlags(t *testing.T) {
	// We use _usage to write the user facing help. Make sure that every
	// flag registered by newConfig has a corresponding entry in _usage.

	fset := flag.NewFlagSet(t.Name(), flag.ContinueOnError)
	newConfig(fset)

	fset.VisitAll(func(f *flag.Flag) {
		assert.Contains(t, _usage, "\t-"+f.Name,
			"flag %q should be documented", f.Name)
	})
}
