package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPane(d Driver, attrs map[string]string) *Pane {
	return newPane(&Server{Driver: d}, attrs)
}

func TestPaneAccessors(t *testing.T) {
	t.Parallel()

	p := stubPane(nil, map[string]string{
		"session_id":           "$1",
		"window_id":            "@2",
		"pane_id":              "%5",
		"pane_index":           "1",
		"pane_width":           "80",
		"pane_height":          "24",
		"pane_title":           "bash",
		"pane_pid":             "12345",
		"pane_active":          "1",
		"pane_dead":            "0",
		"pane_in_mode":         "1",
		"pane_start_command":   "htop",
		"pane_current_path":    "/home/potato",
		"pane_current_command": "htop",
		"history_size":         "118",
		"history_limit":        "2000",
	})

	assert.Equal(t, "%5", p.ID())
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, 80, p.Width())
	assert.Equal(t, 24, p.Height())
	assert.Equal(t, "bash", p.Title())
	assert.Equal(t, 12345, p.PID())
	assert.True(t, p.Active())
	assert.False(t, p.Dead())
	assert.True(t, p.InMode())
	assert.Equal(t, "htop", p.StartCommand())
	assert.Equal(t, "/home/potato", p.CurrentPath())
	assert.Equal(t, "htop", p.CurrentCommand())
	assert.Equal(t, 118, p.HistorySize())
	assert.Equal(t, "@2", p.WindowID())
	assert.Equal(t, "$1", p.SessionID())
	assert.Equal(t, "2000", p.Attr("history_limit"))
}

func TestPaneSendKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		text string
		opts SendKeysOptions
		want []SendKeysRequest
	}{
		{
			desc: "plain",
			text: "echo hello",
			want: []SendKeysRequest{
				{Pane: "%1", Keys: []string{"echo hello"}},
			},
		},
		{
			desc: "enter",
			text: "echo hello",
			opts: SendKeysOptions{Enter: true},
			want: []SendKeysRequest{
				{Pane: "%1", Keys: []string{"echo hello"}},
				{Pane: "%1", Keys: []string{"Enter"}},
			},
		},
		{
			desc: "literal",
			text: "C-c",
			opts: SendKeysOptions{Literal: true},
			want: []SendKeysRequest{
				{Pane: "%1", Literal: true, Keys: []string{"C-c"}},
			},
		},
		{
			desc: "suppress history",
			text: "secret",
			opts: SendKeysOptions{SuppressHistory: true, Enter: true},
			want: []SendKeysRequest{
				{Pane: "%1", Keys: []string{" secret"}},
				{Pane: "%1", Keys: []string{"Enter"}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var got []SendKeysRequest
			p := stubPane(&driverStub{
				sendKeys: func(req SendKeysRequest) error {
					got = append(got, req)
					return nil
				},
			}, map[string]string{"pane_id": "%1"})

			require.NoError(t, p.SendKeys(tt.text, tt.opts))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaneCapture(t *testing.T) {
	t.Parallel()

	p := stubPane(&driverStub{
		capturePane: func(req CapturePaneRequest) ([]byte, error) {
			assert.Equal(t, "%1", req.Pane)
			assert.Equal(t, -10, req.StartLine)
			assert.True(t, req.EscapeSequences)
			return []byte("$ echo hello\nhello\n"), nil
		},
	}, map[string]string{"pane_id": "%1"})

	got, err := p.Capture(CaptureOptions{StartLine: -10, EscapeSequences: true})
	require.NoError(t, err)
	assert.Equal(t, "$ echo hello\nhello\n", got)
}

func TestPanePipe(t *testing.T) {
	t.Parallel()

	var reqs []PipePaneRequest
	p := stubPane(&driverStub{
		pipePane: func(req PipePaneRequest) error {
			reqs = append(reqs, req)
			return nil
		},
	}, map[string]string{"pane_id": "%1"})

	require.NoError(t, p.Pipe("cat >> /tmp/out"))
	require.NoError(t, p.StopPipe())

	require.Len(t, reqs, 2)
	assert.Equal(t, PipePaneRequest{Pane: "%1", Command: "cat >> /tmp/out", OpenOnly: true}, reqs[0])
	assert.Equal(t, PipePaneRequest{Pane: "%1"}, reqs[1])
}

func TestPaneReset(t *testing.T) {
	t.Parallel()

	var (
		sent    SendKeysRequest
		cleared bool
	)
	p := stubPane(&driverStub{
		sendKeys: func(req SendKeysRequest) error {
			sent = req
			return nil
		},
		clearHistory: func(req ClearHistoryRequest) error {
			cleared = true
			assert.Equal(t, "%1", req.Pane)
			return nil
		},
	}, map[string]string{"pane_id": "%1"})

	require.NoError(t, p.Reset())
	assert.True(t, sent.Reset)
	assert.True(t, cleared)
}

func TestPaneCommands(t *testing.T) {
	t.Parallel()

	var (
		selected string
		killed   string
		swapped  SwapPaneRequest
		resized  ResizePaneRequest
	)
	p := stubPane(&driverStub{
		selectPane: func(req SelectPaneRequest) error { selected = req.Target; return nil },
		killPane:   func(req KillPaneRequest) error { killed = req.Target; return nil },
		swapPane:   func(req SwapPaneRequest) error { swapped = req; return nil },
		resizePane: func(req ResizePaneRequest) error { resized = req; return nil },
	}, map[string]string{"pane_id": "%1"})

	other := stubPane(nil, map[string]string{"pane_id": "%2"})

	require.NoError(t, p.Select())
	assert.Equal(t, "%1", selected)

	require.NoError(t, p.Swap(other))
	assert.Equal(t, SwapPaneRequest{Source: "%1", Destination: "%2"}, swapped)

	require.NoError(t, p.Resize(100, 0))
	assert.Equal(t, ResizePaneRequest{Target: "%1", Width: 100}, resized)

	require.NoError(t, p.ToggleZoom())
	assert.Equal(t, ResizePaneRequest{Target: "%1", ToggleZoom: true}, resized)

	require.NoError(t, p.Kill())
	assert.Equal(t, "%1", killed)
}

func TestPaneDisplayMessage(t *testing.T) {
	t.Parallel()

	p := stubPane(&driverStub{
		displayMessage: func(req DisplayMessageRequest) ([]byte, error) {
			assert.Equal(t, "%1", req.Pane)
			assert.Equal(t, "#{pane_tty}", req.Message)
			return []byte("/dev/pts/3\n"), nil
		},
	}, map[string]string{"pane_id": "%1"})

	got, err := p.DisplayMessage("#{pane_tty}")
	require.NoError(t, err)
	assert.Equal(t, "/dev/pts/3\n", got)
}

func TestPaneRefresh(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		p := stubPane(&driverStub{
			listPanes: func(req ListPanesRequest) ([]byte, error) {
				assert.True(t, req.All)
				return records(_paneFormats, map[string]string{
					"pane_id":    "%1",
					"pane_title": "vim",
				}), nil
			},
		}, map[string]string{"pane_id": "%1", "pane_title": "bash"})

		require.NoError(t, p.Refresh())
		assert.Equal(t, "vim", p.Title())
	})

	t.Run("gone", func(t *testing.T) {
		t.Parallel()

		p := stubPane(&driverStub{
			listPanes: func(ListPanesRequest) ([]byte, error) {
				return nil, nil
			},
		}, map[string]string{"pane_id": "%1"})

		assert.ErrorIs(t, p.Refresh(), ErrPaneNotFound)
	})
}
