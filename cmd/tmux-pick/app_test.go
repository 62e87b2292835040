package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/tmux"
	"go.abhg.dev/tmux/internal/log/logtest"
	"go.abhg.dev/tmux/tmuxfmt"
	"go.abhg.dev/tmux/tmuxtest"
)

func TestAppRunInspectPaneError(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	tmuxDriver := tmuxtest.NewMockDriver(mockCtrl)
	tmuxDriver.EXPECT().
		DisplayMessage(tmuxtest.DisplayMessageRequestMatcher{Pane: "42"}).
		Return(nil, errors.New("great sadness"))

	err := (&app{
		Log:  logtest.NewLogger(t),
		Tmux: tmuxDriver,
	}).Run(&config{Pane: "42"})
	require.Error(t, err, "run must fail")
	assert.ErrorContains(t, err, "great sadness")
}

func TestAppRunNoTargets(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	tmuxDriver := tmuxtest.NewMockDriver(mockCtrl)

	// Both pane inspections and the session lookup arrive as
	// display-message calls; tell them apart by the requested format.
	tmuxDriver.EXPECT().
		DisplayMessage(gomock.Any()).
		DoAndReturn(func(req tmux.DisplayMessageRequest) ([]byte, error) {
			if strings.Contains(req.Message, "pane_id") {
				return []byte("%1\t@1\t80\t40\tnormal-mode\t0\t0\t/tmp\n"), nil
			}
			return []byte("$5\n"), nil
		}).
		Times(3)

	// The only session on the server is the one the picker runs in.
	record := strings.Join([]string{
		"$5", "tmux-pick", "/tmp", "1", "80", "40",
		"1700000000", "1700000000", "0", "0", "", "1700000000",
	}, tmuxfmt.Separator)
	tmuxDriver.EXPECT().
		ListSessions(gomock.Any()).
		Return([]byte(record+"\n"), nil)

	err := (&app{
		Log:  logtest.NewLogger(t),
		Tmux: tmuxDriver,
	}).Run(&config{})
	require.Error(t, err, "run must fail")
	assert.ErrorContains(t, err, "no sessions to pick from")
}
