package tmux

import "go.abhg.dev/tmux/tmuxfmt"

// Canonical format variables fetched for each entity. Attribute maps on
// Session, Window, and Pane objects hold the values tmux reported for these
// names.
//
// Window and pane listings are prefixed with the identity of their parents
// so that objects parsed from server-wide listings know where they live.
var (
	_sessionFormats = []string{
		"session_id",
		"session_name",
		"session_path",
		"session_windows",
		"session_width",
		"session_height",
		"session_created",
		"session_activity",
		"session_attached",
		"session_grouped",
		"session_group",
		"session_last_attached",
	}

	_windowFormats = []string{
		"session_id",
		"session_name",
		"window_id",
		"window_name",
		"window_index",
		"window_width",
		"window_height",
		"window_active",
		"window_flags",
		"window_layout",
		"window_panes",
		"window_zoomed_flag",
	}

	_paneFormats = []string{
		"session_id",
		"session_name",
		"window_id",
		"window_index",
		"window_name",
		"pane_id",
		"pane_index",
		"pane_width",
		"pane_height",
		"pane_title",
		"pane_pid",
		"pane_active",
		"pane_dead",
		"pane_in_mode",
		"pane_start_command",
		"pane_current_path",
		"pane_current_command",
		"history_size",
		"history_limit",
	}
)

func sessionFields() *tmuxfmt.Fieldset {
	return tmuxfmt.NewFieldset(_sessionFormats...)
}

func windowFields() *tmuxfmt.Fieldset {
	return tmuxfmt.NewFieldset(_windowFormats...)
}

func paneFields() *tmuxfmt.Fieldset {
	// pane_current_path is retained even when empty: a pane may enter a
	// process we can't get a cwd from, and callers still want to see the
	// attribute change.
	return tmuxfmt.NewFieldset(_paneFormats...).Keep("pane_current_path")
}
