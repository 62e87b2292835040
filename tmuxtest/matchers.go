package tmuxtest

import (
	"fmt"
	"strings"

	"github.com/golang/mock/gomock"
	"go.abhg.dev/tmux"
)

// DisplayMessageRequestMatcher is a gomock matcher that matches
// tmux.DisplayMessageRequest objects by pane ID.
type DisplayMessageRequestMatcher struct {
	Pane string
}

var _ gomock.Matcher = DisplayMessageRequestMatcher{}

func (m DisplayMessageRequestMatcher) String() string {
	return fmt.Sprintf("DisplayMessageRequest{Pane: %q}", m.Pane)
}

// Matches reports whether the provided DisplayMessageRequest matches.
func (m DisplayMessageRequestMatcher) Matches(x interface{}) bool {
	req, ok := x.(tmux.DisplayMessageRequest)
	if !ok {
		return false
	}

	return req.Pane == m.Pane
}

// SendKeysRequestMatcher is a gomock matcher that matches
// tmux.SendKeysRequest objects by pane ID and a substring of the keys sent.
type SendKeysRequestMatcher struct {
	Pane     string
	Contains string
}

var _ gomock.Matcher = SendKeysRequestMatcher{}

func (m SendKeysRequestMatcher) String() string {
	return fmt.Sprintf("SendKeysRequest{Pane: %q, Keys: ..%q..}", m.Pane, m.Contains)
}

// Matches reports whether the provided SendKeysRequest matches.
func (m SendKeysRequestMatcher) Matches(x interface{}) bool {
	req, ok := x.(tmux.SendKeysRequest)
	if !ok {
		return false
	}
	if req.Pane != m.Pane {
		return false
	}

	return strings.Contains(strings.Join(req.Keys, " "), m.Contains)
}

// ListRequestMatcher is a gomock matcher that matches any of the list
// request types by target, ignoring the format.
type ListRequestMatcher struct {
	Target string
}

var _ gomock.Matcher = ListRequestMatcher{}

func (m ListRequestMatcher) String() string {
	return fmt.Sprintf("list request with Target: %q", m.Target)
}

// Matches reports whether the provided list request matches.
func (m ListRequestMatcher) Matches(x interface{}) bool {
	switch req := x.(type) {
	case tmux.ListSessionsRequest:
		return m.Target == ""
	case tmux.ListWindowsRequest:
		return req.Target == m.Target
	case tmux.ListPanesRequest:
		return req.Target == m.Target
	default:
		return false
	}
}
