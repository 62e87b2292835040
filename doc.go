// Package tmux is a typed client for the tmux terminal multiplexer.
//
// It shells out to the tmux binary and wraps its command line in two layers:
//
//   - [Driver] and [ShellDriver] map one-to-one to tmux commands, building
//     argument lists from typed request structs and translating tmux's
//     stderr messages into inspectable errors.
//   - [Server], [Session], [Window], and [Pane] are typed handles to the
//     objects tmux manages, built on top of a Driver. They capture object
//     attributes with tmux format strings and expose them as typed
//     accessors.
//
// The zero value of [Server] talks to the default tmux server:
//
//	var srv tmux.Server
//	sess, err := srv.NewSession(tmux.NewSessionOptions{Name: "work"})
//
// Because tmux operations are asynchronous, code that reads back the effect
// of a command usually needs to retry. [Waiter] polls a condition until it
// holds.
//
// The tmuxtest package provides a mock Driver and helpers for running tests
// against a real, throwaway tmux server. The tmuxfmt and tmuxopt packages
// support building tmux format strings and reading tmux options into Go
// variables.
package tmux
