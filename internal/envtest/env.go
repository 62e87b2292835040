// Package envtest fakes the process environment for tests.
package envtest

import "fmt"

// Empty is an environment with no variables set.
var Empty = Env{}

// Env is an in-memory environment. Its methods mirror the os package's
// environment accessors so that code taking those as dependencies can run
// against it.
type Env struct {
	vars map[string]string
}

// Pairs builds an environment from alternating name, value arguments.
func Pairs(pairs ...string) (*Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%d items in environment are not even", len(pairs))
	}

	vars := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		vars[pairs[i]] = pairs[i+1]
	}
	return &Env{vars: vars}, nil
}

// MustPairs is Pairs, panicking on error.
func MustPairs(pairs ...string) *Env {
	env, err := Pairs(pairs...)
	if err != nil {
		panic(err)
	}
	return env
}

// Getenv reports the value of the named variable, or "" if it isn't set. A
// nil Env behaves like an empty one.
func (e *Env) Getenv(name string) string {
	if e == nil {
		return ""
	}
	return e.vars[name]
}
