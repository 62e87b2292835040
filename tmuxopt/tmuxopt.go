// Package tmuxopt reads tmux options into Go variables, in the spirit of the
// flag package: declare the receivers up front, then load them all with a
// single show-options call.
package tmuxopt

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.abhg.dev/tmux"
	"go.uber.org/multierr"
)

// Value is a receiver for a tmux option value.
type Value interface {
	Set(value string) error
}

var _ Value = flag.Value(nil) // interface matching

// MapValue is a receiver for a group of tmux options sharing a prefix.
type MapValue interface {
	Put(key, value string) error
}

// Loader loads tmux options into user-specified variables.
type Loader struct {
	Tmux tmux.Driver

	once   sync.Once
	values map[string]Value
	maps   map[string]MapValue // keyed by option prefix
}

func (l *Loader) init() {
	l.once.Do(func() {
		l.values = make(map[string]Value)
		l.maps = make(map[string]MapValue)
	})
}

// Var specifies that the given option should be loaded into the provided
// Value object.
func (l *Loader) Var(val Value, option string) {
	l.init()

	l.values[option] = val
}

// StringVar specifies that the given option should be loaded as a string.
func (l *Loader) StringVar(dest *string, option string) {
	l.init()

	l.Var((*stringValue)(dest), option)
}

// BoolVar specifies that the given option should be loaded as a boolean.
// tmux reports boolean options as "on" and "off"; "1" and "0" are accepted
// too.
func (l *Loader) BoolVar(dest *bool, option string) {
	l.init()

	l.Var((*boolValue)(dest), option)
}

// IntVar specifies that the given option should be loaded as an integer.
func (l *Loader) IntVar(dest *int, option string) {
	l.init()

	l.Var((*intValue)(dest), option)
}

// MapVar specifies that every option starting with the given prefix should
// be loaded into the provided MapValue, keyed by the option name with the
// prefix stripped.
func (l *Loader) MapVar(val MapValue, prefix string) {
	l.init()

	l.maps[prefix] = val
}

// Load loads tmux options using the underlying tmux.Driver with the provided
// request. This will fill all previously specified values and vars.
//
// Receivers whose options aren't set are left unchanged, so they keep
// whatever defaults they held before the call.
func (l *Loader) Load(req tmux.ShowOptionsRequest) (err error) {
	if len(l.values) == 0 && len(l.maps) == 0 {
		return nil
	}

	out, err := l.Tmux.ShowOptions(req)
	if err != nil {
		return err
	}

	scan := bufio.NewScanner(bytes.NewReader(out))
	for scan.Scan() {
		line := scan.Bytes()

		idx := bytes.IndexByte(line, ' ')
		if idx < 0 {
			continue
		}

		name := string(line[:idx])
		value := unquote(string(line[idx+1:]))

		if r, ok := l.values[name]; ok {
			if serr := r.Set(value); serr != nil {
				err = multierr.Append(err, fmt.Errorf("load option %q: %v", name, serr))
			}
			continue
		}

		for prefix, m := range l.maps {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			if serr := m.Put(strings.TrimPrefix(name, prefix), value); serr != nil {
				err = multierr.Append(err, fmt.Errorf("load option %q: %v", name, serr))
			}
		}
	}

	return multierr.Append(err, scan.Err())
}

// unquote undoes the quoting tmux applies when printing option values.
// Double-quoted strings follow Go escaping rules closely enough for
// strconv.Unquote; single-quoted strings are literal except for doubled
// backslashes, which tmux also doubles in unquoted output.
func unquote(s string) string {
	if len(s) >= 2 {
		switch {
		case s[0] == '"' && s[len(s)-1] == '"':
			if o, err := strconv.Unquote(s); err == nil {
				return o
			}
		case s[0] == '\'' && s[len(s)-1] == '\'':
			s = s[1 : len(s)-1]
		}
	}
	return strings.ReplaceAll(s, `\\`, `\`)
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*(*string)(v) = s
	return nil
}

type boolValue bool

func (v *boolValue) Set(s string) error {
	switch s {
	case "on", "1", "yes", "true":
		*(*bool)(v) = true
	case "off", "0", "no", "false", "":
		*(*bool)(v) = false
	default:
		return fmt.Errorf("invalid boolean value %q", s)
	}
	return nil
}

type intValue int

func (v *intValue) Set(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	*(*int)(v) = i
	return nil
}
