// Package stringobj renders terse JSON-ish object descriptions for String
// methods, skipping attributes that hold their zero value.
package stringobj

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Builder accumulates attribute-value pairs for an object description.
// Zero-valued attributes are dropped so that sparsely populated objects
// print compactly.
type Builder struct {
	pairs map[string]string
}

// Put records the attribute if its value is non-zero. Recording the same
// attribute again replaces the previous value.
func (b *Builder) Put(name string, value interface{}) {
	if value == nil {
		return
	}
	if reflect.ValueOf(value).IsZero() {
		return
	}
	if b.pairs == nil {
		b.pairs = make(map[string]string)
	}
	b.pairs[name] = fmt.Sprint(value)
}

// String renders the recorded attributes in "{name: value, ...}" form with
// names in sorted order.
func (b *Builder) String() string {
	names := make([]string, 0, len(b.pairs))
	for name := range b.pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	out.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(name)
		out.WriteString(": ")
		out.WriteString(b.pairs[name])
	}
	out.WriteByte('}')
	return out.String()
}
