package tmuxfmt

import "strings"

// Separator delimits fields in records rendered by a Fieldset.
//
// U+241E (symbol for record separator) does not occur in terminal text, so
// field values never need escaping.
const Separator = "␞"

// Fieldset is an ordered list of named tmux format variables rendered into a
// single format string, one record per line of tmux output.
//
// It backs list operations (list-sessions, list-windows, list-panes), which
// report one record per entity.
type Fieldset struct {
	names []string
	keep  map[string]struct{}
}

// NewFieldset builds a Fieldset capturing the given format variables in
// order.
func NewFieldset(names ...string) *Fieldset {
	return &Fieldset{names: names}
}

// Keep marks the given field names as retained in parsed records even when
// their values are empty. All other empty-valued fields are dropped.
func (f *Fieldset) Keep(names ...string) *Fieldset {
	if f.keep == nil {
		f.keep = make(map[string]struct{}, len(names))
	}
	for _, n := range names {
		f.keep[n] = struct{}{}
	}
	return f
}

// Render renders the fieldset into a tmux format string.
//
//	#{name1}␞#{name2}␞...
func (f *Fieldset) Render() string {
	exprs := make([]Expr, len(f.names))
	for i, n := range f.names {
		exprs[i] = Var(n)
	}
	return Join(exprs, Separator)
}

// Parse parses a single output record into a map of field name to value.
// Empty values are dropped unless their name was marked with Keep.
func (f *Fieldset) Parse(record string) map[string]string {
	values := strings.Split(record, Separator)
	attrs := make(map[string]string, len(f.names))
	for i, name := range f.names {
		if i >= len(values) {
			break
		}

		v := strings.TrimRight(values[i], "\r")
		if len(v) == 0 {
			if _, ok := f.keep[name]; !ok {
				continue
			}
		}
		attrs[name] = v
	}
	return attrs
}

// ParseLines parses one record per line of tmux output, ignoring blank
// lines. This tolerates the trailing newline tmux leaves at the end of list
// output.
func (f *Fieldset) ParseLines(out []byte) []map[string]string {
	lines := strings.Split(string(out), "\n")
	records := make([]map[string]string, 0, len(lines))
	for _, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		records = append(records, f.Parse(line))
	}
	return records
}
