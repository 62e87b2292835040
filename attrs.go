package tmux

import "strconv"

// attrInt reads a numeric attribute from a parsed record, treating missing
// or malformed values as zero.
func attrInt(attrs map[string]string, name string) int {
	v, err := strconv.Atoi(attrs[name])
	if err != nil {
		return 0
	}
	return v
}

// attrBool reads a flag attribute from a parsed record. tmux reports flags
// as counters, so any value other than "" and "0" is true.
func attrBool(attrs map[string]string, name string) bool {
	v := attrs[name]
	return len(v) > 0 && v != "0"
}
