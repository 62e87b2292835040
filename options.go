package tmux

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// parseOptionsOutput parses the output of show-options into a map.
//
// Each line has the form "name value" where value may be double-quoted.
// Options set without a value report just the name.
func parseOptionsOutput(out []byte) map[string]string {
	opts := make(map[string]string)
	scan := bufio.NewScanner(bytes.NewReader(out))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if len(line) == 0 {
			continue
		}

		name, value, _ := strings.Cut(line, " ")
		if len(value) > 1 && value[0] == '"' {
			if unq, err := strconv.Unquote(value); err == nil {
				value = unq
			}
		}
		opts[name] = value
	}
	return opts
}

func showOptions(d Driver, req ShowOptionsRequest) (map[string]string, error) {
	out, err := d.ShowOptions(req)
	if err != nil {
		return nil, fmt.Errorf("show options: %w", err)
	}
	return parseOptionsOutput(out), nil
}

func showOption(d Driver, req ShowOptionsRequest, name string) (string, error) {
	opts, err := showOptions(d, req)
	if err != nil {
		return "", err
	}

	v, ok := opts[name]
	if !ok {
		return "", fmt.Errorf("option %q: %w", name, ErrUnknownOption)
	}
	return v, nil
}
