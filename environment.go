package tmux

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// parseEnvironmentOutput parses the output of show-environment into a map.
//
// Variables are reported one per line in "NAME=value" form. Variables marked
// for removal are reported as "-NAME" and omitted from the result.
func parseEnvironmentOutput(out []byte) map[string]string {
	env := make(map[string]string)
	scan := bufio.NewScanner(bytes.NewReader(out))
	for scan.Scan() {
		line := scan.Text()
		if len(line) == 0 || strings.HasPrefix(line, "-") {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[name] = value
	}
	return env
}

func showEnvironment(d Driver, req ShowEnvironmentRequest) (map[string]string, error) {
	out, err := d.ShowEnvironment(req)
	if err != nil {
		return nil, fmt.Errorf("show environment: %w", err)
	}
	return parseEnvironmentOutput(out), nil
}

func showEnvironmentValue(d Driver, req ShowEnvironmentRequest) (string, error) {
	out, err := d.ShowEnvironment(req)
	if err != nil {
		return "", fmt.Errorf("show environment: %w", err)
	}

	line, _, _ := strings.Cut(string(bytes.TrimSpace(out)), "\n")
	if strings.HasPrefix(line, "-") {
		return "", fmt.Errorf("variable %q is unset", req.Name)
	}

	_, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", fmt.Errorf("malformed environment entry %q", line)
	}
	return value, nil
}
