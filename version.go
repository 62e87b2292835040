package tmux

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a tmux server version, as reported by "tmux -V".
type Version struct {
	Major, Minor int

	// Suffix following the numeric components, e.g. the "a" in "3.3a".
	Suffix string
}

// Development builds ("master", "next-X.Y") report versions newer than any
// release.
const _devMajor = 1 << 30

// Versions at which tmux behavior this package relies upon changed.
var (
	// has-session matches names exactly when prefixed with "=".
	_versionExactHasSession = Version{Major: 2, Minor: 1}

	// Detached sessions get a tiny default area unless sized explicitly.
	_versionDefaultSize = Version{Major: 2, Minor: 6}
)

// ParseVersion parses the output of "tmux -V".
//
// Development builds ("tmux master", "tmux next-3.5") are treated as newer
// than every numbered release.
func ParseVersion(s string) (Version, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "tmux")
	v = strings.TrimSpace(v)

	if len(v) == 0 {
		return Version{}, fmt.Errorf("parse tmux version: empty string")
	}

	if v == "master" || strings.HasPrefix(v, "next-") {
		return Version{Major: _devMajor, Suffix: v}, nil
	}

	major, rest, _ := strings.Cut(v, ".")
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("parse tmux version %q: %w", s, err)
	}

	// The minor component may carry a patch suffix: "3.3a", "3.1b".
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}

	out := Version{Major: maj, Suffix: rest[i:]}
	if i > 0 {
		out.Minor, err = strconv.Atoi(rest[:i])
		if err != nil {
			return Version{}, fmt.Errorf("parse tmux version %q: %w", s, err)
		}
	}
	return out, nil
}

func (v Version) String() string {
	if v.Major == _devMajor {
		return v.Suffix
	}
	return fmt.Sprintf("%d.%d%s", v.Major, v.Minor, v.Suffix)
}

// AtLeast reports whether this version is the same as or newer than the
// other version. Patch suffixes are ignored.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}
