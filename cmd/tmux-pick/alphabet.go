package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"
)

const _defaultAlphabet alphabet = "abcdefghijklmnopqrstuvwxyz"

// alphabet is the set of letters that hint labels are built from. Labels
// need at least two distinct letters to be generated.
type alphabet string

var _ flag.Value = (*alphabet)(nil)

func (al *alphabet) String() string {
	return string(*al)
}

func (al *alphabet) Set(value string) error {
	if len(value) < 2 {
		return errors.New("alphabet must have at least two items")
	}

	seen := make(map[rune]struct{}, len(value))
	dupes := make(map[rune]struct{})
	for _, r := range value {
		if _, ok := seen[r]; ok {
			dupes[r] = struct{}{}
		}
		seen[r] = struct{}{}
	}

	if len(dupes) > 0 {
		dlist := make([]rune, 0, len(dupes))
		for r := range dupes {
			dlist = append(dlist, r)
		}
		sort.Slice(dlist, func(i, j int) bool { return dlist[i] < dlist[j] })
		return fmt.Errorf("alphabet has duplicates: %q", dlist)
	}

	*al = alphabet(value)
	return nil
}
