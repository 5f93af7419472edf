// Package cli provides the acrostic command's argument-parsing and
// banner-printing helpers, kept out of cmd/acrostic/main.go to keep the
// entrypoint a thin dispatcher.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDs expands a list of puzzle-id arguments into a deduplicated slice
// of ids, in the order each id is first seen (not sorted). Each argument is
// either a bare integer ("7") or an inclusive range ("3-9").
func ParseIDs(args []string) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, arg := range args {
		lo, hi, err := parseOne(arg)
		if err != nil {
			return nil, err
		}
		for id := lo; id <= hi; id++ {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func parseOne(arg string) (lo, hi int, err error) {
	if idx := strings.IndexByte(arg, '-'); idx > 0 {
		lo, err = strconv.Atoi(arg[:idx])
		if err != nil {
			return 0, 0, fmt.Errorf("cli: invalid range %q: %w", arg, err)
		}
		hi, err = strconv.Atoi(arg[idx+1:])
		if err != nil {
			return 0, 0, fmt.Errorf("cli: invalid range %q: %w", arg, err)
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("cli: invalid range %q: end before start", arg)
		}
		if lo < 0 {
			return 0, 0, fmt.Errorf("cli: invalid range %q: negative puzzle id", arg)
		}
		return lo, hi, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, 0, fmt.Errorf("cli: invalid puzzle id %q: %w", arg, err)
	}
	if n < 0 {
		return 0, 0, fmt.Errorf("cli: invalid puzzle id %q: negative", arg)
	}
	return n, n, nil
}
