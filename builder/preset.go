// SPDX-License-Identifier: MIT
// Package: dijkstep/builder

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset parses a compact topology name into a Constructor:
//
//	path:N  cycle:N  star:N  complete:N  grid:RxC  random:N:P
//
// Parameter ranges are checked later, when the constructor runs.
func Preset(name string) (Constructor, error) {
	kind, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")

	switch kind {
	case "path", "cycle", "star", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownPreset, name, err)
		}
		return map[string]func(int) Constructor{
			"path":     Path,
			"cycle":    Cycle,
			"star":     Star,
			"complete": Complete,
		}[kind](n), nil

	case "grid":
		rs, cs, ok := strings.Cut(args, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want grid:RxC", ErrUnknownPreset, name)
		}
		rows, err := strconv.Atoi(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownPreset, name, err)
		}
		cols, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownPreset, name, err)
		}
		return Grid(rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q: want random:N:P", ErrUnknownPreset, name)
		}
		n, err := strconv.Atoi(ns)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownPreset, name, err)
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnknownPreset, name, err)
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
