package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a layout description: one or more parts joined by "+".
//
//	cycle:N  path:N  star:N  wheel:N  complete:N
//	grid:RxC  bipartite:MxN  random:N:P
//
// Example: "grid:3x4+cycle:6" is a lattice next to a ring.
func Parse(desc string) ([]Constructor, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadLayout)
	}

	var cons []Constructor
	for _, part := range strings.Split(desc, "+") {
		c, err := parsePart(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}

	return cons, nil
}

func parsePart(part string) (Constructor, error) {
	kind, args, _ := strings.Cut(strings.ToLower(part), ":")
	bad := func(format string) error {
		return fmt.Errorf("%w: %q, want %s", ErrBadLayout, part, format)
	}

	switch kind {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, bad(kind + ":N")
		}
		return map[string]func(int) Constructor{
			"cycle":    Cycle,
			"path":     Path,
			"star":     Star,
			"wheel":    Wheel,
			"complete": Complete,
		}[kind](n), nil

	case "grid", "bipartite":
		a, b, ok := strings.Cut(args, "x")
		if !ok {
			return nil, bad(kind + ":AxB")
		}
		x, err1 := strconv.Atoi(a)
		y, err2 := strconv.Atoi(b)
		if err1 != nil || err2 != nil {
			return nil, bad(kind + ":AxB")
		}
		if kind == "grid" {
			return Grid(x, y), nil
		}
		return CompleteBipartite(x, y), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, bad("random:N:P")
		}
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if err1 != nil || err2 != nil {
			return nil, bad("random:N:P")
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrBadLayout, kind)
}
