package bfs

import (
	"sort"

	"github.com/katalvlaran/constellation/core"
)

// Components partitions g into connected components.
//
// Each component is sorted ascending; components are ordered by their first
// (smallest) ID. A nil graph yields nil. Isolated nodes form singleton
// components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	seen := make(map[string]bool, g.Len())
	var out [][]string
	// IDs are ascending, so each new component starts at its smallest member.
	for _, id := range g.IDs() {
		if seen[id] {
			continue
		}
		var comp []string
		_, err := BFS(g, id, WithOnVisit(func(v string, _ int) error {
			seen[v] = true
			comp = append(comp, v)
			return nil
		}))
		if err != nil {
			// id came from g itself and the hook never fails.
			continue
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out
}

// Sizes returns the size of each component, in Components order.
func Sizes(components [][]string) []int {
	sizes := make([]int, len(components))
	for i, c := range components {
		sizes[i] = len(c)
	}

	return sizes
}

// Largest returns the size of the largest component (0 if none).
func Largest(components [][]string) int {
	best := 0
	for _, c := range components {
		if len(c) > best {
			best = len(c)
		}
	}

	return best
}
