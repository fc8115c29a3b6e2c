// Package dfs implements cycle detection for undirected core.Graphs.
// DetectCycles enumerates the simple cycles closed by back edges, using
// depth-first search with three-color marking. Each cycle is reported once,
// in the canonical minimal rotation (or reversal) computed with Booth's
// algorithm in O(L) time. The final cycle list is sorted for deterministic output.
//
// The constellation graph has no self-loops or parallel edges, so the edge
// back to the DFS parent is the only one skipped.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#nodes, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/constellation/core"
)

// DetectCycles inspects graph g for cycles.
// Returns (true, cycles, nil) if any cycles are found;
// if no cycles, returns (false, nil, nil).
// If a neighbor-fetch error occurs, returns (false, nil, error).
//
// The walk is a full DFS whose hooks keep the current path. On entry every
// Gray neighbour other than the path parent closes a cycle; on exit the node
// turns Black.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	n := g.Len()
	state := make(map[string]int, n)
	path := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	var cycles [][]string

	enter := func(id string) error {
		parent := ""
		if len(path) > 0 {
			parent = path[len(path)-1]
		}
		nbs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		path = append(path, id)
		state[id] = Gray
		for _, nbr := range nbs {
			if nbr != parent && state[nbr] == Gray {
				recordCycle(nbr, path, seen, &cycles)
			}
		}
		return nil
	}
	leave := func(id string) error {
		path = path[:len(path)-1]
		state[id] = Black
		return nil
	}

	if _, err := DFS(g, "", WithFullTraversal(), WithOnVisit(enter), WithOnExit(leave)); err != nil {
		return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})
	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// Acyclic returns nil when g is a forest, or ErrCycleDetected naming the
// first canonical cycle otherwise.
func Acyclic(g *core.Graph) error {
	has, cycles, err := DetectCycles(g)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrCycleDetected, JoinSig(cycles[0]))
	}

	return nil
}

// recordCycle extracts and deduplicates the cycle that ends at start.
// path is the current DFS path stack, containing [ ... start ... current ].
func recordCycle(
	start string,
	path []string,
	seen map[string]struct{},
	cycles *[][]string,
) {
	idx := IndexOf(path, start)

	seq := append([]string(nil), path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the lexicographically minimal rotation of cycle and its reversal.
// Returns the comma-joined signature and the closed cycle [v0, v1, ..., v0].
func canonical(cycle []string) (string, []string) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := MinimalRotation(base)
	rotB := MinimalRotation(Reverse(base))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]string(nil), picker...), picker[0])

	return JoinSig(closed), closed
}
