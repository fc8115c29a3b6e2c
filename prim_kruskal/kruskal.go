package prim_kruskal

import (
	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/core"
)

// Kruskal computes a minimum spanning forest of graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph : graph is nil.
//   - any error returned by OnStep (wrapped).
//
// Steps:
//  1. Validate: graph != nil.
//  2. Take graph.AllEdges(): canonical, ascending by weight, ties by pair.
//  3. Size the forest: |V| − (number of connected components) edges.
//  4. For each edge, emit StepConsider; if its endpoints lie in different
//     sets, union them and emit StepAccept, otherwise emit StepReject.
//     Stop as soon as the forest is complete.
//  5. Emit StepVisit for every node no accepted edge touched (isolated nodes).
//
// Cancellation through Ctx yields StatusAborted and a nil error.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrNilGraph
	}
	r := newRecorder(graph, MethodKruskal, buildOptions(opts))

	return r.finish(kruskal(graph, r))
}

func kruskal(graph *core.Graph, r *recorder) error {
	// 2–3. Edges and the forest size.
	ids := graph.IDs()
	edges := graph.AllEdges()
	target := len(ids) - len(bfs.Components(graph))

	// 4. Sweep edges in order.
	uf := NewUnionFind(ids)
	accepted := 0
	for _, e := range edges {
		if accepted == target {
			break
		}
		if err := r.emit(StepConsider, e, ""); err != nil {
			return err
		}
		if !uf.Union(e.From, e.To) {
			// Same set already: this edge would close a cycle.
			if err := r.emit(StepReject, e, ""); err != nil {
				return err
			}
			continue
		}
		accepted++
		if err := r.emit(StepAccept, e, ""); err != nil {
			return err
		}
	}

	// 5. Isolated nodes are trees of their own.
	for _, id := range ids {
		if !r.visited[id] {
			if err := r.emit(StepVisit, core.Edge{}, id); err != nil {
				return err
			}
		}
	}

	return nil
}
