package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/constellation/core"
)

// Prim computes a minimum spanning forest of graph by growing outwards from
// root using a min-heap of crossing edges.
//
// Root selection: an empty root selects graph.MostConnected() (highest
// degree, ties broken by the lowest ID), so the seed is deterministic.
//
// Error Conditions:
//   - ErrNilGraph     : graph is nil.
//   - ErrRootNotFound : root is non-empty and names no node.
//   - any error returned by OnStep (wrapped).
//
// Steps:
//  1. Resolve the root; emit StepVisit for it and push its incident edges.
//  2. While the heap is not empty:
//     a. Pop the lightest edge (ties: lowest canonical pair).
//     b. If both endpoints are visited it no longer crosses the cut: drop it.
//     c. Otherwise emit StepConsider then StepAccept, mark the new node
//     visited and push its edges towards unvisited neighbors.
//  3. When the heap drains with nodes left over, the graph is disconnected:
//     re-seed at the lowest unvisited ID (StepVisit) and go to 2, unless
//     SingleTree is set, in which case the run ends with Partial = true.
//
// Cancellation through Ctx yields StatusAborted and a nil error.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if root == "" {
		root = graph.MostConnected()
	} else if !graph.HasNode(root) {
		return nil, ErrRootNotFound
	}

	r := newRecorder(graph, MethodPrim, o)
	r.res.Root = root
	if root == "" {
		// Empty graph: nothing to span.
		return r.finish(nil)
	}

	return r.finish(prim(graph, root, r))
}

// prim runs the expansion loop, re-seeding per component.
func prim(graph *core.Graph, root string, r *recorder) error {
	pq := &edgePQ{}
	heap.Init(pq)
	ids := graph.IDs()
	next := 0 // index into ids for the next re-seed candidate

	// seed marks id visited and pushes its edges.
	seed := func(id string, kind StepKind, e core.Edge) error {
		if err := r.emit(kind, e, id); err != nil {
			return err
		}

		return pushCrossing(graph, pq, id, r.visited)
	}

	if err := seed(root, StepVisit, core.Edge{}); err != nil {
		return err
	}
	for {
		// 2. Drain the frontier of the current tree.
		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			var v string
			switch {
			case !r.visited[e.From]:
				v = e.From
			case !r.visited[e.To]:
				v = e.To
			default:
				// Stale entry: both endpoints joined after it was pushed.
				continue
			}
			if err := r.emit(StepConsider, e, ""); err != nil {
				return err
			}
			if err := seed(v, StepAccept, e); err != nil {
				return err
			}
		}

		// 3. Frontier empty: done, or jump to the next component.
		if r.opts.SingleTree || len(r.visited) == graph.Len() {
			return nil
		}
		for r.visited[ids[next]] {
			next++
		}
		if err := seed(ids[next], StepVisit, core.Edge{}); err != nil {
			return err
		}
	}
}

// pushCrossing pushes every edge from id to a not-yet-visited neighbor.
func pushCrossing(graph *core.Graph, pq *edgePQ, id string, visited map[string]bool) error {
	edges, err := graph.IncidentEdges(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if !visited[e.Other(id)] {
			heap.Push(pq, e)
		}
	}

	return nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge, ordered by
// Weight and then by canonical pair.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
func (pq edgePQ) Less(i, j int) bool { return pq[i].Less(pq[j]) }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// smallest edge there.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
