package bfs

import (
	"fmt"

	"github.com/katalvlaran/constellation/core"
)

// BFS walks g outward from start, one hop layer at a time. Neighbours are
// taken in ascending ID order, so Order is reproducible.
//
// Errors: ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, the
// context's error on cancellation, or a wrapped OnVisit error. The partial
// Result is returned alongside cancellation and hook errors.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	res := &Result{
		Start:  start,
		Depth:  map[string]int{start: 0},
		Parent: make(map[string]string),
	}
	// queue is append-only; head marks the next node to visit.
	queue := []string{start}
	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}

		id := queue[head]
		hops := res.Depth[id]
		res.Order = append(res.Order, id)
		if o.OnVisit != nil {
			if err := o.OnVisit(id, hops); err != nil {
				return res, fmt.Errorf("bfs: visit %q: %w", id, err)
			}
		}
		if o.MaxHops >= 0 && hops == o.MaxHops {
			continue
		}

		nbs, err := g.Neighbors(id)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nb := range nbs {
			if res.Reached(nb) {
				continue
			}
			res.Depth[nb] = hops + 1
			res.Parent[nb] = id
			queue = append(queue, nb)
		}
	}

	return res, nil
}
