package dfs

import (
	"fmt"

	"github.com/katalvlaran/constellation/core"
)

type walker struct {
	g    *core.Graph
	opts DFSOptions
	res  *DFSResult
}

// DFS walks g depth-first from startID, or from every unreached node in ID
// order when WithFullTraversal is set. Neighbours are entered in ascending
// ID order.
//
// On a hook error or cancellation the partial result is returned with Order
// cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	ids := g.IDs()
	w := &walker{g: g, opts: o, res: &DFSResult{
		Order:   make([]string, 0, len(ids)),
		Depth:   make(map[string]int, len(ids)),
		Parent:  make(map[string]string, len(ids)),
		Visited: make(map[string]bool, len(ids)),
	}}

	roots := []string{startID}
	if o.FullTraversal {
		roots = ids
	}
	for _, v := range roots {
		if w.res.Visited[v] {
			continue
		}
		w.res.Roots = append(w.res.Roots, v)
		if err := w.enter(v, 0); err != nil {
			w.res.Order = nil
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) enter(id string, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: visit %q: %w", id, err)
		}
	}

	var nbs []string
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if nbs, err = w.g.Neighbors(id); err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
	}
	for _, nb := range nbs {
		if w.res.Visited[nb] {
			continue
		}
		w.res.Parent[nb] = id
		if err := w.enter(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: exit %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
