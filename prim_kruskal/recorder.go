package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/constellation/core"
)

// errAborted marks a run stopped by context cancellation. It never escapes
// the package: finish converts it into StatusAborted.
var errAborted = errors.New("prim_kruskal: aborted")

// recorder accumulates the decision stream and the forest it describes.
type recorder struct {
	opts    MSTOptions
	res     *Result
	visited map[string]bool
}

func newRecorder(g *core.Graph, method Method, opts MSTOptions) *recorder {
	return &recorder{
		opts: opts,
		res: &Result{
			Method: method,
			Status: StatusComplete,
			Nodes:  g.Len(),
		},
		visited: make(map[string]bool, g.Len()),
	}
}

// emit records a step, applies it to the forest, then hands it to OnStep.
// The context is checked first, so cancellation lands on a step boundary.
func (r *recorder) emit(kind StepKind, e core.Edge, node string) error {
	if r.opts.Ctx.Err() != nil {
		return errAborted
	}

	step := Step{Index: len(r.res.Steps), Kind: kind, Edge: e, Node: node}
	r.res.Steps = append(r.res.Steps, step)
	switch kind {
	case StepVisit:
		r.join(node)
	case StepAccept:
		r.res.Edges = append(r.res.Edges, e)
		r.res.TotalWeight += e.Weight
		r.join(e.From)
		r.join(e.To)
	}

	if err := r.opts.OnStep(step); err != nil {
		if r.opts.Ctx.Err() != nil {
			return errAborted
		}

		return fmt.Errorf("prim_kruskal: step %d (%s): %w", step.Index, kind, err)
	}

	return nil
}

func (r *recorder) join(id string) {
	if !r.visited[id] {
		r.visited[id] = true
		r.res.Visited = append(r.res.Visited, id)
	}
}

// finish derives tree statistics from the accepted edges and maps errAborted
// to StatusAborted.
func (r *recorder) finish(err error) (*Result, error) {
	switch {
	case errors.Is(err, errAborted):
		r.res.Status = StatusAborted
	case err != nil:
		return nil, err
	}

	uf := NewUnionFind(r.res.Visited)
	for _, e := range r.res.Edges {
		uf.Union(e.From, e.To)
	}
	r.res.Trees = uf.Sets()
	r.res.LargestTree = uf.Largest()
	r.res.Partial = r.res.Trees > 1 || len(r.res.Visited) < r.res.Nodes

	return r.res, nil
}
