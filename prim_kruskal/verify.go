package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/dfs"
)

// ErrInvalidForest indicates a Result that is not a spanning forest of its graph.
var ErrInvalidForest = errors.New("prim_kruskal: invalid forest")

// weightTolerance absorbs float rounding when comparing edge weights.
const weightTolerance = 1e-9

// Forest returns the accepted edges as a graph over the visited nodes.
func (r *Result) Forest() (*core.Graph, error) {
	return core.FromEdges(r.Edges, r.Visited...)
}

// Verify checks that res describes a forest of graph:
//   - every accepted edge is a graph edge carrying the graph's weight;
//   - the accepted edges close no cycle;
//   - TotalWeight is the sum of the accepted weights;
//   - a complete run that visited every node holds one tree per component.
//
// It returns nil or an error wrapping ErrInvalidForest.
func Verify(graph *core.Graph, res *Result) error {
	if graph == nil {
		return ErrNilGraph
	}
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidForest)
	}

	for _, e := range res.Edges {
		w, err := graph.Weight(e.From, e.To)
		if err != nil || !graph.Connected(e.From, e.To) {
			return fmt.Errorf("%w: %s is not a graph edge", ErrInvalidForest, e)
		}
		if math.Abs(w-e.Weight) > weightTolerance {
			return fmt.Errorf("%w: %s weighs %g, graph says %g", ErrInvalidForest, e, e.Weight, w)
		}
	}

	forest, err := res.Forest()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForest, err)
	}
	if err = dfs.Acyclic(forest); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForest, err)
	}

	if total := core.TotalWeight(res.Edges); math.Abs(total-res.TotalWeight) > weightTolerance*float64(len(res.Edges)+1) {
		return fmt.Errorf("%w: total weight %g, edges sum to %g", ErrInvalidForest, res.TotalWeight, total)
	}

	if res.Status == StatusComplete && len(res.Visited) == graph.Len() {
		if want := len(bfs.Components(graph)); res.Trees != want {
			return fmt.Errorf("%w: %d trees for %d components", ErrInvalidForest, res.Trees, want)
		}
	}

	return nil
}
