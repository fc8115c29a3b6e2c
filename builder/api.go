package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/constellation/core"
)

// Constructor places one topology into a layout under cfg. Constructors
// validate their parameters first and return sentinel errors; they never
// panic.
type Constructor func(l *layout, cfg builderConfig) error

// layout accumulates the nodes of a Build call.
type layout struct {
	nodes []core.Node
	index map[string]int
	next  int // next idFn index, shared across constructors
}

// nextID consumes one idFn index.
func (l *layout) nextID(cfg builderConfig) string {
	id := cfg.idFn(l.next)
	l.next++

	return id
}

// add appends a node at (x, y).
func (l *layout) add(cfg builderConfig, id string, x, y float64) error {
	if _, dup := l.index[id]; dup {
		return fmt.Errorf("duplicate ID %q: %w", id, ErrConstructFailed)
	}
	l.index[id] = len(l.nodes)
	l.nodes = append(l.nodes, core.Node{ID: id, Name: id, Category: cfg.category, X: x, Y: y})

	return nil
}

// link declares b as a neighbour of a.
func (l *layout) link(a, b string) {
	i := l.index[a]
	l.nodes[i].Neighbors = append(l.nodes[i].Neighbors, b)
}

// Build resolves bopts and runs cons in order. Every constructor after the
// first is shifted so its leftmost node sits one spacing to the right of
// everything placed before it.
//
// Complexity: the sum of the constructors' costs plus O(V) for shifting.
func Build(bopts []BuilderOption, cons ...Constructor) ([]core.Node, error) {
	cfg := newBuilderConfig(bopts...)
	l := &layout{index: make(map[string]int)}

	maxX := math.Inf(-1)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		start := len(l.nodes)
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		part := l.nodes[start:]
		if len(part) == 0 {
			continue
		}

		minX := part[0].X
		for _, n := range part {
			minX = math.Min(minX, n.X)
		}
		shift := 0.0
		if start > 0 {
			shift = maxX + cfg.spacing - minX
		}
		for j := range part {
			part[j].X += shift
			maxX = math.Max(maxX, part[j].X)
		}
	}

	return l.nodes, nil
}

// BuildGraph runs Build and turns the nodes into a core.Graph with gopts.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	nodes, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(nodes, gopts...)
}

// onCircle returns the position of point i of n evenly spaced on a circle of
// radius r centred at (r, r), starting at the top and running clockwise.
func onCircle(i, n int, r float64) (x, y float64) {
	theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return r + r*math.Cos(theta), r + r*math.Sin(theta)
}
