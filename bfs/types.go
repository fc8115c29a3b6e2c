package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound indicates a start ID the graph does not hold.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation indicates a meaningless option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable indicates PathTo was asked for a node the walk never reached.
	ErrUnreachable = errors.New("bfs: node not reached")
)

// Option configures a walk. Invalid values are recorded and surface as
// ErrOptionViolation from BFS.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Ctx is checked once per dequeued node.
	Ctx context.Context

	// OnVisit runs for every node in visit order with its hop count.
	// An error stops the walk and is returned wrapped.
	OnVisit func(id string, hops int) error

	// MaxHops bounds the walk; nodes further than MaxHops are not reached.
	// Negative means unbounded.
	MaxHops int

	err error
}

// DefaultOptions returns an unbounded walk with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxHops: -1}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook. nil is ignored.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d hops from the start; 0 reaches the start
// only. Negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		o.MaxHops = d
	}
}

// Result is a finished walk.
//
// Order lists reached nodes in visit order; Depth maps each to its hop
// count; Parent maps every reached node except Start to the node it was
// discovered from.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether the walk got to id.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo returns a fewest-hops path Start → dest, both ends included.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	path := make([]string, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// Layers groups Order by hop count: Layers()[k] holds the nodes k hops away,
// in visit order.
func (r *Result) Layers() [][]string {
	var out [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], id)
	}

	return out
}
