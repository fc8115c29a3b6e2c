package dfs

import (
	"context"
	"errors"
)

// Colours used by DetectCycles.
const (
	White = iota // not reached
	Gray         // on the current path
	Black        // finished
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates a start ID the graph does not hold.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected is returned by Acyclic when the graph holds a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds the traversal parameters.
type DFSOptions struct {
	// Ctx is checked on entry to every node.
	Ctx context.Context

	// OnVisit runs when a node is entered (pre-order). An error aborts.
	OnVisit func(id string) error

	// OnExit runs once all of a node's descendants are done (post-order).
	// An error aborts and leaves Order empty.
	OnExit func(id string) error

	// MaxDepth, when non-negative, stops descent below that depth; 0 enters
	// the roots only. Default -1.
	MaxDepth int

	// FullTraversal restarts from every unreached node in ID order.
	FullTraversal bool
}

// DefaultOptions returns an unbounded single-root walk.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits descent to limit edges below each root.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal walks every component; the start ID is ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult is a finished traversal.
type DFSResult struct {
	// Order lists nodes as they finished (post-order).
	Order []string

	// Depth is each node's edge count below its root.
	Depth map[string]int

	// Parent maps each non-root node to the node it was entered from.
	Parent map[string]string

	// Visited flags every node that was entered.
	Visited map[string]bool

	// Roots lists the start of each tree, in order.
	Roots []string
}
