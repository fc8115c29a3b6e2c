// Package prim_kruskal defines configuration options, sentinel errors, the
// decision stream and the result type for spanning-forest computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/constellation/core"
)

// ErrNilGraph indicates that MST algorithms were handed a nil graph.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates a method name other than prim or kruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrRootNotFound indicates that the requested Prim seed is not a node.
var ErrRootNotFound = errors.New("prim_kruskal: root node not found")

// Method names a spanning-forest strategy.
type Method string

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim Method = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal Method = "kruskal"

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodPrim, MethodKruskal:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Title returns the possessive display name ("Prim's", "Kruskal's").
func (m Method) Title() string {
	switch m {
	case MethodPrim:
		return "Prim's"
	case MethodKruskal:
		return "Kruskal's"
	default:
		return string(m)
	}
}

// Complexity returns the one-line cost summary shown next to a running strategy.
func (m Method) Complexity() string {
	switch m {
	case MethodPrim:
		return "Time: O(E log V) | Space: O(V)"
	case MethodKruskal:
		return "Time: O(E log E) | Space: O(V)"
	default:
		return ""
	}
}

// StepKind classifies a single decision made by an algorithm.
type StepKind int

const (
	// StepVisit: a node joins the forest without an edge (a Prim seed or an
	// isolated node).
	StepVisit StepKind = iota
	// StepConsider: an edge is under examination.
	StepConsider
	// StepAccept: the considered edge joins the forest.
	StepAccept
	// StepReject: the considered edge would close a cycle.
	StepReject
)

// String returns the lower-case kind name.
func (k StepKind) String() string {
	switch k {
	case StepVisit:
		return "visit"
	case StepConsider:
		return "consider"
	case StepAccept:
		return "accept"
	case StepReject:
		return "reject"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// Step is one entry of the decision stream, in the order it was made.
//
// Edge is zero for StepVisit. Node is the node that joined the forest for
// StepVisit and for Prim's StepAccept; it is empty otherwise.
type Step struct {
	Index int
	Kind  StepKind
	Edge  core.Edge
	Node  string
}

// Status is the terminal state of a run.
type Status int

const (
	// StatusComplete: no improving edge remains.
	StatusComplete Status = iota
	// StatusAborted: the run was cancelled at a step boundary.
	StatusAborted
)

// String returns "complete" or "aborted".
func (s Status) String() string {
	if s == StatusAborted {
		return "aborted"
	}

	return "complete"
}

// Result is the outcome of a spanning-forest run.
//
// Fields:
//
//	Edges        accepted edges, in acceptance order.
//	Visited      nodes included in the forest, in the order they joined.
//	Nodes        |V| of the graph.
//	Trees        number of trees in the forest built so far.
//	LargestTree  node count of the largest tree.
//	Partial      the forest does not span the whole graph as one tree.
//	Steps        the full decision stream.
type Result struct {
	Method      Method
	Root        string
	Status      Status
	Edges       []core.Edge
	Visited     []string
	TotalWeight float64
	Nodes       int
	Trees       int
	LargestTree int
	Partial     bool
	Steps       []Step
}

// Coverage renders "MST covers N of M nodes", N being the largest tree.
func (r *Result) Coverage() string {
	s := fmt.Sprintf("MST covers %d of %d nodes", r.LargestTree, r.Nodes)
	if r.Trees > 1 {
		s += fmt.Sprintf(" (%d trees)", r.Trees)
	}

	return s
}

// MSTOptions configures which MST algorithm to run and how it reports.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method      one of MethodPrim or MethodKruskal.
//	Root        seed node for Prim; "" selects core.Graph.MostConnected().
//	             Ignored by Kruskal.
//	SingleTree  Prim stops once the root's component is spanned instead of
//	             re-seeding in the next component. Ignored by Kruskal.
//	Ctx         checked at every step boundary; cancellation aborts the run.
//	OnStep      called synchronously for every Step; an error aborts the run.
type MSTOptions struct {
	Method     Method
	Root       string
	SingleTree bool
	Ctx        context.Context
	OnStep     func(Step) error
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m Method) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithSingleTree limits Prim to the root's connected component.
func WithSingleTree() Option {
	return func(opts *MSTOptions) {
		opts.SingleTree = true
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// WithOnStep registers the step observer. A nil fn is ignored.
func WithOnStep(fn func(Step) error) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.OnStep = fn
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (most-connected node when Prim is selected)
//	– Ctx    = context.Background()
//	– OnStep = no-op.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Ctx:    context.Background(),
		OnStep: func(Step) error { return nil },
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– MethodPrim:    calls Prim(graph, Root, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, o.Root, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
