package animation

import (
	"fmt"
	"time"

	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/prim_kruskal"
)

// Status is the lifecycle position of the Driver.
type Status int

const (
	// Idle: no run, no results on display.
	Idle Status = iota
	// Running: a run is replaying steps.
	Running
	// Complete: the last run finished; its forest stays on display until
	// Reset or the next Start.
	Complete
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// State is a snapshot of the run state. Slices are copies owned by the caller.
type State struct {
	RunID       string
	Status      Status
	Method      prim_kruskal.Method
	Step        int
	Edges       []core.Edge
	Visited     []string
	Highlight   *core.Edge
	TotalWeight float64
	Partial     bool
	Coverage    string
}

// EventKind identifies an observable moment of a run.
type EventKind int

const (
	// EventStarted fires once when a run begins.
	EventStarted EventKind = iota
	// EventVisit fires when a node joins the forest without an edge.
	EventVisit
	// EventConsider fires when an edge is highlighted.
	EventConsider
	// EventAccepted fires when the highlighted edge joins the forest.
	EventAccepted
	// EventRejected fires when the highlighted edge would close a cycle.
	EventRejected
	// EventComplete fires once when a run finishes normally.
	EventComplete
	// EventAborted fires once when a run is cancelled.
	EventAborted
)

// String returns the lower-case event name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventVisit:
		return "visit"
	case EventConsider:
		return "consider"
	case EventAccepted:
		return "accepted"
	case EventRejected:
		return "rejected"
	case EventComplete:
		return "complete"
	case EventAborted:
		return "aborted"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is delivered to observers, in decision order, together with the state
// right after the event was applied.
type Event struct {
	Kind  EventKind
	Step  prim_kruskal.Step
	State State
}

// Delays are the pauses inserted after each kind of step.
type Delays struct {
	// Consider is the pause while an edge is highlighted.
	Consider time.Duration
	// Accept is the pause after an edge joins the forest.
	Accept time.Duration
	// Reject is the pause after an edge is turned down.
	Reject time.Duration
	// Visit is the pause after a node joins without an edge.
	Visit time.Duration
	// Linger is the pause between the last step and completion.
	Linger time.Duration
}

// after returns the pause that follows a step of kind k.
func (d Delays) after(k prim_kruskal.StepKind) time.Duration {
	switch k {
	case prim_kruskal.StepConsider:
		return d.Consider
	case prim_kruskal.StepAccept:
		return d.Accept
	case prim_kruskal.StepReject:
		return d.Reject
	default:
		return d.Visit
	}
}

// DefaultDelays returns the pacing used for each strategy.
func DefaultDelays(m prim_kruskal.Method) Delays {
	switch m {
	case prim_kruskal.MethodPrim:
		return Delays{
			Consider: 500 * time.Millisecond,
			Accept:   400 * time.Millisecond,
			Linger:   1500 * time.Millisecond,
		}
	default:
		return Delays{
			Consider: 400 * time.Millisecond,
			Accept:   500 * time.Millisecond,
			Reject:   300 * time.Millisecond,
			Linger:   1500 * time.Millisecond,
		}
	}
}
