// Package animation replays a spanning-forest run one decision at a time,
// pausing between decisions so a presentation layer can follow along.
//
// A Driver owns exactly one run state. Start launches a run on its own
// goroutine; the run suspends after every step for a configurable delay and
// resumes in decision order. Only one run is active at a time: Start while
// running is a no-op. Abort cancels at the next step boundary, stops the
// pending timer and returns the state to Idle before it returns.
//
// Observers registered with WithObserver receive every Event synchronously,
// on the run goroutine, in decision order. Snapshot may be polled from any
// goroutine.
package animation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/prim_kruskal"
)

// SleepFunc pauses for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithDelays overrides the pacing of one strategy.
func WithDelays(m prim_kruskal.Method, delays Delays) Option {
	return func(d *Driver) { d.delays[m] = delays }
}

// WithRoot sets the Prim seed ("" selects the most-connected node).
func WithRoot(root string) Option {
	return func(d *Driver) { d.root = root }
}

// WithSingleTree makes Prim stop after the root's component.
func WithSingleTree() Option {
	return func(d *Driver) { d.singleTree = true }
}

// WithObserver registers fn to receive every Event. Observers must not call
// Abort: it waits for the run goroutine the observer is running on.
func WithObserver(fn func(Event)) Option {
	return func(d *Driver) {
		if fn != nil {
			d.observers = append(d.observers, fn)
		}
	}
}

// WithSleep replaces the timer-based pause. A nil fn is ignored.
func WithSleep(fn SleepFunc) Option {
	return func(d *Driver) {
		if fn != nil {
			d.sleep = fn
		}
	}
}

// Driver is the single owner of the run state.
//
// mu guards state, cancel and done. Configuration fields are fixed by New.
type Driver struct {
	graph      *core.Graph
	logger     *zap.Logger
	delays     map[prim_kruskal.Method]Delays
	root       string
	singleTree bool
	observers  []func(Event)
	sleep      SleepFunc

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an Idle Driver over g.
func New(g *core.Graph, opts ...Option) *Driver {
	done := make(chan struct{})
	close(done)
	d := &Driver{
		graph:  g,
		logger: zap.NewNop(),
		delays: map[prim_kruskal.Method]Delays{
			prim_kruskal.MethodPrim:    DefaultDelays(prim_kruskal.MethodPrim),
			prim_kruskal.MethodKruskal: DefaultDelays(prim_kruskal.MethodKruskal),
		},
		sleep: sleepContext,
		done:  done,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start begins a run of method m. It reports false, without side effects,
// when a run is already active, the method is unknown or the Driver has no
// graph. A run stays active until its goroutine has delivered the final
// event, so Start from an observer is always rejected. Cancelling ctx aborts
// the run like Abort does.
func (d *Driver) Start(ctx context.Context, m prim_kruskal.Method) bool {
	if _, ok := d.delays[m]; !ok || d.graph == nil {
		d.logger.Warn("start rejected", zap.String("method", string(m)), zap.Bool("graph", d.graph != nil))
		return false
	}

	d.mu.Lock()
	if d.activeLocked() {
		d.mu.Unlock()
		d.logger.Debug("start ignored: run already active", zap.String("method", string(m)))
		return false
	}
	runCtx, cancel := context.WithCancel(ctx)
	runID := uuid.New().String()
	done := make(chan struct{})
	d.state = State{RunID: runID, Status: Running, Method: m}
	d.cancel = cancel
	d.done = done
	d.mu.Unlock()

	d.logger.Info("run started",
		zap.String("run_id", runID),
		zap.String("method", string(m)),
		zap.Int("nodes", d.graph.Len()),
		zap.Int("edges", d.graph.EdgeCount()),
	)
	go d.run(runCtx, cancel, m, runID, done)

	return true
}

// Abort cancels the active run and returns once the state is back to Idle.
// It is a no-op when no run is active.
func (d *Driver) Abort() {
	d.mu.Lock()
	if d.state.Status != Running {
		d.mu.Unlock()
		return
	}
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	cancel()
	<-done
}

// Reset clears a finished run back to Idle. It is a no-op while a run is
// active.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.activeLocked() {
		return
	}
	d.state = State{}
}

// Snapshot returns a copy of the current run state.
func (d *Driver) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.snapshotLocked()
}

// Done returns a channel closed when the current (or last) run has ended.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.done
}

// Wait blocks until the current run ends or ctx is done.
func (d *Driver) Wait(ctx context.Context) error {
	select {
	case <-d.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes one algorithm run and owns the state until done is closed.
func (d *Driver) run(ctx context.Context, cancel context.CancelFunc, m prim_kruskal.Method, runID string, done chan struct{}) {
	defer close(done)
	defer cancel()

	delays := d.delays[m]
	log := d.logger.With(zap.String("run_id", runID), zap.String("method", string(m)))
	d.notify(Event{Kind: EventStarted, State: d.Snapshot()})

	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(m),
		prim_kruskal.WithRoot(d.root),
		prim_kruskal.WithContext(ctx),
		prim_kruskal.WithOnStep(func(s prim_kruskal.Step) error {
			ev := d.apply(s)
			log.Debug("step",
				zap.Int("index", s.Index),
				zap.Stringer("kind", s.Kind),
				zap.Stringer("edge", s.Edge),
				zap.String("node", s.Node),
			)
			d.notify(ev)

			return d.sleep(ctx, delays.after(s.Kind))
		}),
	}
	if d.singleTree {
		opts = append(opts, prim_kruskal.WithSingleTree())
	}

	res, err := prim_kruskal.Compute(d.graph, opts...)
	switch {
	case err != nil:
		log.Error("run failed", zap.Error(err))
		d.abort()
		return
	case res.Status == prim_kruskal.StatusAborted:
		log.Info("run aborted", zap.Int("steps", len(res.Steps)))
		d.abort()
		return
	}

	// Keep the finished forest visible for Linger before reporting completion.
	if err := d.sleep(ctx, delays.Linger); err != nil {
		log.Info("run aborted while lingering")
		d.abort()
		return
	}

	d.mu.Lock()
	d.state.Status = Complete
	d.state.Highlight = nil
	d.state.Partial = res.Partial
	d.state.Coverage = res.Coverage()
	snap := d.snapshotLocked()
	d.mu.Unlock()

	log.Info("run complete",
		zap.Int("accepted", len(res.Edges)),
		zap.Float64("total_weight", res.TotalWeight),
		zap.Bool("partial", res.Partial),
		zap.String("coverage", res.Coverage()),
	)
	d.notify(Event{Kind: EventComplete, State: snap})
}

// apply folds one step into the run state and returns the matching event.
func (d *Driver) apply(s prim_kruskal.Step) Event {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.Step = s.Index + 1
	ev := Event{Step: s}
	switch s.Kind {
	case prim_kruskal.StepVisit:
		ev.Kind = EventVisit
		d.state.Highlight = nil
		d.visitLocked(s.Node)
	case prim_kruskal.StepConsider:
		ev.Kind = EventConsider
		e := s.Edge
		d.state.Highlight = &e
	case prim_kruskal.StepAccept:
		ev.Kind = EventAccepted
		d.state.Highlight = nil
		d.state.Edges = append(d.state.Edges, s.Edge)
		d.state.TotalWeight += s.Edge.Weight
		d.visitLocked(s.Edge.From)
		d.visitLocked(s.Edge.To)
	case prim_kruskal.StepReject:
		ev.Kind = EventRejected
		d.state.Highlight = nil
	}
	ev.State = d.snapshotLocked()

	return ev
}

// abort resets the state to Idle and announces it.
func (d *Driver) abort() {
	d.mu.Lock()
	d.state = State{}
	snap := d.snapshotLocked()
	d.mu.Unlock()

	d.notify(Event{Kind: EventAborted, State: snap})
}

// activeLocked reports whether the run goroutine has not yet closed done.
func (d *Driver) activeLocked() bool {
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

// visitLocked inserts id into the sorted visited list.
func (d *Driver) visitLocked(id string) {
	v := d.state.Visited
	i := sort.SearchStrings(v, id)
	if i < len(v) && v[i] == id {
		return
	}
	v = append(v, "")
	copy(v[i+1:], v[i:])
	v[i] = id
	d.state.Visited = v
}

func (d *Driver) snapshotLocked() State {
	s := d.state
	s.Edges = append([]core.Edge(nil), d.state.Edges...)
	s.Visited = append([]string(nil), d.state.Visited...)
	if d.state.Highlight != nil {
		h := *d.state.Highlight
		s.Highlight = &h
	}

	return s
}

func (d *Driver) notify(ev Event) {
	for _, fn := range d.observers {
		fn(ev)
	}
}

// sleepContext waits on a timer that is stopped on every exit path.
func sleepContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
