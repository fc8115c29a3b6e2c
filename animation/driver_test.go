package animation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/constellation/animation"
	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/prim_kruskal"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var methods = []prim_kruskal.Method{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal}

func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 1},
		{From: "A", To: "D", Weight: 3},
		{From: "A", To: "C", Weight: 5},
	})
	require.NoError(t, err)

	return g
}

// stepper releases one pause per tick so a test can walk a run forward.
type stepper struct {
	ticks chan struct{}
}

func newStepper() *stepper { return &stepper{ticks: make(chan struct{})} }

func (s *stepper) sleep(ctx context.Context, _ time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticks:
		return nil
	}
}

// recorder buffers events so observers never block the run.
func recorder() (chan animation.Event, func(animation.Event)) {
	ch := make(chan animation.Event, 256)
	return ch, func(ev animation.Event) { ch <- ev }
}

func noDelays() []animation.Option {
	return []animation.Option{
		animation.WithDelays(prim_kruskal.MethodPrim, animation.Delays{}),
		animation.WithDelays(prim_kruskal.MethodKruskal, animation.Delays{}),
	}
}

func waitDone(t *testing.T, d *animation.Driver) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
}

func TestDriver_IdleOnCreate(t *testing.T) {
	d := animation.New(buildDiamond(t))
	assert.Empty(t, cmp.Diff(animation.State{}, d.Snapshot()))
	d.Abort()
	d.Reset()
	waitDone(t, d)
}

func TestDriver_RunToCompletion(t *testing.T) {
	g := buildDiamond(t)
	for _, m := range methods {
		t.Run(string(m), func(t *testing.T) {
			want, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(m))
			require.NoError(t, err)

			events, observe := recorder()
			opts := append(noDelays(), animation.WithObserver(observe), animation.WithLogger(zaptest.NewLogger(t)))
			d := animation.New(g, opts...)
			require.True(t, d.Start(context.Background(), m))
			waitDone(t, d)

			s := d.Snapshot()
			assert.Equal(t, animation.Complete, s.Status)
			assert.Equal(t, m, s.Method)
			assert.NotEmpty(t, s.RunID)
			assert.Nil(t, s.Highlight)
			assert.Empty(t, cmp.Diff(want.Edges, s.Edges))
			assert.Equal(t, []string{"A", "B", "C", "D"}, s.Visited)
			assert.InDelta(t, 4.0, s.TotalWeight, 1e-9)
			assert.False(t, s.Partial)
			assert.Equal(t, "MST covers 4 of 4 nodes", s.Coverage)
			assert.Equal(t, len(want.Steps), s.Step)

			close(events)
			var kinds []animation.EventKind
			for ev := range events {
				kinds = append(kinds, ev.Kind)
			}
			wantKinds := []animation.EventKind{animation.EventStarted}
			for _, st := range want.Steps {
				switch st.Kind {
				case prim_kruskal.StepVisit:
					wantKinds = append(wantKinds, animation.EventVisit)
				case prim_kruskal.StepConsider:
					wantKinds = append(wantKinds, animation.EventConsider)
				case prim_kruskal.StepAccept:
					wantKinds = append(wantKinds, animation.EventAccepted)
				case prim_kruskal.StepReject:
					wantKinds = append(wantKinds, animation.EventRejected)
				}
			}
			wantKinds = append(wantKinds, animation.EventComplete)
			assert.Equal(t, wantKinds, kinds)
		})
	}
}

func TestDriver_HighlightDuringConsider(t *testing.T) {
	events, observe := recorder()
	opts := append(noDelays(), animation.WithObserver(observe))
	d := animation.New(buildDiamond(t), opts...)
	require.True(t, d.Start(context.Background(), prim_kruskal.MethodKruskal))
	waitDone(t, d)
	close(events)

	for ev := range events {
		switch ev.Kind {
		case animation.EventConsider:
			require.NotNil(t, ev.State.Highlight)
			assert.Equal(t, ev.Step.Edge, *ev.State.Highlight)
		case animation.EventAccepted:
			assert.Nil(t, ev.State.Highlight)
			assert.Contains(t, ev.State.Edges, ev.Step.Edge)
		case animation.EventRejected:
			assert.Nil(t, ev.State.Highlight)
			assert.NotContains(t, ev.State.Edges, ev.Step.Edge)
		}
	}
}

func TestDriver_AbortAtEveryStep(t *testing.T) {
	g := buildDiamond(t)
	for _, m := range methods {
		full, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(m))
		require.NoError(t, err)

		// i == len(full.Steps) aborts during the linger pause.
		for i := 0; i <= len(full.Steps); i++ {
			st := newStepper()
			events, observe := recorder()
			d := animation.New(g, animation.WithSleep(st.sleep), animation.WithObserver(observe))
			require.True(t, d.Start(context.Background(), m))
			require.Equal(t, animation.EventStarted, (<-events).Kind)

			for j := 0; j < i; j++ {
				<-events
				st.ticks <- struct{}{}
			}
			if i < len(full.Steps) {
				ev := <-events
				assert.Equal(t, i, ev.Step.Index)
				assert.Equal(t, animation.Running, d.Snapshot().Status)
			}

			d.Abort()
			assert.Empty(t, cmp.Diff(animation.State{}, d.Snapshot()), "%s aborted at step %d", m, i)
			last := <-events
			assert.Equal(t, animation.EventAborted, last.Kind)
			assert.Nil(t, last.State.Highlight)
			assert.Len(t, events, 0)
		}
	}
}

func TestDriver_StartWhileRunningIsNoop(t *testing.T) {
	st := newStepper()
	events, observe := recorder()
	d := animation.New(buildDiamond(t), animation.WithSleep(st.sleep), animation.WithObserver(observe))
	require.True(t, d.Start(context.Background(), prim_kruskal.MethodPrim))
	<-events // started
	<-events // first step, now paused

	before := d.Snapshot()
	assert.False(t, d.Start(context.Background(), prim_kruskal.MethodKruskal))
	assert.Empty(t, cmp.Diff(before, d.Snapshot()))

	d.Reset()
	assert.Empty(t, cmp.Diff(before, d.Snapshot()), "reset must not touch a running run")

	d.Abort()
	assert.Equal(t, animation.Idle, d.Snapshot().Status)
}

func TestDriver_ResetThenRestartIsIdentical(t *testing.T) {
	g := buildDiamond(t)
	for _, m := range methods {
		d := animation.New(g, noDelays()...)

		require.True(t, d.Start(context.Background(), m))
		waitDone(t, d)
		first := d.Snapshot()

		d.Reset()
		assert.Empty(t, cmp.Diff(animation.State{}, d.Snapshot()))

		require.True(t, d.Start(context.Background(), m))
		waitDone(t, d)
		second := d.Snapshot()

		assert.NotEqual(t, first.RunID, second.RunID)
		assert.Empty(t, cmp.Diff(first.Edges, second.Edges))
		assert.Equal(t, first.Visited, second.Visited)
		assert.Equal(t, first.Coverage, second.Coverage)
	}
}

func TestDriver_StartFromComplete(t *testing.T) {
	d := animation.New(buildDiamond(t), noDelays()...)
	require.True(t, d.Start(context.Background(), prim_kruskal.MethodPrim))
	waitDone(t, d)
	require.Equal(t, animation.Complete, d.Snapshot().Status)

	require.True(t, d.Start(context.Background(), prim_kruskal.MethodKruskal))
	waitDone(t, d)
	s := d.Snapshot()
	assert.Equal(t, animation.Complete, s.Status)
	assert.Equal(t, prim_kruskal.MethodKruskal, s.Method)
}

func TestDriver_ActiveUntilFinalEventDelivered(t *testing.T) {
	tests := []struct {
		final animation.EventKind
		root  string // "Z" names no node, so the run ends aborted
	}{
		{final: animation.EventComplete},
		{final: animation.EventAborted, root: "Z"},
	}

	for _, tc := range tests {
		t.Run(tc.final.String(), func(t *testing.T) {
			entered, release := make(chan animation.State), make(chan struct{})
			var once sync.Once
			d := animation.New(buildDiamond(t), append(noDelays(),
				animation.WithRoot(tc.root),
				animation.WithObserver(func(ev animation.Event) {
					if ev.Kind == tc.final {
						once.Do(func() {
							entered <- ev.State
							<-release
						})
					}
				}),
			)...)

			require.True(t, d.Start(context.Background(), prim_kruskal.MethodPrim))
			held := <-entered

			assert.False(t, d.Start(context.Background(), prim_kruskal.MethodKruskal))
			d.Reset()
			assert.Empty(t, cmp.Diff(held, d.Snapshot()), "state must stay untouched until the run goroutine exits")
			select {
			case <-d.Done():
				t.Fatal("done closed while the final observer is still running")
			default:
			}

			close(release)
			waitDone(t, d)
			require.True(t, d.Start(context.Background(), prim_kruskal.MethodKruskal))
			waitDone(t, d)
			assert.Equal(t, animation.Complete, d.Snapshot().Status)
		})
	}
}

func TestDriver_ParentContextCancels(t *testing.T) {
	st := newStepper()
	events, observe := recorder()
	d := animation.New(buildDiamond(t), animation.WithSleep(st.sleep), animation.WithObserver(observe))

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, d.Start(ctx, prim_kruskal.MethodKruskal))
	<-events
	<-events
	cancel()
	waitDone(t, d)

	assert.Empty(t, cmp.Diff(animation.State{}, d.Snapshot()))
}

func TestDriver_PartialCoverage(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	require.NoError(t, err)

	for _, m := range methods {
		d := animation.New(g, noDelays()...)
		require.True(t, d.Start(context.Background(), m))
		waitDone(t, d)

		s := d.Snapshot()
		assert.True(t, s.Partial)
		assert.Equal(t, "MST covers 2 of 4 nodes (2 trees)", s.Coverage)
		assert.Len(t, s.Edges, 2)
	}
}

func TestDriver_SingleTree(t *testing.T) {
	g, err := core.FromEdges([]core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	require.NoError(t, err)

	opts := append(noDelays(), animation.WithRoot("C"), animation.WithSingleTree())
	d := animation.New(g, opts...)
	require.True(t, d.Start(context.Background(), prim_kruskal.MethodPrim))
	waitDone(t, d)

	s := d.Snapshot()
	assert.Equal(t, []string{"C", "D"}, s.Visited)
	assert.True(t, s.Partial)
}

func TestDriver_UnknownRootFails(t *testing.T) {
	events, observe := recorder()
	opts := append(noDelays(), animation.WithRoot("Z"), animation.WithObserver(observe))
	d := animation.New(buildDiamond(t), opts...)
	require.True(t, d.Start(context.Background(), prim_kruskal.MethodPrim))
	waitDone(t, d)

	assert.Equal(t, animation.Idle, d.Snapshot().Status)
	assert.Equal(t, animation.EventStarted, (<-events).Kind)
	assert.Equal(t, animation.EventAborted, (<-events).Kind)
}

func TestDriver_RejectsBadStart(t *testing.T) {
	d := animation.New(buildDiamond(t))
	assert.False(t, d.Start(context.Background(), prim_kruskal.Method("boruvka")))

	var nilGraph *core.Graph
	assert.False(t, animation.New(nilGraph).Start(context.Background(), prim_kruskal.MethodPrim))
}

func TestDriver_TimerPacing(t *testing.T) {
	delays := animation.Delays{
		Consider: time.Millisecond,
		Accept:   time.Millisecond,
		Reject:   time.Millisecond,
		Visit:    time.Millisecond,
		Linger:   time.Millisecond,
	}
	d := animation.New(buildDiamond(t), animation.WithDelays(prim_kruskal.MethodKruskal, delays))
	require.True(t, d.Start(context.Background(), prim_kruskal.MethodKruskal))
	waitDone(t, d)
	assert.Equal(t, animation.Complete, d.Snapshot().Status)
}

func TestDefaultDelays(t *testing.T) {
	p := animation.DefaultDelays(prim_kruskal.MethodPrim)
	assert.Equal(t, 500*time.Millisecond, p.Consider)
	assert.Equal(t, 400*time.Millisecond, p.Accept)
	assert.Equal(t, 1500*time.Millisecond, p.Linger)

	k := animation.DefaultDelays(prim_kruskal.MethodKruskal)
	assert.Equal(t, 400*time.Millisecond, k.Consider)
	assert.Equal(t, 500*time.Millisecond, k.Accept)
	assert.Equal(t, 300*time.Millisecond, k.Reject)
}

func TestStatusAndEventNames(t *testing.T) {
	assert.Equal(t, "running", animation.Running.String())
	assert.Equal(t, "accepted", animation.EventAccepted.String())
	assert.Equal(t, "aborted", animation.EventAborted.String())
}
