package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/constellation/animation"
	"github.com/katalvlaran/constellation/config"
	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/prim_kruskal"
)

func (a *app) playCmd() *cobra.Command {
	var (
		method     string
		root       string
		singleTree bool
		speed      float64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Replay the forest construction step by step",
		Long: `Replay Prim's or Kruskal's algorithm with the configured pacing.
Each edge is highlighted while considered, then accepted or rejected.
Ctrl-C aborts the run and clears it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if speed <= 0 {
				return fmt.Errorf("--speed must be positive, got %v", speed)
			}
			g, err := a.graph()
			if err != nil {
				return err
			}
			m, err := a.method(method)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			opts := append(a.cfg.DriverOptions(),
				animation.WithLogger(a.logger),
				animation.WithRoot(a.root(root)),
				animation.WithObserver(func(ev animation.Event) {
					writeEvent(out, ev)
				}),
			)
			if singleTree {
				opts = append(opts, animation.WithSingleTree())
			}
			if speed != 1 {
				opts = append(opts, animation.WithDelays(m, scaleDelays(a.cfg.Delays[string(m)], speed)))
			}

			fmt.Fprintf(out, "%s %s\n", titleStyle.Render(m.Title()+" algorithm"), dimStyle.Render(m.Complexity()))
			d := animation.New(g, opts...)
			if !d.Start(ctx, m) {
				return fmt.Errorf("could not start %s run", m)
			}
			<-d.Done()

			s := d.Snapshot()
			if s.Status != animation.Complete {
				fmt.Fprintln(out, warnStyle.Render("aborted"))
				return nil
			}
			fmt.Fprintf(out, "total weight: %.2f\n", s.TotalWeight)
			if s.Partial {
				fmt.Fprintln(out, warnStyle.Render(s.Coverage))
			} else {
				fmt.Fprintln(out, s.Coverage)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "prim or kruskal (default from config)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Prim seed node")
	cmd.Flags().BoolVar(&singleTree, "single-tree", false, "Prim: stop after the root's component")
	cmd.Flags().Float64Var(&speed, "speed", 1, "Playback speed multiplier")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run Prim and Kruskal concurrently and compare their forests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}

			methods := []prim_kruskal.Method{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal}
			results := make([]*prim_kruskal.Result, len(methods))
			eg, ctx := errgroup.WithContext(cmd.Context())
			for i, m := range methods {
				i, m := i, m
				eg.Go(func() error {
					res, err := prim_kruskal.Compute(g,
						prim_kruskal.WithMethod(m),
						prim_kruskal.WithRoot(a.root(root)),
						prim_kruskal.WithContext(ctx),
					)
					if err != nil {
						return fmt.Errorf("%s: %w", m, err)
					}
					if err := prim_kruskal.Verify(g, res); err != nil {
						return fmt.Errorf("%s: %w", m, err)
					}
					results[i] = res
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				writeResult(out, res)
				fmt.Fprintln(out)
			}

			prim, kruskal := results[0], results[1]
			same := sameEdgeSet(prim.Edges, kruskal.Edges)
			a.logger.Debug("compared strategies",
				zap.Float64("prim_weight", prim.TotalWeight),
				zap.Float64("kruskal_weight", kruskal.TotalWeight),
				zap.Bool("same_edges", same),
			)
			if diff := prim.TotalWeight - kruskal.TotalWeight; diff > 1e-9 || diff < -1e-9 {
				return fmt.Errorf("total weights differ: prim %.6f, kruskal %.6f", prim.TotalWeight, kruskal.TotalWeight)
			}
			fmt.Fprintf(out, "weights agree: %.2f\n", prim.TotalWeight)
			if same {
				fmt.Fprintln(out, "same edge set")
			} else {
				fmt.Fprintln(out, dimStyle.Render("different edge sets of equal weight (ties)"))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", "Prim seed node")

	return cmd
}

func writeEvent(w io.Writer, ev animation.Event) {
	style := eventStyle(ev.Kind)
	switch ev.Kind {
	case animation.EventStarted:
		fmt.Fprintln(w, dimStyle.Render("run "+ev.State.RunID))
	case animation.EventVisit:
		fmt.Fprintf(w, "%4d %s %s\n", ev.Step.Index, style.Render(fmt.Sprintf("%-8s", ev.Kind)), ev.Step.Node)
	case animation.EventConsider, animation.EventAccepted, animation.EventRejected:
		fmt.Fprintf(w, "%4d %s %s (%.2f)\n", ev.Step.Index, style.Render(fmt.Sprintf("%-8s", ev.Kind)), ev.Step.Edge, ev.Step.Edge.Weight)
	}
}

// scaleDelays divides every pause by speed.
func scaleDelays(d config.Delays, speed float64) animation.Delays {
	f := func(v time.Duration) time.Duration { return time.Duration(float64(v) / speed) }

	return animation.Delays{
		Consider: f(d.Consider),
		Accept:   f(d.Accept),
		Reject:   f(d.Reject),
		Visit:    f(d.Visit),
		Linger:   f(d.Linger),
	}
}

// sameEdgeSet reports whether a and b hold the same canonical pairs.
func sameEdgeSet(a, b []core.Edge) bool {
	if len(a) != len(b) {
		return false
	}
	keys := make(map[string]struct{}, len(a))
	for _, e := range a {
		keys[e.Key()] = struct{}{}
	}
	for _, e := range b {
		if _, ok := keys[e.Key()]; !ok {
			return false
		}
	}

	return true
}
