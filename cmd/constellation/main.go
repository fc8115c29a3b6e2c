// Command constellation inspects a skills constellation and replays its
// minimum spanning forest.
//
//	constellation edges                 # every edge, lightest first
//	constellation edges --node ts --depth 2
//	constellation path js express       # fewest-hops chain between two skills
//	constellation mst --method prim     # compute once and print the forest
//	constellation mst --tree --depth 2  # the forest as indented trees
//	constellation play                  # paced replay, Ctrl-C aborts
//	constellation compare               # Prim and Kruskal side by side
//	constellation skills                # list view grouped by category
//	constellation mst --layout grid:4x4 # a generated layout instead of skills
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/config"
	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/prim_kruskal"
	"github.com/katalvlaran/constellation/skills"
)

// app carries the state shared by every subcommand.
type app struct {
	// flags
	verbose    bool
	configPath string
	dataset    string
	layout     string
	seed       int64

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "constellation",
		Short: "Minimum spanning forests over a skills constellation",
		Long: `constellation loads a skills graph (the built-in portfolio set or a YAML
dataset), weights every edge by Euclidean distance and builds its minimum
spanning forest with Prim's or Kruskal's algorithm.

Disconnected graphs yield one tree per component.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVarP(&a.dataset, "dataset", "d", "", "YAML skills dataset (default: built-in)")
	root.PersistentFlags().StringVar(&a.layout, "layout", "", `Generated layout, e.g. "grid:4x4" or "cycle:6+random:20:0.2"`)
	root.PersistentFlags().Int64Var(&a.seed, "seed", 1, "Seed for random layouts")

	root.AddCommand(
		a.edgesCmd(),
		a.pathCmd(),
		a.mstCmd(),
		a.playCmd(),
		a.compareCmd(),
		a.skillsCmd(),
	)

	return root
}

// init loads the config and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataset != "" {
		cfg.Dataset = a.dataset
	}
	if a.layout != "" && cfg.Dataset != "" {
		return fmt.Errorf("--layout and a dataset are mutually exclusive")
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named("constellation")

	return nil
}

// graph builds the configured dataset or layout.
func (a *app) graph() (*core.Graph, error) {
	if a.layout != "" {
		nodes, err := a.nodes()
		if err != nil {
			return nil, err
		}
		return core.NewGraph(nodes)
	}
	if a.cfg.Dataset == "" {
		return skills.Graph()
	}
	g, err := skills.LoadGraph(a.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("dataset loaded",
		zap.String("path", a.cfg.Dataset),
		zap.Int("nodes", g.Len()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// nodes returns the configured nodes in declaration order.
func (a *app) nodes() ([]core.Node, error) {
	if a.layout != "" {
		cons, err := builder.Parse(a.layout)
		if err != nil {
			return nil, err
		}
		nodes, err := builder.Build([]builder.BuilderOption{builder.WithSeed(a.seed)}, cons...)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("layout built", zap.String("layout", a.layout), zap.Int("nodes", len(nodes)))
		return nodes, nil
	}
	if a.cfg.Dataset == "" {
		return skills.Nodes(), nil
	}

	return skills.LoadFile(a.cfg.Dataset)
}

// root resolves the Prim seed: flag, then config, then the built-in default.
func (a *app) root(flag string) string {
	switch {
	case flag != "":
		return flag
	case a.cfg.Root != "":
		return a.cfg.Root
	case a.cfg.Dataset == "" && a.layout == "":
		return skills.DefaultRoot
	default:
		return ""
	}
}

// method resolves the strategy: flag, then config.
func (a *app) method(flag string) (prim_kruskal.Method, error) {
	if flag != "" {
		return prim_kruskal.ParseMethod(flag)
	}

	return a.cfg.Method()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
