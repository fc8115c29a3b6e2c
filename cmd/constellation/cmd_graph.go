package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/dfs"
	"github.com/katalvlaran/constellation/prim_kruskal"
	"github.com/katalvlaran/constellation/skills"
)

func (a *app) edgesCmd() *cobra.Command {
	var (
		node  string
		depth int
	)
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List edges, lightest first",
		Long: `List every undirected edge once, canonicalised and sorted by weight.
With --node only the edges touching that node are shown.
With --node and --depth N the edges among every node within N hops are
shown, followed by the nodes at each hop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			withinHops := cmd.Flags().Changed("depth")
			if withinHops && node == "" {
				return fmt.Errorf("--depth needs --node")
			}
			var walk *bfs.Result
			edges := g.AllEdges()
			switch {
			case withinHops:
				walk, err = bfs.BFS(g, node, bfs.WithMaxDepth(depth), bfs.WithContext(cmd.Context()))
				if err != nil {
					return fmt.Errorf("%s: %w", node, err)
				}
				edges = edgesWithin(edges, walk)
			case node != "":
				if edges, err = g.IncidentEdges(node); err != nil {
					return fmt.Errorf("%s: %w", node, err)
				}
			}

			for _, e := range edges {
				fmt.Fprintf(out, "%-20s %8.2f\n", e, e.Weight)
			}
			if walk != nil {
				for hops, layer := range walk.Layers() {
					fmt.Fprintf(out, "%s %s\n", dimStyle.Render(fmt.Sprintf("hop %d:", hops)), strings.Join(layer, " "))
				}
			}
			comps := bfs.Components(g)
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%d edges, %d nodes, %d components", len(edges), g.Len(), len(comps))))

			return nil
		},
	}
	cmd.Flags().StringVar(&node, "node", "", "Only edges incident to this node")
	cmd.Flags().IntVar(&depth, "depth", 1, "With --node: include every node within this many hops")

	return cmd
}

// edgesWithin keeps the edges whose endpoints were both reached by walk.
func edgesWithin(edges []core.Edge, walk *bfs.Result) []core.Edge {
	var out []core.Edge
	for _, e := range edges {
		if walk.Reached(e.From) && walk.Reached(e.To) {
			out = append(out, e)
		}
	}

	return out
}

func (a *app) pathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Show the fewest-hops chain between two skills",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			from, to := args[0], args[1]
			if !g.HasNode(to) {
				return fmt.Errorf("%w: %q", core.ErrNodeNotFound, to)
			}
			walk, err := bfs.BFS(g, from, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			hops, err := walk.PathTo(to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var total float64
			fmt.Fprintln(out, hops[0])
			for i := 1; i < len(hops); i++ {
				w, err := g.Weight(hops[i-1], hops[i])
				if err != nil {
					return err
				}
				total += w
				fmt.Fprintf(out, "  -> %-16s %8.2f\n", hops[i], w)
			}
			a.logger.Debug("path found", zap.String("from", from), zap.String("to", to), zap.Int("hops", len(hops)-1))
			fmt.Fprintf(out, "%d hops, weight %.2f\n", len(hops)-1, total)

			return nil
		},
	}

	return cmd
}

func (a *app) mstCmd() *cobra.Command {
	var (
		method     string
		root       string
		singleTree bool
		showSteps  bool
		showTree   bool
		treeDepth  int
	)
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute the minimum spanning forest once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			m, err := a.method(method)
			if err != nil {
				return err
			}
			opts := []prim_kruskal.Option{
				prim_kruskal.WithMethod(m),
				prim_kruskal.WithRoot(a.root(root)),
				prim_kruskal.WithContext(cmd.Context()),
			}
			if singleTree || a.cfg.SingleTree {
				opts = append(opts, prim_kruskal.WithSingleTree())
			}

			res, err := prim_kruskal.Compute(g, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("forest computed",
				zap.String("method", string(m)),
				zap.Int("steps", len(res.Steps)),
				zap.Float64("total_weight", res.TotalWeight),
			)

			out := cmd.OutOrStdout()
			if showSteps {
				for _, s := range res.Steps {
					writeStep(out, s)
				}
			}
			writeResult(out, res)
			if showTree {
				return writeTree(cmd.Context(), out, res, treeDepth)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "prim or kruskal (default from config)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Prim seed node")
	cmd.Flags().BoolVar(&singleTree, "single-tree", false, "Prim: stop after the root's component")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "Print the decision stream")
	cmd.Flags().BoolVar(&showTree, "tree", false, "Print each tree of the forest indented")
	cmd.Flags().IntVar(&treeDepth, "depth", -1, "With --tree: stop this many levels below each root (-1: no limit)")

	return cmd
}

func (a *app) skillsCmd() *cobra.Command {
	var usedIn bool
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := a.nodes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, grp := range skills.Grouped(nodes) {
				style := categoryStyle(grp.Category)
				fmt.Fprintln(out, style.Bold(true).Render(strings.ToUpper(grp.Category.String())))
				for _, n := range grp.Nodes {
					fmt.Fprintf(out, "  %s %s\n", style.Render(fmt.Sprintf("%-14s", n.Name)), dimStyle.Render(fmt.Sprintf("%3d", n.Level)))
					if usedIn {
						writeUsedIn(out, n.UsedIn)
					}
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&usedIn, "used-in", false, "Show projects, jobs and classes")

	return cmd
}

func writeUsedIn(w io.Writer, u core.UsedIn) {
	for _, row := range []struct {
		label string
		items []string
	}{
		{"projects", u.Projects},
		{"jobs", u.Jobs},
		{"classes", u.Classes},
	} {
		if len(row.items) > 0 {
			fmt.Fprintf(w, "      %s %s\n", dimStyle.Render(row.label+":"), strings.Join(row.items, ", "))
		}
	}
}

func writeStep(w io.Writer, s prim_kruskal.Step) {
	subject := s.Node
	if s.Kind != prim_kruskal.StepVisit {
		subject = fmt.Sprintf("%s (%.2f)", s.Edge, s.Edge.Weight)
	}
	fmt.Fprintf(w, "%4d %-8s %s\n", s.Index, s.Kind, subject)
}

func writeResult(w io.Writer, res *prim_kruskal.Result) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(res.Method.Title()+" algorithm"), dimStyle.Render(res.Method.Complexity()))
	if res.Root != "" {
		fmt.Fprintf(w, "root: %s\n", res.Root)
	}
	for _, e := range res.Edges {
		fmt.Fprintf(w, "  %-20s %8.2f\n", e, e.Weight)
	}
	fmt.Fprintf(w, "total weight: %.2f\n", res.TotalWeight)
	coverage := res.Coverage()
	if res.Partial {
		coverage = warnStyle.Render(coverage)
	}
	fmt.Fprintln(w, coverage)
}

// writeTree prints every tree of res depth-first, starting each from the
// first node that joined it, indented two spaces per level with the weight
// of the edge to the parent.
func writeTree(ctx context.Context, w io.Writer, res *prim_kruskal.Result, maxDepth int) error {
	forest, err := res.Forest()
	if err != nil {
		return err
	}
	tree := make(map[string]int)
	for i, comp := range bfs.Components(forest) {
		for _, id := range comp {
			tree[id] = i
		}
	}

	var stack []string
	visit := func(id string) error {
		indent := strings.Repeat("  ", len(stack))
		if len(stack) == 0 {
			fmt.Fprintln(w, titleStyle.Render(id))
		} else {
			wt, err := forest.Weight(stack[len(stack)-1], id)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%s %s\n", indent, id, dimStyle.Render(fmt.Sprintf("%.2f", wt)))
		}
		stack = append(stack, id)
		return nil
	}
	exit := func(string) error {
		stack = stack[:len(stack)-1]
		return nil
	}

	printed := make(map[int]bool)
	for _, id := range res.Visited {
		if printed[tree[id]] {
			continue
		}
		printed[tree[id]] = true
		_, err := dfs.DFS(forest, id,
			dfs.WithContext(ctx),
			dfs.WithMaxDepth(maxDepth),
			dfs.WithOnVisit(visit),
			dfs.WithOnExit(exit),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
