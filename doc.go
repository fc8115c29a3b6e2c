// Package constellation builds minimum spanning forests over a skills
// constellation and replays their construction step by step.
//
// A constellation is a fixed set of labelled nodes (languages, frameworks,
// tools, concepts) placed on a 2-D canvas and joined by declared
// relationships. Every edge weighs the Euclidean distance between its scaled
// endpoints, and Prim's or Kruskal's algorithm connects each component with
// the lightest possible tree.
//
// Packages:
//
//	core/          immutable Graph, Node, Edge and Category types
//	skills/        the built-in dataset and the YAML loader
//	bfs/, dfs/     traversals, connected components and cycle checks
//	prim_kruskal/  both strategies, the decision stream and Verify
//	animation/     a paced, abortable Driver over the decision stream
//	builder/       generated layouts for tests, benchmarks and the CLI
//	config/        TOML configuration
//	cmd/constellation  the command-line front end
//
// Disconnected graphs are first-class: the result is a forest with one tree
// per component, and coverage reports the largest tree against |V|.
package constellation
