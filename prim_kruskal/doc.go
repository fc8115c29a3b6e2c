// Package prim_kruskal provides two algorithms for computing the Minimum
// Spanning Forest of a constellation *core.Graph: Prim’s algorithm and
// Kruskal’s algorithm, each narrating its decisions as an ordered stream of
// Steps so the run can be replayed.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//     On a disconnected graph the analogue is a minimum spanning forest: one MST per component.
//
//   - Why a step stream?
//     The result alone says which edges won. The stream also says which edges were looked at,
//     which were turned down and when a new tree was started, which is what a visualisation needs.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (*Result, error)
//
//   - Strategy: take g.AllEdges() (ascending weight, ties by canonical pair). Use a Disjoint-Set (Union-Find)
//     to merge components, rejecting edges whose endpoints are already connected. Stop once the forest
//     holds |V| − components edges.
//
//   - Stream: Consider → Accept | Reject per edge, then Visit for isolated nodes.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root string, opts ...Option) (*Result, error)
//
//   - Strategy: grow one tree from root with a min-heap of crossing edges. When the heap drains before
//     every node is reached, re-seed at the lowest unvisited ID (or stop, with WithSingleTree).
//
//   - Stream: Visit(root), then Consider → Accept per edge, Visit per re-seed.
//
//   - Root: "" selects g.MostConnected(), the highest-degree node with ties broken by lowest ID.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Determinism
//
//	Every ordering decision is a total order on (weight, From, To), so repeated runs over the same
//	graph produce identical Steps. Prim and Kruskal may pick different edges under ties, but always
//	agree on TotalWeight.
//
// Cancellation
//
//	WithContext and WithOnStep make both algorithms cooperative. The context is checked before every
//	step; an OnStep error returned after the context was cancelled is treated the same way. Either
//	case ends the run with Status == StatusAborted and a nil error: stopping is a normal outcome.
//
// Error Conditions
//
//   - ErrNilGraph       graph is nil.
//   - ErrRootNotFound   Prim only, root names no node.
//   - ErrUnknownMethod  Compute/ParseMethod with an unsupported method.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
