// Package dfs implements depth-first search traversal and cycle detection on
// an undirected constellation core.Graph.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Forest traversal over every component
//   - DetectCycles: a full DFS whose hooks colour nodes (White, Gray, Black)
//     and record the cycle closed by each back edge, deduplicated by
//     canonical signature.
//   - Acyclic: the yes/no form, used to check that a spanning-forest result
//     really is a forest.
//
// Key Types & Constants:
//
//   - White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FullTraversal
//   - DFSResult: collects post-order, Depth, Parent, Visited maps and Roots
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - DetectCycles:   Time O(V+E + C*L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start node ID not in graph
//   - ErrCycleDetected        Acyclic found a cycle
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
