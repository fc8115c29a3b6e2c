// Package bfs walks a constellation core.Graph breadth-first and splits it
// into connected components.
//
// BFS ignores weights: it counts hops. The Result answers three questions
// the command line asks of a constellation:
//
//   - Layers: which skills sit 1, 2, ... hops from a given one;
//   - PathTo: the fewest-hops chain between two skills;
//   - Order/Depth/Parent: the raw walk for callers that need more.
//
// WithMaxDepth bounds the walk, WithOnVisit observes it and WithContext
// cancels it. Components runs one walk per unseen node and is what the
// spanning-forest code uses to size its forests.
//
// Neighbours come from core.Graph sorted ascending, so every walk and every
// component list is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
