// Package builder generates deterministic constellation layouts: positioned
// core.Node sets for well-known topologies.
//
// What:
//
//   - Cycle, Path, Star, Wheel, Complete: points on a circle or a line.
//   - CompleteBipartite: two columns joined pairwise.
//   - Grid: a rows×cols lattice with coordinate IDs "r,c".
//   - RandomSparse: Erdős–Rényi edges over uniformly scattered points.
//   - Parse: layout descriptions such as "grid:3x4+cycle:6" for the CLI.
//
// Constructors compose. Build runs them in order, numbering IDs across the
// whole layout and shifting every new part to the right of the previous one,
// so "cycle:5+cycle:5" yields two disjoint rings: a two-tree forest.
//
// Options:
//
//   - WithIDScheme   index → ID (default "0", "1", ...)
//   - WithSeed       reproducible RandomSparse draws
//   - WithRand       explicit RNG
//   - WithRadius     circle radius (default 10)
//   - WithSpacing    line, grid and gap spacing (default 1)
//   - WithCategory   category of generated nodes (default core.Concept)
//   - WithPartitionPrefix  bipartite ID prefixes (default "L", "R")
//
// Determinism: equal options, seed and constructor order produce identical
// node slices.
//
// Errors:
//
//   - ErrTooFewVertices      size parameter below the topology minimum
//   - ErrInvalidProbability  p outside [0, 1]
//   - ErrNeedRandSource      RandomSparse with 0 < p < 1 and no RNG
//   - ErrConstructFailed     nil constructor or colliding IDs
//   - ErrBadLayout           malformed Parse input
package builder
