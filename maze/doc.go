// Package maze carves perfect mazes (spanning trees) into a grid.Grid.
//
// What:
//
//   - Planter is the common contract: Plant(g) mutates only g's link graph,
//     never its neighbour wiring or mask. Existing passages are cleared
//     first, so replanting a grid never merges two mazes.
//   - AldousBroder: uniform spanning tree by unbiased random walk.
//   - Wilson: uniform spanning tree by loop-erased random walk.
//   - Sidewinder: row-by-row runs closed northward, bottom row first.
//   - BinaryTree: each cell links north or east.
//
// Result: on an unmasked rows×columns grid every algorithm leaves exactly
// rows*columns−1 passages joining all cells, with no cycles.
//
// Randomness: every planter draws from an injected rng.Source (WithRand,
// WithSeed). The default is a fixed-seed stream, so runs are reproducible.
//
// Complexity:
//
//   - BinaryTree, Sidewinder: O(R×C), one pass.
//   - AldousBroder: expected cover time of the random walk, O(R²C²)-ish on
//     square grids; terminates with probability 1 on a connected grid.
//   - Wilson: expected mean hitting time; faster than AldousBroder in practice.
//
// Random walks on a disconnected traversable graph would never finish, so
// AldousBroder and Wilson check connectivity first (ErrDisconnected).
// WithMaxSteps caps the number of walk steps for callers needing bounded
// latency (ErrStepLimit).
//
// Masks: AldousBroder, Wilson and BinaryTree honour masked cells. Sidewinder
// treats a masked east neighbour as the end of a run and only carves north
// from run cells whose north neighbour is linkable; a run with none stays
// cut off from the rows above.
package maze
