// Package distance labels every cell reachable from a root through carved
// links with its cumulative path weight, step count and predecessor.
//
// Two analysers share the Analyser contract and the Result type:
//
//   - Frontier: breadth-first expansion by levels. Each newly reached cell
//     gets weight = parent weight + 1; the first label wins. Correct only for
//     unit weights.
//   - Dijkstra: min-heap on cumulative weight using the links' stored
//     weights. Strictly better labels replace older ones and are re-queued
//     (lazy decrease-key); stale heap entries are skipped on pop.
//
// Both traverse links only, never bare neighbour slots.
//
// Complexity:
//
//   - Frontier: O(V + E) time, O(V) memory.
//   - Dijkstra: O((V + E) log V) time, O(V + E) memory.
//
// Dijkstra tie-break: equal weights pop in order of fewer steps, then
// earlier insertion. Edges weighted grid.WeightInf are never taken; a
// negative weight aborts with ErrNegativeWeight.
//
// Path reconstruction: ShortestPathFor walks PathLink back-pointers from a
// cell toward the root, excluding the root, and returns an empty slice for
// cells the analysis never reached. Result.PathTo returns the full
// root-to-cell path instead.
package distance
