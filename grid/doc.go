// Package grid models a rectangular lattice of cells as a graph whose
// passages ("links") are carved by maze generators.
//
// What:
//
//   - Grid owns a dense rows×columns slice of *Cell, wired once at
//     construction to their north, east, south and west neighbours.
//   - Slots that fall off the lattice point at a single per-grid border
//     sentinel (Kind == KindBorder) instead of nil.
//   - A mask of (row, column) locations removes cells from traversal.
//     Cells and CellsForRow filter against the live mask on every call.
//   - Each Cell keeps a weighted link sub-map: the carved edges of the maze.
//
// Invariants:
//
//   - linked(a, b) ⇒ neighbour(a, b): Link never records a non-neighbour.
//   - IsLinkable(c) ⇔ !c.IsBorder() ∧ !c.IsMasked().
//   - Size() == Rows()*Columns() − MaskedCount().
//   - Neighbour slots never change after New returns.
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - Cell, Mask:   O(1).
//   - Cells:        O(R×C) per call (not cached).
//   - Components:   O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrOutOfRange:   row/column outside [0,rows)×[0,columns).
//   - ErrNilCell:      a required *Cell argument is nil.
//   - ErrSelfLink:     link/unlink of a cell with itself.
//   - ErrBorderCell:   mutation attempted on the border sentinel.
//   - ErrNotLinked:    weight change requested for a missing link.
//   - ErrEmptyGrid:    random selection over a grid without unmasked cells.
//
// Soft failures (already linked, not a neighbour, masked endpoint) are not
// errors: Link and Unlink report them by returning false and logging at
// debug level on the grid's logger.
//
// Concurrency: a Grid is not safe for concurrent mutation; callers serialize.
package grid
