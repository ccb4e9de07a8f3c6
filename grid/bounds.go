package grid

import (
	"cmp"
	"fmt"
)

// Clamp bounds v into [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	switch {
	case v > hi:
		return hi
	case v < lo:
		return lo
	}
	return v
}

// InBounds reports whether (row, column) lies inside the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// checkLocation returns a wrapped ErrOutOfRange for coordinates outside the lattice.
func (g *Grid) checkLocation(row, column int) error {
	if !g.InBounds(row, column) {
		return fmt.Errorf("%w: (%d,%d) not in [0,%d)×[0,%d)", ErrOutOfRange, row, column, g.rows, g.columns)
	}
	return nil
}

// checkRow returns a wrapped ErrOutOfRange for a row outside the lattice.
func (g *Grid) checkRow(row int) error {
	if row < 0 || row >= g.rows {
		return fmt.Errorf("%w: row %d not in [0,%d)", ErrOutOfRange, row, g.rows)
	}
	return nil
}

// index maps (row, column) to a row-major lattice index.
func (g *Grid) index(row, column int) int {
	return row*g.columns + column
}
