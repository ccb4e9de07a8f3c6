// errors.go: sentinel errors for the grid package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w (row/column, cell ids).

package grid

import "errors"

var (
	// ErrOutOfRange indicates a row or column outside the lattice.
	ErrOutOfRange = errors.New("grid: location out of range")

	// ErrNilCell indicates a nil *Cell was passed where one is required.
	ErrNilCell = errors.New("grid: cell is nil")

	// ErrSelfLink indicates an attempt to link or unlink a cell with itself.
	ErrSelfLink = errors.New("grid: cell cannot be linked to itself")

	// ErrBorderCell indicates a mutation of the read-only border sentinel.
	ErrBorderCell = errors.New("grid: border cell is read-only")

	// ErrNotLinked indicates a weight update for cells that are not linked.
	ErrNotLinked = errors.New("grid: cells are not linked")

	// ErrEmptyGrid indicates the grid has no unmasked cell to choose from.
	ErrEmptyGrid = errors.New("grid: no unmasked cells")
)
