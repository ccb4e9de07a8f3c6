// types.go: locations, directions, cell kinds, weights and edges.

package grid

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Edge weights stored in a cell's link sub-map.
const (
	// WeightFree is the cost of a root cell to itself.
	WeightFree int64 = 0
	// WeightSimple is the default weight of a carved link.
	WeightSimple int64 = 1
	// WeightInf marks an edge that must never be taken.
	WeightInf int64 = math.MaxInt64
)

// Dimension limits. MaxLen keeps rows*columns arithmetic far from overflow.
const (
	MinLen = 2
	MaxLen = math.MaxInt32/2 - 2
)

// Location is a (row, column) coordinate inside a grid.
type Location struct {
	Row    int
	Column int
}

// Loc is shorthand for Location{Row: row, Column: column}.
func Loc(row, column int) Location {
	return Location{Row: row, Column: column}
}

// String renders the location as "(row,column)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Column)
}

// borderLocation is the coordinate reported by the border sentinel.
var borderLocation = Location{Row: -1, Column: -1}

// Direction selects one of the four fixed neighbour slots of a cell.
type Direction int

const (
	// North is the row above (row-1).
	North Direction = iota
	// East is the column to the right (column+1).
	East
	// South is the row below (row+1).
	South
	// West is the column to the left (column-1).
	West

	numDirections = 4
)

// directionOffsets holds (dRow, dColumn) per Direction, in slot order.
var directionOffsets = [numDirections][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Directions returns all directions in slot order: North, East, South, West.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// Valid reports whether d is one of the four slot directions.
func (d Direction) Valid() bool { return d >= North && d < numDirections }

// Offset returns the (dRow, dColumn) step for d, (0, 0) when d is invalid.
func (d Direction) Offset() (int, int) {
	if !d.Valid() {
		return 0, 0
	}
	o := directionOffsets[d]
	return o[0], o[1]
}

// Opposite returns the direction pointing back. Invalid directions map to
// themselves.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % numDirections
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Kind discriminates ordinary lattice cells from the border sentinel.
type Kind uint8

const (
	// KindNormal is a cell at a real lattice location.
	KindNormal Kind = iota
	// KindBorder is the per-grid sentinel standing for "off the edge".
	KindBorder
)

func (k Kind) String() string {
	if k == KindBorder {
		return "border"
	}
	return "normal"
}

// ID is the comparable identity of a cell: two cells are equal iff their
// row, column and owning grid id all match.
type ID struct {
	Row    int
	Column int
	Grid   uuid.UUID
}

// WeightedEdge is a directed, weighted arc from Host to Neighbour.
// A null edge has a nil Neighbour and weight WeightInf.
type WeightedEdge struct {
	Host      *Cell
	Neighbour *Cell
	Weight    int64
}

// NullEdge returns the "no traversable edge" value for host.
func NullEdge(host *Cell) WeightedEdge {
	return WeightedEdge{Host: host, Neighbour: nil, Weight: WeightInf}
}

// IsNull reports whether e carries no neighbour.
func (e WeightedEdge) IsNull() bool {
	return e.Neighbour == nil
}
