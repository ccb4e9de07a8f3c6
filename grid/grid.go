package grid

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/mazegrid/rng"
)

// Grid is a rectangular lattice of cells. Its shape and neighbour wiring are
// fixed once New returns; only links and mask membership change afterwards.
type Grid struct {
	id      uuid.UUID
	rows    int
	columns int
	cells   []*Cell // row-major
	border  *Cell
	mask    map[Location]struct{}
	logger  *log.Logger
}

// New builds a rows×columns grid. Dimensions are clamped into
// [MinLen, MaxLen] with a logged warning. The lattice is allocated, the
// initial mask applied and every neighbour slot wired before New returns.
//
// Returns ErrOutOfRange if a WithMask location lies outside the clamped lattice.
// Complexity: O(R×C) time and memory.
func New(rows, columns int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		id:      uuid.New(),
		rows:    clampDimension(o.Logger, "rows", rows),
		columns: clampDimension(o.Logger, "columns", columns),
		mask:    make(map[Location]struct{}, len(o.Mask)),
		logger:  o.Logger,
	}
	for _, loc := range o.Mask {
		if err := g.checkLocation(loc.Row, loc.Column); err != nil {
			return nil, fmt.Errorf("grid: initial mask: %w", err)
		}
		g.mask[loc] = struct{}{}
	}
	g.prepare()

	return g, nil
}

// clampDimension bounds n into [MinLen, MaxLen], warning when it had to.
func clampDimension(l *log.Logger, name string, n int) int {
	c := Clamp(n, MinLen, MaxLen)
	if c != n {
		l.Warn("dimension clamped", "name", name, "requested", n, "used", c)
	}
	return c
}

// prepare allocates the lattice and wires neighbour slots. Off-lattice slots
// keep borderIndex and so resolve to the shared border sentinel.
func (g *Grid) prepare() {
	g.border = newBorderCell(g)
	g.cells = make([]*Cell, g.rows*g.columns)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			loc := Loc(r, c)
			_, masked := g.mask[loc]
			g.cells[g.index(r, c)] = newCell(g, loc, masked)
		}
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			cell := g.cells[g.index(r, c)]
			for d, off := range directionOffsets {
				nr, nc := r+off[0], c+off[1]
				if g.InBounds(nr, nc) {
					cell.neighbours[d] = g.index(nr, nc)
				}
			}
		}
	}
}

// resolve turns a neighbour slot into a cell.
func (g *Grid) resolve(idx int) *Cell {
	if idx == borderIndex {
		return g.border
	}
	return g.cells[idx]
}

// ID returns the grid's unique id, stamped into every cell it owns.
func (g *Grid) ID() uuid.UUID { return g.id }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Size returns the number of unmasked cells: Rows*Columns − MaskedCount.
func (g *Grid) Size() int { return g.rows*g.columns - len(g.mask) }

// Border returns the grid's border sentinel.
func (g *Grid) Border() *Cell { return g.border }

// Logger returns the logger the grid reports diagnostics to.
func (g *Grid) Logger() *log.Logger { return g.logger }

// Cell returns the cell at (row, column), masked or not.
func (g *Grid) Cell(row, column int) (*Cell, error) {
	if err := g.checkLocation(row, column); err != nil {
		return nil, err
	}
	return g.cells[g.index(row, column)], nil
}

// CellAt is Cell addressed by a Location.
func (g *Grid) CellAt(loc Location) (*Cell, error) {
	return g.Cell(loc.Row, loc.Column)
}

// Cells returns every unmasked cell in row-major order. The result is
// recomputed from the mask on each call.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, g.Size())
	for _, c := range g.cells {
		if _, masked := g.mask[c.loc]; !masked {
			out = append(out, c)
		}
	}
	return out
}

// CellsForRow returns the unmasked cells of row, west to east.
func (g *Grid) CellsForRow(row int) ([]*Cell, error) {
	if err := g.checkRow(row); err != nil {
		return nil, err
	}
	out := make([]*Cell, 0, g.columns)
	for c := 0; c < g.columns; c++ {
		cell := g.cells[g.index(row, c)]
		if _, masked := g.mask[cell.loc]; !masked {
			out = append(out, cell)
		}
	}
	return out, nil
}

// LatticeRow returns every cell of row, masked ones included, west to east.
// Out-of-range rows yield nil.
func (g *Grid) LatticeRow(row int) []*Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	start := row * g.columns
	return append([]*Cell(nil), g.cells[start:start+g.columns]...)
}

// RandomCell picks a uniformly random unmasked cell.
// Returns ErrEmptyGrid when every cell is masked.
func (g *Grid) RandomCell(src rng.Source) (*Cell, error) {
	cells := g.Cells()
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	return rng.Pick(src, cells)
}

// LinkCount returns the number of undirected passages: unordered pairs
// {a, b} where a links b or b links a.
func (g *Grid) LinkCount() int {
	n := 0
	for i, c := range g.cells {
		for _, nb := range c.LinkedNeighbours() {
			j := g.index(nb.loc.Row, nb.loc.Column)
			if j > i || !nb.IsLinked(c) {
				n++
			}
		}
	}
	return n
}

// ClearLinks removes every link in the grid. Wiring and mask are untouched.
func (g *Grid) ClearLinks() {
	for _, c := range g.cells {
		c.clearLinks()
	}
}
