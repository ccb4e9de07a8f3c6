package maze

import (
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/rng"
)

// Sidewinder processes rows from the bottom (south) row up to row 0. Within
// a row it grows a run eastward; when the run closes, one random run cell is
// linked north.
//
// A run closes at the eastern border, at a masked east neighbour, or (below
// the northern row) on a fair coin flip. Row 0 therefore becomes one
// east-west corridor per unmasked stretch.
type Sidewinder struct {
	opts Options
}

// NewSidewinder returns a Sidewinder planter.
func NewSidewinder(opts ...Option) *Sidewinder {
	return &Sidewinder{opts: newOptions(opts)}
}

func (*Sidewinder) String() string { return AlgSidewinder.String() }

// Plant carves g in a single pass.
func (s *Sidewinder) Plant(g *grid.Grid) error {
	log, err := s.opts.begin(g)
	if err != nil {
		return err
	}
	src := s.opts.Rand

	run := make([]*grid.Cell, 0, g.Columns())
	for r := g.Rows() - 1; r >= 0; r-- {
		row, err := g.CellsForRow(r)
		if err != nil {
			return err
		}
		run = run[:0]
		for _, cell := range row {
			run = append(run, cell)

			east := cell.Neighbour(grid.East)
			atEast := !east.IsLinkable()
			atNorth := cell.Neighbour(grid.North).IsBorder()
			if atEast || (!atNorth && rng.Coin(src)) {
				if err := s.closeRun(run); err != nil {
					return err
				}
				run = run[:0]
				continue
			}
			if _, err := cell.LinkSimple(east); err != nil {
				return err
			}
		}
	}

	log.Debug("maze planted", "algorithm", AlgSidewinder, "passages", g.LinkCount())
	return nil
}

// closeRun links one random run cell to its north neighbour, choosing only
// among cells whose north neighbour is linkable.
func (s *Sidewinder) closeRun(run []*grid.Cell) error {
	candidates := make([]*grid.Cell, 0, len(run))
	for _, c := range run {
		if c.Neighbour(grid.North).IsLinkable() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	c, err := rng.Pick(s.opts.Rand, candidates)
	if err != nil {
		return err
	}
	_, err = c.LinkSimple(c.Neighbour(grid.North))
	return err
}
