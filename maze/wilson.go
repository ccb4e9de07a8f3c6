package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/rng"
)

// Wilson carves a uniform spanning tree with loop-erased random walks: each
// walk starts at an unvisited cell, erases any loop it closes, and is
// grafted onto the tree once it touches it.
type Wilson struct {
	opts Options
}

// NewWilson returns a Wilson planter.
func NewWilson(opts ...Option) *Wilson {
	return &Wilson{opts: newOptions(opts)}
}

func (*Wilson) String() string { return AlgWilson.String() }

// Plant carves g. Errors match AldousBroder.Plant.
func (w *Wilson) Plant(g *grid.Grid) error {
	log, err := w.opts.begin(g)
	if err != nil {
		return err
	}
	cells := g.Cells()
	if len(cells) == 0 {
		return fmt.Errorf("maze: wilson: %w", grid.ErrEmptyGrid)
	}
	if !g.IsConnected() {
		return ErrDisconnected
	}

	src := w.opts.Rand
	unvisited := newCellSet(cells)
	first, err := rng.Pick(src, unvisited.items)
	if err != nil {
		return err
	}
	unvisited.remove(first)

	steps := stepper{max: w.opts.MaxSteps}
	walks := 0
	for unvisited.len() > 0 {
		start, err := rng.Pick(src, unvisited.items)
		if err != nil {
			return err
		}
		path, err := w.walk(start, unvisited, &steps)
		if err != nil {
			return err
		}
		// path ends on a tree cell; graft every pair onto the tree.
		for i := 0; i < len(path)-1; i++ {
			if _, err := path[i].LinkSimple(path[i+1]); err != nil {
				return err
			}
			unvisited.remove(path[i])
		}
		walks++
	}

	log.Debug("maze planted", "algorithm", AlgWilson, "walks", walks, "steps", steps.taken)
	return nil
}

// walk performs one loop-erased random walk from start until it reaches a
// cell outside unvisited. The returned path starts at start and ends on
// that tree cell; every cell in it appears once.
func (w *Wilson) walk(start *grid.Cell, unvisited *cellSet, steps *stepper) ([]*grid.Cell, error) {
	path := []*grid.Cell{start}
	pos := map[*grid.Cell]int{start: 0}

	for cur := start; unvisited.has(cur); {
		if err := steps.step(); err != nil {
			return nil, err
		}
		next, err := rng.Pick(w.opts.Rand, cur.TraversableNeighbours())
		if err != nil {
			return nil, fmt.Errorf("%w: %v has no traversable neighbour", ErrDisconnected, cur)
		}
		if i, seen := pos[next]; seen {
			// erase the loop back to next's first occurrence
			for _, c := range path[i+1:] {
				delete(pos, c)
			}
			path = path[:i+1]
		} else {
			pos[next] = len(path)
			path = append(path, next)
		}
		cur = next
	}
	return path, nil
}

// cellSet is an ordered set with O(1) membership, removal and random access.
type cellSet struct {
	items []*grid.Cell
	index map[*grid.Cell]int
}

func newCellSet(cells []*grid.Cell) *cellSet {
	s := &cellSet{
		items: append([]*grid.Cell(nil), cells...),
		index: make(map[*grid.Cell]int, len(cells)),
	}
	for i, c := range s.items {
		s.index[c] = i
	}
	return s
}

func (s *cellSet) len() int { return len(s.items) }

func (s *cellSet) has(c *grid.Cell) bool {
	_, ok := s.index[c]
	return ok
}

// remove swaps c with the last item and truncates.
func (s *cellSet) remove(c *grid.Cell) {
	i, ok := s.index[c]
	if !ok {
		return
	}
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.index[s.items[i]] = i
	s.items = s.items[:last]
	delete(s.index, c)
}
