package distance

import "github.com/katalvlaran/mazegrid/grid"

// ShortestPathFor returns the cells from cell back toward the root, cell
// first and the root excluded, by following PathLink back-pointers until the
// null terminator. Cells the analysis never reached, and nil arguments,
// yield an empty slice.
//
// For every reached c: len(ShortestPathFor(c, res)) == link(c).Steps().
func ShortestPathFor(cell *grid.Cell, res *Result) []*grid.Cell {
	if cell == nil || res == nil {
		return []*grid.Cell{}
	}
	l, ok := res.links[cell]
	if !ok {
		return []*grid.Cell{}
	}
	path := make([]*grid.Cell, 0, l.steps)
	for ; !l.Link().IsNull(); l = l.Link() {
		path = append(path, l.node)
	}
	return path
}
