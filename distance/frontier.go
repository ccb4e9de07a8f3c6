package distance

import "github.com/katalvlaran/mazegrid/grid"

// Frontier labels cells by breadth-first levels over carved links, treating
// every link as weight 1.
type Frontier struct {
	opts Options
}

// NewFrontier returns an unweighted frontier analyser.
func NewFrontier(opts ...Option) *Frontier {
	return &Frontier{opts: newOptions(opts)}
}

// Analyse expands level by level from root. A cell keeps the first label it
// receives, so recorded steps equal the link distance to root.
//
// Returns ErrNilRoot or ErrBorderRoot for invalid roots.
func (f *Frontier) Analyse(root *grid.Cell) (*Result, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	links := map[*grid.Cell]*PathLink{root: rootLink(root)}
	frontier := []*grid.Cell{root}
	levels := 0
	for len(frontier) > 0 {
		next := make([]*grid.Cell, 0, len(frontier))
		for _, cell := range frontier {
			parent := links[cell]
			for _, nb := range cell.LinkedNeighbours() {
				if _, seen := links[nb]; seen {
					continue
				}
				links[nb] = parent.extend(nb, grid.WeightSimple)
				next = append(next, nb)
			}
		}
		frontier = next
		levels++
	}

	f.opts.Logger.Debug("frontier analysed", "root", root, "reached", len(links), "levels", levels)
	return &Result{root: root, links: links}, nil
}
