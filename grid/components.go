package grid

// Components finds the connected regions of linkable cells, moving between
// traversable neighbour slots (not links). Random-walk generators need a
// single region to terminate.
// Regions and their cells are returned in row-major discovery order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]*Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]*Cell

	for i0, start := range g.cells {
		if seen[i0] || !IsLinkable(start) {
			continue
		}
		// BFS to collect component
		queue := []*Cell{start}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, idx := range u.neighbours {
				if idx == borderIndex || seen[idx] || !IsLinkable(g.cells[idx]) {
					continue
				}
				seen[idx] = true
				queue = append(queue, g.cells[idx])
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// IsConnected reports whether all unmasked cells form at most one region.
func (g *Grid) IsConnected() bool {
	return len(g.Components()) <= 1
}

// LinkedComponents is Components over carved links instead of neighbour
// slots. A perfect maze on a connected grid has exactly one.
func (g *Grid) LinkedComponents() [][]*Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]*Cell

	for i0, start := range g.cells {
		if seen[i0] || !IsLinkable(start) {
			continue
		}
		queue := []*Cell{start}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range queue[qi].LinkedNeighbours() {
				j := g.index(nb.loc.Row, nb.loc.Column)
				if seen[j] {
					continue
				}
				seen[j] = true
				queue = append(queue, nb)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
