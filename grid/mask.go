package grid

import "sort"

// Mask excludes (row, column) from traversal. Returns true if the mask changed.
// The stored cell flag follows the mask so IsLinkable stays accurate.
//
// Existing links of the cell are kept: afterwards LinkedNeighbours of its
// neighbours may include a cell that TraversableNeighbours omits, and the
// distance analysers, which follow links, still walk into it. Unlink first,
// or call ClearLinks and replant, when masking a carved grid.
func (g *Grid) Mask(row, column int) (bool, error) {
	if err := g.checkLocation(row, column); err != nil {
		return false, err
	}
	loc := Loc(row, column)
	if _, ok := g.mask[loc]; ok {
		return false, nil
	}
	g.mask[loc] = struct{}{}
	g.cells[g.index(row, column)].masked = true
	return true, nil
}

// Unmask returns (row, column) to traversal. Returns true if the mask changed.
func (g *Grid) Unmask(row, column int) (bool, error) {
	if err := g.checkLocation(row, column); err != nil {
		return false, err
	}
	loc := Loc(row, column)
	if _, ok := g.mask[loc]; !ok {
		return false, nil
	}
	delete(g.mask, loc)
	g.cells[g.index(row, column)].masked = false
	return true, nil
}

// ToggleMask flips the mask state of (row, column) and returns the new state.
func (g *Grid) ToggleMask(row, column int) (bool, error) {
	masked, err := g.IsMasked(row, column)
	if err != nil {
		return false, err
	}
	if masked {
		_, err = g.Unmask(row, column)
		return false, err
	}
	_, err = g.Mask(row, column)
	return true, err
}

// IsMasked reports whether (row, column) is in the mask.
func (g *Grid) IsMasked(row, column int) (bool, error) {
	if err := g.checkLocation(row, column); err != nil {
		return false, err
	}
	_, ok := g.mask[Loc(row, column)]
	return ok, nil
}

// MaskedCount returns the number of masked locations.
func (g *Grid) MaskedCount() int { return len(g.mask) }

// MaskedLocations returns the mask in row-major order.
func (g *Grid) MaskedLocations() []Location {
	out := make([]Location, 0, len(g.mask))
	for loc := range g.mask {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}
