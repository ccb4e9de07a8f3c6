package grid

// TravelState classifies an attempt to move from a cell through one of its
// neighbour slots.
type TravelState uint8

const (
	// Permitted means the move follows a carved, finite-weight link.
	Permitted TravelState = iota
	// DeniedBorder means the slot points off the lattice.
	DeniedBorder
	// DeniedMasked means the neighbour is masked.
	DeniedMasked
	// DeniedNotLinked means no passage is carved between the cells.
	DeniedNotLinked
	// DeniedWeight means the link carries WeightInf.
	DeniedWeight
)

// Accepted reports whether the move may be taken.
func (s TravelState) Accepted() bool { return s == Permitted }

func (s TravelState) String() string {
	switch s {
	case Permitted:
		return "permitted"
	case DeniedBorder:
		return "denied: border"
	case DeniedMasked:
		return "denied: masked"
	case DeniedNotLinked:
		return "denied: not linked"
	case DeniedWeight:
		return "denied: weight"
	}
	return "unknown"
}

// TraverseRequest is the answer to Cell.Request. Neighbour is nil when the
// slot points at the border.
type TraverseRequest struct {
	State     TravelState
	Neighbour *Cell
}

// Request reports whether a walker standing on c may step in direction d.
// Presentation layers use it to move a marker through a carved maze.
func (c *Cell) Request(d Direction) TraverseRequest {
	nb := c.Neighbour(d)
	switch {
	case c.kind == KindBorder || nb.IsBorder():
		return TraverseRequest{State: DeniedBorder}
	case nb.IsMasked():
		return TraverseRequest{State: DeniedMasked, Neighbour: nb}
	}
	w, ok := c.LinkWeight(nb)
	switch {
	case !ok:
		return TraverseRequest{State: DeniedNotLinked, Neighbour: nb}
	case w == WeightInf:
		return TraverseRequest{State: DeniedWeight, Neighbour: nb}
	}
	return TraverseRequest{State: Permitted, Neighbour: nb}
}
