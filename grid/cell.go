// cell.go: the Cell node: identity, mask/border state, fixed neighbour
// slots and the weighted link sub-map.
//
// Neighbour slots are lattice indexes resolved through the owning Grid;
// borderIndex stands for the grid's border sentinel. Cells never hold
// pointers to each other, so the grid alone owns the lattice.

package grid

import "fmt"

// borderIndex marks a neighbour slot that points off the lattice.
const borderIndex = -1

// Cell is a node of the grid graph.
type Cell struct {
	loc        Location
	kind       Kind
	masked     bool
	owner      *Grid
	neighbours [numDirections]int
	links      map[Location]int64
}

// newCell allocates a normal cell with every slot pointing at the border.
func newCell(owner *Grid, loc Location, masked bool) *Cell {
	c := &Cell{
		loc:    loc,
		kind:   KindNormal,
		masked: masked,
		owner:  owner,
		links:  make(map[Location]int64, numDirections),
	}
	for i := range c.neighbours {
		c.neighbours[i] = borderIndex
	}
	return c
}

// newBorderCell allocates the per-grid sentinel. It is always masked and
// has no link map.
func newBorderCell(owner *Grid) *Cell {
	c := &Cell{
		loc:    borderLocation,
		kind:   KindBorder,
		masked: true,
		owner:  owner,
	}
	for i := range c.neighbours {
		c.neighbours[i] = borderIndex
	}
	return c
}

// Row returns the cell row, or -1 for the border sentinel.
func (c *Cell) Row() int { return c.loc.Row }

// Column returns the cell column, or -1 for the border sentinel.
func (c *Cell) Column() int { return c.loc.Column }

// Location returns the (row, column) pair.
func (c *Cell) Location() Location { return c.loc }

// Kind returns the cell discriminant.
func (c *Cell) Kind() Kind { return c.kind }

// IsBorder reports whether c is the border sentinel.
func (c *Cell) IsBorder() bool { return c.kind == KindBorder }

// IsMasked reports whether c is excluded from traversal.
func (c *Cell) IsMasked() bool { return c.masked }

// IsLinkable reports whether c may take part in a link.
func (c *Cell) IsLinkable() bool { return IsLinkable(c) }

// IsLinkable reports !c.IsBorder() && !c.IsMasked(). A nil cell is never linkable.
func IsLinkable(c *Cell) bool {
	return c != nil && c.kind != KindBorder && !c.masked
}

// ID returns the cell's identity: row, column and owning grid id.
func (c *Cell) ID() ID {
	return ID{Row: c.loc.Row, Column: c.loc.Column, Grid: c.owner.id}
}

// Equal reports whether c and other share row, column and grid id.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID() == other.ID()
}

func (c *Cell) String() string {
	if c.kind == KindBorder {
		return "border"
	}
	return c.loc.String()
}

// Neighbour returns the cell in slot d. Off-lattice slots and invalid
// directions yield the border sentinel; the sentinel's own slots point back
// at itself.
func (c *Cell) Neighbour(d Direction) *Cell {
	if !d.Valid() {
		return c.owner.border
	}
	return c.owner.resolve(c.neighbours[d])
}

// Neighbours returns the four fixed adjacency slots in slot order, border
// and masked cells included. The border sentinel has no neighbours.
func (c *Cell) Neighbours() []*Cell {
	if c.kind == KindBorder {
		return nil
	}
	out := make([]*Cell, 0, numDirections)
	for _, idx := range c.neighbours {
		out = append(out, c.owner.resolve(idx))
	}
	return out
}

// TraversableNeighbours returns the neighbours that are linkable.
func (c *Cell) TraversableNeighbours() []*Cell {
	if c.kind == KindBorder {
		return nil
	}
	out := make([]*Cell, 0, numDirections)
	for _, idx := range c.neighbours {
		if nb := c.owner.resolve(idx); IsLinkable(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// LinkedNeighbours returns the cells carved into the maze from c, in slot
// order so that iteration is deterministic.
func (c *Cell) LinkedNeighbours() []*Cell {
	if len(c.links) == 0 {
		return nil
	}
	out := make([]*Cell, 0, len(c.links))
	for _, idx := range c.neighbours {
		if idx == borderIndex {
			continue
		}
		nb := c.owner.cells[idx]
		if _, ok := c.links[nb.loc]; ok {
			out = append(out, nb)
		}
	}
	return out
}

// IsNeighbour reports whether other occupies one of c's slots.
func (c *Cell) IsNeighbour(other *Cell) bool {
	if other == nil || other.owner != c.owner || c.kind == KindBorder {
		return false
	}
	for _, idx := range c.neighbours {
		if c.owner.resolve(idx) == other {
			return true
		}
	}
	return false
}

// directionOf returns the slot holding other.
func (c *Cell) directionOf(other *Cell) (Direction, bool) {
	for d, idx := range c.neighbours {
		if c.owner.resolve(idx) == other {
			return Direction(d), true
		}
	}
	return 0, false
}

// IsLinked reports whether c has a link entry for other.
func (c *Cell) IsLinked(other *Cell) bool {
	if other == nil || other.owner != c.owner || c.links == nil {
		return false
	}
	_, ok := c.links[other.loc]
	return ok
}

// LinkSimple links c and other in both directions with WeightSimple.
func (c *Cell) LinkSimple(other *Cell) (bool, error) {
	return c.Link(other, true, WeightSimple)
}

// Link carves a passage from c to other with the given weight. When bidi is
// true the mirrored link other→c is recorded too.
//
// Hard failures: nil other (ErrNilCell), other == c (ErrSelfLink), either
// side the border sentinel (ErrBorderCell).
// Soft failures return (false, nil): already linked, not a neighbour, or a
// masked endpoint.
func (c *Cell) Link(other *Cell, bidi bool, weight int64) (bool, error) {
	if err := c.checkPartner(other, "link"); err != nil {
		return false, err
	}
	log := c.owner.logger
	switch {
	case c.IsLinked(other):
		log.Debug("link ignored", "reason", "already linked", "cell", c, "other", other)
		return false, nil
	case !c.IsNeighbour(other):
		log.Debug("link ignored", "reason", "not a neighbour", "cell", c, "other", other)
		return false, nil
	case c.masked || other.masked:
		log.Debug("link ignored", "reason", "masked endpoint", "cell", c, "other", other)
		return false, nil
	}

	c.links[other.loc] = weight
	log.Debug("linked", "cell", c, "other", other, "weight", weight)
	if bidi {
		if _, err := other.Link(c, false, weight); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Unlink removes the passage from c to other, and other→c when bidi is true.
// Validation mirrors Link; a missing link is a soft failure.
func (c *Cell) Unlink(other *Cell, bidi bool) (bool, error) {
	if err := c.checkPartner(other, "unlink"); err != nil {
		return false, err
	}
	log := c.owner.logger
	switch {
	case !c.IsLinked(other):
		log.Debug("unlink ignored", "reason", "not linked", "cell", c, "other", other)
		return false, nil
	case !c.IsNeighbour(other):
		log.Debug("unlink ignored", "reason", "not a neighbour", "cell", c, "other", other)
		return false, nil
	}

	delete(c.links, other.loc)
	log.Debug("unlinked", "cell", c, "other", other)
	if bidi {
		if _, err := other.Unlink(c, false); err != nil {
			return true, err
		}
	}
	return true, nil
}

// checkPartner applies the hard preconditions shared by Link and Unlink.
func (c *Cell) checkPartner(other *Cell, op string) error {
	if other == nil {
		return fmt.Errorf("%s %v: %w", op, c, ErrNilCell)
	}
	if other == c {
		return fmt.Errorf("%s %v: %w", op, c, ErrSelfLink)
	}
	if c.kind == KindBorder || other.kind == KindBorder {
		return fmt.Errorf("%s %v→%v: %w", op, c, other, ErrBorderCell)
	}
	return nil
}

// LinkWeight returns the weight recorded for the link c→other.
func (c *Cell) LinkWeight(other *Cell) (int64, bool) {
	if !c.IsLinked(other) {
		return 0, false
	}
	return c.links[other.loc], true
}

// SetLinkWeight changes the weight of the existing link c→other.
func (c *Cell) SetLinkWeight(other *Cell, weight int64) error {
	if other == nil {
		return ErrNilCell
	}
	if c.kind == KindBorder || other.kind == KindBorder {
		return fmt.Errorf("set weight %v→%v: %w", c, other, ErrBorderCell)
	}
	if !c.IsLinked(other) {
		return fmt.Errorf("set weight %v→%v: %w", c, other, ErrNotLinked)
	}
	c.links[other.loc] = weight
	return nil
}

// Edges returns one WeightedEdge per link of c, in slot order.
func (c *Cell) Edges() []WeightedEdge {
	linked := c.LinkedNeighbours()
	out := make([]WeightedEdge, 0, len(linked))
	for _, nb := range linked {
		out = append(out, WeightedEdge{Host: c, Neighbour: nb, Weight: c.links[nb.loc]})
	}
	return out
}

// Edge returns the link in slot d, or NullEdge(c) when there is none.
func (c *Cell) Edge(d Direction) WeightedEdge {
	nb := c.Neighbour(d)
	if w, ok := c.LinkWeight(nb); ok {
		return WeightedEdge{Host: c, Neighbour: nb, Weight: w}
	}
	return NullEdge(c)
}

// clearLinks drops every link entry of c.
func (c *Cell) clearLinks() {
	if c.kind == KindBorder {
		return
	}
	for k := range c.links {
		delete(c.links, k)
	}
}
