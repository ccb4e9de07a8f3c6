package maze

import (
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/rng"
)

// BinaryTree links every unmasked cell to a random linkable neighbour among
// {north, east}. The north-east corner keeps no outgoing choice.
type BinaryTree struct {
	opts Options
}

// NewBinaryTree returns a Binary Tree planter.
func NewBinaryTree(opts ...Option) *BinaryTree {
	return &BinaryTree{opts: newOptions(opts)}
}

func (*BinaryTree) String() string { return AlgBinaryTree.String() }

// Plant carves g in a single pass over g.Cells().
func (b *BinaryTree) Plant(g *grid.Grid) error {
	log, err := b.opts.begin(g)
	if err != nil {
		return err
	}
	src := b.opts.Rand

	candidates := make([]*grid.Cell, 0, 2)
	for _, cell := range g.Cells() {
		candidates = candidates[:0]
		// g.Cells() already skips masked cells; only the neighbours need checking
		if n := cell.Neighbour(grid.North); n.IsLinkable() {
			candidates = append(candidates, n)
		}
		if e := cell.Neighbour(grid.East); e.IsLinkable() {
			candidates = append(candidates, e)
		}
		if len(candidates) == 0 {
			continue
		}
		nb, err := rng.Pick(src, candidates)
		if err != nil {
			return err
		}
		if _, err := cell.LinkSimple(nb); err != nil {
			return err
		}
	}

	log.Debug("maze planted", "algorithm", AlgBinaryTree, "passages", g.LinkCount())
	return nil
}
