package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/rng"
)

// AldousBroder carves a uniform spanning tree by random walk: step to a
// random traversable neighbour, and link to it when it has no links yet.
type AldousBroder struct {
	opts Options
}

// NewAldousBroder returns an Aldous-Broder planter.
func NewAldousBroder(opts ...Option) *AldousBroder {
	return &AldousBroder{opts: newOptions(opts)}
}

func (*AldousBroder) String() string { return AlgAldousBroder.String() }

// Plant walks g until every unmasked cell has been reached.
//
// Returns ErrNilGrid, ErrOptionViolation, grid.ErrEmptyGrid (wrapped),
// ErrDisconnected if some unmasked cell is unreachable, or ErrStepLimit.
func (a *AldousBroder) Plant(g *grid.Grid) error {
	log, err := a.opts.begin(g)
	if err != nil {
		return err
	}
	if !g.IsConnected() {
		return ErrDisconnected
	}

	src := a.opts.Rand
	cell, err := g.RandomCell(src)
	if err != nil {
		return fmt.Errorf("maze: aldous-broder start: %w", err)
	}

	// The start cell counts as visited.
	unvisited := g.Size() - 1
	steps := stepper{max: a.opts.MaxSteps}
	for unvisited > 0 {
		if err := steps.step(); err != nil {
			return err
		}
		next, err := rng.Pick(src, cell.TraversableNeighbours())
		if err != nil {
			return fmt.Errorf("%w: %v has no traversable neighbour", ErrDisconnected, cell)
		}
		if len(next.LinkedNeighbours()) == 0 {
			if _, err := cell.LinkSimple(next); err != nil {
				return err
			}
			unvisited--
		}
		cell = next
	}

	log.Debug("maze planted", "algorithm", AlgAldousBroder, "steps", steps.taken, "cells", g.Size())
	return nil
}
