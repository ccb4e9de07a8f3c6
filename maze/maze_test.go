package maze_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/rng"
)

// assertPerfect checks the spanning-tree property over the unmasked cells:
// Size()−1 passages, one linked region, and links only to traversable slots.
func assertPerfect(t *testing.T, g *grid.Grid) {
	t.Helper()
	assert.Equal(t, g.Size()-1, g.LinkCount(), "passage count")
	comps := g.LinkedComponents()
	require.Len(t, comps, 1, "linked regions")
	assert.Len(t, comps[0], g.Size())
	for _, c := range g.Cells() {
		trav := c.TraversableNeighbours()
		for _, nb := range c.LinkedNeighbours() {
			assert.Contains(t, trav, nb, "%v linked to non-traversable %v", c, nb)
			assert.True(t, nb.IsLinked(c), "link %v→%v is one-way", c, nb)
		}
	}
}

// linkSnapshot renders each cell's linked neighbours for equality checks.
func linkSnapshot(g *grid.Grid) []string {
	out := make([]string, 0, g.Size())
	for _, c := range g.Cells() {
		out = append(out, fmt.Sprintf("%v→%v", c, c.LinkedNeighbours()))
	}
	return out
}

//----------------------------------------------------------------------------//
// Perfect-maze property for every algorithm
//----------------------------------------------------------------------------//

func TestPlant_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{2, 2}, {3, 7}, {8, 5}, {12, 12}}
	for _, alg := range maze.Algorithms() {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				name := fmt.Sprintf("%v/%dx%d/seed%d", alg, sz[0], sz[1], seed)
				t.Run(name, func(t *testing.T) {
					g, err := grid.New(sz[0], sz[1])
					require.NoError(t, err)
					p, err := maze.New(alg, maze.WithSeed(seed))
					require.NoError(t, err)

					require.NoError(t, p.Plant(g))
					assert.Equal(t, sz[0]*sz[1]-1, g.LinkCount())
					assertPerfect(t, g)
				})
			}
		}
	}
}

// Replanting an already carved grid must yield a fresh perfect maze, for every
// pairing of first and second algorithm.
func TestPlant_Replant(t *testing.T) {
	for _, first := range maze.Algorithms() {
		for _, second := range maze.Algorithms() {
			t.Run(fmt.Sprintf("%v_then_%v", first, second), func(t *testing.T) {
				g, err := grid.New(4, 4)
				require.NoError(t, err)
				p1, err := maze.New(first, maze.WithSeed(1))
				require.NoError(t, err)
				require.NoError(t, p1.Plant(g))
				assertPerfect(t, g)

				// the cap turns a regression into a failure rather than a hang
				p2, err := maze.New(second, maze.WithSeed(2), maze.WithMaxSteps(1_000_000))
				require.NoError(t, err)
				require.NoError(t, p2.Plant(g))
				assertPerfect(t, g)
			})
		}
	}
}

func TestPlant_ReplantSamePlanter(t *testing.T) {
	for _, alg := range maze.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := grid.New(5, 6)
			require.NoError(t, err)
			p, err := maze.New(alg, maze.WithSeed(3), maze.WithMaxSteps(1_000_000))
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				require.NoError(t, p.Plant(g))
				assert.Equal(t, g.Size()-1, g.LinkCount())
				assertPerfect(t, g)
			}
		})
	}
}

// TestBinaryTree_TwoByTwo: a 2×2 grid after Binary Tree has 3 passages and is connected.
func TestBinaryTree_TwoByTwo(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, maze.NewBinaryTree(maze.WithSeed(99)).Plant(g))

	assert.Equal(t, 3, g.LinkCount())
	assert.Len(t, g.LinkedComponents(), 1)

	ne, _ := g.Cell(0, 1)
	for _, nb := range ne.LinkedNeighbours() {
		// the north-east corner never chooses; its links come from others
		assert.True(t, nb.Row() == 1 || nb.Column() == 0)
	}
}

// TestSidewinder_Orientation checks the canonical bottom-up direction: the
// northern row is a single corridor and no cell links south on its own turn.
func TestSidewinder_Orientation(t *testing.T) {
	g, err := grid.New(6, 9)
	require.NoError(t, err)
	require.NoError(t, maze.NewSidewinder(maze.WithSeed(5)).Plant(g))

	top, err := g.CellsForRow(0)
	require.NoError(t, err)
	for _, c := range top[:len(top)-1] {
		assert.True(t, c.IsLinked(c.Neighbour(grid.East)), "top row %v must link east", c)
	}
	for r := 1; r < g.Rows(); r++ {
		row, _ := g.CellsForRow(r)
		north := 0
		for _, c := range row {
			if c.IsLinked(c.Neighbour(grid.North)) {
				north++
			}
		}
		assert.GreaterOrEqual(t, north, 1, "row %d needs at least one northward passage", r)
	}
	assertPerfect(t, g)
}

// TestSidewinder_MaskedRunBreak: a masked cell ends the run to its west.
func TestSidewinder_MaskedRunBreak(t *testing.T) {
	g, err := grid.New(3, 5, grid.WithMask(grid.Loc(2, 2)))
	require.NoError(t, err)
	require.NoError(t, maze.NewSidewinder(maze.WithSeed(2)).Plant(g))

	west, _ := g.Cell(2, 1)
	masked, _ := g.Cell(2, 2)
	assert.False(t, west.IsLinked(masked))
	assert.Empty(t, masked.LinkedNeighbours())
}

//----------------------------------------------------------------------------//
// Masks and random walks
//----------------------------------------------------------------------------//

// TestRandomWalk_Masked: the walkers span exactly the unmasked cells.
func TestRandomWalk_Masked(t *testing.T) {
	mask := grid.WithMask(grid.Loc(1, 1), grid.Loc(1, 2), grid.Loc(3, 3))
	for _, p := range []maze.Planter{
		maze.NewAldousBroder(maze.WithSeed(8)),
		maze.NewWilson(maze.WithSeed(8)),
	} {
		t.Run(fmt.Sprint(p), func(t *testing.T) {
			g, err := grid.New(5, 5, mask)
			require.NoError(t, err)
			require.NoError(t, p.Plant(g))
			assertPerfect(t, g)
			for _, loc := range g.MaskedLocations() {
				c, _ := g.CellAt(loc)
				assert.Empty(t, c.LinkedNeighbours(), "masked %v must stay unlinked", loc)
			}
		})
	}
}

func TestRandomWalk_Disconnected(t *testing.T) {
	for _, p := range []maze.Planter{maze.NewAldousBroder(), maze.NewWilson()} {
		g, err := grid.New(3, 3, grid.WithMask(grid.Loc(0, 1), grid.Loc(1, 1), grid.Loc(2, 1)))
		require.NoError(t, err)
		assert.ErrorIs(t, p.Plant(g), maze.ErrDisconnected, "%v", p)
		assert.Equal(t, 0, g.LinkCount(), "%v must not carve a partial maze", p)
	}
}

func TestRandomWalk_StepLimit(t *testing.T) {
	for _, p := range []maze.Planter{
		maze.NewAldousBroder(maze.WithMaxSteps(3)),
		maze.NewWilson(maze.WithMaxSteps(3)),
	} {
		g, err := grid.New(20, 20)
		require.NoError(t, err)
		assert.ErrorIs(t, p.Plant(g), maze.ErrStepLimit, "%v", p)
	}
}

func TestWilson_EmptyGrid(t *testing.T) {
	g, err := grid.New(2, 2, grid.WithMask(grid.Loc(0, 0), grid.Loc(0, 1), grid.Loc(1, 0), grid.Loc(1, 1)))
	require.NoError(t, err)
	assert.ErrorIs(t, maze.NewWilson().Plant(g), grid.ErrEmptyGrid)
	assert.ErrorIs(t, maze.NewAldousBroder().Plant(g), grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Contract
//----------------------------------------------------------------------------//

func TestPlant_NilGrid(t *testing.T) {
	for _, alg := range maze.Algorithms() {
		p, err := maze.New(alg)
		require.NoError(t, err)
		assert.ErrorIs(t, p.Plant(nil), maze.ErrNilGrid, "%v", alg)
	}
}

func TestPlant_OptionViolation(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	err = maze.NewAldousBroder(maze.WithMaxSteps(-1)).Plant(g)
	assert.ErrorIs(t, err, maze.ErrOptionViolation)
}

// TestPlant_Deterministic: equal seeds carve equal mazes; the wiring and
// mask are never touched.
func TestPlant_Deterministic(t *testing.T) {
	for _, alg := range maze.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			a, _ := grid.New(7, 6, grid.WithMask(grid.Loc(6, 5)))
			b, _ := grid.New(7, 6, grid.WithMask(grid.Loc(6, 5)))
			pa, _ := maze.New(alg, maze.WithRand(rng.New(21)))
			pb, _ := maze.New(alg, maze.WithRand(rng.New(21)))
			require.NoError(t, pa.Plant(a))
			require.NoError(t, pb.Plant(b))

			assert.Equal(t, linkSnapshot(a), linkSnapshot(b))
			assert.Equal(t, []grid.Location{grid.Loc(6, 5)}, a.MaskedLocations())
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]maze.Algorithm{
		"aldous-broder": maze.AlgAldousBroder,
		"AldousBroder":  maze.AlgAldousBroder,
		"Wilson":        maze.AlgWilson,
		"side_winder":   -1,
		"sidewinder":    maze.AlgSidewinder,
		"binary tree":   maze.AlgBinaryTree,
		"binary_tree":   maze.AlgBinaryTree,
	}
	for in, want := range cases {
		got, err := maze.ParseAlgorithm(in)
		if want < 0 {
			assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm, in)
			continue
		}
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := maze.New(maze.Algorithm(42))
	assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(42)", maze.Algorithm(42).String())
}
