package cli

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegrid/distance"
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/internal/config"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/render"
)

const defaultScale = 16

// plantOpts holds the flags of the plant command that are not config keys.
type plantOpts struct {
	rows      int
	columns   int
	algorithm string
	seed      int64
	maxSteps  int
	mask      []string
	solve     bool
	analyser  string
	color     bool
	distances bool
	pngPath   string
	scale     int
}

// newPlantCmd creates the plant command. Config-backed flags override the
// resolved configuration only when set explicitly.
func newPlantCmd(root *rootOpts) *cobra.Command {
	opts := plantOpts{scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Generate a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			applyFlags(cmd, &cfg, &opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runPlant(cmd.Context(), cmd.OutOrStdout(), cfg, &opts)
		},
	}

	def := config.Default()
	cmd.Flags().IntVarP(&opts.rows, "rows", "r", def.Rows, "number of rows")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", def.Columns, "number of columns")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", def.Algorithm, "algorithm: "+algorithmList())
	cmd.Flags().Int64Var(&opts.seed, "seed", def.Seed, "random seed (0 selects the default seed)")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", def.MaxSteps, "random-walk step limit (0 = unbounded)")
	cmd.Flags().StringArrayVarP(&opts.mask, "mask", "m", nil, "masked cell as row,column (repeatable)")
	cmd.Flags().BoolVar(&opts.solve, "solve", def.Solve, "mark the path to the farthest cell")
	cmd.Flags().StringVar(&opts.analyser, "analyser", def.Analyser, "distance analyser: frontier, dijkstra")
	cmd.Flags().BoolVar(&opts.color, "color", def.Color, "colorize the output")
	cmd.Flags().BoolVar(&opts.distances, "distances", false, "print distance digits in reached cells")
	cmd.Flags().StringVarP(&opts.pngPath, "png", "o", "", "also write a PNG image to this path")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "PNG pixels per cell")

	return cmd
}

func algorithmList() string {
	names := make([]string, 0, len(maze.Algorithms()))
	for _, alg := range maze.Algorithms() {
		names = append(names, alg.String())
	}
	return strings.Join(names, ", ")
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *plantOpts) {
	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Rows = opts.rows
	}
	if f.Changed("columns") {
		cfg.Columns = opts.columns
	}
	if f.Changed("algorithm") {
		cfg.Algorithm = opts.algorithm
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps = opts.maxSteps
	}
	if f.Changed("mask") {
		cfg.Mask = opts.mask
	}
	if f.Changed("solve") {
		cfg.Solve = opts.solve
	}
	if f.Changed("analyser") {
		cfg.Analyser = opts.analyser
	}
	if f.Changed("color") {
		cfg.Color = opts.color
	}
}

func runPlant(ctx context.Context, out io.Writer, cfg config.Config, opts *plantOpts) error {
	logger := loggerFromContext(ctx)

	locs, err := cfg.MaskLocations()
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.Rows, cfg.Columns, grid.WithLogger(logger), grid.WithMask(locs...))
	if err != nil {
		return err
	}

	alg := cfg.AlgorithmValue()
	planter, err := maze.New(alg, maze.WithSeed(cfg.Seed), maze.WithLogger(logger), maze.WithMaxSteps(cfg.MaxSteps))
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	if err := planter.Plant(g); err != nil {
		return fmt.Errorf("plant %s: %w", alg, err)
	}
	prog.done("Planted maze", "algorithm", alg, "size", fmt.Sprintf("%dx%d", g.Rows(), g.Columns()), "links", g.LinkCount())

	if err := ctx.Err(); err != nil {
		return err
	}

	var renderOpts []render.Option
	renderOpts = append(renderOpts, render.WithColor(cfg.Color))
	if cfg.Solve || opts.distances {
		res, path, err := solve(g, cfg.Analyser)
		if err != nil {
			return err
		}
		far := res.Farthest()
		logger.Info("Solved", "analyser", cfg.Analyser, "root", res.Root(), "farthest", far.Node(),
			"weight", far.Weight(), "steps", far.Steps(), "reached", res.Len())
		if opts.distances {
			renderOpts = append(renderOpts, render.WithDistances(res))
		} else {
			renderOpts = append(renderOpts, render.WithResult(res))
		}
		if cfg.Solve {
			renderOpts = append(renderOpts, render.WithPath(path))
		}
	}

	if _, err := io.WriteString(out, render.ASCII(g, renderOpts...)); err != nil {
		return err
	}

	if opts.pngPath != "" {
		if err := writePNG(g, opts.pngPath, opts.scale, renderOpts); err != nil {
			return err
		}
		logger.Info("Wrote image", "path", opts.pngPath)
	}
	return nil
}

// solve analyses from the first unmasked cell and returns the path to the
// farthest reached cell.
func solve(g *grid.Grid, analyser string) (*distance.Result, []*grid.Cell, error) {
	cells := g.Cells()
	if len(cells) == 0 {
		return nil, nil, grid.ErrEmptyGrid
	}

	var a distance.Analyser
	switch strings.ToLower(analyser) {
	case config.AnalyserFrontier:
		a = distance.NewFrontier(distance.WithLogger(g.Logger()))
	default:
		a = distance.NewDijkstra(distance.WithLogger(g.Logger()))
	}
	res, err := a.Analyse(cells[0])
	if err != nil {
		return nil, nil, err
	}
	return res, distance.ShortestPathFor(res.Farthest().Node(), res), nil
}

func writePNG(g *grid.Grid, path string, scale int, opts []render.Option) error {
	img, err := render.NewImage(g, scale, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
