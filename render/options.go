package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mazegrid/distance"
	"github.com/katalvlaran/mazegrid/grid"
)

var (
	colorCyan  = lipgloss.Color("36")  // root
	colorGreen = lipgloss.Color("35")  // path
	colorGray  = lipgloss.Color("245") // distances
	colorDim   = lipgloss.Color("240") // walls and masked cells
)

var (
	styleRoot     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stylePath     = lipgloss.NewStyle().Foreground(colorGreen)
	styleDistance = lipgloss.NewStyle().Foreground(colorGray)
	styleWall     = lipgloss.NewStyle().Foreground(colorDim)
)

// Option configures a renderer.
type Option func(*Options)

// Options holds overlay and styling choices.
type Options struct {
	// Result marks its root and, with ShowDistances, every reached cell.
	Result *distance.Result
	// ShowDistances prints each reached cell's weight digit.
	ShowDistances bool
	// Path cells are marked '*'.
	Path []*grid.Cell
	// Color wraps markers and walls in lipgloss styles.
	Color bool
}

// WithResult overlays an analysis root.
func WithResult(res *distance.Result) Option {
	return func(o *Options) { o.Result = res }
}

// WithDistances overlays res and prints weights in reached cells.
func WithDistances(res *distance.Result) Option {
	return func(o *Options) {
		o.Result = res
		o.ShowDistances = true
	}
}

// WithPath marks cells, typically distance.ShortestPathFor output.
func WithPath(cells []*grid.Cell) Option {
	return func(o *Options) { o.Path = cells }
}

// WithColor toggles lipgloss styling.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// pathSet indexes o.Path for constant-time lookup.
func (o Options) pathSet() map[*grid.Cell]struct{} {
	set := make(map[*grid.Cell]struct{}, len(o.Path))
	for _, c := range o.Path {
		if c != nil {
			set[c] = struct{}{}
		}
	}
	return set
}

func (o Options) paint(s lipgloss.Style, text string) string {
	if !o.Color {
		return text
	}
	return s.Render(text)
}
