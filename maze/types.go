package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/rng"
)

// Sentinel errors for maze generation.
var (
	// ErrNilGrid is returned when Plant receives a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrDisconnected is returned when the traversable cells form more than
	// one region, so a random walk could never visit them all.
	ErrDisconnected = errors.New("maze: traversable cells are not connected")

	// ErrStepLimit is returned when a random walk exceeds WithMaxSteps.
	ErrStepLimit = errors.New("maze: random walk step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and New for unknown names.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
)

// Planter carves a maze into a grid in place. Passages already in the grid
// are cleared first, so planting twice yields a fresh maze, not a merge.
type Planter interface {
	Plant(g *grid.Grid) error
}

// Option configures a planter via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Plant.
type Option func(*Options)

// Options holds the knobs shared by all planters.
type Options struct {
	// Rand is the uniform source every random draw comes from.
	Rand rng.Source

	// Logger receives progress at debug level. nil means the grid's logger.
	Logger *log.Logger

	// MaxSteps, if > 0, caps random-walk steps (AldousBroder, Wilson).
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a DefaultSeed stream, the grid's
// logger and no step limit.
func DefaultOptions() Options {
	return Options{
		Rand:     rng.New(rng.DefaultSeed),
		Logger:   nil,
		MaxSteps: 0,
	}
}

// WithRand injects the random source. A nil source is ignored.
func WithRand(src rng.Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Rand = src
		}
	}
}

// WithSeed is WithRand(rng.New(seed)).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rng.New(seed)
	}
}

// WithLogger routes progress output to l instead of the grid's logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps limits random-walk length.
//
//	n > 0: at most n steps
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// newOptions applies opts over DefaultOptions.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// begin validates a Plant call, clears existing passages and resolves the
// logger to use. Random walks rely on unlinked cells marking unvisited ones.
func (o *Options) begin(g *grid.Grid) (*log.Logger, error) {
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	l := o.Logger
	if l == nil {
		l = g.Logger()
	}
	if n := g.LinkCount(); n > 0 {
		g.ClearLinks()
		l.Debug("existing passages cleared", "passages", n)
	}
	return l, nil
}

// stepper enforces MaxSteps across one Plant call.
type stepper struct {
	max   int
	taken int
}

// step counts one walk step, failing once the cap is exceeded.
func (s *stepper) step() error {
	s.taken++
	if s.max > 0 && s.taken > s.max {
		return fmt.Errorf("%w: %d steps", ErrStepLimit, s.max)
	}
	return nil
}

// Algorithm names a generation strategy.
type Algorithm int

const (
	// AlgAldousBroder selects the unbiased random walk.
	AlgAldousBroder Algorithm = iota
	// AlgWilson selects the loop-erased random walk.
	AlgWilson
	// AlgSidewinder selects Sidewinder.
	AlgSidewinder
	// AlgBinaryTree selects Binary Tree.
	AlgBinaryTree
)

var algorithmNames = [...]string{
	AlgAldousBroder: "aldous-broder",
	AlgWilson:       "wilson",
	AlgSidewinder:   "sidewinder",
	AlgBinaryTree:   "binary-tree",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgAldousBroder, AlgWilson, AlgSidewinder, AlgBinaryTree}
}

// ParseAlgorithm resolves a case-insensitive name; '_' and ' ' count as '-'.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, n := range algorithmNames {
		if n == key || strings.ReplaceAll(n, "-", "") == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New returns the planter for alg.
func New(alg Algorithm, opts ...Option) (Planter, error) {
	switch alg {
	case AlgAldousBroder:
		return NewAldousBroder(opts...), nil
	case AlgWilson:
		return NewWilson(opts...), nil
	case AlgSidewinder:
		return NewSidewinder(opts...), nil
	case AlgBinaryTree:
		return NewBinaryTree(opts...), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
