package grid

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Grid at construction time.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// Logger receives clamp warnings and soft link failures. Never nil.
	Logger *log.Logger
	// Mask lists locations masked before the lattice is built.
	Mask []Location
}

// DefaultOptions returns Options with a discarding logger and an empty mask.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
		Mask:   nil,
	}
}

// WithLogger routes grid diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMask masks the given locations before the lattice is built.
// Out-of-range locations make New fail with ErrOutOfRange.
func WithMask(locs ...Location) Option {
	return func(o *Options) {
		o.Mask = append(o.Mask, locs...)
	}
}
