package distance

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sentinel errors returned by the analysers.
var (
	// ErrNilRoot indicates Analyse received a nil root cell.
	ErrNilRoot = errors.New("distance: root cell is nil")

	// ErrBorderRoot indicates Analyse was rooted at the border sentinel.
	ErrBorderRoot = errors.New("distance: root cell is the border sentinel")

	// ErrNegativeWeight indicates a link with negative weight was reached.
	ErrNegativeWeight = errors.New("distance: negative link weight encountered")

	// ErrUnreached indicates a path was requested to a cell the analysis never labeled.
	ErrUnreached = errors.New("distance: cell not reached from root")
)

// Analyser computes a path-link labeling from a root over the link graph.
type Analyser interface {
	Analyse(root *grid.Cell) (*Result, error)
}

// Option configures an analyser.
type Option func(*Options)

// Options holds analyser parameters.
type Options struct {
	// Logger receives a summary per run at debug level.
	Logger *log.Logger
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

// WithLogger routes run summaries to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// checkRoot applies the preconditions shared by every analyser.
func checkRoot(root *grid.Cell) error {
	if root == nil {
		return ErrNilRoot
	}
	if root.IsBorder() {
		return ErrBorderRoot
	}
	return nil
}

// linkKind discriminates real chain nodes from the chain terminator.
type linkKind uint8

const (
	linkNode linkKind = iota
	linkNull
)

// PathLink is one node of the back-pointer chain from a reached cell to the
// analysis root. The root's Link() is the null terminator.
type PathLink struct {
	kind   linkKind
	node   *grid.Cell
	weight int64
	steps  int
	prev   *PathLink
}

// nullLink terminates every chain: no node, weight WeightInf, steps −1.
var nullLink = PathLink{kind: linkNull, weight: grid.WeightInf, steps: -1}

// Null returns the chain terminator.
func Null() *PathLink { return &nullLink }

// rootLink labels the analysis root.
func rootLink(root *grid.Cell) *PathLink {
	return &PathLink{kind: linkNode, node: root, weight: grid.WeightFree, steps: 0, prev: Null()}
}

// extend labels nb as reached from l over an edge of weight w.
func (l *PathLink) extend(nb *grid.Cell, w int64) *PathLink {
	return &PathLink{kind: linkNode, node: nb, weight: l.weight + w, steps: l.steps + 1, prev: l}
}

// IsNull reports whether l is the chain terminator.
func (l *PathLink) IsNull() bool { return l == nil || l.kind == linkNull }

// Node returns the labeled cell, nil for the terminator.
func (l *PathLink) Node() *grid.Cell { return l.node }

// Weight returns the cumulative weight from the root.
func (l *PathLink) Weight() int64 { return l.weight }

// Steps returns the number of links between the root and Node.
func (l *PathLink) Steps() int { return l.steps }

// Link returns the predecessor; the terminator links to itself.
func (l *PathLink) Link() *PathLink {
	if l.IsNull() {
		return Null()
	}
	return l.prev
}

func (l *PathLink) String() string {
	if l.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%v w=%d s=%d", l.node, l.weight, l.steps)
}

// Result maps every cell reached by one Analyse run to its PathLink. It is
// never modified after Analyse returns.
type Result struct {
	root  *grid.Cell
	links map[*grid.Cell]*PathLink
}

// Root returns the cell the analysis started from.
func (r *Result) Root() *grid.Cell { return r.root }

// Len returns the number of reached cells, root included.
func (r *Result) Len() int { return len(r.links) }

// Contains reports whether c was reached.
func (r *Result) Contains(c *grid.Cell) bool {
	_, ok := r.links[c]
	return ok
}

// PathLink returns the label of c.
func (r *Result) PathLink(c *grid.Cell) (*PathLink, bool) {
	l, ok := r.links[c]
	return l, ok
}

// Weight returns the cumulative weight of c, or WeightInf when unreached.
func (r *Result) Weight(c *grid.Cell) int64 {
	if l, ok := r.links[c]; ok {
		return l.weight
	}
	return grid.WeightInf
}

// Cells returns the reached cells in row-major order.
func (r *Result) Cells() []*grid.Cell {
	out := make([]*grid.Cell, 0, len(r.links))
	for c := range r.links {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return lessLocation(out[i], out[j]) })
	return out
}

// Farthest returns the label with the greatest weight. Ties prefer fewer
// steps, then row-major order.
func (r *Result) Farthest() *PathLink {
	var best *PathLink
	for _, c := range r.Cells() {
		l := r.links[c]
		if best == nil || l.weight > best.weight || (l.weight == best.weight && l.steps < best.steps) {
			best = l
		}
	}
	return best
}

// PathTo returns the cells from the root to c, both included.
// Returns ErrUnreached if c was not labeled.
func (r *Result) PathTo(c *grid.Cell) ([]*grid.Cell, error) {
	l, ok := r.links[c]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, c)
	}
	path := make([]*grid.Cell, l.steps+1)
	for i := l.steps; !l.IsNull(); i, l = i-1, l.prev {
		path[i] = l.node
	}
	return path, nil
}

func lessLocation(a, b *grid.Cell) bool {
	if a.Row() != b.Row() {
		return a.Row() < b.Row()
	}
	return a.Column() < b.Column()
}
