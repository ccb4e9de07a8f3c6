package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/mazegrid/grid"
)

// ErrInvalidScale indicates a cell edge shorter than MinScale pixels.
var ErrInvalidScale = errors.New("render: invalid image scale")

// MinScale is the smallest cell edge that leaves room for a visible floor.
const MinScale = 3

var (
	colorWallPx  = color.RGBA{A: 255}
	colorFloorPx = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorMaskPx  = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	colorPathPx  = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	colorRootPx  = color.RGBA{R: 20, G: 120, B: 230, A: 255}
)

// Image is a lazily drawn image.Image of a grid. Each cell occupies a
// scale×scale square whose top and left pixel lines are walls; the image
// carries one extra pixel column and row for the east and south borders.
type Image struct {
	g     *grid.Grid
	scale int
	path  map[*grid.Cell]struct{}
	root  *grid.Cell
}

// NewImage prepares an image of g. Overlays come from WithPath and WithResult.
func NewImage(g *grid.Grid, scale int, opts ...Option) (*Image, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidScale)
	}
	if scale < MinScale {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidScale, scale, MinScale)
	}
	o := newOptions(opts)
	img := &Image{g: g, scale: scale, path: o.pathSet()}
	if o.Result != nil {
		img.root = o.Result.Root()
	}
	return img, nil
}

// ColorModel reports RGBA; every pixel is a color.RGBA.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds spans columns×scale+1 by rows×scale+1 pixels from the origin.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Columns()*m.scale+1, m.g.Rows()*m.scale+1)
}

// At draws pixel (x, y) on demand from the grid's links and mask; points
// outside Bounds are transparent.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.Transparent
	}
	// east and south borders
	if x == m.g.Columns()*m.scale || y == m.g.Rows()*m.scale {
		return colorWallPx
	}
	col, dx := x/m.scale, x%m.scale
	row, dy := y/m.scale, y%m.scale
	c, err := m.g.Cell(row, col)
	if err != nil {
		return color.Transparent
	}

	switch {
	case dx == 0 && dy == 0:
		return colorWallPx
	case dx == 0:
		if c.IsLinked(c.Neighbour(grid.West)) {
			return m.floor(c, false)
		}
		return colorWallPx
	case dy == 0:
		if c.IsLinked(c.Neighbour(grid.North)) {
			return m.floor(c, false)
		}
		return colorWallPx
	}
	// markers stay one pixel clear of the walls
	inner := dx > 1 && dy > 1 && dx < m.scale-1 && dy < m.scale-1
	return m.floor(c, inner || m.scale == MinScale)
}

// floor colours the interior of c; marks is false for doorway pixels.
func (m *Image) floor(c *grid.Cell, marks bool) color.Color {
	if c.IsMasked() {
		return colorMaskPx
	}
	if marks {
		if c == m.root {
			return colorRootPx
		}
		if _, ok := m.path[c]; ok {
			return colorPathPx
		}
	}
	return colorFloorPx
}
