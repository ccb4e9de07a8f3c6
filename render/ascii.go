package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mazegrid/distance"
	"github.com/katalvlaran/mazegrid/grid"
)

const (
	corner   = "+"
	wallH    = "---"
	wallV    = "|"
	openH    = "   "
	openV    = " "
	maskBody = "###"
)

// ASCII renders g with one line of walls between every row of bodies.
// A nil grid renders as the empty string.
func ASCII(g *grid.Grid, opts ...Option) string {
	if g == nil {
		return ""
	}
	o := newOptions(opts)
	path := o.pathSet()

	var sb strings.Builder
	sb.WriteString(o.paint(styleWall, corner))
	for col := 0; col < g.Columns(); col++ {
		sb.WriteString(o.paint(styleWall, wallH+corner))
	}
	sb.WriteByte('\n')

	for row := 0; row < g.Rows(); row++ {
		cells := g.LatticeRow(row)

		sb.WriteString(o.paint(styleWall, wallV))
		for _, c := range cells {
			sb.WriteString(o.body(c, path))
			if c.IsLinked(c.Neighbour(grid.East)) {
				sb.WriteString(openV)
			} else {
				sb.WriteString(o.paint(styleWall, wallV))
			}
		}
		sb.WriteByte('\n')

		sb.WriteString(o.paint(styleWall, corner))
		for _, c := range cells {
			if c.IsLinked(c.Neighbour(grid.South)) {
				sb.WriteString(openH)
			} else {
				sb.WriteString(o.paint(styleWall, wallH))
			}
			sb.WriteString(o.paint(styleWall, corner))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// body returns the 3-character interior of c.
func (o Options) body(c *grid.Cell, path map[*grid.Cell]struct{}) string {
	if c.IsMasked() {
		return o.paint(styleWall, maskBody)
	}
	if o.Result != nil && c == o.Result.Root() {
		return " " + o.paint(styleRoot, "@") + " "
	}
	if _, ok := path[c]; ok {
		return " " + o.paint(stylePath, "*") + " "
	}
	if o.ShowDistances && o.Result != nil {
		if l, ok := o.Result.PathLink(c); ok {
			return " " + o.paint(styleDistance, weightDigit(l)) + " "
		}
	}
	return openH
}

// weightDigit is the last base-36 digit of the cumulative weight.
func weightDigit(l *distance.PathLink) string {
	return strconv.FormatInt(l.Weight()%36, 36)
}
