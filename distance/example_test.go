package distance_test

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/distance"
	"github.com/katalvlaran/mazegrid/grid"
)

// ExampleDijkstra_Analyse walks a weighted corridor and rebuilds the path.
func ExampleDijkstra_Analyse() {
	g, _ := grid.New(2, 3)
	a, _ := g.Cell(0, 0)
	b, _ := g.Cell(0, 1)
	c, _ := g.Cell(0, 2)
	_, _ = a.Link(b, true, 5)
	_, _ = b.Link(c, true, 1)

	res, err := distance.NewDijkstra().Analyse(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	l, _ := res.PathLink(c)
	fmt.Println("weight:", l.Weight(), "steps:", l.Steps())
	fmt.Println("back:", distance.ShortestPathFor(c, res))
	// Output:
	// weight: 6 steps: 2
	// back: [(0,2) (0,1)]
}

// ExampleFrontier_Analyse counts link distance over a simple L-shaped route.
func ExampleFrontier_Analyse() {
	g, _ := grid.New(2, 2)
	a, _ := g.Cell(0, 0)
	b, _ := g.Cell(1, 0)
	c, _ := g.Cell(1, 1)
	_, _ = a.LinkSimple(b)
	_, _ = b.LinkSimple(c)

	res, _ := distance.NewFrontier().Analyse(a)
	path, _ := res.PathTo(c)
	fmt.Println(res.Len(), path)
	// Output:
	// 3 [(0,0) (1,0) (1,1)]
}
