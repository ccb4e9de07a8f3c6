// Package mazegrid is an in-memory maze workshop: rectangular grids of
// cells, four classic carving algorithms and distance analysis over the
// carved passages.
//
// 🚀 What is mazegrid?
//
//	A small, deterministic library plus CLI that brings together:
//		• Grids: fixed N/E/S/W wiring, a shared border sentinel, masks
//		• Links: weighted, optionally one-way passages between neighbours
//		• Generators: Aldous-Broder, Wilson, Sidewinder, Binary Tree
//		• Distances: unweighted frontier and Dijkstra, path reconstruction
//		• Rendering: ASCII with lipgloss highlights, PNG via image.Image
//
// ✨ Why mazegrid?
//
//   - Reproducible - every random choice draws from a seedable source
//   - Sentinel errors - branch with errors.Is, never on strings
//   - Observable - charmbracelet/log loggers threaded through options
//
// Under the hood:
//
//	grid/     Cell, Grid, Location, Direction, mask and link primitives
//	maze/     Planter implementations and algorithm selection
//	distance/ Frontier and Dijkstra analysers, PathLink chains
//	render/   ASCII and image output
//	rng/      seeded source helpers shared by the generators
//	cmd/      the mazegrid command
//
// Quick example:
//
//	g, _ := grid.New(8, 8)
//	p, _ := maze.New(maze.AlgWilson, maze.WithSeed(42))
//	_ = p.Plant(g)
//	root, _ := g.Cell(0, 0)
//	res, _ := distance.NewDijkstra().Analyse(root)
//	fmt.Print(render.ASCII(g, render.WithDistances(res)))
package mazegrid
