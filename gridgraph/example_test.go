package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/gridgraph"
)

// ExampleGridGraph solves a small maze with 4- and 8-connectivity.
//
//	S . . . .
//	# # # # .
//	. . # # .
//	. # # . G
func ExampleGridGraph() {
	grid := [][]int{
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 1},
		{1, 1, 0, 0, 1},
		{1, 0, 0, 1, 1},
	}
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		gg, _ := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{LandThreshold: 1, Conn: conn})
		res, _ := astar.Search[gridgraph.Cell](gg, gridgraph.Cell{})
		fmt.Println(res.Cost, res.Path)
	}

	// Output:
	// 7 [(0,0) (1,0) (2,0) (3,0) (4,0) (4,1) (4,2) (4,3)]
	// 6 [(0,0) (1,0) (2,0) (3,0) (4,1) (4,2) (4,3)]
}

// ExampleGridGraph_ConnectedComponents lists the open regions of a grid.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}
