package astar_test

import (
	"fmt"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/openset"
	"github.com/katalvlaran/tilestar/puzzle"
)

// ExampleSolver solves the easiest built-in 5x5 sample and reports the final
// set sizes.
func ExampleSolver() {
	g, err := puzzle.NewGraph(puzzle.SampleWidth)
	if err != nil {
		panic(err)
	}
	s := astar.New[puzzle.Board](astar.WithOpenSet(openset.Heap), astar.WithStatistics())

	res, err := s.Search(g, puzzle.Samples()[0])
	if err != nil {
		panic(err)
	}
	fmt.Println("phase:", s.Phase())
	fmt.Println("closed:", s.ClosedCount(), "open:", s.OpenCount())
	fmt.Println("moves:", puzzle.Moves(res.Path))

	// Output:
	// phase: succeeded
	// closed: 30 open: 35
	// moves: [9 5 3 8 2 1 6 7 8 3 4 9 10 15 20]
}

// ExampleSearch shows the unreachable outcome: no error, no path.
func ExampleSearch() {
	g, _ := puzzle.NewGraph(2)
	start, _ := puzzle.FromCells(2, []uint8{2, 1, 3, 0})

	res, err := astar.Search[puzzle.Board](g, start)
	fmt.Println(res.Found, err, len(res.Path))

	// Output:
	// false <nil> 0
}
