// Package gridgraph treats a 2D grid of cells as a maze for the A* engine.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//     Cells with value >= LandThreshold are open ("land"), the others are walls.
//   - Moves go to open neighbours under Conn4 (N, E, S, W) or Conn8 (plus the
//     diagonals); every move costs 1.
//   - The heuristic is the Manhattan distance to the goal under Conn4 and the
//     Chebyshev distance under Conn8, both consistent for unit moves.
//   - ConnectedComponents and Reachable answer reachability without a search.
//   - ToCoreGraph converts the open cells into an explicit *core.Graph with the
//     same edges, heuristic and goal.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbours, 4 or 8).
//   - ToCoreGraph:         O(W×H×d + E), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrWall: the goal cell is a wall.
package gridgraph
