package gridgraph

import (
	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/pathnode"
)

var _ astar.Graph[Cell] = (*GridGraph)(nil)

// IsGoal implements astar.Graph.
func (gg *GridGraph) IsGoal(c Cell) bool { return c == gg.goal }

// Heuristic implements astar.Graph: Manhattan distance under Conn4, Chebyshev
// distance under Conn8.
func (gg *GridGraph) Heuristic(c Cell) pathnode.Cost {
	dx, dy := absDiff(c.X, gg.goal.X), absDiff(c.Y, gg.goal.Y)
	if gg.Conn == Conn8 {
		return pathnode.Cost(max(dx, dy))
	}

	return pathnode.Cost(dx + dy)
}

// Successors implements astar.Graph. Open neighbours are reported clockwise
// from north at unit cost; a wall cell has none.
func (gg *GridGraph) Successors(c Cell, dst []astar.Successor[Cell]) []astar.Successor[Cell] {
	if !gg.Open(c.X, c.Y) {
		return dst
	}
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !gg.Open(n.X, n.Y) {
			continue
		}
		dst = append(dst, astar.Successor[Cell]{State: n, Cost: 1, H: gg.Heuristic(n)})
	}

	return dst
}

// MaxBranching implements astar.Graph.
func (gg *GridGraph) MaxBranching() int { return len(gg.neighborOffsets) }

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
