package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/tilestar/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability. The goal starts at the
// bottom-right corner.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
		goal:            Cell{X: w - 1, Y: h - 1},
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether (x,y) is inside the grid and not a wall.
func (gg *GridGraph) Open(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets, clockwise from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// SetGoal moves the goal to c. The goal must be an open cell.
func (gg *GridGraph) SetGoal(c Cell) error {
	if !gg.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !gg.Open(c.X, c.Y) {
		return fmt.Errorf("%w: %v", ErrWall, c)
	}
	gg.goal = c

	return nil
}

// Goal returns the goal cell.
func (gg *GridGraph) Goal() Cell { return gg.goal }

// vertexID formats the vertex identifier of cell (x,y) in a core.Graph.
func vertexID(x, y int) core.VertexID {
	return core.VertexID(fmt.Sprintf("%d,%d", x, y))
}

// ToCoreGraph converts the open cells into an undirected *core.Graph. Each open
// cell (x,y) becomes a vertex "x,y" carrying the grid heuristic; unit edges
// connect neighbouring open cells according to gg.Conn. The goal vertex is set
// when the goal cell is open.
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			id := vertexID(x, y)
			_ = g.AddVertex(id)
			_ = g.SetHeuristic(id, gg.Heuristic(Cell{X: x, Y: y}))
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue
			}
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				// each undirected edge once, from its lower-index end
				if !gg.Open(nx, ny) || gg.index(nx, ny) < u {
					continue
				}
				_, _ = g.AddEdge(vertexID(x, y), vertexID(nx, ny), 1)
			}
		}
	}
	if gg.Open(gg.goal.X, gg.goal.Y) {
		_ = g.SetGoal(vertexID(gg.goal.X, gg.goal.Y))
	}

	return g
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
