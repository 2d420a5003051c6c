package core

import (
	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/pathnode"
)

var _ astar.Graph[VertexID] = (*Graph)(nil)

// IsGoal reports whether id is the goal vertex.
func (g *Graph) IsGoal(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.goal != "" && id == g.goal
}

// Heuristic returns the estimate recorded with SetHeuristic (zero by default).
func (g *Graph) Heuristic(id VertexID) pathnode.Cost {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertices[id]
}

// Successors appends the neighbours of id, in ascending ID order, to dst.
// Unknown vertices have no successors.
func (g *Graph) Successors(id VertexID, dst []astar.Successor[VertexID]) []astar.Successor[VertexID] {
	ids, weights, err := g.Neighbors(id)
	if err != nil {
		return dst
	}
	for i, to := range ids {
		dst = append(dst, astar.Successor[VertexID]{
			State: to,
			Cost:  weights[i],
			H:     g.Heuristic(to),
		})
	}

	return dst
}

// MaxBranching returns the largest out-degree in the graph (at least 1).
func (g *Graph) MaxBranching() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 1
	for _, inner := range g.adjacency {
		deg = max(deg, len(inner))
	}

	return deg
}
