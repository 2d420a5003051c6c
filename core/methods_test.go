package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, []core.VertexID{"A"}, g.Vertices())
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 0)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "B", -3)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	_, err = g.AddEdge("B", "A", 2) // mirror of an undirected edge
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestNeighbors_Orientation(t *testing.T) {
	und := core.NewGraph()
	_, _ = und.AddEdge("A", "C", 3)
	_, _ = und.AddEdge("A", "B", 1)
	ids, w, err := und.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{"B", "C"}, ids)
	assert.Equal(t, []int64{1, 3}, w)
	ids, _, err = und.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{"A"}, ids)

	dir := core.NewGraph(core.WithDirected(true))
	_, _ = dir.AddEdge("A", "B", 1)
	_, err = dir.AddEdge("B", "A", 4) // reverse edge is a different pair
	require.NoError(t, err)
	ids, w, err = dir.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{"A"}, ids)
	assert.Equal(t, []int64{4}, w)

	_, _, err = dir.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_OrderedByID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge(core.VertexID(fmt.Sprint("v", i)), core.VertexID(fmt.Sprint("v", i+1)), 1)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprint("e", i+1), e.ID)
	}
}

func TestHeuristicAndGoal(t *testing.T) {
	g := core.NewGraph(core.WithGoal("G"))
	assert.True(t, g.HasVertex("G"))
	assert.True(t, g.IsGoal("G"))
	assert.False(t, g.IsGoal("A"))

	require.ErrorIs(t, g.SetHeuristic("A", 1), core.ErrVertexNotFound)
	require.NoError(t, g.AddVertex("A"))
	require.ErrorIs(t, g.SetHeuristic("A", -1), core.ErrBadHeuristic)
	require.NoError(t, g.SetHeuristic("A", 5))
	assert.Equal(t, int64(5), g.Heuristic("A"))
	assert.Equal(t, int64(0), g.Heuristic("G"))

	require.ErrorIs(t, g.SetGoal("Q"), core.ErrVertexNotFound)
	require.NoError(t, g.SetGoal("A"))
	assert.Equal(t, core.VertexID("A"), g.Goal())
}

func TestSuccessors(t *testing.T) {
	g := core.NewGraph(core.WithGoal("C"))
	_, _ = g.AddEdge("A", "C", 5)
	_, _ = g.AddEdge("A", "B", 2)
	require.NoError(t, g.SetHeuristic("B", 1))

	succ := g.Successors("A", nil)
	assert.Equal(t, []astar.Successor[core.VertexID]{
		{State: "B", Cost: 2, H: 1},
		{State: "C", Cost: 5, H: 0},
	}, succ)
	assert.Equal(t, 2, g.MaxBranching())
	assert.Empty(t, g.Successors("nope", nil))
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				from := core.VertexID(fmt.Sprintf("w%d-%d", w, i))
				_, err := g.AddEdge(from, "hub", 1)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
	assert.Len(t, g.Edges(), 800)
	assert.Len(t, g.Vertices(), 801)
}
