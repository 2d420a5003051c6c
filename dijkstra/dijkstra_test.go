package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilestar/core"
	"github.com/katalvlaran/tilestar/dijkstra"
)

// diamond builds A→B(1), A→C(4), B→C(2), B→D(7), C→D(1) with goal D.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithGoal("D"))
	for _, e := range []struct {
		from, to core.VertexID
		w        int64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 7}, {"C", "D", 1},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra[core.VertexID](nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, _, err = dijkstra.ShortestCost[core.VertexID](nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_Diamond(t *testing.T) {
	g := diamond(t)
	dist, prev, err := dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[core.VertexID]int64{"A": 0, "B": 1, "C": 3, "D": 4}, dist)
	assert.Equal(t, map[core.VertexID]core.VertexID{"B": "A", "C": "B", "D": "C"}, prev)

	_, prev, err = dijkstra.Dijkstra[core.VertexID](g, "A")
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestDijkstra_UnreachedAbsent(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("Z"))
	dist, _, err := dijkstra.Dijkstra[core.VertexID](g, "C")
	require.NoError(t, err)
	assert.Equal(t, map[core.VertexID]int64{"C": 0, "D": 1}, dist)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := diamond(t)
	dist, _, err := dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[core.VertexID]int64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := diamond(t)
	// B→C (2) stays, A→C (4) and B→D (7) become walls.
	dist, _, err := dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist["D"])

	dist, _, err = dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, map[core.VertexID]int64{"A": 0, "B": 1}, dist)
}

func TestDijkstra_MaxStates(t *testing.T) {
	g := diamond(t)
	_, _, err := dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithMaxStates(2))
	require.ErrorIs(t, err, dijkstra.ErrStateLimit)

	_, _, err = dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithMaxStates(4))
	require.NoError(t, err)
}

func TestOptionPanics(t *testing.T) {
	g := diamond(t)
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _, _ = dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithMaxDistance(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		_, _, _ = dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithInfEdgeThreshold(0))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxStates.Error(), func() {
		_, _, _ = dijkstra.Dijkstra[core.VertexID](g, "A", dijkstra.WithMaxStates(-1))
	})
}

func TestShortestCost(t *testing.T) {
	g := diamond(t)
	cost, found, err := dijkstra.ShortestCost[core.VertexID](g, "A")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(4), cost)

	cost, found, err = dijkstra.ShortestCost[core.VertexID](g, "D")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, cost)

	require.NoError(t, g.AddVertex("Z"))
	_, found, err = dijkstra.ShortestCost[core.VertexID](g, "Z")
	require.NoError(t, err)
	assert.False(t, found)
}

// TestDijkstra_MatchesBellmanFord cross-checks random undirected graphs against
// a plain Bellman-Ford relaxation.
func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 20; round++ {
		g := core.NewGraph()
		n := 10 + rng.Intn(30)
		for i := 0; i < n*2; i++ {
			a, b := rng.Intn(n), rng.Intn(n)
			if a == b {
				continue
			}
			_, _ = g.AddEdge(vid(a), vid(b), int64(rng.Intn(9)+1))
		}
		require.NoError(t, g.AddVertex(vid(0)))

		want := map[core.VertexID]int64{vid(0): 0}
		for changed := true; changed; {
			changed = false
			for _, e := range g.Edges() {
				for _, d := range [][2]core.VertexID{{e.From, e.To}, {e.To, e.From}} {
					if du, ok := want[d[0]]; ok {
						if dv, ok := want[d[1]]; !ok || du+e.Weight < dv {
							want[d[1]] = du + e.Weight
							changed = true
						}
					}
				}
			}
		}

		got, _, err := dijkstra.Dijkstra[core.VertexID](g, vid(0))
		require.NoError(t, err)
		require.Equal(t, want, got, "round %d", round)
	}
}

func vid(i int) core.VertexID { return core.VertexID(fmt.Sprintf("v%02d", i)) }
