package astar_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilestar/arena"
	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/closedset"
	"github.com/katalvlaran/tilestar/core"
	"github.com/katalvlaran/tilestar/dijkstra"
	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/openset"
	"github.com/katalvlaran/tilestar/pathnode"
	"github.com/katalvlaran/tilestar/puzzle"
)

// counting wraps a graph and records every expanded configuration.
type counting[S pathnode.State[S]] struct {
	astar.Graph[S]
	expanded []S
}

func (c *counting[S]) Successors(s S, dst []astar.Successor[S]) []astar.Successor[S] {
	c.expanded = append(c.expanded, s)

	return c.Graph.Successors(s, dst)
}

func puzzleGraph(t testing.TB, width int) *puzzle.Graph {
	t.Helper()
	g, err := puzzle.NewGraph(width)
	require.NoError(t, err)

	return g
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := astar.Search[core.VertexID](nil, "A")
	require.ErrorIs(t, err, astar.ErrNilGraph)
	assert.False(t, res.Found)
}

func TestSearch_TwoNodes(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithGoal("goal"))
	_, err := g.AddEdge("start", "goal", 1)
	require.NoError(t, err)

	s := astar.New[core.VertexID]()
	res, err := s.Search(g, "start")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []core.VertexID{"start", "goal"}, res.Path)
	assert.Equal(t, int64(1), res.Cost)
	assert.Equal(t, 1, s.ClosedCount())
	assert.Equal(t, 1, s.OpenCount()) // the goal itself
	assert.Equal(t, astar.PhaseSucceeded, s.Phase())
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := &counting[puzzle.Board]{Graph: puzzleGraph(t, 3)}
	goal := puzzle.Goal(3)

	s := astar.New[puzzle.Board]()
	res, err := s.Search(g, goal)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []puzzle.Board{goal}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Empty(t, g.expanded)
	assert.Zero(t, s.ClosedCount())
}

func TestSearch_UnreachableGoal(t *testing.T) {
	start, err := puzzle.FromCells(2, []uint8{2, 1, 3, 0})
	require.NoError(t, err)
	require.False(t, puzzle.Solvable(2, start))

	s := astar.New[puzzle.Board]()
	res, err := s.Search(puzzleGraph(t, 2), start)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, astar.PhaseFailed, s.Phase())
	// every configuration of the start's parity class gets expanded
	assert.Equal(t, 12, s.ClosedCount())
	assert.Zero(t, s.OpenCount())
}

func TestSearch_SampleAcrossImplementations(t *testing.T) {
	g := puzzleGraph(t, puzzle.SampleWidth)
	start := puzzle.Samples()[0]

	var reference []puzzle.Board
	for _, ok := range openset.Kinds {
		for _, ck := range closedset.Kinds {
			t.Run(ok.String()+"/"+ck.String(), func(t *testing.T) {
				s := astar.New[puzzle.Board](astar.WithOpenSet(ok), astar.WithClosedSet(ck))
				res, err := s.Search(g, start)
				require.NoError(t, err)
				require.True(t, res.Found)
				assert.Equal(t, int64(15), res.Cost)
				assert.Equal(t, []uint8{9, 5, 3, 8, 2, 1, 6, 7, 8, 3, 4, 9, 10, 15, 20}, puzzle.Moves(res.Path))
				assert.Equal(t, 30, s.ClosedCount())
				assert.Equal(t, 35, s.OpenCount())
				if reference == nil {
					reference = res.Path
				}
				assert.Equal(t, reference, res.Path)
			})
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g := puzzleGraph(t, 4)
	start := puzzle.Scramble(4, 24, rand.New(rand.NewSource(5)))

	s := astar.New[puzzle.Board](astar.WithStatistics())
	first, err := s.Search(g, start)
	require.NoError(t, err)
	again, err := s.Search(g, start)
	require.NoError(t, err)
	fresh, err := astar.Search[puzzle.Board](g, start, astar.WithStatistics())
	require.NoError(t, err)

	assert.Equal(t, first.Path, again.Path)
	assert.Equal(t, first.Path, fresh.Path)
	assert.Equal(t, first.Stats, fresh.Stats)
	// the reused solver keeps its grown indexes, so only compare search counters
	assert.Equal(t, first.Stats.Expanded, again.Stats.Expanded)
	assert.Equal(t, first.Stats.Created, again.Stats.Created)
	assert.Equal(t, first.Stats.OpenSize, again.Stats.OpenSize)
}

// randomGraph builds an undirected graph with a consistent heuristic derived
// from the exact distance to the goal.
func randomGraph(t *testing.T, rng *rand.Rand) (*core.Graph, core.VertexID) {
	t.Helper()
	n := 20 + rng.Intn(60)
	id := func(i int) core.VertexID { return core.VertexID(fmt.Sprintf("v%03d", i)) }
	goal := id(rng.Intn(n))
	g := core.NewGraph(core.WithGoal(goal))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(id(i)))
	}
	for i := 0; i < n*3; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a != b {
			_, _ = g.AddEdge(id(a), id(b), int64(1+rng.Intn(9)))
		}
	}

	toGoal, _, err := dijkstra.Dijkstra[core.VertexID](g, goal)
	require.NoError(t, err)
	for v, d := range toGoal {
		// halving keeps |h(u)-h(v)| <= w(u,v)
		require.NoError(t, g.SetHeuristic(v, d/2))
	}

	return g, id(0)
}

func TestSearch_OptimalAgainstDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 40; round++ {
		g, start := randomGraph(t, rng)
		want, reachable, err := dijkstra.ShortestCost[core.VertexID](g, start)
		require.NoError(t, err)

		for _, ok := range openset.Kinds {
			res, err := astar.Search[core.VertexID](g, start, astar.WithOpenSet(ok))
			require.NoError(t, err)
			require.Equal(t, reachable, res.Found, "round %d", round)
			if !reachable {
				continue
			}
			require.Equal(t, want, res.Cost, "round %d kind %s", round, ok)
			require.Equal(t, start, res.Path[0])
			require.True(t, g.IsGoal(res.Path[len(res.Path)-1]))

			// the path cost adds up along real edges
			var sum int64
			for i := 1; i < len(res.Path); i++ {
				ids, w, err := g.Neighbors(res.Path[i-1])
				require.NoError(t, err)
				found := false
				for j, to := range ids {
					if to == res.Path[i] {
						sum += w[j]
						found = true
					}
				}
				require.True(t, found)
			}
			require.Equal(t, res.Cost, sum)
		}
	}
}

func TestSearch_PuzzleOptimalAgainstDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := puzzleGraph(t, 3)
	for i := 0; i < 10; i++ {
		start := puzzle.Scramble(3, 18, rng)
		want, found, err := dijkstra.ShortestCost[puzzle.Board](g, start)
		require.NoError(t, err)
		require.True(t, found)

		res, err := astar.Search[puzzle.Board](g, start, astar.WithOpenSet(openset.Heap))
		require.NoError(t, err)
		require.Equal(t, want, res.Cost)
		require.Len(t, res.Path, int(want)+1)
	}
}

func TestSearch_ClosedNeverReopened(t *testing.T) {
	g := &counting[puzzle.Board]{Graph: puzzleGraph(t, 4)}
	start := puzzle.Scramble(4, 30, rand.New(rand.NewSource(11)))

	s := astar.New[puzzle.Board](astar.WithStatistics())
	res, err := s.Search(g, start)
	require.NoError(t, err)
	require.True(t, res.Found)

	seen := make(map[puzzle.Board]bool, len(g.expanded))
	for _, b := range g.expanded {
		require.False(t, seen[b], "configuration expanded twice")
		seen[b] = true
	}

	st := res.Stats
	assert.Equal(t, uint64(len(g.expanded)), st.Expanded)
	assert.Equal(t, st.ClosedSize, int(st.Expanded))
	// every node lives in exactly one of the two sets
	assert.Equal(t, st.Nodes, st.ClosedSize+st.OpenSize)
	assert.Equal(t, uint64(st.Nodes), st.Created)
	assert.Equal(t, st.Expanded+1, st.Loops)
	assert.Equal(t, st.Generated, st.SkippedClosed+st.Discarded+st.Relaxed+st.Created-1)
	assert.Equal(t, st.Created, st.Open.Adds)
	assert.Equal(t, st.Expanded, st.Open.RemoveBests)
	assert.Equal(t, st.Relaxed, st.Open.Relaxes)
	assert.Equal(t, st.Expanded, st.Closed.Adds)
}

func TestSearch_StatisticsDisabled(t *testing.T) {
	res, err := astar.Search[puzzle.Board](puzzleGraph(t, 5), puzzle.Samples()[0])
	require.NoError(t, err)
	st := res.Stats
	assert.Zero(t, st.Loops)
	assert.Zero(t, st.Expanded)
	assert.Zero(t, st.Generated)
	assert.Equal(t, openset.Stats{}, st.Open)
	assert.Equal(t, closedset.Stats{}, st.Closed)
	assert.Equal(t, 30, st.ClosedSize)
	assert.Equal(t, 35, st.OpenSize)
	assert.Equal(t, 65, st.Nodes)
	assert.Equal(t, 1, st.Blocks)
}

func TestSearch_NodeLimit(t *testing.T) {
	s := astar.New[puzzle.Board](astar.WithMaxNodes(10))
	res, err := s.Search(puzzleGraph(t, 5), puzzle.Samples()[1])
	require.ErrorIs(t, err, astar.ErrResourceExhausted)
	require.ErrorIs(t, err, arena.ErrExhausted)
	assert.False(t, res.Found)
	assert.Equal(t, astar.PhaseAborted, s.Phase())
	assert.Equal(t, 10, res.Stats.Nodes)
}

func TestSearch_ExpansionLimit(t *testing.T) {
	s := astar.New[puzzle.Board](astar.WithMaxExpansions(5))
	_, err := s.Search(puzzleGraph(t, 5), puzzle.Samples()[1])
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
	assert.Equal(t, astar.PhaseAborted, s.Phase())
	assert.Equal(t, 5, s.ClosedCount())

	// the limit is not hit when the goal comes first
	res, err := astar.Search[puzzle.Board](puzzleGraph(t, 5), puzzle.Samples()[0], astar.WithMaxExpansions(30))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestSolver_Reuse(t *testing.T) {
	g := puzzleGraph(t, 5)
	s := astar.New[puzzle.Board](astar.WithStatistics(), astar.WithBlockSize(16), astar.WithIndexCapacity(0))

	_, err := s.Search(g, puzzle.Samples()[1])
	require.NoError(t, err)
	second, err := s.Search(g, puzzle.Samples()[0])
	require.NoError(t, err)

	fresh, err := astar.Search[puzzle.Board](g, puzzle.Samples()[0],
		astar.WithStatistics(), astar.WithBlockSize(16), astar.WithIndexCapacity(0))
	require.NoError(t, err)

	assert.Equal(t, fresh.Path, second.Path)
	assert.Equal(t, fresh.Stats.Open.Adds, second.Stats.Open.Adds)
	assert.Equal(t, fresh.Stats.Closed.Adds, second.Stats.Closed.Adds)
	assert.Equal(t, 30, s.ClosedCount())
	assert.Equal(t, 65/16+1, second.Stats.Blocks)
}

func TestSearch_Hashers(t *testing.T) {
	g := puzzleGraph(t, 5)
	for _, h := range []hashset.Hasher{hashset.OneAtATime, hashset.XXHash} {
		res, err := astar.Search[puzzle.Board](g, puzzle.Samples()[0], astar.WithHasher(h))
		require.NoError(t, err)
		assert.Equal(t, int64(15), res.Cost)
	}
}

func TestSearch_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := astar.Search[puzzle.Board](puzzleGraph(t, 5), puzzle.Samples()[1],
		astar.WithLogger(log), astar.WithIndexCapacity(0))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "index grown")
	assert.Contains(t, out, "phase=succeeded")
}

// tooWide declares one successor but returns two.
type tooWide struct{ *core.Graph }

func (tooWide) MaxBranching() int { return 1 }

// freeEdges reports zero-cost edges.
type freeEdges struct{ *core.Graph }

func (f freeEdges) Successors(s core.VertexID, dst []astar.Successor[core.VertexID]) []astar.Successor[core.VertexID] {
	dst = f.Graph.Successors(s, dst)
	for i := range dst {
		dst[i].Cost = 0
	}

	return dst
}

func TestSearch_CollaboratorContract(t *testing.T) {
	w := tooWide{core.NewGraph(core.WithGoal("Z"))}
	_, _ = w.AddEdge("A", "B", 1)
	_, _ = w.AddEdge("A", "C", 1)
	assert.PanicsWithValue(t, astar.ErrBranching, func() {
		_, _ = astar.Search[core.VertexID](w, "A")
	})

	g := core.NewGraph(core.WithGoal("Z"))
	_, _ = g.AddEdge("A", "B", 1)
	assert.PanicsWithValue(t, astar.ErrBadEdgeCost, func() {
		_, _ = astar.Search[core.VertexID](freeEdges{g}, "A")
	})
}

func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, astar.ErrBadBlockSize.Error(), func() {
		astar.New[core.VertexID](astar.WithBlockSize(0))
	})
	assert.PanicsWithValue(t, astar.ErrBadCapacity.Error(), func() {
		astar.New[core.VertexID](astar.WithIndexCapacity(-1))
	})
	assert.PanicsWithValue(t, astar.ErrBadCapacity.Error(), func() {
		astar.New[core.VertexID](astar.WithIndexCapacity(1<<31 - 1))
	})
	assert.PanicsWithValue(t, astar.ErrBadMaxNodes.Error(), func() {
		astar.New[core.VertexID](astar.WithMaxNodes(-1))
	})
	assert.PanicsWithValue(t, astar.ErrBadMaxExpansions.Error(), func() {
		astar.New[core.VertexID](astar.WithMaxExpansions(-1))
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "initialized", astar.New[core.VertexID]().Phase().String())
	assert.Equal(t, "aborted", astar.PhaseAborted.String())
	assert.Equal(t, "Phase(42)", astar.Phase(42).String())
}
