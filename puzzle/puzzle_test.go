package puzzle_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/puzzle"
)

func board(t *testing.T, width int, cells ...uint8) puzzle.Board {
	t.Helper()
	b, err := puzzle.FromCells(width, cells)
	require.NoError(t, err)

	return b
}

func TestGoal(t *testing.T) {
	g := puzzle.Goal(3)
	assert.Equal(t, board(t, 3, 1, 2, 3, 4, 5, 6, 7, 8, 0), g)
	assert.Equal(t, 8, puzzle.Blank(3, g))
	assert.Panics(t, func() { puzzle.Goal(6) })
}

func TestValidate(t *testing.T) {
	require.NoError(t, puzzle.Validate(2, puzzle.Goal(2)))
	require.ErrorIs(t, puzzle.Validate(1, puzzle.Board{}), puzzle.ErrBadWidth)
	require.ErrorIs(t, puzzle.Validate(6, puzzle.Board{}), puzzle.ErrBadWidth)

	dup := puzzle.Goal(2)
	dup[0] = 2
	require.ErrorIs(t, puzzle.Validate(2, dup), puzzle.ErrBadBoard)

	big := puzzle.Goal(2)
	big[0] = 9
	require.ErrorIs(t, puzzle.Validate(2, big), puzzle.ErrBadBoard)

	padded := puzzle.Goal(2)
	padded[10] = 1
	require.ErrorIs(t, puzzle.Validate(2, padded), puzzle.ErrBadBoard)

	_, err := puzzle.FromCells(3, []uint8{1, 2, 3})
	require.ErrorIs(t, err, puzzle.ErrBadBoard)
}

func TestBoardOrderAndKey(t *testing.T) {
	a := board(t, 2, 1, 2, 3, 0)
	b := board(t, 2, 1, 3, 2, 0)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))

	key := a.AppendKey(nil)
	require.Len(t, key, puzzle.MaxCells)
	assert.Equal(t, []byte{1, 2, 3, 0}, key[:4])
}

func TestSolvable(t *testing.T) {
	assert.True(t, puzzle.Solvable(2, puzzle.Goal(2)))
	assert.False(t, puzzle.Solvable(2, board(t, 2, 2, 1, 3, 0)))
	assert.True(t, puzzle.Solvable(3, board(t, 3, 1, 2, 3, 4, 0, 6, 7, 5, 8)))
	assert.False(t, puzzle.Solvable(3, board(t, 3, 1, 2, 3, 4, 5, 6, 8, 7, 0)))
	// even width: a vertical move keeps the combined parity
	assert.True(t, puzzle.Solvable(4, board(t, 4, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0, 13, 14, 15, 12)))
	for _, s := range puzzle.Samples() {
		assert.True(t, puzzle.Solvable(puzzle.SampleWidth, s))
	}
}

func TestScrambleSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for width := puzzle.MinWidth; width <= puzzle.MaxWidth; width++ {
		for i := 0; i < 20; i++ {
			b := puzzle.Scramble(width, 40, rng)
			require.NoError(t, puzzle.Validate(width, b))
			require.True(t, puzzle.Solvable(width, b))
		}
	}
}

func TestMovesAndFormat(t *testing.T) {
	path := []puzzle.Board{
		board(t, 3, 1, 2, 3, 4, 0, 6, 7, 5, 8),
		board(t, 3, 1, 2, 3, 4, 5, 6, 7, 0, 8),
		board(t, 3, 1, 2, 3, 4, 5, 6, 7, 8, 0),
	}
	assert.Equal(t, []uint8{5, 8}, puzzle.Moves(path))
	assert.Nil(t, puzzle.Moves(path[:1]))
	assert.Equal(t, uint8(0), puzzle.MovedTile(path[0], path[0]))

	want := strings.Join([]string{
		"    1  2  3",
		"    4     6",
		"    7  5  8",
	}, "\n")
	assert.Equal(t, want, puzzle.Format(3, path[0]))
	assert.Equal(t, "  ", puzzle.Label(0))
	assert.Equal(t, "24", puzzle.Label(24))
}

func TestGraphSuccessors(t *testing.T) {
	g, err := puzzle.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.MaxBranching())
	assert.Equal(t, puzzle.Manhattan, g.HeuristicKind())

	start := board(t, 3, 1, 2, 3, 4, 0, 6, 7, 5, 8)
	assert.Equal(t, int64(2), g.Heuristic(start))

	succ := g.Successors(start, nil)
	require.Len(t, succ, 4)
	for _, s := range succ {
		assert.Equal(t, int64(1), s.Cost)
		assert.Equal(t, g.Heuristic(s.State), s.H, "incremental heuristic of %v", s.State)
		assert.NotZero(t, s.State[puzzle.Blank(3, start)])
	}
	// ascending cell order: up, left, right, down
	assert.Equal(t, uint8(2), puzzle.MovedTile(start, succ[0].State))
	assert.Equal(t, uint8(4), puzzle.MovedTile(start, succ[1].State))
	assert.Equal(t, uint8(6), puzzle.MovedTile(start, succ[2].State))
	assert.Equal(t, uint8(5), puzzle.MovedTile(start, succ[3].State))

	corner := g.Successors(puzzle.Goal(3), nil)
	assert.Len(t, corner, 2)
}

func TestIncrementalHeuristicRandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, h := range []puzzle.Heuristic{puzzle.Manhattan, puzzle.Misplaced} {
		g, err := puzzle.NewGraph(5, puzzle.WithHeuristic(h))
		require.NoError(t, err)
		b := g.Goal()
		require.Zero(t, g.Heuristic(b))
		var buf []astar.Successor[puzzle.Board]
		for step := 0; step < 500; step++ {
			buf = g.Successors(b, buf[:0])
			for _, s := range buf {
				require.Equal(t, g.Heuristic(s.State), s.H)
				// consistency across one unit edge
				require.LessOrEqual(t, g.Heuristic(b), s.Cost+s.H)
			}
			b = buf[rng.Intn(len(buf))].State
		}
	}
}

func TestNewGraphErrors(t *testing.T) {
	_, err := puzzle.NewGraph(1)
	require.ErrorIs(t, err, puzzle.ErrBadWidth)
	_, err = puzzle.NewGraph(3, puzzle.WithHeuristic(puzzle.Heuristic(9)))
	require.ErrorIs(t, err, puzzle.ErrUnknownHeuristic)

	h, err := puzzle.ParseHeuristic("MISPLACED")
	require.NoError(t, err)
	assert.Equal(t, puzzle.Misplaced, h)
	_, err = puzzle.ParseHeuristic("euclid")
	require.ErrorIs(t, err, puzzle.ErrUnknownHeuristic)
}

func TestSamples(t *testing.T) {
	s := puzzle.Samples()
	require.Len(t, s, 9)
	for _, b := range s {
		require.NoError(t, puzzle.Validate(puzzle.SampleWidth, b))
	}
	s[0][0] = 99 // callers get copies
	assert.NotEqual(t, uint8(99), puzzle.Samples()[0][0])
}
