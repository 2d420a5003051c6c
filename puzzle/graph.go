package puzzle

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/pathnode"
)

// ErrUnknownHeuristic indicates ParseHeuristic received an unrecognised name.
var ErrUnknownHeuristic = errors.New("puzzle: unknown heuristic")

// Heuristic selects the distance estimate of a Graph. Both are consistent.
type Heuristic int

const (
	// Manhattan sums the grid distance of every tile to its goal cell.
	Manhattan Heuristic = iota
	// Misplaced counts the tiles not on their goal cell.
	Misplaced
)

// String returns the lower-case name used in configuration files.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Misplaced:
		return "misplaced"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic is the inverse of Heuristic.String (case-insensitive).
func ParseHeuristic(name string) (Heuristic, error) {
	for _, h := range []Heuristic{Manhattan, Misplaced} {
		if strings.EqualFold(name, h.String()) {
			return h, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownHeuristic, "%q", name)
}

// Option configures a Graph.
type Option func(*Graph)

// WithHeuristic selects the heuristic (default Manhattan).
func WithHeuristic(h Heuristic) Option {
	return func(g *Graph) { g.heuristic = h }
}

// Graph is the state space of one board width. It is immutable after
// NewGraph and safe for concurrent use by independent solvers.
type Graph struct {
	width     int
	cells     int
	heuristic Heuristic
	goal      Board

	moves [MaxCells][]uint8         // blank cell -> cells it can swap with
	cost  [MaxCells][MaxCells]uint8 // tile, cell -> heuristic contribution
}

var _ astar.Graph[Board] = (*Graph)(nil)

// NewGraph builds the move table and heuristic table for width.
func NewGraph(width int, opts ...Option) (*Graph, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	g := &Graph{width: width, cells: width * width}
	for _, opt := range opts {
		opt(g)
	}
	if g.heuristic != Manhattan && g.heuristic != Misplaced {
		return nil, errors.Wrapf(ErrUnknownHeuristic, "%d", int(g.heuristic))
	}
	g.goal = Goal(width)

	for pos := 0; pos < g.cells; pos++ {
		g.moves[pos] = adjacent(width, pos)
	}
	for t := 1; t < g.cells; t++ {
		home := t - 1
		for pos := 0; pos < g.cells; pos++ {
			switch g.heuristic {
			case Manhattan:
				g.cost[t][pos] = uint8(absDiff(home/width, pos/width) + absDiff(home%width, pos%width))
			case Misplaced:
				if pos != home {
					g.cost[t][pos] = 1
				}
			}
		}
	}

	return g, nil
}

// Width returns the board width.
func (g *Graph) Width() int { return g.width }

// Goal returns the solved board.
func (g *Graph) Goal() Board { return g.goal }

// HeuristicKind returns the configured heuristic.
func (g *Graph) HeuristicKind() Heuristic { return g.heuristic }

// IsGoal implements astar.Graph.
func (g *Graph) IsGoal(b Board) bool { return b == g.goal }

// Heuristic implements astar.Graph.
func (g *Graph) Heuristic(b Board) pathnode.Cost {
	var h pathnode.Cost
	for pos := 0; pos < g.cells; pos++ {
		h += pathnode.Cost(g.cost[b[pos]][pos])
	}

	return h
}

// Successors implements astar.Graph. Every move costs 1. The heuristic of b is
// computed once per call; each successor's estimate then changes only the
// term of the moved tile.
func (g *Graph) Successors(b Board, dst []astar.Successor[Board]) []astar.Successor[Board] {
	blank := Blank(g.width, b)
	if blank < 0 {
		return dst
	}
	h := g.Heuristic(b)
	for _, q := range g.moves[blank] {
		t := b[q]
		next := b
		next[blank], next[q] = t, 0
		dst = append(dst, astar.Successor[Board]{
			State: next,
			Cost:  1,
			H:     h - pathnode.Cost(g.cost[t][q]) + pathnode.Cost(g.cost[t][blank]),
		})
	}

	return dst
}

// MaxBranching implements astar.Graph.
func (g *Graph) MaxBranching() int { return 4 }

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
