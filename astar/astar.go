package astar

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilestar/arena"
	"github.com/katalvlaran/tilestar/closedset"
	"github.com/katalvlaran/tilestar/openset"
	"github.com/katalvlaran/tilestar/pathnode"
)

// Solver runs A* searches over configurations of type S.
//
// A Solver owns its arena, frontier and closed set and reuses them across
// searches: every call to Search resets all three before creating the start
// node. A Solver is not safe for concurrent use; concurrent searches need
// independent Solvers.
type Solver[S pathnode.State[S]] struct {
	opts   Options
	log    *slog.Logger
	nodes  *arena.Arena[pathnode.Node[S]]
	open   openset.OpenSet[S]
	closed closedset.ClosedSet[S]
	succ   []Successor[S] // reused successor buffer

	phase    Phase
	expanded int
	st       Stats

	// structure counters at the start of the current search
	openBase   openset.Stats
	closedBase closedset.Stats
}

// New returns a Solver configured by opts.
func New[S pathnode.State[S]](opts ...Option) *Solver[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	s := &Solver[S]{
		opts: cfg,
		log:  log,
		nodes: arena.New[pathnode.Node[S]](
			arena.WithBlockSize(cfg.BlockSize),
			arena.WithLimit(cfg.MaxNodes),
		),
	}
	s.open = openset.New[S](cfg.OpenSet, openset.Config{
		Capacity:   cfg.IndexCapacity,
		Hasher:     cfg.Hasher,
		Statistics: cfg.Statistics,
		OnGrow:     s.onGrow("open"),
	})
	s.closed = closedset.New[S](cfg.ClosedSet, closedset.Config{
		Capacity:   cfg.IndexCapacity,
		Hasher:     cfg.Hasher,
		Statistics: cfg.Statistics,
		OnGrow:     s.onGrow("closed"),
	})

	return s
}

// Search runs A* on g from start using a fresh Solver configured by opts.
func Search[S pathnode.State[S]](g Graph[S], start S, opts ...Option) (Result[S], error) {
	return New[S](opts...).Search(g, start)
}

func (s *Solver[S]) onGrow(set string) func(oldCap, newCap int) {
	return func(oldCap, newCap int) {
		s.log.Debug("index grown", "set", set, "old_cap", oldCap, "new_cap", newCap)
	}
}

// Phase returns the state reached by the last search.
func (s *Solver[S]) Phase() Phase { return s.phase }

// ClosedCount returns the number of configurations expanded by the last search.
func (s *Solver[S]) ClosedCount() int { return s.closed.Len() }

// OpenCount returns the number of configurations left in the frontier by the last search.
func (s *Solver[S]) OpenCount() int { return s.open.Len() }

// Stats returns the statistics of the last search.
func (s *Solver[S]) Stats() Stats {
	st := s.st
	st.Nodes = s.nodes.Len()
	st.Blocks = s.nodes.Blocks()
	st.ClosedSize = s.closed.Len()
	st.OpenSize = s.open.Len()
	if s.opts.Statistics {
		st.Open = s.open.Stats().Sub(s.openBase)
		st.Closed = s.closed.Stats().Sub(s.closedBase)
	}

	return st
}

// reset empties every structure. The frontier and closed set hold pointers
// into the arena, so they are cleared first.
func (s *Solver[S]) reset() {
	s.open.Clear()
	s.closed.Clear()
	s.nodes.Reset()
	s.openBase = s.open.Stats()
	s.closedBase = s.closed.Stats()
	s.st = Stats{}
	s.expanded = 0
	s.phase = PhaseInitialized
}

// newNode allocates and initialises one node.
func (s *Solver[S]) newNode(state S, parent *pathnode.Node[S], g, h pathnode.Cost) (*pathnode.Node[S], error) {
	n, err := s.nodes.Alloc()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}
	n.Set(state, parent, g, h)
	if s.opts.Statistics {
		s.st.Created++
	}

	return n, nil
}

// Search finds a cheapest path from start to a goal configuration of g.
//
// The returned error is non-nil only when the search was aborted (node or
// expansion limit) or g is nil. An unreachable goal yields Found == false and
// a nil error.
//
// Loop, per iteration:
//  1. x = frontier best; if x is the goal, rebuild the path and stop.
//  2. move x from the frontier to the closed set.
//  3. for each successor y of x: skip it if closed; add a new node if y is
//     not in the frontier; otherwise relax the frontier node when x offers a
//     strictly cheaper route.
func (s *Solver[S]) Search(g Graph[S], start S) (Result[S], error) {
	if g == nil {
		return Result[S]{}, ErrNilGraph
	}
	s.reset()

	branching := g.MaxBranching()
	if cap(s.succ) < branching {
		s.succ = make([]Successor[S], 0, branching)
	}

	s.log.Debug("search started",
		"open_set", s.opts.OpenSet.String(),
		"closed_set", s.opts.ClosedSet.String(),
		"branching", branching)

	root, err := s.newNode(start, nil, 0, g.Heuristic(start))
	if err != nil {
		return s.abort(err)
	}
	s.open.Add(root)
	s.phase = PhaseRunning

	for !s.open.IsEmpty() {
		if s.opts.Statistics {
			s.st.Loops++
		}

		x := s.open.Best()
		if g.IsGoal(x.State) {
			return s.succeed(x), nil
		}
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			return s.abort(fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.expanded))
		}

		s.open.RemoveBest()
		s.closed.Add(x)
		s.expanded++
		if s.opts.Statistics {
			s.st.Expanded++
		}

		if err := s.expand(g, x, branching); err != nil {
			return s.abort(err)
		}
	}

	s.phase = PhaseFailed
	st := s.Stats()
	s.log.Debug("search finished", "phase", s.phase.String(),
		"expanded", s.expanded, "nodes", st.Nodes)

	return Result[S]{Stats: st}, nil
}

// expand handles the successors of the just-closed node x.
func (s *Solver[S]) expand(g Graph[S], x *pathnode.Node[S], branching int) error {
	s.succ = g.Successors(x.State, s.succ[:0])
	if len(s.succ) > branching {
		panic(ErrBranching)
	}

	stats := s.opts.Statistics
	for i := range s.succ {
		y := &s.succ[i]
		if y.Cost <= 0 {
			panic(ErrBadEdgeCost)
		}
		if stats {
			s.st.Generated++
		}
		if s.closed.Contains(y.State) {
			if stats {
				s.st.SkippedClosed++
			}
			continue
		}

		gy := x.G + y.Cost
		if n := s.open.Find(y.State); n != nil {
			if gy < n.G {
				s.open.Relax(n, x, gy)
				if stats {
					s.st.Relaxed++
				}
			} else if stats {
				s.st.Discarded++
			}
			continue
		}

		n, err := s.newNode(y.State, x, gy, y.H)
		if err != nil {
			return err
		}
		s.open.Add(n)
	}

	return nil
}

func (s *Solver[S]) succeed(goal *pathnode.Node[S]) Result[S] {
	s.phase = PhaseSucceeded
	res := Result[S]{
		Path:  goal.Path(),
		Cost:  goal.G,
		Found: true,
		Stats: s.Stats(),
	}
	s.log.Debug("search finished", "phase", s.phase.String(),
		"expanded", s.expanded, "nodes", res.Stats.Nodes,
		"cost", res.Cost, "length", len(res.Path)-1)

	return res
}

func (s *Solver[S]) abort(err error) (Result[S], error) {
	s.phase = PhaseAborted
	st := s.Stats()
	s.log.Debug("search aborted", "error", err,
		"expanded", s.expanded, "nodes", st.Nodes)

	return Result[S]{Stats: st}, err
}
