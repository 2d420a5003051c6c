package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/pathnode"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S any] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S pathnode.State[S]] struct {
	graph astar.Graph[S]
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem[S]
	succ  []astar.Successor[S]
	res   *BFSResult[S]
}

// BFS runs breadth-first search on g starting from start, applying any number
// of functional Options. The partial result is returned with every error.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ErrStateLimit past WithMaxStates, or the context error on cancellation.
func BFS[S pathnode.State[S]](g astar.Graph[S], start S, opts ...Option) (*BFSResult[S], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		succ:  make([]astar.Successor[S], 0, g.MaxBranching()),
		res: &BFSResult[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start state (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[S]{state: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.state)
		if w.graph.IsGoal(item.state) && !w.res.Found {
			w.res.Goal, w.res.Found = item.state, true
			if w.opts.StopAtGoal {
				return nil
			}
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
		// release the consumed prefix once it dominates the slice
		if head > 1024 && head*2 > len(w.queue) {
			w.queue = append(w.queue[:0], w.queue[head+1:]...)
			head = -1
		}
	}

	return nil
}

// enqueueSuccessors applies MaxDepth and MaxStates and enqueues each unseen
// successor.
func (w *walker[S]) enqueueSuccessors(item queueItem[S]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	w.succ = w.graph.Successors(item.state, w.succ[:0])
	for _, s := range w.succ {
		if _, seen := w.res.Depth[s.State]; seen {
			continue
		}
		if w.opts.MaxStates > 0 && len(w.res.Depth) >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d states", ErrStateLimit, w.opts.MaxStates)
		}
		w.res.Depth[s.State] = next
		w.res.Parent[s.State] = item.state
		w.queue = append(w.queue, queueItem[S]{state: s.State, depth: next})
	}

	return nil
}
