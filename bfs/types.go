package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilestar/pathnode"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit is returned when more states than WithMaxStates were discovered.
	ErrStateLimit = errors.New("bfs: state limit exceeded")

	// ErrNotReached is returned by PathTo for a state BFS never discovered.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, caps the number of discovered states.
	MaxStates int

	// StopAtGoal ends the traversal at the first goal state dequeued.
	StopAtGoal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no state limit (MaxStates == 0)
//   - full traversal (StopAtGoal == false).
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates fails the traversal once more than n states were discovered.
// Zero disables the limit; a negative n is an ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxStates = n
	}
}

// WithStopAtGoal ends the traversal when a goal state is dequeued.
func WithStopAtGoal() Option {
	return func(o *BFSOptions) { o.StopAtGoal = true }
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in edges) from the start.
//   - Parent: map from state to its predecessor in the BFS tree.
//   - Goal, Found: the first goal state dequeued, if any.
type BFSResult[S pathnode.State[S]] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Goal   S
	Found  bool
}

// PathTo reconstructs the path from the start state to dest.
// Returns ErrNotReached if dest was not discovered.
func (r *BFSResult[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
