// Package astar defines the graph collaborator contract, configuration options,
// results and run statistics of the A* search engine.
//
// The search operates on an implicit graph: vertices are configurations of any
// type satisfying pathnode.State, and edges are produced on demand by a Graph
// collaborator. The collaborator owns the domain (move generation, goal test,
// heuristic); the engine owns the frontier, the closed set and node storage.
//
// Preconditions on the collaborator (not verified):
//
//   - Heuristic is admissible and consistent. Closed configurations are never
//     reopened, so an inconsistent heuristic may yield a suboptimal path.
//   - Successors never returns more than MaxBranching entries.
//   - Edge costs are positive.
//
// Options:
//
//   - WithOpenSet / WithClosedSet: backing implementation (default Hash / Hash).
//   - WithBlockSize:     nodes per arena block (default arena.DefaultBlockSize).
//   - WithIndexCapacity: initial hash index size hint (default DefaultIndexCapacity).
//   - WithHasher:        hash function for the hash indexes (default hashset.OneAtATime).
//   - WithStatistics:    maintain call counters.
//   - WithMaxNodes:      cap on created nodes; exceeding it aborts with ErrResourceExhausted.
//   - WithMaxExpansions: cap on expansions; exceeding it aborts with ErrExpansionLimit.
//   - WithLogger:        *slog.Logger for Debug diagnostics (default slog.Default()).
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the graph collaborator is nil.
//   - ErrResourceExhausted if node storage reached WithMaxNodes.
//   - ErrExpansionLimit    if WithMaxExpansions was reached before the goal.
//
// An unreachable goal is not an error: Result.Found is false and the phase is
// PhaseFailed.
package astar

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilestar/arena"
	"github.com/katalvlaran/tilestar/closedset"
	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/openset"
	"github.com/katalvlaran/tilestar/pathnode"
)

// DefaultIndexCapacity is the initial size hint of the open and closed indexes.
const DefaultIndexCapacity = 1 << 10

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Search. Only an
	// untyped nil interface is detected; a typed nil pointer is the caller's bug.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrResourceExhausted indicates node storage could not grow any further.
	// The returned error also wraps arena.ErrExhausted.
	ErrResourceExhausted = errors.New("astar: node storage exhausted")

	// ErrExpansionLimit indicates the configured expansion cap was reached.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Contract violations by the graph collaborator, used as panic values.
var (
	// ErrBranching is raised when Successors returns more entries than MaxBranching.
	ErrBranching = errors.New("astar: successors exceed declared branching factor")

	// ErrBadEdgeCost is raised when Successors returns a non-positive edge cost.
	ErrBadEdgeCost = errors.New("astar: edge cost must be positive")
)

// Option validation errors. Option constructors panic with their message.
var (
	ErrBadBlockSize     = errors.New("astar: block size must be positive")
	ErrBadCapacity      = errors.New("astar: index capacity out of range")
	ErrBadMaxNodes      = errors.New("astar: node limit must be non-negative")
	ErrBadMaxExpansions = errors.New("astar: expansion limit must be non-negative")
)

// Successor is one outgoing edge of a configuration as reported by a Graph.
type Successor[S pathnode.State[S]] struct {
	State S             // neighbouring configuration
	Cost  pathnode.Cost // positive edge cost
	H     pathnode.Cost // heuristic of State
}

// Graph is the collaborator that defines the searched state space.
type Graph[S pathnode.State[S]] interface {
	// IsGoal reports whether s is the goal configuration.
	IsGoal(s S) bool
	// Heuristic returns the admissible, non-negative estimate from s to the goal.
	Heuristic(s S) pathnode.Cost
	// Successors appends the neighbours of s to dst and returns the extended slice.
	Successors(s S, dst []Successor[S]) []Successor[S]
	// MaxBranching is an upper bound on the number of successors of any configuration.
	MaxBranching() int
}

// Phase is the state of a Solver.
type Phase int

const (
	// PhaseInitialized: no search has run since the last reset.
	PhaseInitialized Phase = iota
	// PhaseRunning: the main loop is executing.
	PhaseRunning
	// PhaseSucceeded: the goal was reached.
	PhaseSucceeded
	// PhaseFailed: the frontier emptied without reaching the goal.
	PhaseFailed
	// PhaseAborted: a resource or expansion limit stopped the search.
	PhaseAborted
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	case PhaseAborted:
		return "aborted"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Options configures a Solver.
type Options struct {
	OpenSet       openset.Kind   // frontier implementation
	ClosedSet     closedset.Kind // visited-set implementation
	BlockSize     int            // nodes per arena block
	IndexCapacity int            // initial size hint of the hash indexes
	Hasher        hashset.Hasher // nil selects hashset.OneAtATime
	Statistics    bool           // maintain call counters
	MaxNodes      int            // 0 = unlimited
	MaxExpansions int            // 0 = unlimited
	Logger        *slog.Logger   // nil selects slog.Default()
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithOpenSet selects the frontier implementation.
func WithOpenSet(kind openset.Kind) Option {
	return func(o *Options) { o.OpenSet = kind }
}

// WithClosedSet selects the visited-set implementation.
func WithClosedSet(kind closedset.Kind) Option {
	return func(o *Options) { o.ClosedSet = kind }
}

// WithBlockSize sets the number of nodes per arena block. Panics on size <= 0.
func WithBlockSize(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadBlockSize.Error())
		}
		o.BlockSize = size
	}
}

// WithIndexCapacity sets the initial size hint of the hash indexes. The actual
// capacity is the next prime of the ladder. Panics on a negative value or one
// at or past the top of the ladder.
func WithIndexCapacity(n int) Option {
	return func(o *Options) {
		if _, ok := hashset.Prime(n); n < 0 || !ok {
			panic(ErrBadCapacity.Error())
		}
		o.IndexCapacity = n
	}
}

// WithHasher selects the hash function of the hash indexes.
func WithHasher(h hashset.Hasher) Option {
	return func(o *Options) { o.Hasher = h }
}

// WithStatistics enables call counters in Stats.
func WithStatistics() Option {
	return func(o *Options) { o.Statistics = true }
}

// WithMaxNodes caps the number of nodes created per search. Zero disables the cap.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxNodes.Error())
		}
		o.MaxNodes = n
	}
}

// WithMaxExpansions caps the number of expansions per search. Zero disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger used for Debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the configuration used when no option is given:
// hash-backed open and closed sets, arena.DefaultBlockSize, DefaultIndexCapacity,
// one-at-a-time hashing, no counters and no limits.
func DefaultOptions() Options {
	return Options{
		OpenSet:       openset.Hash,
		ClosedSet:     closedset.Hash,
		BlockSize:     arena.DefaultBlockSize,
		IndexCapacity: DefaultIndexCapacity,
	}
}

// Stats describes one search.
//
// Nodes, Blocks, Closed-set and frontier sizes are always reported. The other
// counters, and the per-structure Open and Closed counters, stay zero unless
// WithStatistics was given.
type Stats struct {
	Loops         uint64 // iterations of the main loop
	Expanded      uint64 // configurations moved to the closed set
	Generated     uint64 // successors produced by the graph
	Created       uint64 // nodes allocated, the start node included
	Relaxed       uint64 // frontier nodes whose cost improved
	SkippedClosed uint64 // successors ignored because already closed
	Discarded     uint64 // successors ignored because not cheaper

	Nodes      int // nodes held by the arena
	Blocks     int // arena blocks held
	ClosedSize int // configurations in the closed set
	OpenSize   int // configurations left in the frontier

	Open   openset.Stats
	Closed closedset.Stats
}

// Result is the outcome of a search.
type Result[S pathnode.State[S]] struct {
	Path  []S           // start..goal inclusive; nil when not found
	Cost  pathnode.Cost // total edge cost of Path
	Found bool          // false when the goal is unreachable or the search aborted
	Stats Stats
}
