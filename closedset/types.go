// Package closedset provides the visited ("closed") set of the A* search:
// the configurations that have already been expanded.
//
// It is a membership structure only. Nodes are added once, never removed during
// one search, and queried by configuration. Two interchangeable implementations
// are provided so alternative backing structures can be benchmarked:
//
//   - Hash: open-addressing index from package hashset (default).
//   - Tree: red-black tree ordered by the configuration's Less order.
package closedset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/pathnode"
)

var (
	// ErrDuplicate is the panic value for adding a configuration twice.
	ErrDuplicate = errors.New("closedset: configuration already closed")

	// ErrNilNode is the panic value for adding a nil node.
	ErrNilNode = errors.New("closedset: nil node")

	// ErrUnknownKind indicates ParseKind received an unrecognised name.
	ErrUnknownKind = errors.New("closedset: unknown kind")
)

// Kind selects a ClosedSet implementation.
type Kind int

const (
	// Hash backs the set with hashset.Index.
	Hash Kind = iota
	// Tree backs the set with a red-black tree.
	Tree
)

// Kinds lists every implementation, in declaration order.
var Kinds = []Kind{Hash, Tree}

// String returns the lower-case name used in configuration files.
func (k Kind) String() string {
	switch k {
	case Hash:
		return "hash"
	case Tree:
		return "tree"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Config carries the construction parameters shared by all implementations.
type Config struct {
	Capacity   int                      // initial index size hint (Hash only)
	Hasher     hashset.Hasher           // nil selects hashset.OneAtATime (Hash only)
	Statistics bool                     // enable call counters
	OnGrow     func(oldCap, newCap int) // index growth hook (Hash only)
}

// Stats counts calls per operation. Only maintained when Config.Statistics is set.
type Stats struct {
	Adds       uint64
	Finds      uint64
	Clears     uint64
	Collisions uint64 // probe collisions in the index (Hash only)
	Resizes    uint64 // index growths (Hash only)
}

// ClosedSet is the contract consumed by the A* loop.
type ClosedSet[S pathnode.State[S]] interface {
	// Add marks n.State as expanded. Panics with ErrDuplicate if it already is.
	Add(n *pathnode.Node[S])
	// Contains reports whether s has been expanded.
	Contains(s S) bool
	// Find returns the expanded node for s, or nil.
	Find(s S) *pathnode.Node[S]
	// Len returns the number of expanded configurations.
	Len() int
	// Clear forgets every configuration.
	Clear()
	// Stats returns the call counters.
	Stats() Stats
}

// New builds the implementation selected by kind. Unknown kinds fall back to Hash.
func New[S pathnode.State[S]](kind Kind, cfg Config) ClosedSet[S] {
	if kind == Tree {
		return NewTree[S](cfg)
	}

	return NewHash[S](cfg)
}

// Sub returns the counters accumulated since base was taken.
func (s Stats) Sub(base Stats) Stats {
	return Stats{
		Adds:       s.Adds - base.Adds,
		Finds:      s.Finds - base.Finds,
		Clears:     s.Clears - base.Clears,
		Collisions: s.Collisions - base.Collisions,
		Resizes:    s.Resizes - base.Resizes,
	}
}
