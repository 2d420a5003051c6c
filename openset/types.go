// Package openset provides the frontier ("open set") of the A* search.
//
// A frontier pairs two structures that must always hold exactly the same nodes:
//
//   - an ordering structure that yields the node with minimal F (ties broken by
//     smaller H, then by the configuration order, see pathnode.Compare),
//   - a lookup index from configuration to node, independent of the ordering.
//
// Every mutation checks that both cardinalities still agree and panics with
// ErrOutOfSync otherwise.
//
// Implementations (selectable with Kind):
//
//   - Hash: red-black tree ordering + hashset.Index lookup (default).
//   - Tree: red-black tree ordering + red-black tree lookup keyed by configuration.
//   - Heap: binary heap with lazy decrease-key + hashset.Index lookup. Relax pushes
//     a fresh entry and leaves the old one behind; stale entries are recognised by
//     their recorded G and dropped when they reach the top.
//
// All three produce the same extraction order, hence the same search paths.
package openset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/pathnode"
)

var (
	// ErrEmpty is the panic value for RemoveBest on an empty frontier.
	ErrEmpty = errors.New("openset: frontier is empty")

	// ErrNilNode is the panic value for adding a nil node.
	ErrNilNode = errors.New("openset: nil node")

	// ErrDuplicate is the panic value for adding a configuration already in the frontier.
	ErrDuplicate = errors.New("openset: configuration already in frontier")

	// ErrNotImproved is the panic value for Relax with a cost that is not strictly lower.
	ErrNotImproved = errors.New("openset: relaxed cost is not lower")

	// ErrNotMember is the panic value for Relax on a node that is not in the frontier.
	ErrNotMember = errors.New("openset: node is not in frontier")

	// ErrOutOfSync is the panic value when ordering and index cardinalities diverge.
	ErrOutOfSync = errors.New("openset: ordering and index out of sync")

	// ErrUnknownKind indicates ParseKind received an unrecognised name.
	ErrUnknownKind = errors.New("openset: unknown kind")
)

// Kind selects an OpenSet implementation.
type Kind int

const (
	// Hash orders with a red-black tree and looks up with hashset.Index.
	Hash Kind = iota
	// Tree orders and looks up with red-black trees.
	Tree
	// Heap orders with a lazily updated binary heap and looks up with hashset.Index.
	Heap
)

// Kinds lists every implementation, in declaration order.
var Kinds = []Kind{Hash, Tree, Heap}

// String returns the lower-case name used in configuration files.
func (k Kind) String() string {
	switch k {
	case Hash:
		return "hash"
	case Tree:
		return "tree"
	case Heap:
		return "heap"
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
	Capacity   int                      // initial index size hint (Hash, Heap)
	Hasher     hashset.Hasher           // nil selects hashset.OneAtATime (Hash, Heap)
	Statistics bool                     // enable call counters
	OnGrow     func(oldCap, newCap int) // index growth hook (Hash, Heap)
}

// Stats counts calls per operation. Only maintained when Config.Statistics is set.
type Stats struct {
	Adds        uint64
	Bests       uint64
	RemoveBests uint64
	Finds       uint64
	Relaxes     uint64
	Clears      uint64
	Stale       uint64 // stale heap entries discarded (Heap only)
	Collisions  uint64 // probe collisions in the index (Hash, Heap)
	Resizes     uint64 // index growths (Hash, Heap)
}

// OpenSet is the contract consumed by the A* loop.
type OpenSet[S pathnode.State[S]] interface {
	// Add inserts n. Panics with ErrDuplicate if n.State is already present.
	Add(n *pathnode.Node[S])
	// Best returns the minimal node without removing it, or nil when empty.
	Best() *pathnode.Node[S]
	// RemoveBest removes and returns the minimal node. Panics with ErrEmpty.
	RemoveBest() *pathnode.Node[S]
	// Find returns the frontier node holding s, or nil.
	Find(s S) *pathnode.Node[S]
	// Relax lowers n.G to g, sets n.Parent to parent and repositions n.
	// Panics with ErrNotImproved unless g < n.G, and with ErrNotMember if n is
	// not in the frontier.
	Relax(n, parent *pathnode.Node[S], g pathnode.Cost)
	// IsEmpty reports whether the frontier holds no node.
	IsEmpty() bool
	// Len returns the number of nodes in the frontier.
	Len() int
	// Clear removes every node.
	Clear()
	// Stats returns the call counters.
	Stats() Stats
}

// New builds the implementation selected by kind. Unknown kinds fall back to Hash.
func New[S pathnode.State[S]](kind Kind, cfg Config) OpenSet[S] {
	switch kind {
	case Tree:
		return NewTree[S](cfg)
	case Heap:
		return NewHeap[S](cfg)
	default:
		return NewHash[S](cfg)
	}
}

// newIndex builds the lookup index shared by Hash and Heap.
func newIndex[S pathnode.State[S]](cfg Config) *hashset.Index[S] {
	x := hashset.New[S](cfg.Capacity, cfg.Hasher)
	x.TrackCollisions(cfg.Statistics)
	if cfg.OnGrow != nil {
		x.OnGrow(cfg.OnGrow)
	}

	return x
}

// nodeComparator adapts pathnode.Compare to the gods comparator signature.
func nodeComparator[S pathnode.State[S]](a, b interface{}) int {
	return pathnode.Compare(a.(*pathnode.Node[S]), b.(*pathnode.Node[S]))
}

// stateComparator adapts pathnode.CompareStates to the gods comparator signature.
func stateComparator[S pathnode.State[S]](a, b interface{}) int {
	return pathnode.CompareStates(a.(S), b.(S))
}

// Sub returns the counters accumulated since base was taken.
func (s Stats) Sub(base Stats) Stats {
	return Stats{
		Adds:        s.Adds - base.Adds,
		Bests:       s.Bests - base.Bests,
		RemoveBests: s.RemoveBests - base.RemoveBests,
		Finds:       s.Finds - base.Finds,
		Relaxes:     s.Relaxes - base.Relaxes,
		Clears:      s.Clears - base.Clears,
		Stale:       s.Stale - base.Stale,
		Collisions:  s.Collisions - base.Collisions,
		Resizes:     s.Resizes - base.Resizes,
	}
}
