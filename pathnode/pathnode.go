// Package pathnode defines the search node record shared by every frontier,
// visited-set and arena implementation in tilestar.
//
// A Node wraps one configuration (State) of an implicitly defined graph with:
//
//   - G:      cost of the best known route from the start configuration,
//   - H:      heuristic estimate of the remaining cost (fixed at creation),
//   - Parent: non-owning back-reference to the predecessor on the best known route.
//
// F = G + H is never stored; every comparison goes through Node.F so it is
// computed identically everywhere.
//
// Nodes are owned by an arena (see package arena) and are never freed one by one,
// so Parent pointers stay valid for the whole lifetime of a search.
package pathnode

import "slices"

// Cost is the numeric type shared by path costs (G) and heuristic estimates (H).
type Cost = int64

// State is the constraint every configuration type must satisfy.
//
// Implementations must be fixed-size value types:
//
//   - equality (comparable) identifies two configurations as the same vertex,
//   - Less is a strict total order used for deterministic tie-breaking and for
//     ordered (tree) containers,
//   - AppendKey appends a stable byte representation covering every byte of the
//     configuration; it feeds the open-addressing hash.
type State[S any] interface {
	comparable
	Less(other S) bool
	AppendKey(dst []byte) []byte
}

// Node is one vertex of the search tree.
type Node[S State[S]] struct {
	State  S        // configuration represented by this node
	Parent *Node[S] // predecessor on the best known route; nil for the start node
	G      Cost     // cost from start along the best known route
	H      Cost     // heuristic estimate to the goal
}

// Set initialises every field of n in one call.
func (n *Node[S]) Set(state S, parent *Node[S], g, h Cost) {
	n.State = state
	n.Parent = parent
	n.G = g
	n.H = h
}

// F returns the estimated total cost G + H.
func (n *Node[S]) F() Cost { return n.G + n.H }

// Depth returns the number of edges between n and the start node.
func (n *Node[S]) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}

	return d
}

// Path walks the Parent chain from n back to the start node and returns the
// configurations in start→n order.
func (n *Node[S]) Path() []S {
	if n == nil {
		return nil
	}
	path := make([]S, 0, n.Depth()+1)
	for p := n; p != nil; p = p.Parent {
		path = append(path, p.State)
	}
	slices.Reverse(path)

	return path
}

// Compare orders nodes for frontier extraction:
//
//  1. smaller F first,
//  2. on equal F, smaller H first (deeper nodes are preferred),
//  3. on equal H, the configuration order decides.
//
// Returns -1, 0 or +1. Two distinct frontier members always hold distinct
// configurations, so 0 is only returned for a node compared with itself
// (or with a node holding the same configuration and costs).
func Compare[S State[S]](a, b *Node[S]) int {
	if fa, fb := a.F(), b.F(); fa != fb {
		if fa < fb {
			return -1
		}
		return 1
	}
	if a.H != b.H {
		if a.H < b.H {
			return -1
		}
		return 1
	}

	return CompareStates(a.State, b.State)
}

// CompareStates turns the Less order of S into a three-way comparison.
func CompareStates[S State[S]](a, b S) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
