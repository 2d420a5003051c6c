package openset

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/tilestar/pathnode"
)

// TreeSet orders nodes in one red-black tree and looks them up in a second one
// keyed by configuration.
type TreeSet[S pathnode.State[S]] struct {
	order  *redblacktree.Tree // *pathnode.Node[S] -> nil
	lookup *redblacktree.Tree // S -> *pathnode.Node[S]
	stats  bool
	st     Stats
}

// NewTree returns an empty tree-indexed frontier. Capacity, Hasher and OnGrow
// in cfg are ignored.
func NewTree[S pathnode.State[S]](cfg Config) *TreeSet[S] {
	return &TreeSet[S]{
		order:  redblacktree.NewWith(nodeComparator[S]),
		lookup: redblacktree.NewWith(stateComparator[S]),
		stats:  cfg.Statistics,
	}
}

func (o *TreeSet[S]) sync() {
	if o.order.Size() != o.lookup.Size() {
		panic(ErrOutOfSync)
	}
}

// Add implements OpenSet.
func (o *TreeSet[S]) Add(n *pathnode.Node[S]) {
	if n == nil {
		panic(ErrNilNode)
	}
	if _, found := o.lookup.Get(n.State); found {
		panic(ErrDuplicate)
	}
	o.lookup.Put(n.State, n)
	o.order.Put(n, nil)
	if o.stats {
		o.st.Adds++
	}
	o.sync()
}

// Best implements OpenSet.
func (o *TreeSet[S]) Best() *pathnode.Node[S] {
	if o.stats {
		o.st.Bests++
	}
	left := o.order.Left()
	if left == nil {
		return nil
	}

	return left.Key.(*pathnode.Node[S])
}

// RemoveBest implements OpenSet.
func (o *TreeSet[S]) RemoveBest() *pathnode.Node[S] {
	left := o.order.Left()
	if left == nil {
		panic(ErrEmpty)
	}
	n := left.Key.(*pathnode.Node[S])
	o.lookup.Remove(n.State)
	o.order.Remove(n)
	if o.stats {
		o.st.RemoveBests++
	}
	o.sync()

	return n
}

// Find implements OpenSet.
func (o *TreeSet[S]) Find(s S) *pathnode.Node[S] {
	if o.stats {
		o.st.Finds++
	}
	v, found := o.lookup.Get(s)
	if !found {
		return nil
	}

	return v.(*pathnode.Node[S])
}

// Relax implements OpenSet.
func (o *TreeSet[S]) Relax(n, parent *pathnode.Node[S], g pathnode.Cost) {
	if g >= n.G {
		panic(ErrNotImproved)
	}
	size := o.order.Size()
	o.order.Remove(n)
	if o.order.Size() == size {
		panic(ErrNotMember)
	}
	n.G = g
	n.Parent = parent
	o.order.Put(n, nil)
	if o.stats {
		o.st.Relaxes++
	}
	o.sync()
}

// IsEmpty implements OpenSet.
func (o *TreeSet[S]) IsEmpty() bool { return o.order.Empty() }

// Len implements OpenSet.
func (o *TreeSet[S]) Len() int { return o.order.Size() }

// Clear implements OpenSet.
func (o *TreeSet[S]) Clear() {
	o.order.Clear()
	o.lookup.Clear()
	if o.stats {
		o.st.Clears++
	}
}

// Stats implements OpenSet.
func (o *TreeSet[S]) Stats() Stats { return o.st }
