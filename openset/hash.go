package openset

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/pathnode"
)

// HashSet orders nodes in a red-black tree and finds them through hashset.Index.
type HashSet[S pathnode.State[S]] struct {
	order *redblacktree.Tree // *pathnode.Node[S] keys, nil values
	index *hashset.Index[S]
	stats bool
	st    Stats
}

// NewHash returns an empty hash-indexed frontier.
func NewHash[S pathnode.State[S]](cfg Config) *HashSet[S] {
	return &HashSet[S]{
		order: redblacktree.NewWith(nodeComparator[S]),
		index: newIndex[S](cfg),
		stats: cfg.Statistics,
	}
}

func (o *HashSet[S]) sync() {
	if o.order.Size() != o.index.Len() {
		panic(ErrOutOfSync)
	}
}

// Add implements OpenSet.
func (o *HashSet[S]) Add(n *pathnode.Node[S]) {
	if n == nil {
		panic(ErrNilNode)
	}
	if o.index.Contains(n.State) {
		panic(ErrDuplicate)
	}
	coll := o.index.Insert(n)
	o.order.Put(n, nil)
	if o.stats {
		o.st.Adds++
		o.st.Collisions += uint64(coll)
	}
	o.sync()
}

// Best implements OpenSet.
func (o *HashSet[S]) Best() *pathnode.Node[S] {
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
func (o *HashSet[S]) RemoveBest() *pathnode.Node[S] {
	left := o.order.Left()
	if left == nil {
		panic(ErrEmpty)
	}
	n := left.Key.(*pathnode.Node[S])
	o.index.Erase(n.State)
	o.order.Remove(n)
	if o.stats {
		o.st.RemoveBests++
	}
	o.sync()

	return n
}

// Find implements OpenSet.
func (o *HashSet[S]) Find(s S) *pathnode.Node[S] {
	if o.stats {
		o.st.Finds++
	}

	return o.index.Find(s)
}

// Relax implements OpenSet. The index is left alone: the configuration does not change.
func (o *HashSet[S]) Relax(n, parent *pathnode.Node[S], g pathnode.Cost) {
	if g >= n.G {
		panic(ErrNotImproved)
	}
	// remove under the old key, reinsert under the new one
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
func (o *HashSet[S]) IsEmpty() bool { return o.order.Empty() }

// Len implements OpenSet.
func (o *HashSet[S]) Len() int { return o.order.Size() }

// Clear implements OpenSet.
func (o *HashSet[S]) Clear() {
	o.order.Clear()
	o.index.Clear()
	if o.stats {
		o.st.Clears++
	}
}

// Stats implements OpenSet.
func (o *HashSet[S]) Stats() Stats {
	st := o.st
	if o.stats {
		st.Resizes = o.index.Resizes()
	}

	return st
}
