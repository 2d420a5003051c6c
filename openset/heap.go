package openset

import (
	"container/heap"

	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/pathnode"
)

// HeapSet is a frontier built on container/heap with lazy decrease-key.
//
// Relax does not move the existing heap entry. It pushes a new entry carrying
// the lowered G and leaves the old one in place. Since G only ever decreases,
// an entry is live exactly when its recorded g equals the node's current G;
// every other entry is stale and is discarded when it reaches the top.
type HeapSet[S pathnode.State[S]] struct {
	pq    entryPQ[S]
	index *hashset.Index[S]
	live  int // live entries in pq; must equal index.Len()
	stats bool
	st    Stats
}

// NewHeap returns an empty heap-ordered frontier.
func NewHeap[S pathnode.State[S]](cfg Config) *HeapSet[S] {
	return &HeapSet[S]{
		pq:    make(entryPQ[S], 0, 64),
		index: newIndex[S](cfg),
		stats: cfg.Statistics,
	}
}

func (o *HeapSet[S]) sync() {
	if o.live != o.index.Len() {
		panic(ErrOutOfSync)
	}
}

// prune pops stale entries until the top is live or the heap is empty.
func (o *HeapSet[S]) prune() {
	for len(o.pq) > 0 && o.pq[0].g != o.pq[0].node.G {
		heap.Pop(&o.pq)
		if o.stats {
			o.st.Stale++
		}
	}
}

// Add implements OpenSet.
func (o *HeapSet[S]) Add(n *pathnode.Node[S]) {
	if n == nil {
		panic(ErrNilNode)
	}
	if o.index.Contains(n.State) {
		panic(ErrDuplicate)
	}
	coll := o.index.Insert(n)
	heap.Push(&o.pq, heapEntry[S]{node: n, g: n.G})
	o.live++
	if o.stats {
		o.st.Adds++
		o.st.Collisions += uint64(coll)
	}
	o.sync()
}

// Best implements OpenSet.
func (o *HeapSet[S]) Best() *pathnode.Node[S] {
	if o.stats {
		o.st.Bests++
	}
	o.prune()
	if len(o.pq) == 0 {
		return nil
	}

	return o.pq[0].node
}

// RemoveBest implements OpenSet.
func (o *HeapSet[S]) RemoveBest() *pathnode.Node[S] {
	o.prune()
	if len(o.pq) == 0 {
		panic(ErrEmpty)
	}
	n := heap.Pop(&o.pq).(heapEntry[S]).node
	o.index.Erase(n.State)
	o.live--
	if o.stats {
		o.st.RemoveBests++
	}
	o.sync()

	return n
}

// Find implements OpenSet.
func (o *HeapSet[S]) Find(s S) *pathnode.Node[S] {
	if o.stats {
		o.st.Finds++
	}

	return o.index.Find(s)
}

// Relax implements OpenSet.
func (o *HeapSet[S]) Relax(n, parent *pathnode.Node[S], g pathnode.Cost) {
	if g >= n.G {
		panic(ErrNotImproved)
	}
	if o.index.Find(n.State) != n {
		panic(ErrNotMember)
	}
	n.G = g
	n.Parent = parent
	// the previous entry for n now records a higher g and turns stale
	heap.Push(&o.pq, heapEntry[S]{node: n, g: g})
	if o.stats {
		o.st.Relaxes++
	}
	o.sync()
}

// IsEmpty implements OpenSet.
func (o *HeapSet[S]) IsEmpty() bool { return o.live == 0 }

// Len implements OpenSet.
func (o *HeapSet[S]) Len() int { return o.live }

// Clear implements OpenSet.
func (o *HeapSet[S]) Clear() {
	clear(o.pq)
	o.pq = o.pq[:0]
	o.index.Clear()
	o.live = 0
	if o.stats {
		o.st.Clears++
	}
}

// Stats implements OpenSet.
func (o *HeapSet[S]) Stats() Stats {
	st := o.st
	if o.stats {
		st.Resizes = o.index.Resizes()
	}

	return st
}

// heapEntry is one (possibly stale) heap slot: the node and the G it was pushed with.
type heapEntry[S pathnode.State[S]] struct {
	node *pathnode.Node[S]
	g    pathnode.Cost
}

// entryPQ is a min-heap of heapEntry ordered like pathnode.Compare, using the
// recorded g instead of the node's current G.
type entryPQ[S pathnode.State[S]] []heapEntry[S]

// Len returns the number of entries, stale ones included.
func (pq entryPQ[S]) Len() int { return len(pq) }

// Less orders by recorded F, then H, then configuration.
func (pq entryPQ[S]) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	fa, fb := a.g+a.node.H, b.g+b.node.H
	if fa != fb {
		return fa < fb
	}
	if a.node.H != b.node.H {
		return a.node.H < b.node.H
	}
	if a.node.State != b.node.State {
		return a.node.State.Less(b.node.State)
	}

	// same node: the live (lower g) entry first
	return a.g < b.g
}

// Swap swaps two entries.
func (pq entryPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *entryPQ[S]) Push(x interface{}) { *pq = append(*pq, x.(heapEntry[S])) }

// Pop removes the last entry; called by heap.Pop.
func (pq *entryPQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = heapEntry[S]{}
	*pq = old[:n-1]

	return item
}
