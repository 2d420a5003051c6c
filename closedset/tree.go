package closedset

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/tilestar/pathnode"
)

// TreeSet is a ClosedSet on top of a red-black tree keyed by configuration.
type TreeSet[S pathnode.State[S]] struct {
	tree  *redblacktree.Tree
	stats bool
	st    Stats
}

// NewTree returns an empty tree-backed closed set. Capacity, Hasher and OnGrow
// in cfg are ignored.
func NewTree[S pathnode.State[S]](cfg Config) *TreeSet[S] {
	return &TreeSet[S]{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return pathnode.CompareStates(a.(S), b.(S))
		}),
		stats: cfg.Statistics,
	}
}

// Add implements ClosedSet.
func (c *TreeSet[S]) Add(n *pathnode.Node[S]) {
	if n == nil {
		panic(ErrNilNode)
	}
	if _, found := c.tree.Get(n.State); found {
		panic(ErrDuplicate)
	}
	c.tree.Put(n.State, n)
	if c.stats {
		c.st.Adds++
	}
}

// Contains implements ClosedSet.
func (c *TreeSet[S]) Contains(s S) bool {
	if c.stats {
		c.st.Finds++
	}
	_, found := c.tree.Get(s)

	return found
}

// Find implements ClosedSet.
func (c *TreeSet[S]) Find(s S) *pathnode.Node[S] {
	if c.stats {
		c.st.Finds++
	}
	v, found := c.tree.Get(s)
	if !found {
		return nil
	}

	return v.(*pathnode.Node[S])
}

// Len implements ClosedSet.
func (c *TreeSet[S]) Len() int { return c.tree.Size() }

// Clear implements ClosedSet.
func (c *TreeSet[S]) Clear() {
	if c.stats {
		c.st.Clears++
	}
	c.tree.Clear()
}

// Stats implements ClosedSet.
func (c *TreeSet[S]) Stats() Stats { return c.st }
