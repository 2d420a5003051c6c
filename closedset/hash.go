package closedset

import (
	"github.com/katalvlaran/tilestar/hashset"
	"github.com/katalvlaran/tilestar/pathnode"
)

// HashSet is a ClosedSet on top of hashset.Index.
type HashSet[S pathnode.State[S]] struct {
	index *hashset.Index[S]
	stats bool
	st    Stats
}

// NewHash returns an empty hash-backed closed set.
func NewHash[S pathnode.State[S]](cfg Config) *HashSet[S] {
	c := &HashSet[S]{
		index: hashset.New[S](cfg.Capacity, cfg.Hasher),
		stats: cfg.Statistics,
	}
	c.index.TrackCollisions(cfg.Statistics)
	if cfg.OnGrow != nil {
		c.index.OnGrow(cfg.OnGrow)
	}

	return c
}

// Add implements ClosedSet.
func (c *HashSet[S]) Add(n *pathnode.Node[S]) {
	if n == nil {
		panic(ErrNilNode)
	}
	if c.index.Contains(n.State) {
		panic(ErrDuplicate)
	}
	coll := c.index.Insert(n)
	if c.stats {
		c.st.Adds++
		c.st.Collisions += uint64(coll)
	}
}

// Contains implements ClosedSet.
func (c *HashSet[S]) Contains(s S) bool {
	if c.stats {
		c.st.Finds++
	}

	return c.index.Contains(s)
}

// Find implements ClosedSet.
func (c *HashSet[S]) Find(s S) *pathnode.Node[S] {
	if c.stats {
		c.st.Finds++
	}

	return c.index.Find(s)
}

// Len implements ClosedSet.
func (c *HashSet[S]) Len() int { return c.index.Len() }

// Clear implements ClosedSet.
func (c *HashSet[S]) Clear() {
	if c.stats {
		c.st.Clears++
	}
	c.index.Clear()
}

// Stats implements ClosedSet.
func (c *HashSet[S]) Stats() Stats {
	st := c.st
	if c.stats {
		st.Resizes = c.index.Resizes()
	}

	return st
}
