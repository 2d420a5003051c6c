// Package hashset implements the open-addressing index that maps a
// configuration to the search node holding it.
//
// The table stores non-owning *pathnode.Node pointers in a flat slice and
// resolves collisions by linear probing. Deletion uses backward-shift
// compaction instead of tombstones, so lookups stop at the first empty slot.
//
// Capacity is always a prime from a fixed ladder (251 .. 2^31-1). The table
// grows to the next rung as soon as it is half full, re-inserting every live
// entry against the new capacity.
//
// Contract violations (inserting a configuration twice, erasing one that is
// not present) panic with ErrDuplicate / ErrAbsent: both mean the caller's
// open/closed bookkeeping is already broken.
package hashset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilestar/pathnode"
)

var (
	// ErrDuplicate is the panic value for inserting a configuration already present.
	ErrDuplicate = errors.New("hashset: duplicate configuration")

	// ErrAbsent is the panic value for erasing a configuration that is not present.
	ErrAbsent = errors.New("hashset: configuration not present")

	// ErrNilNode is the panic value for inserting a nil node.
	ErrNilNode = errors.New("hashset: nil node")

	// ErrTableFull is the panic value when growth would pass the top of the prime ladder.
	ErrTableFull = errors.New("hashset: capacity ladder exhausted")
)

// Index is an open-addressing hash table from configuration to node.
// Not safe for concurrent use.
type Index[S pathnode.State[S]] struct {
	table  []*pathnode.Node[S]
	count  int
	hasher Hasher
	scrap  []byte // reused buffer for AppendKey

	track      bool
	collisions uint64
	resizes    uint64
	onGrow     func(oldCap, newCap int)
}

// New returns an empty Index whose capacity is the smallest ladder prime
// greater than capacity. A nil hasher selects OneAtATime.
func New[S pathnode.State[S]](capacity int, hasher Hasher) *Index[S] {
	if hasher == nil {
		hasher = OneAtATime
	}
	size, ok := Prime(capacity)
	if !ok {
		panic(fmt.Sprintf("%s: requested %d", ErrTableFull, capacity))
	}

	return &Index[S]{
		table:  make([]*pathnode.Node[S], size),
		hasher: hasher,
	}
}

// OnGrow registers fn to be called after every growth with the old and new capacity.
func (x *Index[S]) OnGrow(fn func(oldCap, newCap int)) { x.onGrow = fn }

// TrackCollisions turns the running collision total on or off. It is off by
// default; Insert still reports the collisions of each call.
func (x *Index[S]) TrackCollisions(on bool) { x.track = on }

// Len returns the number of live entries.
func (x *Index[S]) Len() int { return x.count }

// Cap returns the current number of buckets.
func (x *Index[S]) Cap() int { return len(x.table) }

// Collisions returns the total number of occupied slots probed past by Insert
// while tracking was on.
func (x *Index[S]) Collisions() uint64 { return x.collisions }

// Resizes returns how many times the table has grown.
func (x *Index[S]) Resizes() uint64 { return x.resizes }

// home returns the ideal slot of s for the current capacity.
func (x *Index[S]) home(s S) int {
	x.scrap = s.AppendKey(x.scrap[:0])

	return int(x.hasher(x.scrap) % uint32(len(x.table)))
}

func (x *Index[S]) advance(i int) int {
	i++
	if i == len(x.table) {
		return 0
	}

	return i
}

// Insert stores n under n.State and returns the number of collisions met while
// probing. Panics with ErrDuplicate if the configuration is already present.
func (x *Index[S]) Insert(n *pathnode.Node[S]) int {
	if n == nil {
		panic(ErrNilNode)
	}
	coll := x.place(n)
	if x.track {
		x.collisions += uint64(coll)
	}
	if x.count >= len(x.table)/2 {
		x.grow()
	}

	return coll
}

// place probes from the home slot to the first empty one. Any entry in the
// way with the same configuration is a duplicate: with backward-shift erase
// an existing key always lies between its home slot and the next empty slot.
func (x *Index[S]) place(n *pathnode.Node[S]) int {
	coll := 0
	i := x.home(n.State)
	for x.table[i] != nil {
		if x.table[i].State == n.State {
			panic(ErrDuplicate)
		}
		coll++
		i = x.advance(i)
	}
	x.table[i] = n
	x.count++

	return coll
}

// grow moves every entry into a table of the next ladder capacity.
func (x *Index[S]) grow() {
	oldCap := len(x.table)
	size, ok := Prime(oldCap)
	if !ok {
		panic(ErrTableFull)
	}

	old := x.table
	x.table = make([]*pathnode.Node[S], size)
	x.count = 0
	for _, n := range old {
		if n != nil {
			x.place(n)
		}
	}
	x.resizes++
	if x.onGrow != nil {
		x.onGrow(oldCap, size)
	}
}

// slot returns the index holding s, or -1.
func (x *Index[S]) slot(s S) int {
	i := x.home(s)
	for x.table[i] != nil {
		if x.table[i].State == s {
			return i
		}
		i = x.advance(i)
	}

	return -1
}

// Find returns the node stored for s, or nil when s is absent.
func (x *Index[S]) Find(s S) *pathnode.Node[S] {
	if i := x.slot(s); i >= 0 {
		return x.table[i]
	}

	return nil
}

// Contains reports whether s is present.
func (x *Index[S]) Contains(s S) bool { return x.slot(s) >= 0 }

// Erase removes s and compacts the probe run that followed it.
// Panics with ErrAbsent if s is not present.
func (x *Index[S]) Erase(s S) {
	i := x.slot(s)
	if i < 0 {
		panic(ErrAbsent)
	}
	x.table[i] = nil
	x.count--

	// Backward shift: j is the hole. Scan the run after it; an entry whose home
	// d lies cyclically in (j, i] is already reachable and stays put, any other
	// entry moves into the hole, which then moves to i.
	j := i
	for {
		i = x.advance(i)
		if x.table[i] == nil {
			return
		}
		d := x.home(x.table[i].State)
		if (j < d && d <= i) || (d <= i && i < j) || (i < j && j < d) {
			continue
		}
		x.table[j] = x.table[i]
		x.table[i] = nil
		j = i
	}
}

// Clear removes every entry and keeps the current capacity.
func (x *Index[S]) Clear() {
	clear(x.table)
	x.count = 0
}

// Each calls fn for every live entry in table order until fn returns false.
func (x *Index[S]) Each(fn func(n *pathnode.Node[S]) bool) {
	for _, n := range x.table {
		if n != nil && !fn(n) {
			return
		}
	}
}
