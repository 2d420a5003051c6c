// Package arena implements a block allocator for search nodes.
//
// Nodes are handed out from a list of fixed-size blocks. Allocation is linear
// inside the current block and moves to a new block when the current one is
// exhausted. Blocks are never resized, so every pointer returned by Alloc stays
// valid until Reset: parent links between nodes can therefore be plain pointers.
//
// There is no per-object free. Reset releases everything at once and keeps the
// first block for reuse, so a solver that is reused across searches does not
// reallocate its warm-up block.
//
// Complexity:
//
//   - Alloc: O(1) amortised (one make([]T, BlockSize) every BlockSize calls).
//   - Reset: O(BlockSize) to zero the retained first block.
package arena

import (
	"errors"
	"fmt"
)

// DefaultBlockSize is the number of objects per block when WithBlockSize is not used.
const DefaultBlockSize = 10000

var (
	// ErrExhausted indicates the configured object limit has been reached.
	ErrExhausted = errors.New("arena: object limit exhausted")

	// ErrBadBlockSize indicates a non-positive block size.
	ErrBadBlockSize = errors.New("arena: block size must be positive")

	// ErrBadLimit indicates a negative object limit.
	ErrBadLimit = errors.New("arena: limit must be non-negative")
)

// Options configures an Arena.
type Options struct {
	BlockSize int // objects per block
	Limit     int // maximum live objects; 0 means unlimited
}

// Option is a functional option for New.
type Option func(*Options)

// WithBlockSize sets the number of objects per block. Panics on size <= 0.
func WithBlockSize(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadBlockSize.Error())
		}
		o.BlockSize = size
	}
}

// WithLimit caps the number of objects handed out between two resets.
// Zero disables the cap. Panics on a negative limit.
func WithLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadLimit.Error())
		}
		o.Limit = limit
	}
}

// Arena is a block allocator for values of type T. Not safe for concurrent use.
type Arena[T any] struct {
	blockSize int
	limit     int

	blocks [][]T // every block has len == cap == blockSize
	block  int   // index of the block currently allocated from
	next   int   // next free slot inside blocks[block]
	count  int   // objects handed out since the last Reset
}

// New returns an Arena with its first block already allocated.
func New[T any](opts ...Option) *Arena[T] {
	cfg := Options{BlockSize: DefaultBlockSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Arena[T]{
		blockSize: cfg.BlockSize,
		limit:     cfg.Limit,
		blocks:    [][]T{make([]T, cfg.BlockSize)},
	}
}

// Alloc returns a pointer to a zeroed, never-before-issued slot.
// It returns ErrExhausted once the configured limit has been reached.
func (a *Arena[T]) Alloc() (*T, error) {
	if a.limit > 0 && a.count >= a.limit {
		return nil, fmt.Errorf("%w: %d objects", ErrExhausted, a.limit)
	}
	if a.next == a.blockSize {
		a.block++
		if a.block == len(a.blocks) {
			a.blocks = append(a.blocks, make([]T, a.blockSize))
		}
		a.next = 0
	}

	p := &a.blocks[a.block][a.next]
	var zero T
	*p = zero // the first block is reused after Reset
	a.next++
	a.count++

	return p, nil
}

// Reset releases every object at once. The first block is kept and cleared;
// the others are dropped for the garbage collector.
func (a *Arena[T]) Reset() {
	clear(a.blocks[0])
	for i := 1; i < len(a.blocks); i++ {
		a.blocks[i] = nil
	}
	a.blocks = a.blocks[:1]
	a.block = 0
	a.next = 0
	a.count = 0
}

// Len returns the number of objects handed out since the last Reset.
func (a *Arena[T]) Len() int { return a.count }

// Blocks returns the number of blocks currently held.
func (a *Arena[T]) Blocks() int { return len(a.blocks) }

// BlockSize returns the configured objects per block.
func (a *Arena[T]) BlockSize() int { return a.blockSize }

// Limit returns the configured object limit (0 = unlimited).
func (a *Arena[T]) Limit() int { return a.limit }
