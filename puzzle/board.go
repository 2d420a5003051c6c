// Package puzzle implements the sliding-tile puzzle as an A* search collaborator.
//
// A board of width w holds the tiles 1..w*w-1 and one blank (0). The goal is
// the row-major arrangement 1, 2, ..., w*w-1 followed by the blank. A move
// slides a tile orthogonally adjacent to the blank into it, at cost 1.
//
// Boards are fixed-size values (Board is [MaxCells]uint8 whatever the width);
// cells past w*w are always zero, so equal boards compare equal with ==.
package puzzle

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MinWidth is the smallest supported board width.
	MinWidth = 2
	// MaxWidth is the largest supported board width.
	MaxWidth = 5
	// MaxCells is the number of cells of the largest board.
	MaxCells = MaxWidth * MaxWidth
)

var (
	// ErrBadWidth indicates a width outside [MinWidth, MaxWidth].
	ErrBadWidth = errors.New("puzzle: width out of range")

	// ErrBadBoard indicates a board that is not a permutation of 0..w*w-1.
	ErrBadBoard = errors.New("puzzle: invalid board")
)

// Board is one configuration. Cell i holds the tile at row i/w, column i%w.
type Board [MaxCells]uint8

// Less orders boards lexicographically by cell.
func (b Board) Less(o Board) bool { return bytes.Compare(b[:], o[:]) < 0 }

// AppendKey appends every cell of b to dst.
func (b Board) AppendKey(dst []byte) []byte { return append(dst, b[:]...) }

// Goal returns the solved board of the given width. It panics on an invalid width.
func Goal(width int) Board {
	mustWidth(width)
	var b Board
	n := width * width
	for i := 0; i < n-1; i++ {
		b[i] = uint8(i + 1)
	}

	return b
}

// FromCells builds a board from row-major cells.
func FromCells(width int, cells []uint8) (Board, error) {
	var b Board
	if err := checkWidth(width); err != nil {
		return b, err
	}
	if len(cells) != width*width {
		return b, errors.Wrapf(ErrBadBoard, "%d cells for width %d", len(cells), width)
	}
	copy(b[:], cells)

	return b, Validate(width, b)
}

// Validate checks that b holds each of 0..w*w-1 exactly once and zero padding.
func Validate(width int, b Board) error {
	if err := checkWidth(width); err != nil {
		return err
	}
	n := width * width
	var seen [MaxCells]bool
	for i := 0; i < n; i++ {
		t := int(b[i])
		if t >= n {
			return errors.Wrapf(ErrBadBoard, "tile %d at cell %d exceeds %d", t, i, n-1)
		}
		if seen[t] {
			return errors.Wrapf(ErrBadBoard, "tile %d repeated", t)
		}
		seen[t] = true
	}
	for i := n; i < MaxCells; i++ {
		if b[i] != 0 {
			return errors.Wrapf(ErrBadBoard, "non-zero padding at cell %d", i)
		}
	}

	return nil
}

// Blank returns the cell index of the blank, or -1 when there is none.
func Blank(width int, b Board) int {
	n := width * width
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return i
		}
	}

	return -1
}

// Solvable reports whether the goal can be reached from b.
//
// With an odd width, moves preserve the parity of the tile inversion count.
// With an even width, a vertical move flips that parity and moves the blank
// one row, so inversions plus the blank's distance from the bottom row keeps
// its parity.
func Solvable(width int, b Board) bool {
	n := width * width
	inv := 0
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			if b[j] != 0 && b[j] < b[i] {
				inv++
			}
		}
	}
	if width%2 == 1 {
		return inv%2 == 0
	}
	blankRow := Blank(width, b) / width

	return (inv+width-1-blankRow)%2 == 0
}

// MovedTile returns the tile that slid between two consecutive boards of a
// path, or 0 when they are not one move apart.
func MovedTile(from, to Board) uint8 {
	for i := range from {
		if from[i] == 0 && to[i] != 0 {
			return to[i]
		}
	}

	return 0
}

// Moves converts a path into the sequence of tiles moved along it.
func Moves(path []Board) []uint8 {
	if len(path) < 2 {
		return nil
	}
	out := make([]uint8, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		out = append(out, MovedTile(path[i-1], path[i]))
	}

	return out
}

// Format renders b as width indented rows of right-aligned tiles, the blank
// left empty.
func Format(width int, b Board) string {
	var sb strings.Builder
	for r := 0; r < width; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  ")
		for c := 0; c < width; c++ {
			sb.WriteByte(' ')
			sb.WriteString(Label(b[r*width+c]))
		}
	}

	return sb.String()
}

// Label returns the two-character label of a tile ("  " for the blank).
func Label(t uint8) string {
	if t == 0 {
		return "  "
	}

	return fmt.Sprintf("%2d", t)
}

func checkWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return errors.Wrapf(ErrBadWidth, "width %d", width)
	}

	return nil
}

func mustWidth(width int) {
	if err := checkWidth(width); err != nil {
		panic(err)
	}
}

// adjacent returns the cells orthogonally adjacent to pos, in ascending order.
func adjacent(width, pos int) []uint8 {
	r, c := pos/width, pos%width
	out := make([]uint8, 0, 4)
	if r > 0 {
		out = append(out, uint8(pos-width))
	}
	if c > 0 {
		out = append(out, uint8(pos-1))
	}
	if c < width-1 {
		out = append(out, uint8(pos+1))
	}
	if r < width-1 {
		out = append(out, uint8(pos+width))
	}

	return out
}
