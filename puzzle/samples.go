package puzzle

import "math/rand"

// SampleWidth is the width of the boards returned by Samples.
const SampleWidth = 5

// samples are 5x5 start positions of increasing difficulty. The first solves
// in 15 moves, the second in 30; the last few need gigabytes of search nodes.
var samples = [...][SampleWidth * SampleWidth]uint8{
	{2, 8, 3, 5, 9, 1, 6, 7, 4, 0, 11, 12, 13, 14, 10, 16, 17, 18, 19, 15, 21, 22, 23, 24, 20},
	{1, 7, 2, 8, 4, 6, 9, 13, 3, 5, 11, 17, 12, 14, 10, 16, 18, 23, 22, 15, 21, 24, 19, 20, 0},
	{1, 4, 3, 5, 10, 6, 7, 8, 2, 9, 23, 11, 13, 14, 15, 12, 0, 18, 24, 19, 17, 16, 21, 22, 20},
	{0, 6, 2, 9, 4, 17, 1, 3, 10, 14, 22, 8, 7, 12, 5, 21, 11, 18, 13, 24, 16, 23, 15, 20, 19},
	{2, 3, 7, 9, 4, 11, 1, 14, 5, 10, 12, 17, 15, 19, 8, 22, 6, 13, 0, 23, 16, 21, 18, 24, 20},
	{6, 1, 8, 3, 4, 11, 15, 2, 5, 10, 7, 19, 0, 20, 9, 16, 18, 12, 23, 14, 21, 13, 17, 22, 24},
	{7, 1, 4, 9, 5, 13, 3, 24, 10, 19, 6, 8, 12, 18, 2, 17, 0, 22, 15, 20, 16, 11, 23, 21, 14},
	{9, 0, 7, 3, 4, 6, 2, 1, 13, 5, 11, 12, 8, 15, 10, 16, 17, 18, 14, 24, 21, 22, 23, 20, 19},
	{1, 2, 3, 4, 5, 6, 7, 8, 0, 10, 16, 11, 14, 9, 15, 21, 12, 18, 23, 19, 17, 22, 20, 13, 24},
}

// Samples returns the built-in start boards, all of width SampleWidth.
func Samples() []Board {
	out := make([]Board, len(samples))
	for i, s := range samples {
		copy(out[i][:], s[:])
	}

	return out
}

// Scramble returns the board reached from the goal by a random walk of steps
// moves that never immediately undoes the previous move. The result is always
// solvable in at most steps moves.
func Scramble(width, steps int, rng *rand.Rand) Board {
	b := Goal(width)
	blank := width*width - 1
	prev := -1
	for i := 0; i < steps; i++ {
		adj := adjacent(width, blank)
		var q int
		for {
			q = int(adj[rng.Intn(len(adj))])
			if q != prev {
				break
			}
		}
		b[blank], b[q] = b[q], 0
		prev, blank = blank, q
	}

	return b
}
