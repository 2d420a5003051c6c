package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/puzzle"
)

// movesPerLine is the number of moved tiles printed per line.
const movesPerLine = 10

func printStart(w io.Writer, width int, b puzzle.Board) {
	fmt.Fprintf(w, "SELECTED-BEGIN-STATE:\n%s\n\n", puzzle.Format(width, b))
}

// printOutcome prints the result of a search on a board: counters, the
// final set sizes, the path length and the tiles moved along the path.
func printOutcome(w io.Writer, width int, start puzzle.Board, phase astar.Phase, res astar.Result[puzzle.Board], stats bool) {
	switch phase {
	case astar.PhaseSucceeded:
		fmt.Fprintln(w, "Path found.")
	case astar.PhaseAborted:
		fmt.Fprintln(w, "Search ABORTED.")
	default:
		fmt.Fprintf(w, "Path NOT found for START state:\n%s\n", puzzle.Format(width, start))
	}
	if stats {
		printStats(w, res.Stats)
	}

	fmt.Fprintf(w, "\nFINAL-NUMBER-OF-STATES:\n")
	fmt.Fprintf(w, "   Closed-set... = %d\n", res.Stats.ClosedSize)
	fmt.Fprintf(w, "   Open-set..... = %d\n", res.Stats.OpenSize)
	if !res.Found {
		return
	}

	moves := puzzle.Moves(res.Path)
	fmt.Fprintf(w, "\nNUMBER-OF-STATES-IN-FOUND-PATH = %d\n\n", len(moves))
	fmt.Fprintln(w, "FOUND-MOVES:")
	for i, m := range moves {
		fmt.Fprintf(w, "%s ", puzzle.Label(m))
		if (i+1)%movesPerLine == 0 {
			fmt.Fprintln(w)
		}
	}
	if len(moves)%movesPerLine != 0 {
		fmt.Fprintln(w)
	}
}

func printStats(w io.Writer, st astar.Stats) {
	fmt.Fprintf(w, "\nSTATISTICS:\n")
	fmt.Fprintf(w, "  Loops........... = %d\n", st.Loops)
	fmt.Fprintf(w, "  Expanded........ = %d\n", st.Expanded)
	fmt.Fprintf(w, "  Generated....... = %d\n", st.Generated)
	fmt.Fprintf(w, "  Created......... = %d\n", st.Created)
	fmt.Fprintf(w, "  Relaxed......... = %d\n", st.Relaxed)
	fmt.Fprintf(w, "  SkippedClosed... = %d\n", st.SkippedClosed)
	fmt.Fprintf(w, "  Discarded....... = %d\n", st.Discarded)
	fmt.Fprintf(w, "  Nodes/Blocks.... = %d/%d\n", st.Nodes, st.Blocks)
	fmt.Fprintf(w, "  OpenSet......... adds=%d removes=%d finds=%d relaxes=%d stale=%d collisions=%d resizes=%d\n",
		st.Open.Adds, st.Open.RemoveBests, st.Open.Finds, st.Open.Relaxes, st.Open.Stale, st.Open.Collisions, st.Open.Resizes)
	fmt.Fprintf(w, "  ClosedSet....... adds=%d finds=%d collisions=%d resizes=%d\n",
		st.Closed.Adds, st.Closed.Finds, st.Closed.Collisions, st.Closed.Resizes)
}
