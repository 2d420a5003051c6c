// Package tilestar is an A* search engine for implicitly defined graphs,
// built around the sliding-tile puzzle.
//
// The engine never sees an explicit graph: a collaborator implementing
// astar.Graph reports the goal test, the heuristic and the successors of a
// configuration, and the engine keeps the frontier, the closed set and the
// node storage.
//
// Packages:
//
//	pathnode/   search node record (state, parent, G, H) and its total order
//	arena/      block allocator owning every node of a search
//	hashset/    open-addressing index over node pointers, prime-sized, with OAAT or xxhash
//	closedset/  visited set: hash index or red-black tree
//	openset/    frontier: hash index + ordered tree, pure trees, or a lazy binary heap
//	astar/      the solver: phases, options, limits, statistics
//	puzzle/     sliding-tile boards 2x2..5x5, Manhattan/misplaced heuristics, parser, samples
//	gridgraph/  2D mazes with 4- or 8-connectivity
//	core/       thread-safe explicit weighted graph with per-vertex heuristic
//	dijkstra/   uniform-cost reference search over any collaborator
//	bfs/        breadth-first enumeration over any collaborator
//	metrics/    Prometheus export of search statistics
//	cmd/tilesearch  command-line solver and benchmark
//
// Quick example:
//
//	g, _ := puzzle.NewGraph(3)
//	start, _, _ := puzzle.ParseString("4 1 3  7 2 6  0 5 8")
//	res, err := astar.Search[puzzle.Board](g, start)
//	// res.Cost == 6, puzzle.Moves(res.Path) == [7 4 1 2 5 8]
package tilestar
