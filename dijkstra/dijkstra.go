// Package dijkstra implements uniform-cost search over implicit graphs.
//
// It processes configurations in order of increasing distance using a min-heap
// priority queue, relaxing edges as it goes. It ignores the heuristic, so it
// serves as a reference oracle for the A* engine: on any graph with a
// consistent heuristic both must report the same shortest cost.
//
// Notes on implementation choices:
//
//   - Edge weights are checked when met; a negative one fails with ErrNegativeWeight.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable “wall”.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - “Lazy” decrease-key: duplicates are pushed and stale entries skipped on pop.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tilestar/astar"
	"github.com/katalvlaran/tilestar/pathnode"
)

// Dijkstra computes shortest distances from source to every configuration of
// g reachable within the configured limits.
//
// Returns:
//
//   - dist: map from configuration to minimum distance; unreached states are absent.
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u. The source has no entry.
//   - err:  ErrNilGraph, ErrNegativeWeight or ErrStateLimit.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[S pathnode.State[S]](g astar.Graph[S], source S, opts ...Option) (map[S]int64, map[S]S, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, nil, err
	}
	if _, err = r.process(false); err != nil {
		return nil, nil, err
	}
	if !r.options.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestCost returns the distance from source to the nearest configuration
// for which g.IsGoal holds. found is false when no goal is reachable within
// the configured limits.
func ShortestCost[S pathnode.State[S]](g astar.Graph[S], source S, opts ...Option) (int64, bool, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return 0, false, err
	}
	goal, err := r.process(true)
	if err != nil || goal == nil {
		return 0, false, err
	}

	return r.dist[*goal], true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S pathnode.State[S]] struct {
	g       astar.Graph[S]       // the input graph; read-only within Dijkstra
	options Options              // configuration options
	source  S                    // start configuration
	dist    map[S]int64          // configuration → current best distance
	prev    map[S]S              // configuration → predecessor (nil unless ReturnPath)
	visited map[S]bool           // configurations whose distance is final
	pq      nodePQ[S]            // lazy min-heap
	succ    []astar.Successor[S] // reused successor buffer
}

func newRunner[S pathnode.State[S]](g astar.Graph[S], source S, opts []Option) (*runner[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	r := &runner[S]{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[S]int64),
		visited: make(map[S]bool),
		pq:      make(nodePQ[S], 0, 64),
		succ:    make([]astar.Successor[S], 0, g.MaxBranching()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	r.init()

	return r, nil
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner[S]) init() {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[S]{id: r.source, dist: 0})
}

// process is the main loop. With stopAtGoal it returns the first goal
// configuration settled, or nil when none was.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable configurations processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - stopAtGoal is set and a goal has been settled.
func (r *runner[S]) process(stopAtGoal bool) (*S, error) {
	settled := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u, d := item.id, item.dist

		// stale entry
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		if r.options.MaxStates > 0 && settled >= r.options.MaxStates {
			return nil, fmt.Errorf("%w: %d states", ErrStateLimit, settled)
		}

		r.visited[u] = true
		settled++
		if stopAtGoal && r.g.IsGoal(u) {
			return &u, nil
		}

		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// relax examines each successor of u and pushes a new heap entry whenever a
// strictly shorter distance is found. Assumes r.dist[u] is final.
func (r *runner[S]) relax(u S) error {
	r.succ = r.g.Successors(u, r.succ[:0])
	for _, e := range r.succ {
		w := e.Cost
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: weight=%d", ErrNegativeWeight, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[e.State]; seen && newDist >= old {
			continue
		}

		r.dist[e.State] = newDist
		if r.prev != nil {
			r.prev[e.State] = u
		}
		heap.Push(&r.pq, &nodeItem[S]{id: e.State, dist: newDist})
	}

	return nil
}

// nodeItem represents a configuration and its distance from the source.
type nodeItem[S pathnode.State[S]] struct {
	id   S
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, ties broken by the
// configuration order so runs are reproducible.
type nodePQ[S pathnode.State[S]] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id.Less(pq[j].id)
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
