// Package bfs provides breadth-first search over any astar.Graph, returning
// edge-count distances, parent links, and visit order.
//
// BFS ignores edge costs and heuristics: it only follows Successors. On a
// unit-cost graph its depths are shortest-path costs, which makes it the
// exhaustive reference for A* on the sliding-tile puzzle and on grid mazes,
// and the tool to enumerate a whole reachable state space (for example every
// 3x3 board reachable from the goal).
//
// Determinism
//
//	Successors are enqueued in the order the graph reports them, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = reachable states, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth map and Parent map.
//
// Options
//
//   - DefaultOptions(): background Context, no depth limit, no state limit.
//   - WithContext(ctx):    set a custom context for cancellation.
//   - WithMaxDepth(d):     do not enqueue states deeper than d (>0).
//   - WithMaxStates(n):    fail with ErrStateLimit past n discovered states.
//   - WithStopAtGoal():    stop as soon as a goal state is dequeued.
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrStateLimit        if WithMaxStates was exceeded.
//   - ctx.Err()            if the context is cancelled.
package bfs
