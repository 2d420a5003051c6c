// Package core: Graph method implementations
//
// Vertex operations take muVert, edge operations take muEdgeAdj. When both are
// needed, muVert is always acquired first.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const (
	edgeIDPrefix = "e"
)

// ensureVertex registers id with a zero heuristic if absent. Caller must not hold muVert.
func (g *Graph) ensureVertex(id VertexID) {
	g.muVert.Lock()
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = 0
	}
	g.muVert.Unlock()
}

// AddVertex inserts a vertex with a zero heuristic. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id VertexID) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// SetHeuristic records the estimate h for vertex id.
// Returns ErrVertexNotFound for an unknown vertex and ErrBadHeuristic for h < 0.
func (g *Graph) SetHeuristic(id VertexID, h int64) error {
	if h < 0 {
		return ErrBadHeuristic
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.vertices[id] = h

	return nil
}

// SetGoal makes id the goal vertex. Returns ErrVertexNotFound for an unknown vertex.
func (g *Graph) SetGoal(id VertexID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.goal = id

	return nil
}

// Goal returns the goal vertex, or "" when none is set.
func (g *Graph) Goal() VertexID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.goal
}

// AddEdge connects from and to with the given positive weight and returns the
// new edge ID. Missing endpoints are added.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to VertexID, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight <= 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}
	if !g.directed {
		if _, ok := g.adjacency[to][from]; ok {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := edgeIDPrefix + fmt.Sprint(atomic.AddUint64(&g.nextEdgeID, 1))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	g.link(from, to, e)
	if !g.directed {
		g.link(to, from, e)
	}

	return eid, nil
}

// link records e in adjacency[from][to]. Caller holds muEdgeAdj.
func (g *Graph) link(from, to VertexID, e *Edge) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[VertexID]*Edge)
		g.adjacency[from] = inner
	}
	inner[to] = e
}

// Vertices returns every vertex ID in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.muVert.RLock()
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edges returns every edge ordered by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Neighbors returns the vertices reachable from id in one step, in ascending
// order, with the weight of the connecting edge.
// Returns ErrVertexNotFound for an unknown vertex.
func (g *Graph) Neighbors(id VertexID) ([]VertexID, []int64, error) {
	if !g.HasVertex(id) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	inner := g.adjacency[id]
	ids := make([]VertexID, 0, len(inner))
	for to := range inner {
		ids = append(ids, to)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	weights := make([]int64, len(ids))
	for i, to := range ids {
		weights[i] = inner[to].Weight
	}

	return ids, weights, nil
}
