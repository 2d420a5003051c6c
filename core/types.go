// This file declares VertexID, Edge, Graph, GraphOption, sentinel errors and
// the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrBadHeuristic indicates a negative heuristic estimate.
	ErrBadHeuristic = errors.New("core: heuristic must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// VertexID identifies a vertex. It is the search configuration type of Graph.
type VertexID string

// Less orders IDs lexicographically.
func (v VertexID) Less(o VertexID) bool { return v < o }

// AppendKey appends the ID bytes followed by a terminator, so that no key is
// a prefix of another.
func (v VertexID) AppendKey(dst []byte) []byte {
	dst = append(dst, v...)

	return append(dst, 0)
}

// Edge is one weighted connection between two vertices.
type Edge struct {
	ID       string   // unique edge identifier ("e1", "e2", ...)
	From     VertexID // source vertex
	To       VertexID // destination vertex
	Weight   int64    // positive cost
	Directed bool     // false: traversable both ways
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of every edge (default undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithGoal sets the goal vertex. The vertex is added when missing.
func WithGoal(id VertexID) GraphOption {
	return func(g *Graph) {
		g.goal = id
		if id != "" {
			g.ensureVertex(id)
		}
	}
}

// Graph is an in-memory weighted graph with a goal vertex and per-vertex
// heuristic values.
//
// muVert protects vertices, heuristics and goal; muEdgeAdj protects edges and
// adjacency. nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed bool

	nextEdgeID uint64
	vertices   map[VertexID]int64 // vertex -> heuristic estimate
	goal       VertexID
	edges      map[string]*Edge

	// adjacency[from][to] = edge; undirected edges are mirrored
	adjacency map[VertexID]map[VertexID]*Edge
}

// NewGraph creates an empty undirected Graph configured by opts.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[VertexID]int64),
		edges:     make(map[string]*Edge),
		adjacency: make(map[VertexID]map[VertexID]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
