// Package core provides a small thread-safe weighted graph used as an explicit
// search collaborator for the A* engine and as a fixture for the Dijkstra oracle.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Orientation of every edge. Undirected graphs mirror edges in adjacency[to][from].
//
//	– WithGoal(id VertexID)
//	    Goal vertex reported by IsGoal; added to the graph when missing.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id VertexID) error                       // O(1)
//	HasVertex(id VertexID) bool                        // O(1)
//	SetHeuristic(id VertexID, h int64) error           // O(1)
//	SetGoal(id VertexID) error                         // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to VertexID, weight int64) (edgeID string, err error) // O(1)
//
//	// Query
//	Neighbors(id VertexID) ([]VertexID, []int64, error) // O(d·log d), sorted
//	Vertices() []VertexID                                // O(V·log V)
//	Edges() []*Edge                                      // O(E·log E)
//
//	// astar.Graph[VertexID]
//	IsGoal, Heuristic, Successors, MaxBranching
//
// Edge IDs come from an atomic counter (“e1”, “e2”, …). Weights must be
// positive; heuristics default to zero, which is always consistent.
package core
