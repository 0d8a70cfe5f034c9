// Package core provides the in-memory graph that the isomorphism search
// consumes: a thread-safe, simple graph keyed by string vertex IDs.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Integer edge weights (WithWeighted), usable as edge labels
//   - Free-form vertex labels (SetVertexLabel), usable as vertex colours
//
// Simple-graph policy: at most one edge joins an ordered pair of endpoints
// (an unordered pair in undirected graphs). A second AddEdge between the same
// endpoints returns ErrMultiEdgeNotAllowed, because the search compares
// adjacency relations, not edge multiplicities.
//
// Determinism:
//
//	Vertices() sorts IDs lexicographically, Edges() sorts by numeric edge ID,
//	NeighborIDs() returns unique sorted IDs. Two graphs built by the same call
//	sequence enumerate identically.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Queries take the read lock and may
//	run concurrently; mutators take the write lock.
//
// Core Methods:
//
//	AddVertex(id) error                         // O(1)
//	HasVertex(id) bool                          // O(1)
//	Vertex(id) (*Vertex, error)                 // O(1), returns a copy
//	SetVertexLabel(id, label) error             // O(1)
//	AddEdge(from, to, weight) (edgeID, error)   // O(1)
//	HasEdge(from, to) bool                      // O(1)
//	EdgeBetween(from, to) (*Edge, error)        // O(1)
//	Vertices() []string                         // O(V log V)
//	Edges() []*Edge                             // O(E log E)
//	NeighborIDs(id) ([]string, error)           // O(d log d)
//	Degree(id) (in, out int, err error)         // O(1)
//	Clone() *Graph, InducedSubgraph(g, keep)    // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
