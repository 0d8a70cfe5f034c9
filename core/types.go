// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that no edge joins the requested endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph.
type Vertex struct {
	// ID uniquely identifies the vertex within its Graph.
	ID string

	// Label is an optional colour compared by label-aware matchers.
	Label string
}

// Edge connects two vertices.
//
// In undirected graphs From/To keep the orientation given to AddEdge, but the
// edge is reachable from both endpoints.
type Edge struct {
	// ID is "e<n>", unique within the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge cost or label; always 0 in unweighted graphs.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets edge orientation (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a simple graph over string vertex IDs.
//
// adjacency[from][to] holds the edge ID; undirected edges are mirrored so that
// adjacency[to][from] refers to the same edge.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph)
	directed   bool
	weighted   bool
	allowLoops bool

	// Storage
	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge
	adjacency  map[string]map[string]string
	inDegree   map[string]int
	outDegree  map[string]int
}

// NewGraph creates an empty Graph. By default it is undirected, unweighted and
// rejects self-loops.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
		inDegree:  make(map[string]int),
		outDegree: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are accepted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool { return g.allowLoops }
