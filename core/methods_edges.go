// File: methods_edges.go
// Role: Edge lifecycle and queries.
// Determinism:
//   - Edge IDs are "e1", "e2", ... in insertion order.
//   - Edges() sorts by the numeric part of the ID.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// AddEdge connects from→to and returns the new edge ID. Missing endpoints are
// created first.
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is "".
//   - ErrBadWeight: weight != 0 on an unweighted graph.
//   - ErrLoopNotAllowed: from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: the endpoints are already joined.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return "", fmt.Errorf("core: AddEdge(%s→%s, w=%d): %w", from, to, weight, ErrBadWeight)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("core: AddEdge(%s→%s): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("core: AddEdge(%s→%s): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid

	switch {
	case g.directed:
		g.outDegree[from]++
		g.inDegree[to]++
	case from == to:
		g.outDegree[from]++
		g.inDegree[from]++
	default:
		g.adjacency[to][from] = eid
		g.outDegree[from]++
		g.inDegree[from]++
		g.outDegree[to]++
		g.inDegree[to]++
	}

	return eid, nil
}

// HasEdge reports whether an edge leads from→to (either orientation when undirected).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeBetween returns a copy of the edge joining from→to.
//
// Errors:
//   - ErrEdgeNotFound: no such edge.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("core: EdgeBetween(%s→%s): %w", from, to, ErrEdgeNotFound)
	}
	cp := *g.edges[eid]

	return &cp, nil
}

// Edges returns copies of all edges ordered by ID (e1, e2, ..., e10, ...).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
