// File: view.go
// Role: derived graphs (deep copy, induced subgraph).

package core

// Clone returns a deep copy of g with the same flags, labels and edge IDs.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.directed, out.weighted, out.allowLoops = g.directed, g.weighted, g.allowLoops
	out.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		cp := *v
		out.vertices[id] = &cp
		out.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
		for to, eid := range g.adjacency[id] {
			out.adjacency[id][to] = eid
		}
		out.inDegree[id] = g.inDegree[id]
		out.outDegree[id] = g.outDegree[id]
	}
	for eid, e := range g.edges {
		cp := *e
		out.edges[eid] = &cp
	}

	return out
}

// InducedSubgraph returns the subgraph of g induced by the vertices in keep:
// every kept vertex (with its label) and every edge whose endpoints are both kept.
// IDs absent from g are ignored. Edge IDs are reassigned in the order of g.Edges().
// Complexity: O(V+E log E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()
	out.directed, out.weighted, out.allowLoops = g.Directed(), g.Weighted(), g.Looped()

	g.mu.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.addVertexLocked(id)
			out.vertices[id].Label = v.Label
		}
	}
	g.mu.RUnlock()

	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			// endpoints and flags match g, so AddEdge cannot fail here
			_, _ = out.AddEdge(e.From, e.To, e.Weight)
		}
	}

	return out
}
