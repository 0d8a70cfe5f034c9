// File: predicates.go
// Role: ready-made compatibility predicates for labelled matching.

package isomorphism

import "github.com/katalvlaran/lviso/core"

// SameVertexLabel returns a vertex predicate accepting pairs whose core.Vertex
// labels are equal. Labels are read once, when the predicate is built.
func SameVertexLabel(g1, g2 *core.Graph) func(u, c string) bool {
	l1, l2 := vertexLabels(g1), vertexLabels(g2)

	return func(u, c string) bool { return l1[u] == l2[c] }
}

func vertexLabels(g *core.Graph) map[string]string {
	ids := g.Vertices()
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if v, err := g.Vertex(id); err == nil {
			out[id] = v.Label
		}
	}

	return out
}

// SameEdgeWeight is an edge predicate accepting edges of equal weight.
func SameEdgeWeight(e1, e2 *core.Edge) bool { return e1.Weight == e2.Weight }
