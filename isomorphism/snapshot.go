// File: snapshot.go
// Role: dense, index-based copy of a Graph's adjacency taken once per Inspector.
// The search reads only snapshots, so feasibility checks are O(1) slice loads
// instead of locked map lookups.

package isomorphism

import "sort"

// snapshot is an immutable adjacency matrix over sorted vertex IDs.
// It is shared read-only by every cursor of one Inspector.
type snapshot struct {
	n     int
	ids   []string       // index -> vertex ID, ascending
	index map[string]int // vertex ID -> index
	adj   []bool         // adj[i*n+j] == HasEdge(ids[i], ids[j])
	in    []int
	out   []int
	edges int
}

// newSnapshot copies g's vertex set and adjacency relation.
// Complexity: O(V²) HasEdge calls, O(V²) space.
func newSnapshot(g Graph) *snapshot {
	ids := append([]string(nil), g.Vertices()...)
	sort.Strings(ids)

	n := len(ids)
	s := &snapshot{
		n:     n,
		ids:   ids,
		index: make(map[string]int, n),
		adj:   make([]bool, n*n),
		in:    make([]int, n),
		out:   make([]int, n),
		edges: g.EdgeCount(),
	}
	for i, id := range ids {
		s.index[id] = i
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.HasEdge(ids[i], ids[j]) {
				s.adj[i*n+j] = true
				s.out[i]++
				s.in[j]++
			}
		}
	}

	return s
}

// has reports adjacency i→j.
func (s *snapshot) has(i, j int) bool { return s.adj[i*s.n+j] }

// degree is the ordering key: in+out adjacency count.
func (s *snapshot) degree(i int) int { return s.in[i] + s.out[i] }

// linked reports adjacency in either direction.
func (s *snapshot) linked(i, j int) bool { return s.has(i, j) || s.has(j, i) }
