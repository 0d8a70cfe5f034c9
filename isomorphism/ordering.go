// File: ordering.go
// Role: domain vertex orderings. Every ordering is a deterministic function of
// the snapshot, so repeated searches walk the same tree.

package isomorphism

import "sort"

// orderVertices returns the domain vertex indices in assignment order.
func orderVertices(s *snapshot, ord Ordering) []int {
	switch ord {
	case OrderNatural:
		order := make([]int, s.n)
		for i := range order {
			order[i] = i
		}
		return order
	case OrderConnectivity:
		return connectivityOrder(s)
	default:
		return degreeOrder(s)
	}
}

// degreeOrder sorts by descending degree; ties keep ascending ID order.
func degreeOrder(s *snapshot) []int {
	order := make([]int, s.n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.degree(order[a]) > s.degree(order[b])
	})

	return order
}

// connectivityOrder greedily picks the unordered vertex with the most
// already-ordered neighbours. With no ordered neighbours left (a new
// component) this falls back to the highest-degree vertex.
//
// Complexity: O(V²).
func connectivityOrder(s *snapshot) []int {
	var (
		order = make([]int, 0, s.n)
		taken = make([]bool, s.n)
		conn  = make([]int, s.n)
	)
	for len(order) < s.n {
		best := -1
		for v := 0; v < s.n; v++ {
			if taken[v] {
				continue
			}
			if best < 0 || conn[v] > conn[best] ||
				(conn[v] == conn[best] && s.degree(v) > s.degree(best)) {
				best = v
			}
		}
		taken[best] = true
		order = append(order, best)
		for v := 0; v < s.n; v++ {
			if !taken[v] && s.linked(best, v) {
				conn[v]++
			}
		}
	}

	return order
}
