// Package core_test contains fixtures shared by the core tests.

package core_test

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight3 = 3
)
