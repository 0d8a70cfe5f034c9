// Package builder assembles deterministic core.Graph fixtures: classic
// topologies whose automorphism counts are known, seeded random graphs, and
// relabelled copies of either.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRelabel(perm)},
//	    builder.Cycle(6))
//
// Constructors:
//
//   - Cycle(n)               C_n, n ≥ 3            |Aut| = 2n
//   - Path(n)                P_n, n ≥ 2            |Aut| = 2
//   - Star(n)                K_{1,n-1}, n ≥ 2      |Aut| = (n-1)!
//   - Wheel(n)               hub + C_{n-1}, n ≥ 4  |Aut| = 2(n-1) for n ≥ 5
//   - Complete(n)            K_n, n ≥ 1            |Aut| = n!
//   - CompleteBipartite(a,b) K_{a,b}               |Aut| = a!·b! (·2 if a == b)
//   - RandomSparse(n, p)     G(n, p), needs WithSeed/WithRand for 0 < p < 1
//
// Vertex i receives ID idFn(relabel[i]) (WithRelabel) or idFn(i) otherwise,
// so two builds differing only in the relabelling are isomorphic by construction.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrOptionViolation, ErrConstructFailed (nil constructor).
package builder
