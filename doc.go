// Package lviso is an in-memory toolkit for graph isomorphism and subgraph
// matching.
//
// Layout:
//
//	arrayutil/   — bounds-checked in-place Swap/Reverse and permutation helpers
//	core/        — thread-safe Graph, Vertex and Edge primitives
//	isomorphism/ — Inspector, lazy MappingCursor and GraphMapping results
//	builder/     — deterministic fixtures (cycles, wheels, K_n, G(n,p), relabelling)
//	graphio/     — YAML graph documents
//	cmd/lviso    — command-line front end (match, exists, gen)
//
// Quick start:
//
//	g1, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))
//	g2, _ := builder.BuildGraph(nil, []builder.BuilderOption{
//	    builder.WithRelabel(builder.RandomPermutation(6, 42)),
//	}, builder.Cycle(6))
//
//	in, _ := isomorphism.NewInspector(g1, g2)
//	for m := range in.All() {
//	    fmt.Println(m) // {0→…, 1→…, …}
//	}
//
// Searches are pull-based: nothing runs between calls to the cursor, and a
// cursor that is no longer used can simply be dropped.
package lviso
