// Package isomorphism decides whether a structure-preserving vertex
// correspondence exists between two graphs and lazily enumerates all of them.
//
// What:
//
//   - Inspector: facade built by NewInspector(g1, g2, opts...).
//     IsomorphismExists() answers the decision question; Mappings() returns a
//     fresh MappingCursor each call; All() adapts it to range-over-func.
//   - MappingCursor: pull-based enumerator (HasNext / Next) over a private
//     backtracking matcher. It suspends exactly at a solution and resumes from
//     there on the next pull. Abandoning it is free.
//   - GraphMapping: immutable result with forward/backward vertex lookup and
//     the derived edge correspondence.
//
// Modes (WithMode):
//
//   - ModeIsomorphism      bijection, adjacency and non-adjacency preserved
//   - ModeSubgraph         injection, every g1 edge maps to a g2 edge
//   - ModeInducedSubgraph  injection, adjacency and non-adjacency preserved
//
// How:
//
//	Domain vertices are assigned one per level in a fixed order (WithOrdering).
//	At each level codomain candidates are tried in ascending ID order and
//	pruned by degree, loop and adjacency consistency with the vertices already
//	mapped, then by the caller's vertex and edge predicates. The unused
//	candidates live in a permutation array; committing and undoing a candidate
//	are two arrayutil.ReverseInts calls each, replayed in opposite order.
//
// Determinism:
//
//	For the same graphs and options, mappings are produced in the same order.
//
// Concurrency:
//
//	An Inspector is immutable after construction and may be shared. Each
//	cursor owns its search state; use one cursor per goroutine.
//
// Complexity:
//
//   - Construction: O(V1² + V2²) time and space (adjacency snapshots).
//   - Search: exponential in the worst case; O(V1) per feasibility check
//     plus predicate cost.
//
// Errors:
//
//   - ErrGraphNil, ErrDirectionMismatch, ErrOptionViolation, ErrSizeMismatch
//     from NewInspector
//   - ErrNoMoreMappings from MappingCursor.Next after exhaustion
//   - context errors when a WithContext context is cancelled
//
// Finding no mapping is not an error: the enumeration is simply empty.
package isomorphism
