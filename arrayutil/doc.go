// Package arrayutil provides the in-place index primitives used by the
// isomorphism search to mutate and exactly undo its candidate bookkeeping.
//
// What:
//
//   - Swap(arr, i, j):        exchange two elements, O(1).
//   - Reverse(arr, from, to): reverse the inclusive range [from, to] by paired
//     swaps moving inward from both ends, O(to-from).
//   - SwapInts / ReverseInts, SwapFloat64s / ReverseFloat64s: monomorphic
//     variants for the hot numeric paths, identical contracts.
//   - Seq, IsPermutation, Shuffle: helpers for building and checking
//     permutation arrays over [0, n).
//
// Why:
//
//	Both Swap and Reverse are involutions: applying the same call twice
//	restores the original contents bit-for-bit. A backtracking search can
//	therefore record only the bounds it used and roll back by replaying them.
//
// Contracts:
//
//   - A nil slice is absent storage and fails with ErrNilArray.
//   - Every index is validated against [0, len(arr)); violations fail with
//     ErrOutOfRange and nothing is modified. Indices are never clamped.
//   - Reverse validates both bounds even when from >= to; such a range is a no-op.
//   - No allocation, no access outside the addressed range.
//
// Errors:
//
//   - ErrNilArray    slice is nil
//   - ErrOutOfRange  index outside [0, len)
package arrayutil
