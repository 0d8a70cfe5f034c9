package arrayutil

import "math/rand"

// defaultShuffleSeed is used by Shuffle when the caller passes a nil RNG.
const defaultShuffleSeed int64 = 1

// Seq returns the identity permutation [0, 1, ..., n-1].
// For n <= 0 it returns an empty, non-nil slice.
func Seq(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// IsPermutation reports whether p contains every value of [0, len(p)) exactly once.
//
// Complexity: O(n) time, O(n) space.
func IsPermutation(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Shuffle permutes arr in place with a Fisher–Yates pass built on SwapInts.
// A nil rng falls back to a fixed seed, so the result is always reproducible.
//
// Errors:
//   - ErrNilArray if arr is nil.
//
// Complexity: O(n) time, O(1) space.
func Shuffle(arr []int, rng *rand.Rand) error {
	if arr == nil {
		return ErrNilArray
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultShuffleSeed))
	}
	for i := len(arr) - 1; i > 0; i-- {
		if err := SwapInts(arr, i, rng.Intn(i+1)); err != nil {
			return err
		}
	}

	return nil
}
