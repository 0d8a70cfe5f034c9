// SPDX-License-Identifier: MIT
//
// File: swap.go
// Role: element exchange and range reversal over caller-owned slices.
// Policy:
//   - Validate first, mutate second: a failing call leaves arr untouched.
//   - Sentinel errors only; the offending index is attached with %w.
//   - Numeric variants duplicate the generic body so the hot loop has no
//     generic dictionary indirection.

package arrayutil

import "fmt"

// checkBounds validates that arr is present and every idx lies in [0, n).
func checkBounds(isNil bool, n int, idx ...int) error {
	if isNil {
		return ErrNilArray
	}
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("arrayutil: index %d (len %d): %w", i, n, ErrOutOfRange)
		}
	}

	return nil
}

// Swap exchanges arr[i] and arr[j] in place.
//
// Errors:
//   - ErrNilArray if arr is nil.
//   - ErrOutOfRange if i or j is outside [0, len(arr)).
//
// Complexity: O(1) time, O(1) space.
func Swap[T any](arr []T, i, j int) error {
	if err := checkBounds(arr == nil, len(arr), i, j); err != nil {
		return err
	}
	arr[i], arr[j] = arr[j], arr[i]

	return nil
}

// Reverse reverses the order of arr[from..to] (inclusive) in place by swapping
// pairs inward from both ends. Calling it twice with the same bounds restores
// the original contents.
//
// Errors:
//   - ErrNilArray if arr is nil.
//   - ErrOutOfRange if from or to is outside [0, len(arr)).
//
// A range with from >= to is valid and leaves arr unchanged.
//
// Complexity: O(to-from) time, O(1) space.
func Reverse[T any](arr []T, from, to int) error {
	if err := checkBounds(arr == nil, len(arr), from, to); err != nil {
		return err
	}
	for i, j := from, to; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}

	return nil
}

// SwapInts is Swap specialised for []int.
func SwapInts(arr []int, i, j int) error {
	if err := checkBounds(arr == nil, len(arr), i, j); err != nil {
		return err
	}
	arr[i], arr[j] = arr[j], arr[i]

	return nil
}

// ReverseInts is Reverse specialised for []int.
func ReverseInts(arr []int, from, to int) error {
	if err := checkBounds(arr == nil, len(arr), from, to); err != nil {
		return err
	}
	for i, j := from, to; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}

	return nil
}

// SwapFloat64s is Swap specialised for []float64.
// Values are moved, never compared, so NaN payloads survive bit-for-bit.
func SwapFloat64s(arr []float64, i, j int) error {
	if err := checkBounds(arr == nil, len(arr), i, j); err != nil {
		return err
	}
	arr[i], arr[j] = arr[j], arr[i]

	return nil
}

// ReverseFloat64s is Reverse specialised for []float64.
func ReverseFloat64s(arr []float64, from, to int) error {
	if err := checkBounds(arr == nil, len(arr), from, to); err != nil {
		return err
	}
	for i, j := from, to; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}

	return nil
}
