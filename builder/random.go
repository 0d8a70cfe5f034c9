// SPDX-License-Identifier: MIT
// Package: lviso/builder
//
// random.go — seeded random fixtures.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lviso/arrayutil"
	"github.com/katalvlaran/lviso/core"
)

// RandomSparse returns a Constructor for an Erdős–Rényi G(n, p) graph.
// Undirected graphs sample each pair i<j once; directed graphs sample every
// ordered pair i≠j. p = 0 and p = 1 are deterministic and need no RNG;
// any other p requires WithSeed or WithRand.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(methodRandomSparse, n, 1)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.4f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if p > 0 && p < 1 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			j0 := i + 1
			if g.Directed() {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err = addEdge(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomPermutation returns a seeded uniform permutation of [0, n), suitable
// for WithRelabel. n ≤ 0 yields an empty slice.
func RandomPermutation(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}
	perm := arrayutil.Seq(n)
	// Shuffle only fails on nil input; perm is never nil here.
	_ = arrayutil.Shuffle(perm, rand.New(rand.NewSource(seed)))

	return perm
}
