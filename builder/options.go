// SPDX-License-Identifier: MIT
// Package: lviso/builder
//
// options.go — functional options for BuildGraph.
//
// Option constructors validate their arguments and panic on meaningless
// input (nil functions, non-permutations); constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lviso/arrayutil"
)

// BuilderOption customises the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → vertex ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides edge weights on weighted graphs. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithRelabel renames vertex i to idFn(perm[i]). The structure is unchanged,
// so the result is isomorphic to the unrelabelled build.
// Panics if perm is not a permutation of [0, len(perm)).
func WithRelabel(perm []int) BuilderOption {
	if !arrayutil.IsPermutation(perm) {
		panic("builder: WithRelabel: not a permutation")
	}
	cp := append([]int(nil), perm...)

	return func(c *builderConfig) { c.relabel = cp }
}

// WithPartitionPrefix sets the CompleteBipartite ID prefixes; empty keeps the default.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		if left != "" {
			c.leftPrefix = left
		}
		if right != "" {
			c.rightPrefix = right
		}
	}
}
