// SPDX-License-Identifier: MIT
// Package: lviso/builder
//
// config.go — resolved builder configuration and deterministic defaults.
//
// Defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (no randomness unless seeded)
//   • weightFn    = constant DefaultEdgeWeight
//   • relabel     = nil                (vertex i gets idFn(i))
//   • left/right  = "L" / "R"          (CompleteBipartite prefixes)

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight given to edges of weighted graphs when no
// WithWeightFn is set.
const DefaultEdgeWeight int64 = 1

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
	relabel  []int

	leftPrefix  string
	rightPrefix string
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    func(*rand.Rand) int64 { return DefaultEdgeWeight },
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertexID returns the ID of vertex index i after relabelling.
func (c builderConfig) vertexID(i int) string {
	if c.relabel != nil {
		return c.idFn(c.relabel[i])
	}

	return c.idFn(i)
}

// checkRelabel verifies that a configured relabelling covers n vertices.
func (c builderConfig) checkRelabel(method string, n int) error {
	if c.relabel != nil && len(c.relabel) != n {
		return fmt.Errorf("%s: relabel covers %d vertices, need %d: %w",
			method, len(c.relabel), n, ErrOptionViolation)
	}

	return nil
}

// weight draws the weight of the next edge, or 0 for unweighted graphs.
func (c builderConfig) weight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
