// SPDX-License-Identifier: MIT
// Package: lviso/builder
//
// errors.go — sentinel errors for the builder package.
//
// Constructors wrap these with "<Method>: <detail>: %w"; branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a resolved option that does not fit the
// constructor, e.g. a relabelling shorter than the vertex count.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
