// SPDX-License-Identifier: MIT
// Package: rigidity/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a topology that does not
// fit into the remaining bitgraph capacity.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enum value such as a PlatonicName
// outside the five solids.
var ErrOptionViolation = errors.New("builder: invalid option value")
