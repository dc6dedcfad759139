// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.
// Option constructors (WithX) panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewCities indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
