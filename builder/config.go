// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: builder configuration, its deterministic defaults and the functional options.
//
// Defaults:
//   - idFn    = DefaultIDFn ("C0","C1",...), used by Random only
//   - rng     = nil (no randomness unless seeded)
//   - detour  = [1,1] (roads follow the straight line)
//   - spacing = 100 (grid cell size and random-area unit)
//   - target  = last city

package builder

import (
	"fmt"
	"math/rand"
)

const (
	defaultSpacing = 100.0
	minDetour      = 1.0
)

// config aggregates every knob read by constructors. It is passed by value.
type config struct {
	name    string
	idFn    IDFn
	rng     *rand.Rand
	spacing float64

	detourMin, detourMax float64

	// target is the city the straight-line table points at; "" means last.
	target string
}

// Option customizes a config before the constructor runs.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:      DefaultIDFn,
		spacing:   defaultSpacing,
		detourMin: minDetour,
		detourMax: minDetour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// detour draws the stretch factor of one road.
func (c config) detour() float64 {
	if c.rng == nil || c.detourMax == c.detourMin {
		return c.detourMin
	}

	return c.detourMin + c.rng.Float64()*(c.detourMax-c.detourMin)
}

// WithName sets Map.Name. The constructor picks a name otherwise.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithIDScheme sets the city naming scheme used by Random. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing sets the grid cell size (and the unit of the random area).
// Panics unless s > 0.
func WithSpacing(s float64) Option {
	if !(s > 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%v): must be > 0", s))
	}

	return func(c *config) { c.spacing = s }
}

// WithDetour stretches every road by a factor drawn uniformly from
// [min,max]. Without an RNG the factor is min. Panics unless 1 ≤ min ≤ max.
func WithDetour(min, max float64) Option {
	if !(min >= minDetour) || max < min {
		panic(fmt.Sprintf("builder: WithDetour(%v, %v): need 1 ≤ min ≤ max", min, max))
	}

	return func(c *config) { c.detourMin, c.detourMax = min, max }
}

// WithTarget names the city the straight-line table points at.
// An unknown name makes BuildMap fail validation.
func WithTarget(city string) Option {
	return func(c *config) { c.target = city }
}
