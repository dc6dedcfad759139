// SPDX-License-Identifier: MIT
//
// File: impl_random.go
// Role: Random(n, p) constructor.
//
// Model:
//   - n cities named cfg.idFn(0..n-1), placed uniformly in a square of side
//     spacing·⌈√n⌉.
//   - Spanning tree: every city i>0 is joined to its nearest city among 0..i-1,
//     so the map is always connected.
//   - Every other pair {i<j} is joined independently with probability p.
// Determinism:
//   - Coordinates are drawn first (i asc), then tree roads (i asc), then the
//     Bernoulli trials (i asc, j asc). Fixed seed ⇒ fixed map.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadsearch/mapdata"
)

const (
	methodRandom   = "Random"
	minRandomCount = 2
	probMin        = 0.0
	probMax        = 1.0
)

// Random returns a Constructor for a connected random road map.
func Random(n int, p float64) Constructor {
	return func(cfg config) (*mapdata.Map, error) {
		if n < minRandomCount {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomCount, ErrTooFewCities)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandom, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		side := cfg.spacing * math.Ceil(math.Sqrt(float64(n)))
		m := &mapdata.Map{
			Name:   fmt.Sprintf("random-%d", n),
			Cities: make([]mapdata.City, n),
		}
		for i := range m.Cities {
			m.Cities[i] = mapdata.City{
				Name: cfg.idFn(i),
				X:    math.Round(cfg.rng.Float64() * side),
				Y:    math.Round(cfg.rng.Float64() * side),
			}
		}

		joined := make(map[[2]int]struct{}, n)
		join := func(i, j int) {
			if i > j {
				i, j = j, i
			}
			if _, ok := joined[[2]int{i, j}]; ok {
				return
			}
			joined[[2]int{i, j}] = struct{}{}
			m.Roads = append(m.Roads, road(cfg, m.Cities[i], m.Cities[j]))
		}

		for i := 1; i < n; i++ {
			nearest, best := 0, math.Inf(1)
			for j := 0; j < i; j++ {
				if d := euclid(m.Cities[i], m.Cities[j]); d < best {
					nearest, best = j, d
				}
			}
			join(nearest, i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					join(i, j)
				}
			}
		}

		return m, nil
	}
}
