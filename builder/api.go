// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor type and the BuildMap orchestrator.
// Determinism:
//   - Same constructor, options and seed ⇒ identical Map (cities, roads, table).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadsearch/mapdata"
)

// Constructor lays out cities and roads under a resolved config. It leaves
// Target and StraightLine to BuildMap.
type Constructor func(cfg config) (*mapdata.Map, error)

// BuildMap resolves opts, runs cons, attaches the straight-line table
// towards the target city and validates the map.
//
// Errors: constructor sentinels (ErrTooFewCities, ErrInvalidProbability,
// ErrNeedRandSource) or mapdata.ErrInvalidMap.
func BuildMap(cons Constructor, opts ...Option) (*mapdata.Map, error) {
	cfg := newConfig(opts...)
	m, err := cons(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.name != "" {
		m.Name = cfg.name
	}

	m.Target = cfg.target
	if m.Target == "" {
		m.Target = m.Cities[len(m.Cities)-1].Name
	}
	goal, ok := m.City(m.Target)
	if !ok {
		return nil, fmt.Errorf("%w: target %q is not a city", mapdata.ErrInvalidMap, m.Target)
	}
	m.StraightLine = make(map[string]float64, len(m.Cities))
	for _, c := range m.Cities {
		m.StraightLine[c.Name] = math.Floor(euclid(c, goal))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

func euclid(a, b mapdata.City) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// road joins a and b with a distance no shorter than their straight line.
func road(cfg config, a, b mapdata.City) mapdata.Road {
	return mapdata.Road{From: a.Name, To: b.Name, Distance: math.Ceil(euclid(a, b) * cfg.detour())}
}
