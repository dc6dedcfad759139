package mapdata

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/heuristic"
)

// City is a named location with screen coordinates for renderers.
type City struct {
	Name string  `yaml:"name" json:"name"`
	X    float64 `yaml:"x" json:"x"`
	Y    float64 `yaml:"y" json:"y"`
}

// Road is an undirected connection between two cities.
type Road struct {
	From     string  `yaml:"from" json:"from"`
	To       string  `yaml:"to" json:"to"`
	Distance float64 `yaml:"distance" json:"distance"`
}

// Map is a complete road-map definition.
type Map struct {
	// Name is informational ("romania").
	Name string `yaml:"name" json:"name"`

	// Target is the city StraightLine was measured to. Empty when the map
	// carries no heuristic table.
	Target string `yaml:"target,omitempty" json:"target,omitempty"`

	Cities []City `yaml:"cities" json:"cities"`
	Roads  []Road `yaml:"roads" json:"roads"`

	// StraightLine maps city → straight-line distance to Target.
	StraightLine map[string]float64 `yaml:"straight_line,omitempty" json:"straight_line,omitempty"`
}

// Validate checks the map for structural problems.
//
// Rules:
//   - at least one city; names non-empty and unique;
//   - road endpoints are known cities, distinct, distances finite and ≥ 0;
//   - no road listed twice (in either direction);
//   - if StraightLine is present, Target is a known city and every entry
//     names a known city with a finite non-negative value.
//
// Every failure wraps ErrInvalidMap.
func (m *Map) Validate() error {
	if len(m.Cities) == 0 {
		return fmt.Errorf("%w: no cities", ErrInvalidMap)
	}

	known := make(map[string]struct{}, len(m.Cities))
	for i, c := range m.Cities {
		if c.Name == "" {
			return fmt.Errorf("%w: city #%d has no name", ErrInvalidMap, i)
		}
		if _, dup := known[c.Name]; dup {
			return fmt.Errorf("%w: duplicate city %q", ErrInvalidMap, c.Name)
		}
		known[c.Name] = struct{}{}
	}

	seen := make(map[[2]string]struct{}, len(m.Roads))
	for i, r := range m.Roads {
		if _, ok := known[r.From]; !ok {
			return fmt.Errorf("%w: road #%d: unknown city %q", ErrInvalidMap, i, r.From)
		}
		if _, ok := known[r.To]; !ok {
			return fmt.Errorf("%w: road #%d: unknown city %q", ErrInvalidMap, i, r.To)
		}
		if r.From == r.To {
			return fmt.Errorf("%w: road #%d loops on %q", ErrInvalidMap, i, r.From)
		}
		if r.Distance < 0 || math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) {
			return fmt.Errorf("%w: road %s–%s: bad distance %v", ErrInvalidMap, r.From, r.To, r.Distance)
		}
		key := [2]string{r.From, r.To}
		if r.To < r.From {
			key = [2]string{r.To, r.From}
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: road %s–%s listed twice", ErrInvalidMap, r.From, r.To)
		}
		seen[key] = struct{}{}
	}

	if len(m.StraightLine) == 0 {
		return nil
	}
	if _, ok := known[m.Target]; !ok {
		return fmt.Errorf("%w: straight-line target %q is not a city", ErrInvalidMap, m.Target)
	}
	for city, v := range m.StraightLine {
		if _, ok := known[city]; !ok {
			return fmt.Errorf("%w: straight-line entry for unknown city %q", ErrInvalidMap, city)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: straight-line distance of %q is %v", ErrInvalidMap, city, v)
		}
	}

	return nil
}

// Graph validates the map and builds an undirected core.Graph from it.
// Cities are inserted first in declaration order, then roads in
// declaration order, so neighbour order follows the file.
func (m *Map) Graph() (*core.Graph, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, c := range m.Cities {
		if err := g.AddVertex(c.Name); err != nil {
			return nil, fmt.Errorf("%w: city %q: %v", ErrInvalidMap, c.Name, err)
		}
	}
	for _, r := range m.Roads {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("%w: road %s–%s: %v", ErrInvalidMap, r.From, r.To, err)
		}
	}

	return g, nil
}

// HeuristicTable returns the straight-line table bound to Target, or nil
// when the map has no table. A nil *heuristic.Table estimates 0 everywhere.
func (m *Map) HeuristicTable() *heuristic.Table {
	if m.Target == "" || len(m.StraightLine) == 0 {
		return nil
	}
	t, err := heuristic.NewTable(m.Target, m.StraightLine)
	if err != nil {
		return nil
	}

	return t
}

// CityNames returns the city names sorted alphabetically, for selection lists.
func (m *Map) CityNames() []string {
	out := make([]string, len(m.Cities))
	for i, c := range m.Cities {
		out[i] = c.Name
	}
	sort.Strings(out)

	return out
}

// City looks up a city by name.
func (m *Map) City(name string) (City, bool) {
	for _, c := range m.Cities {
		if c.Name == name {
			return c, true
		}
	}

	return City{}, false
}
