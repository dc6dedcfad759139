// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) constructor.
//
// Model:
//   - City IDs use the fixed coordinate scheme "r,c" (row-major), not cfg.idFn.
//   - City (r,c) sits at (c·spacing, r·spacing).
//   - Roads to the right (r,c+1) and bottom (r+1,c) neighbours where they exist.
// Determinism:
//   - Cities in row-major order; for each city emit Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/mapdata"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the city ID of cell (r, c) in a Grid map.
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(cfg config) (*mapdata.Map, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewCities)
		}

		m := &mapdata.Map{
			Name:   fmt.Sprintf("grid-%dx%d", rows, cols),
			Cities: make([]mapdata.City, 0, rows*cols),
			Roads:  make([]mapdata.Road, 0, 2*rows*cols),
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				m.Cities = append(m.Cities, mapdata.City{
					Name: GridID(r, c),
					X:    float64(c) * cfg.spacing,
					Y:    float64(r) * cfg.spacing,
				})
			}
		}

		at := func(r, c int) mapdata.City { return m.Cities[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					m.Roads = append(m.Roads, road(cfg, at(r, c), at(r, c+1)))
				}
				if r+1 < rows {
					m.Roads = append(m.Roads, road(cfg, at(r, c), at(r+1, c)))
				}
			}
		}

		return m, nil
	}
}
