// Package builder generates synthetic road maps for tests, benchmarks and
// the CLI's generate command.
//
// A Constructor lays out cities and roads; BuildMap resolves the options,
// runs the constructor, attaches a straight-line table towards the target
// city and validates the result. Every generated map is a *mapdata.Map and
// goes through the same Graph()/HeuristicTable() path as the built-in
// Romania map.
//
// Constructors:
//
//	Grid(rows, cols)   orthogonal grid, city IDs "r,c", roads right and down.
//	Random(n, p)       cities at random coordinates, joined by a nearest-earlier
//	                   spanning tree plus every other pair with probability p.
//
// Distances:
//
//	Every road is at least as long as the straight line between its cities:
//	    road = ceil(euclid × detour),  detour ∈ [min, max], min ≥ 1
//	    straight_line = floor(euclid to target)
//	so the table is an admissible and consistent heuristic for A*.
//
// Determinism:
//
//	Same constructor, options and seed ⇒ identical maps. Random requires a
//	seed (WithSeed or WithRand); Grid uses one only for detours.
package builder
