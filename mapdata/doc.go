// Package mapdata holds road-map definitions for the search engine.
//
// A Map is plain data: cities with drawing coordinates, undirected roads
// with distances, and an optional straight-line-distance table towards a
// single target city. Romania returns the classic textbook map; Load and
// Decode read the same structure from YAML.
//
// Graph turns a Map into a core.Graph (cities first, in file order, then
// roads in file order, both directions) so that neighbour iteration and
// therefore every search trace is reproducible.
package mapdata
