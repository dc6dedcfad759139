// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones keep vertex order and per-vertex arc order.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

import "github.com/emirpasic/gods/maps/linkedhashmap"

// CloneEmpty returns a new Graph with identical configuration and vertices
// (in the same order), but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked(g.directed)
}

// Clone returns a deep copy of the Graph: configuration, vertex order and arcs.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked(g.directed)
	it := g.adjacency.Iterator()
	for it.Next() {
		dst := clone.arcsOf(it.Key().(string))
		arcs := it.Value().(*linkedhashmap.Map).Iterator()
		for arcs.Next() {
			dst.Put(arcs.Key(), arcs.Value())
		}
	}
	clone.arcCount = g.arcCount

	return clone
}

// cloneEmptyLocked copies flags and vertices. Caller holds g.mu.
func (g *Graph) cloneEmptyLocked(directed bool) *Graph {
	clone := NewGraph(WithDirected(directed))
	clone.allowLoops = g.allowLoops
	it := g.adjacency.Iterator()
	for it.Next() {
		clone.adjacency.Put(it.Key(), linkedhashmap.New())
	}

	return clone
}
