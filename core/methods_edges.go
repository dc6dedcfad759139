// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in insertion order, then each vertex's arcs in insertion order.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"math"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// AddEdge adds a weighted edge from→to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Ensure both endpoints exist (insertion order of new vertices: from, then to).
//  3. Reject a duplicate arc (ErrMultiEdgeNotAllowed).
//  4. Append the arc; for undirected graphs append the mirror arc to→from as well.
//
// Negative weights are accepted: road data is the caller's responsibility.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 3) Multi-edge check on both arcs before mutating anything
	fwd := g.arcsOf(from)
	if _, dup := fwd.Get(to); dup {
		return ErrMultiEdgeNotAllowed
	}
	mirror := !g.directed && from != to
	if mirror {
		if _, dup := g.arcsOf(to).Get(from); dup {
			return ErrMultiEdgeNotAllowed
		}
	}

	// 4) Store
	fwd.Put(to, weight)
	g.arcCount++
	if mirror {
		g.arcsOf(to).Put(from, weight)
		g.arcCount++
	}

	return nil
}

// HasEdge reports whether the arc from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the arc from→to and whether it exists.
// Unknown vertices simply report false.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := g.arcsOf(from)
	if arcs == nil {
		return 0, false
	}
	w, ok := arcs.Get(to)
	if !ok {
		return 0, false
	}

	return w.(float64), true
}

// Edges returns every stored arc. For undirected graphs both arcs of an
// edge are reported.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.arcCount)
	it := g.adjacency.Iterator()
	for it.Next() {
		out = g.appendArcs(out, it.Key().(string))
	}

	return out
}

// EdgeCount returns the number of logical edges: arcs for directed graphs,
// mirrored pairs (plus loops) for undirected ones.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		return g.arcCount
	}
	loops := 0
	it := g.adjacency.Iterator()
	for it.Next() {
		if _, ok := it.Value().(*linkedhashmap.Map).Get(it.Key()); ok {
			loops++
		}
	}

	return (g.arcCount-loops)/2 + loops
}
