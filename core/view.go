// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Reverse keeps the source vertex order; flipped arcs are appended while
//     walking sources in vertex order and their arcs in insertion order.
// Concurrency:
//   - Read lock on the source; result is a fresh graph instance.

package core

// Reverse returns a directed graph in which every arc u→v of g becomes v→u
// with the same weight. The input graph is not mutated.
//
// For an undirected g the result has the same arc set as g, but the
// neighbour order generally differs: bidirectional search walks this order
// on its backward side.
//
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneEmptyLocked(true)
	it := g.adjacency.Iterator()
	for it.Next() {
		from := it.Key().(string)
		for _, e := range g.appendArcs(nil, from) {
			out.arcsOf(e.To).Put(from, e.Weight)
			out.arcCount++
		}
	}

	return out
}
