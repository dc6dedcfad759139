// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Adjacent, NeighborIDs, AdjacencyList).
// Determinism:
//   - Every API reports arcs in the order they were added. Search traces and
//     tie-breaking in package search depend on this.
// Concurrency:
//   - Read operations hold the read lock and return fresh slices.

package core

// Neighbors returns the arcs leaving id in insertion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.arcsOf(id) == nil {
		return nil, ErrVertexNotFound
	}

	return g.appendArcs(nil, id), nil
}

// Adjacent is the total variant of Neighbors: an unknown or empty id has no arcs.
// Search algorithms use it so that expansion can never fail mid-run.
func (g *Graph) Adjacent(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.appendArcs(nil, id)
}

// NeighborIDs returns the destination IDs of the arcs leaving id, in insertion order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex to its ordered
// neighbour IDs. Slices are freshly allocated and safe to retain.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, g.adjacency.Size())
	it := g.adjacency.Iterator()
	for it.Next() {
		from := it.Key().(string)
		arcs := g.arcsOf(from)
		ids := make([]string, 0, arcs.Size())
		for _, k := range arcs.Keys() {
			ids = append(ids, k.(string))
		}
		out[from] = ids
	}

	return out
}

// appendArcs appends the arcs leaving from to dst. Caller holds g.mu.
func (g *Graph) appendArcs(dst []Edge, from string) []Edge {
	arcs := g.arcsOf(from)
	if arcs == nil {
		return dst
	}
	it := arcs.Iterator()
	for it.Next() {
		dst = append(dst, Edge{From: from, To: it.Key().(string), Weight: it.Value().(float64)})
	}

	return dst
}
