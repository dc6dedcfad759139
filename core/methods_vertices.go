// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Mutations take the write lock, queries the read lock.
package core

import "github.com/emirpasic/gods/maps/linkedhashmap"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id with an empty arc map. Caller holds the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.adjacency.Get(id); exists {
		return
	}
	g.adjacency.Put(id, linkedhashmap.New())
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency.Get(id)

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The slice is freshly allocated.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, g.adjacency.Size())
	it := g.adjacency.Iterator()
	for it.Next() {
		out = append(out, it.Key().(string))
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.Size()
}

// OutDegree returns the number of arcs leaving id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) OutDegree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := g.arcsOf(id)
	if arcs == nil {
		return 0, ErrVertexNotFound
	}

	return arcs.Size(), nil
}
