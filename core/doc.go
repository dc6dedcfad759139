// Package core provides the in-memory road graph consumed by the search
// engine: weighted, insertion-ordered, and safe for concurrent readers.
//
// The Graph G = (V,E) stores, for every vertex, an ordered map of
// neighbour → weight:
//
//	adjacency[from] = {to₁: w₁, to₂: w₂, …}   // insertion order kept
//
// Why insertion order?
//
//   - Search traces are replayed step by step; the same map must always
//     produce the same trace.
//   - Tie-breaking in BFS/DFS and in priority frontiers depends on the order
//     in which children are generated, which is the order arcs were added.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Undirected graphs (default) store both arcs of every edge.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) error // O(1)
//	HasEdge(from, to string) bool             // O(1)
//	Weight(from, to string) (float64, bool)   // O(1)
//
//	// Query
//	Neighbors(id string) ([]Edge, error)  // O(d), insertion order
//	Adjacent(id string) []Edge            // O(d), total: nil for unknown id
//	AdjacencyList() map[string][]string   // O(V+E)
//
//	// Views
//	CloneEmpty(), Clone()                 // order-preserving copies
//	Reverse() *Graph                      // every arc flipped (bidirectional search)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrBadWeight           – NaN or ±Inf weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – a second arc between the same ordered pair
//
// Negative weights and asymmetric directed data are not rejected; the engine
// treats validation of road data as the caller's job.
package core
