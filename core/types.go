// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, GraphOption, sentinel errors and the NewGraph constructor.
// Determinism:
//   - Vertices and per-vertex arcs are kept in insertion order (gods linkedhashmap).
// Concurrency:
//   - A single sync.RWMutex guards the vertex catalog and the adjacency.

package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second arc between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one arc From→To with a non-negative road distance.
//
// Edges are values: Neighbors and Edges return copies, never live catalog entries.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of travelling the arc.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory weighted graph whose neighbour order is the order
// in which arcs were added.
//
// The engine in package search consumes it as a directed adjacency
// structure: for every vertex it walks the outgoing arcs in insertion order.
// Undirected graphs (the default) simply store both arcs of every edge.
type Graph struct {
	mu sync.RWMutex // guards every field below

	directed   bool // AddEdge stores a single arc
	allowLoops bool // allow self-loops

	// adjacency[from] is a *linkedhashmap.Map of to → float64 weight.
	// Key order of adjacency is vertex insertion order.
	adjacency *linkedhashmap.Map

	arcCount int // number of stored arcs (an undirected edge counts twice)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: linkedhashmap.New()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether AddEdge stores single arcs.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// arcsOf returns the ordered neighbour map of id, or nil. Caller holds g.mu.
func (g *Graph) arcsOf(id string) *linkedhashmap.Map {
	v, ok := g.adjacency.Get(id)
	if !ok {
		return nil
	}

	return v.(*linkedhashmap.Map)
}
