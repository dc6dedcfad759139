package search

import "github.com/katalvlaran/roadsearch/core"

// BFS runs breadth-first search from start to goal.
//
// Frontier: FIFO queue. A child is inserted only if its state is neither
// explored nor already queued. BFS minimises hop count, not distance, so
// on weighted maps its Distance may exceed the shortest one.
//
// Complexity: O(V + E) time and space.
func BFS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmBFS, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	f := newFIFO()
	f.Push(r.root())

	return r.loop(f, r.expand, func(child *Node) {
		if r.fresh(child.State, f) {
			f.Push(child)
			r.res.NodesGenerated++
		}
	})
}
