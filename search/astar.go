package search

import "github.com/katalvlaran/roadsearch/core"

// AStar runs A* search: the frontier is ordered by f = PathCost + h,
// creation order breaking ties. Frontier entries are replaced exactly as
// in UCS. Optimal when the heuristic is admissible; with heuristic.Zero
// (the default) it behaves like UCS.
func AStar(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmAStar, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	h := r.opts.Heuristic
	fCost := func(n *Node) float64 { return n.PathCost + h.Estimate(n.State, goal) }

	f := newPriority()
	root := r.root()
	f.Push(root, fCost(root))

	return r.loop(f, r.expand, r.relax(f, fCost))
}
