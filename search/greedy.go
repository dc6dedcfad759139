package search

import "github.com/katalvlaran/roadsearch/core"

// Greedy runs greedy best-first search: the frontier is ordered by the
// heuristic estimate alone (WithHeuristic), creation order breaking ties.
// Duplicate policy is that of BFS. Fast on a good heuristic, never optimal
// by contract.
func Greedy(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmGreedy, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	h := r.opts.Heuristic
	f := newPriority()
	f.Push(r.root(), h.Estimate(start, goal))

	return r.loop(f, r.expand, func(child *Node) {
		if r.fresh(child.State, f) {
			f.Push(child, h.Estimate(child.State, goal))
			r.res.NodesGenerated++
		}
	})
}
