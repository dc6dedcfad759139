package search

import "github.com/katalvlaran/roadsearch/core"

// UCS runs uniform-cost search, ordering the frontier by PathCost with
// creation order breaking ties.
//
// When a child reaches a state already waiting in the frontier with a
// strictly higher PathCost, the waiting entry is replaced by the child
// (counted as generated). Optimal for non-negative weights.
//
// Complexity: O((V + E) log V) time, O(V) frontier.
func UCS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmUCS, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	f := newPriority()
	f.Push(r.root(), 0)

	return r.loop(f, r.expand, r.relax(f, func(n *Node) float64 { return n.PathCost }))
}

// relax returns the admit policy of UCS and AStar: insert unseen states,
// replace a frontier entry reached again with a strictly lower PathCost.
func (r *runner) relax(f *priorityFrontier, key func(*Node) float64) func(*Node) {
	return func(child *Node) {
		if r.explored.Contains(child.State) {
			return
		}
		old, waiting := f.Lookup(child.State)
		switch {
		case !waiting:
			f.Push(child, key(child))
		case child.PathCost < old.PathCost:
			f.Replace(child, key(child))
		default:
			return
		}
		r.res.NodesGenerated++
	}
}
