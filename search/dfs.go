package search

import "github.com/katalvlaran/roadsearch/core"

// DFS runs depth-first search from start to goal.
//
// Frontier: LIFO stack. Children are pushed in reverse graph order so the
// first neighbour is explored first. Same duplicate policy as BFS.
//
// Complexity: O(V + E) time and space.
func DFS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmDFS, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	return r.depthFirst(-1)
}

// depthFirst is the stack search behind DFS and DLS. With limit >= 0,
// nodes whose Depth reached the limit are goal-tested but not expanded.
func (r *runner) depthFirst(limit int) (*Result, error) {
	f := newLIFO()
	f.Push(r.root())

	expand := r.expandReversed
	if limit >= 0 {
		expand = func(n *Node) []*Node {
			if n.Depth >= limit {
				return nil
			}
			return r.expandReversed(n)
		}
	}

	return r.loop(f, expand, func(child *Node) {
		if r.fresh(child.State, f) {
			f.Push(child)
			r.res.NodesGenerated++
		}
	})
}
