package search

import "github.com/katalvlaran/roadsearch/core"

// DLS runs depth-limited search: DFS that does not expand nodes at
// Depth >= limit (WithDepthLimit, default DefaultDepthLimit).
//
// States cut off at the limit are still marked explored, so DLS can miss
// a goal reachable through them by a shorter route. Use IDS for completeness.
func DLS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmDLS, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	return r.depthFirst(r.opts.DepthLimit)
}
