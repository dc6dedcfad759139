package search

import "github.com/katalvlaran/roadsearch/core"

// IDS runs iterative-deepening search: DLS with limits 0, 1, ...,
// MaxDepth-1 (WithMaxDepth, default DefaultMaxDepth), stopping at the
// first iteration that finds a path.
//
// Metrics are summed over iterations (MaxFrontierSize is the maximum),
// and every Step carries the DepthLimit of the iteration it came from.
// With MaxDepth 0 no iteration runs and the Result is empty.
func IDS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmIDS, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	total := newResult(AlgorithmIDS)
	for limit := 0; limit < r.opts.MaxDepth; limit++ {
		r.reset()
		r.depthTag = limit
		it, err := r.depthFirst(limit)
		if err != nil {
			return nil, err
		}

		total.NodesExpanded += it.NodesExpanded
		total.NodesGenerated += it.NodesGenerated
		total.MaxFrontierSize = max(total.MaxFrontierSize, it.MaxFrontierSize)
		total.Steps = append(total.Steps, it.Steps...)

		if it.Found() {
			total.Path = it.Path
			total.Distance = it.Distance
			break
		}
	}

	r.res = total

	return r.finish(), nil
}
