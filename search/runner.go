// File: runner.go
// Role: per-run state and the loop shared by every single-frontier algorithm.
// Determinism:
//   - Explored snapshots list states in the order they were expanded.
// Concurrency:
//   - One runner per call; nothing here is shared between runs.

package search

import (
	"fmt"
	"time"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/roadsearch/core"
)

// runner encapsulates the mutable state of one algorithm run.
type runner struct {
	algo     Algorithm
	g        *core.Graph
	start    string
	goal     string
	opts     Options
	seq      Sequence
	explored *linkedhashset.Set
	res      *Result
	began    time.Time
	depthTag int // DepthLimit written into every Step
}

// prepare validates the call and returns either a runner ready to search
// or, for start == goal, the finished trivial result.
//
// Validation order: graph, options, start, goal.
func prepare(algo Algorithm, g *core.Graph, start, goal string, opts []Option) (*runner, *Result, error) {
	began := time.Now()
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if !g.HasVertex(start) {
		return nil, nil, fmt.Errorf("%w: start %q", ErrUnknownLocation, start)
	}
	if !g.HasVertex(goal) {
		return nil, nil, fmt.Errorf("%w: goal %q", ErrUnknownLocation, goal)
	}

	if start == goal {
		res := newResult(algo)
		res.Path = []string{start}
		res.NodesGenerated = 1
		res.MaxFrontierSize = 1
		res.ExecutionTime = millisSince(began)

		return nil, res, nil
	}

	r := &runner{
		algo:     algo,
		g:        g,
		start:    start,
		goal:     goal,
		opts:     o,
		began:    began,
		depthTag: NoDepthLimit,
	}
	r.reset()

	return r, nil, nil
}

// reset clears the per-search state; the root counts as one generated node.
func (r *runner) reset() {
	r.seq = Sequence{}
	r.explored = linkedhashset.New()
	r.res = newResult(r.algo)
	r.res.NodesGenerated = 1
}

// root creates the start node.
func (r *runner) root() *Node { return NewRoot(r.start, &r.seq) }

// expand generates children in graph order.
func (r *runner) expand(n *Node) []*Node { return n.Expand(r.g, &r.seq) }

// expandReversed generates children and reverses them, so that a stack
// pops them in graph order.
func (r *runner) expandReversed(n *Node) []*Node {
	children := r.expand(n)
	for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
		children[i], children[j] = children[j], children[i]
	}

	return children
}

// fresh reports whether a state is neither explored nor waiting in f.
func (r *runner) fresh(state string, f frontier) bool {
	return !r.explored.Contains(state) && !f.Contains(state)
}

// observe folds the current frontier size into MaxFrontierSize.
func (r *runner) observe(size int) {
	r.res.MaxFrontierSize = max(r.res.MaxFrontierSize, size)
}

// snapshot appends a Step for f and the explored set; -1 when tracing is off.
func (r *runner) snapshot(f frontier) int {
	if !r.opts.Trace {
		return -1
	}
	r.res.Steps = append(r.res.Steps, Step{
		Frontier:   f.States(),
		Explored:   setStates(r.explored),
		DepthLimit: r.depthTag,
	})

	return len(r.res.Steps) - 1
}

// current records the popped state on step i.
func (r *runner) current(i int, state string) {
	if i >= 0 {
		r.res.Steps[i].Current = state
	}
}

// loop is the graph-search state machine shared by BFS, DFS, DLS, UCS,
// Greedy and AStar. expand yields the children of a popped non-goal node
// and admit applies the algorithm's duplicate policy to each of them.
func (r *runner) loop(f frontier, expand func(*Node) []*Node, admit func(*Node)) (*Result, error) {
	for f.Len() > 0 {
		// cancellation check (once per loop)
		if err := r.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		r.observe(f.Len())
		step := r.snapshot(f)

		n := f.Pop()
		r.res.NodesExpanded++
		r.current(step, n.State)

		if n.State == r.goal {
			return r.found(n.Path(), n.PathCost), nil
		}

		r.explored.Add(n.State)
		for _, child := range expand(n) {
			admit(child)
		}
	}

	return r.finish(), nil
}

// found fills in the path and distance and stamps the time.
func (r *runner) found(path []string, distance float64) *Result {
	r.res.Path = path
	r.res.Distance = distance

	return r.finish()
}

// finish stamps the wall-clock time since the call began.
func (r *runner) finish() *Result {
	r.res.ExecutionTime = millisSince(r.began)

	return r.res
}

func setStates(s *linkedhashset.Set) []string {
	values := s.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}

	return out
}
