// File: bidirectional.go
// Role: two simultaneous breadth-first searches, from start over the graph
// and from goal over its reverse, stopping at the first meeting state.
// Determinism:
//   - Each iteration pops forward first, then backward; explored snapshots
//     list states in expansion order.

package search

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/katalvlaran/roadsearch/core"
)

// Bidirectional runs bidirectional breadth-first search.
//
// Each iteration pops one node per side. A popped state that is already
// explored by the opposite side is the meeting point: the result is the
// forward path followed by the reversed backward path (the meeting state
// appears once), and Distance is the sum of both partial costs.
//
// The first meeting wins, so the Distance is not guaranteed to be the
// shortest. Both roots count as generated and the initial frontier size
// is 2. The search stops as soon as either side runs out of nodes.
func Bidirectional(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	r, done, err := prepare(AlgorithmBidirectional, g, start, goal, opts)
	if r == nil {
		return done, err
	}

	b := &biRunner{
		runner:  r,
		forward: newSide(g, r.root()),
		back:    newSide(g.Reverse(), NewRoot(goal, &r.seq)),
	}
	r.res.NodesGenerated = 2
	r.res.MaxFrontierSize = 2

	return b.run()
}

// side is one direction of the search.
type side struct {
	g        *core.Graph
	frontier *fifoFrontier
	explored *linkedhashmap.Map // state → *Node
}

func newSide(g *core.Graph, root *Node) *side {
	s := &side{g: g, frontier: newFIFO(), explored: linkedhashmap.New()}
	s.frontier.Push(root)

	return s
}

func (s *side) exploredStates() []string {
	keys := s.explored.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.(string)
	}

	return out
}

func (s *side) node(state string) (*Node, bool) {
	v, ok := s.explored.Get(state)
	if !ok {
		return nil, false
	}

	return v.(*Node), true
}

// biRunner drives both sides on top of the shared runner bookkeeping.
type biRunner struct {
	*runner
	forward *side
	back    *side
}

func (b *biRunner) run() (*Result, error) {
	for b.forward.frontier.Len() > 0 && b.back.frontier.Len() > 0 {
		if err := b.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		b.observe(b.forward.frontier.Len() + b.back.frontier.Len())
		step := b.snapshotBoth()

		// forward half
		fn := b.forward.frontier.Pop()
		b.res.NodesExpanded++
		b.current(step, fn.State)
		b.forward.explored.Put(fn.State, fn)
		if bn, ok := b.back.node(fn.State); ok {
			return b.meet(fn, bn), nil
		}
		b.grow(b.forward, fn)

		// backward half
		bn := b.back.frontier.Pop()
		b.res.NodesExpanded++
		if step >= 0 {
			b.res.Steps[step].CurrentBackward = bn.State
		}
		b.back.explored.Put(bn.State, bn)
		if fn, ok := b.forward.node(bn.State); ok {
			return b.meet(fn, bn), nil
		}
		b.grow(b.back, bn)
	}

	return b.finish(), nil
}

// grow inserts the children of n that the side has neither explored nor queued.
func (b *biRunner) grow(s *side, n *Node) {
	for _, child := range n.Expand(s.g, &b.seq) {
		if _, seen := s.explored.Get(child.State); seen || s.frontier.Contains(child.State) {
			continue
		}
		s.frontier.Push(child)
		b.res.NodesGenerated++
	}
}

func (b *biRunner) snapshotBoth() int {
	if !b.opts.Trace {
		return -1
	}
	b.res.Steps = append(b.res.Steps, Step{
		Frontier:         b.forward.frontier.States(),
		Explored:         b.forward.exploredStates(),
		BackwardFrontier: b.back.frontier.States(),
		BackwardExplored: b.back.exploredStates(),
		DepthLimit:       NoDepthLimit,
	})

	return len(b.res.Steps) - 1
}

// meet joins the forward path to fn with the reversed backward path to bn.
func (b *biRunner) meet(fn, bn *Node) *Result {
	path := fn.Path()
	back := bn.Path() // goal … meeting state
	for i := len(back) - 2; i >= 0; i-- {
		path = append(path, back[i])
	}

	return b.found(path, fn.PathCost+bn.PathCost)
}
