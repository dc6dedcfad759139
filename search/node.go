// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: search-tree nodes, creation sequence and path reconstruction.
// Determinism:
//   - Children follow the graph's neighbour insertion order.
//   - Sequence numbers are assigned in creation order and never reused within a run.
// Concurrency:
//   - Nodes are immutable after creation. A Sequence belongs to exactly one run.

package search

import "github.com/katalvlaran/roadsearch/core"

// Sequence hands out monotonically increasing creation numbers.
// The zero value is ready to use. It is not safe for concurrent use.
type Sequence struct {
	next uint64
}

// Next returns the next number (starting at 0).
func (s *Sequence) Next() uint64 {
	n := s.next
	s.next++

	return n
}

// Node is one state reached by one path from the root.
// Parent links form a tree; a Node is never re-parented or mutated.
type Node struct {
	// State is the location this node represents.
	State string

	// Parent is the node this one was expanded from (nil for the root).
	Parent *Node

	// Action is the human-readable edge label, "<from> to <to>".
	Action string

	// PathCost is the sum of edge weights from the root.
	PathCost float64

	// Depth is the hop count from the root.
	Depth int

	seq uint64
}

// NewRoot creates the root node of a search tree.
func NewRoot(state string, seq *Sequence) *Node {
	return &Node{State: state, seq: seq.Next()}
}

// Seq returns the creation number used to break priority ties.
func (n *Node) Seq() uint64 { return n.seq }

// Expand creates one child per outgoing arc of n.State, in graph order.
// No duplicate filtering is done here; that is the algorithm's policy.
func (n *Node) Expand(g *core.Graph, seq *Sequence) []*Node {
	arcs := g.Adjacent(n.State)
	children := make([]*Node, 0, len(arcs))
	for _, e := range arcs {
		children = append(children, &Node{
			State:    e.To,
			Parent:   n,
			Action:   n.State + " to " + e.To,
			PathCost: n.PathCost + e.Weight,
			Depth:    n.Depth + 1,
			seq:      seq.Next(),
		})
	}

	return children
}

// Path returns the states from the root to n, root first.
func (n *Node) Path() []string {
	path := make([]string, n.Depth+1)
	for cur, i := n, n.Depth; cur != nil && i >= 0; cur, i = cur.Parent, i-1 {
		path[i] = cur.State
	}

	return path
}

// less orders nodes for priority frontiers: key ascending, then creation order.
func less(ka float64, a *Node, kb float64, b *Node) bool {
	if ka != kb {
		return ka < kb
	}

	return a.seq < b.seq
}
