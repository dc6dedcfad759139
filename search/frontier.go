// File: frontier.go
// Role: open-list containers (FIFO, LIFO, priority) with O(1) state membership.
// Determinism:
//   - States() of FIFO lists the queue head first, of LIFO the stack bottom first,
//     of the priority frontier the exact pop order (key, then creation sequence).
// Concurrency:
//   - Owned by a single run; not safe for concurrent use.

package search

import (
	"container/heap"
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// frontier is the view of an open list that the shared loop needs.
type frontier interface {
	Len() int
	Contains(state string) bool
	States() []string
	Pop() *Node
}

// ------------------------------------------------------------------------
// FIFO
// ------------------------------------------------------------------------

// fifoFrontier is a queue of nodes backed by gods linkedlistqueue.
type fifoFrontier struct {
	queue   *linkedlistqueue.Queue
	members map[string]int // state → live entries
}

func newFIFO() *fifoFrontier {
	return &fifoFrontier{queue: linkedlistqueue.New(), members: make(map[string]int)}
}

func (f *fifoFrontier) Push(n *Node) {
	f.queue.Enqueue(n)
	f.members[n.State]++
}

func (f *fifoFrontier) Pop() *Node {
	v, ok := f.queue.Dequeue()
	if !ok {
		return nil
	}
	n := v.(*Node)
	release(f.members, n.State)

	return n
}

func (f *fifoFrontier) Len() int { return f.queue.Size() }

func (f *fifoFrontier) Contains(state string) bool { return f.members[state] > 0 }

func (f *fifoFrontier) States() []string {
	return nodeStates(f.queue.Values())
}

// ------------------------------------------------------------------------
// LIFO
// ------------------------------------------------------------------------

// lifoFrontier is a stack of nodes backed by gods arraystack.
type lifoFrontier struct {
	stack   *arraystack.Stack
	members map[string]int
}

func newLIFO() *lifoFrontier {
	return &lifoFrontier{stack: arraystack.New(), members: make(map[string]int)}
}

func (f *lifoFrontier) Push(n *Node) {
	f.stack.Push(n)
	f.members[n.State]++
}

func (f *lifoFrontier) Pop() *Node {
	v, ok := f.stack.Pop()
	if !ok {
		return nil
	}
	n := v.(*Node)
	release(f.members, n.State)

	return n
}

func (f *lifoFrontier) Len() int { return f.stack.Size() }

func (f *lifoFrontier) Contains(state string) bool { return f.members[state] > 0 }

// States lists the stack bottom first; arraystack.Values is top first.
func (f *lifoFrontier) States() []string {
	out := nodeStates(f.stack.Values())
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// ------------------------------------------------------------------------
// Priority
// ------------------------------------------------------------------------

// pqEntry is one live frontier entry; index is maintained by nodePQ.Swap.
type pqEntry struct {
	node  *Node
	key   float64
	index int
}

// nodePQ is a min-heap of *pqEntry ordered by (key, node sequence).
type nodePQ []*pqEntry

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	return less(pq[i].key, pq[i].node, pq[j].key, pq[j].node)
}

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodePQ) Push(x interface{}) {
	e := x.(*pqEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]

	return e
}

// priorityFrontier keeps at most one entry per state, indexed for replacement.
type priorityFrontier struct {
	pq      nodePQ
	byState map[string]*pqEntry
}

func newPriority() *priorityFrontier {
	return &priorityFrontier{byState: make(map[string]*pqEntry)}
}

// Push inserts n with the given key. The caller guarantees n.State is not
// already present (use Replace for that).
func (f *priorityFrontier) Push(n *Node, key float64) {
	e := &pqEntry{node: n, key: key}
	heap.Push(&f.pq, e)
	f.byState[n.State] = e
}

// Replace swaps the entry of n.State for n and restores heap order.
// It reports false when the state has no live entry.
func (f *priorityFrontier) Replace(n *Node, key float64) bool {
	e, ok := f.byState[n.State]
	if !ok {
		return false
	}
	e.node = n
	e.key = key
	heap.Fix(&f.pq, e.index)

	return true
}

// Lookup returns the live node recorded for state.
func (f *priorityFrontier) Lookup(state string) (*Node, bool) {
	e, ok := f.byState[state]
	if !ok {
		return nil, false
	}

	return e.node, true
}

func (f *priorityFrontier) Pop() *Node {
	if f.pq.Len() == 0 {
		return nil
	}
	e := heap.Pop(&f.pq).(*pqEntry)
	delete(f.byState, e.node.State)

	return e.node
}

func (f *priorityFrontier) Len() int { return f.pq.Len() }

func (f *priorityFrontier) Contains(state string) bool {
	_, ok := f.byState[state]

	return ok
}

// States lists the frontier in the order it would be popped.
func (f *priorityFrontier) States() []string {
	entries := make([]*pqEntry, len(f.pq))
	copy(entries, f.pq)
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i].key, entries[i].node, entries[j].key, entries[j].node)
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.node.State
	}

	return out
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

func release(members map[string]int, state string) {
	if members[state] <= 1 {
		delete(members, state)
		return
	}
	members[state]--
}

func nodeStates(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(*Node).State
	}

	return out
}
