// Package search implements eight classic graph-search strategies over a
// core.Graph and reports every run through one uniform Result.
//
// Algorithms:
//
//	Uninformed:  BFS, DFS, UCS (uniform cost), DLS (depth limited),
//	             IDS (iterative deepening), Bidirectional.
//	Informed:    Greedy (best-first on h), AStar (g + h).
//
// Every algorithm has the signature
//
//	func(g *core.Graph, start, goal string, opts ...Option) (*Result, error)
//
// and follows the same state machine:
//
//	INIT → LOOP{ snapshot → pop → goal test → (return | expand → LOOP) }
//	     → found | exhausted
//
// Conventions shared by all runs:
//   - The goal test is applied when a node is popped, never when generated.
//   - Neighbours are visited in the graph's insertion order, and priority
//     ties are broken by node creation sequence, so traces and metrics are
//     reproducible run after run.
//   - start == goal short-circuits to Path=[start], Distance=0, one node
//     generated, none expanded, and an empty trace.
//   - An unreachable goal is not an error: the Result has an empty Path,
//     zero Distance and the metrics of the exhausted search.
//   - NodesGenerated counts the root plus every child actually inserted
//     into the frontier (including cost-improving replacements).
//
// Errors (sentinel):
//
//	ErrGraphNil          graph pointer is nil.
//	ErrUnknownLocation   start or goal is not a vertex of the graph.
//	ErrOptionViolation   an Option carried an invalid value.
//	ErrUnknownAlgorithm  Lookup/Run/ParseAlgorithm got an unknown tag.
//
// Concurrency:
//
//	A run is synchronous and owns its frontier, explored set and trace.
//	Independent runs may share one graph from different goroutines.
//	WithContext adds optional cancellation, checked once per iteration.
package search
