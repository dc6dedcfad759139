// Package roadsearch is a playground for classic graph-search strategies on
// road maps: run one algorithm, compare all of them, or replay a trace step
// by step.
//
// What's inside:
//
//	core/           ordered, thread-safe weighted Graph (insertion-ordered neighbours)
//	search/         BFS, DFS, UCS, DLS, IDS, Bidirectional, Greedy and A*, one Result contract
//	heuristic/      Heuristic interface, Zero, and straight-line lookup Tables
//	mapdata/        Map model, the built-in Romania map, YAML load/save
//	builder/        synthetic grid and random road maps with admissible tables
//	compare/        run several algorithms on the same endpoints (sequential or parallel)
//	report/         text descriptions, comparison tables, rankings, JSON/YAML export
//	replay/         frame-by-frame trace playback for terminals
//	cmd/roadsearch  the command-line front end (internal/cli)
//
// Quick example:
//
//	m := mapdata.Romania()
//	g, _ := m.Graph()
//	res, _ := search.AStar(g, "Arad", "Bucharest",
//		search.WithHeuristic(m.HeuristicTable()))
//	fmt.Println(res.Path, res.Distance)
//	//              [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
//
// Every run is deterministic: neighbours are expanded in the order roads
// were added and priority ties are broken by node creation order, so traces
// and metrics repeat exactly from run to run.
package roadsearch
