package report

import "github.com/katalvlaran/roadsearch/search"

// Labels maps algorithm tags to display names.
var Labels = map[search.Algorithm]string{
	search.AlgorithmBFS:           "Breadth-First Search (BFS)",
	search.AlgorithmUCS:           "Uniform-Cost Search (UCS)",
	search.AlgorithmDFS:           "Depth-First Search (DFS)",
	search.AlgorithmDLS:           "Depth-Limited Search (DLS)",
	search.AlgorithmIDS:           "Iterative-Deepening Search (IDS)",
	search.AlgorithmBidirectional: "Bidirectional Search",
	search.AlgorithmGreedy:        "Greedy Best-First Search",
	search.AlgorithmAStar:         "A* Search",
}

// Label returns the display name of a, or the tag itself if unknown.
func Label(a search.Algorithm) string {
	if l, ok := Labels[a]; ok {
		return l
	}

	return string(a)
}
