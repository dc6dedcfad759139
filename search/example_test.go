package search_test

import (
	"fmt"

	"github.com/katalvlaran/roadsearch/mapdata"
	"github.com/katalvlaran/roadsearch/search"
)

// ExampleAStar finds the classic optimal route with the straight-line table.
func ExampleAStar() {
	m := mapdata.Romania()
	g, _ := m.Graph()

	res, err := search.AStar(g, "Arad", "Bucharest", search.WithHeuristic(m.HeuristicTable()))
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Path)
	fmt.Println(res.Distance, res.NodesExpanded)

	// Output:
	// [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest]
	// 418 6
}

// ExampleGreedy shows greedy best-first settling for a longer road.
func ExampleGreedy() {
	m := mapdata.Romania()
	g, _ := m.Graph()

	res, _ := search.Greedy(g, "Arad", "Bucharest", search.WithHeuristic(m.HeuristicTable()))
	fmt.Println(res.Path, res.Distance)

	// Output:
	// [Arad Sibiu Fagaras Bucharest] 450
}

// ExampleRun dispatches by tag, as a comparison front-end would.
func ExampleRun() {
	g, _ := mapdata.Romania().Graph()

	for _, a := range []search.Algorithm{search.AlgorithmBFS, search.AlgorithmUCS} {
		res, _ := search.Run(a, g, "Arad", "Bucharest", search.WithoutTrace())
		fmt.Printf("%s: %v km\n", a, res.Distance)
	}

	// Output:
	// bfs: 450 km
	// ucs: 418 km
}

// ExampleIDS prints the depth limit each trace step was taken under.
func ExampleIDS() {
	g, _ := mapdata.Romania().Graph()

	res, _ := search.IDS(g, "Arad", "Fagaras")
	limits := map[int]int{}
	for _, s := range res.Steps {
		limits[s.DepthLimit]++
	}
	fmt.Println(res.Path, len(limits))

	// Output:
	// [Arad Sibiu Fagaras] 3
}
