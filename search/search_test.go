package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/roadsearch/builder"
	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/heuristic"
	"github.com/katalvlaran/roadsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation and the trivial case
// ------------------------------------------------------------------------

func TestErrors(t *testing.T) {
	g := triangle(t)
	for _, a := range search.All() {
		t.Run(a.String(), func(t *testing.T) {
			_, err := search.Run(a, nil, "A", "C")
			assert.ErrorIs(t, err, search.ErrGraphNil)

			_, err = search.Run(a, g, "X", "C")
			assert.ErrorIs(t, err, search.ErrUnknownLocation)
			assert.Contains(t, err.Error(), `start "X"`)

			_, err = search.Run(a, g, "A", "Y")
			assert.ErrorIs(t, err, search.ErrUnknownLocation)
			assert.Contains(t, err.Error(), `goal "Y"`)

			// unknown location is reported even when start == goal
			_, err = search.Run(a, g, "Z", "Z")
			assert.ErrorIs(t, err, search.ErrUnknownLocation)
		})
	}

	_, err := search.DLS(g, "A", "C", search.WithDepthLimit(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.IDS(g, "A", "C", search.WithMaxDepth(-3))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestStartEqualsGoal(t *testing.T) {
	g := triangle(t)
	for _, a := range search.All() {
		res, err := search.Run(a, g, "B", "B")
		require.NoError(t, err, a)
		assert.Equal(t, a, res.Algorithm)
		assert.Equal(t, []string{"B"}, res.Path, a)
		assert.Zero(t, res.Distance, a)
		assert.Zero(t, res.NodesExpanded, a)
		assert.Equal(t, 1, res.NodesGenerated, a)
		assert.Equal(t, 1, res.MaxFrontierSize, a)
		assert.Empty(t, res.Steps, a)
		assert.True(t, res.Found())
	}
}

// ------------------------------------------------------------------------
// 2. Triangle A–B(1), B–C(2), A–C(5): exact traces and metrics
// ------------------------------------------------------------------------

func TestUCS_Triangle(t *testing.T) {
	res, err := search.UCS(triangle(t), "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 3.0, res.Distance)
	assert.Equal(t, 3, res.NodesExpanded)
	assert.Equal(t, 4, res.NodesGenerated, "root + B + C + cheaper C replacing the waiting entry")
	assert.Equal(t, 2, res.MaxFrontierSize)

	require.Len(t, res.Steps, 3)
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}, {"C"}}, frontiers(res.Steps))
	assert.Equal(t, []string{"A", "B", "C"}, currents(res.Steps))
	assert.Equal(t, []string{"A", "B"}, res.Steps[2].Explored)
	assert.Empty(t, res.Steps[0].Explored)
	for _, s := range res.Steps {
		assert.Equal(t, search.NoDepthLimit, s.DepthLimit)
	}
}

func TestAStar_ZeroHeuristicMatchesUCS(t *testing.T) {
	g := triangle(t)
	ucs, err := search.UCS(g, "A", "C")
	require.NoError(t, err)
	astar, err := search.AStar(g, "A", "C")
	require.NoError(t, err)

	assert.Equal(t, ucs.Path, astar.Path)
	assert.Equal(t, ucs.Distance, astar.Distance)
	assert.Equal(t, ucs.NodesExpanded, astar.NodesExpanded)
	assert.Equal(t, ucs.NodesGenerated, astar.NodesGenerated)
	assert.Equal(t, ucs.Steps, astar.Steps)
	assert.Equal(t, search.AlgorithmAStar, astar.Algorithm)
}

// BFS is hop-optimal: C is discovered directly from A and the goal test
// happens on pop, so the direct (costlier) road wins.
func TestBFS_Triangle(t *testing.T) {
	g := triangle(t)
	res, err := search.BFS(g, "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 5.0, res.Distance)
	assert.GreaterOrEqual(t, res.Distance, shortest(g, "A", "C"))
	assert.Equal(t, 3, res.NodesExpanded)
	assert.Equal(t, 3, res.NodesGenerated)
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}, {"C"}}, frontiers(res.Steps))
}

func TestDFS_Triangle(t *testing.T) {
	res, err := search.DFS(triangle(t), "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, res.Path)
	// stack listed bottom first: children pushed in reverse, so B is on top
	assert.Equal(t, [][]string{{"A"}, {"C", "B"}, {"C"}}, frontiers(res.Steps))
	assert.Equal(t, []string{"A", "B", "C"}, currents(res.Steps))
	assert.Equal(t, 3, res.NodesGenerated)
}

func TestDLS_Limits(t *testing.T) {
	g := triangle(t)

	res, err := search.DLS(g, "A", "C", search.WithDepthLimit(0))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Zero(t, res.Distance)
	assert.Equal(t, 1, res.NodesExpanded)
	assert.Equal(t, 1, res.NodesGenerated)
	assert.Equal(t, 1, res.MaxFrontierSize)
	assert.Len(t, res.Steps, 1)

	res, err = search.DLS(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.Path)
}

func TestIDS_Triangle(t *testing.T) {
	res, err := search.IDS(triangle(t), "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 5.0, res.Distance)
	assert.Equal(t, 4, res.NodesExpanded, "1 at limit 0, 3 at limit 1")
	assert.Equal(t, 4, res.NodesGenerated)
	assert.Equal(t, 2, res.MaxFrontierSize)

	require.Len(t, res.Steps, 4)
	limits := make([]int, len(res.Steps))
	for i, s := range res.Steps {
		limits[i] = s.DepthLimit
	}
	assert.Equal(t, []int{0, 1, 1, 1}, limits)
	assert.Equal(t, len(res.Path)-1, limits[len(limits)-1])
}

func TestIDS_ZeroIterations(t *testing.T) {
	res, err := search.IDS(triangle(t), "A", "C", search.WithMaxDepth(0))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Zero(t, res.NodesExpanded)
	assert.Empty(t, res.Steps)
}

func TestGreedy_TieBreakBySequence(t *testing.T) {
	res, err := search.Greedy(triangle(t), "A", "C")
	require.NoError(t, err)

	// all estimates are 0: creation order decides, B (seq 1) before C (seq 2)
	assert.Equal(t, []string{"A", "B", "C"}, currents(res.Steps))
	assert.Equal(t, []string{"A", "C"}, res.Path)
}

func TestBidirectional_Triangle(t *testing.T) {
	g := triangle(t)
	res, err := search.Bidirectional(g, "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "C"}, res.Path)
	assert.Equal(t, 5.0, res.Distance)
	assert.GreaterOrEqual(t, res.Distance, shortest(g, "A", "C"))
	assert.Equal(t, 4, res.NodesExpanded)
	assert.Equal(t, 6, res.NodesGenerated)
	assert.Equal(t, 4, res.MaxFrontierSize)

	require.Len(t, res.Steps, 2)
	first, second := res.Steps[0], res.Steps[1]
	assert.Equal(t, []string{"A"}, first.Frontier)
	assert.Equal(t, []string{"C"}, first.BackwardFrontier)
	assert.Equal(t, "A", first.Current)
	assert.Equal(t, "C", first.CurrentBackward)

	assert.Equal(t, []string{"B", "C"}, second.Frontier)
	assert.Equal(t, []string{"A", "B"}, second.BackwardFrontier)
	assert.Equal(t, []string{"A"}, second.Explored)
	assert.Equal(t, []string{"C"}, second.BackwardExplored)
	assert.Equal(t, "B", second.Current)
	assert.Equal(t, "A", second.CurrentBackward)
}

func TestBidirectional_OneWayRoads(t *testing.T) {
	// A→B→C→D, backward side must walk the reverse arcs
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := search.Bidirectional(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Distance)

	res, err = search.Bidirectional(g, "D", "A")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

// ------------------------------------------------------------------------
// 3. Properties over every algorithm
// ------------------------------------------------------------------------

func TestUnreachableGoal(t *testing.T) {
	g := split(t)
	for _, a := range search.All() {
		t.Run(a.String(), func(t *testing.T) {
			res, err := search.Run(a, g, "A", "E", search.WithMaxDepth(10))
			require.NoError(t, err)
			assert.False(t, res.Found())
			assert.NotNil(t, res.Path)
			assert.Empty(t, res.Path)
			assert.Zero(t, res.Distance)
			assert.GreaterOrEqual(t, res.MaxFrontierSize, 1)
			assert.GreaterOrEqual(t, res.NodesGenerated, res.NodesExpanded)
			assert.NotEmpty(t, res.Steps)

			switch a {
			case search.AlgorithmIDS:
				assert.LessOrEqual(t, res.NodesExpanded, 3*10)
			case search.AlgorithmBidirectional:
				assert.LessOrEqual(t, res.NodesExpanded, g.VertexCount())
			default:
				assert.LessOrEqual(t, res.NodesExpanded, 3, "reachable component of A has 3 cities")
			}
		})
	}
}

func TestRomania_AllAlgorithmsValid(t *testing.T) {
	g, table := romania(t)
	best := shortest(g, "Arad", "Bucharest")
	require.Equal(t, 418.0, best)

	for _, a := range search.All() {
		t.Run(a.String(), func(t *testing.T) {
			res, err := search.Run(a, g, "Arad", "Bucharest", search.WithHeuristic(table))
			require.NoError(t, err)
			requireValidPath(t, g, res, "Arad", "Bucharest")
			assert.GreaterOrEqual(t, res.Distance, best)
			assert.GreaterOrEqual(t, res.NodesGenerated, res.NodesExpanded)
			assert.GreaterOrEqual(t, res.MaxFrontierSize, 1)
			assert.GreaterOrEqual(t, res.ExecutionTime, 0.0)

			seen := map[string]bool{}
			for _, s := range res.Path {
				assert.False(t, seen[s], "duplicate %s in path", s)
				seen[s] = true
			}
		})
	}
}

func TestRomania_KnownRoutes(t *testing.T) {
	g, table := romania(t)
	optimal := []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}
	viaFagaras := []string{"Arad", "Sibiu", "Fagaras", "Bucharest"}

	ucs, err := search.UCS(g, "Arad", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, optimal, ucs.Path)
	assert.Equal(t, 418.0, ucs.Distance)

	astar, err := search.AStar(g, "Arad", "Bucharest", search.WithHeuristic(table))
	require.NoError(t, err)
	assert.Equal(t, optimal, astar.Path)
	assert.Equal(t, 418.0, astar.Distance)
	assert.Equal(t, 6, astar.NodesExpanded)
	assert.LessOrEqual(t, astar.NodesExpanded, ucs.NodesExpanded)
	assert.Equal(t, []string{"Sibiu", "Timisoara", "Zerind"}, astar.Steps[1].Frontier, "pop order by f = g + h")

	greedy, err := search.Greedy(g, "Arad", "Bucharest", search.WithHeuristic(table))
	require.NoError(t, err)
	assert.Equal(t, viaFagaras, greedy.Path)
	assert.Equal(t, 450.0, greedy.Distance)
	assert.Equal(t, 4, greedy.NodesExpanded)

	bfs, err := search.BFS(g, "Arad", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, viaFagaras, bfs.Path)
	assert.Equal(t, 450.0, bfs.Distance)

	dfs, err := search.DFS(g, "Arad", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, viaFagaras, dfs.Path)

	ids, err := search.IDS(g, "Arad", "Bucharest")
	require.NoError(t, err)
	assert.Equal(t, viaFagaras, ids.Path)
	last := ids.Steps[len(ids.Steps)-1].DepthLimit
	assert.Equal(t, 3, last)
	assert.Equal(t, len(ids.Path)-1, last)
	for i := 1; i < len(ids.Steps); i++ {
		assert.GreaterOrEqual(t, ids.Steps[i].DepthLimit, ids.Steps[i-1].DepthLimit)
	}
}

func TestRomania_CostAwareOptimalEverywhere(t *testing.T) {
	g, table := romania(t)
	for _, from := range g.Vertices() {
		for _, to := range []string{"Bucharest", "Craiova", "Neamt"} {
			want := shortest(g, from, to)
			for _, a := range []search.Algorithm{search.AlgorithmUCS, search.AlgorithmAStar} {
				res, err := search.Run(a, g, from, to, search.WithHeuristic(table), search.WithoutTrace())
				require.NoError(t, err)
				assert.InDeltaf(t, want, res.Distance, 1e-9, "%s %s→%s", a, from, to)
			}
		}
	}
}

func TestGeneratedMaps_ValidPaths(t *testing.T) {
	for _, tc := range []struct {
		name string
		cons builder.Constructor
	}{
		{"grid", builder.Grid(6, 7)},
		{"random", builder.Random(25, 0.1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMap(tc.cons, builder.WithSeed(5), builder.WithDetour(1, 1.3))
			require.NoError(t, err)
			g, err := m.Graph()
			require.NoError(t, err)

			start := m.Cities[0].Name
			best := shortest(g, start, m.Target)
			for _, a := range search.All() {
				res, err := search.Run(a, g, start, m.Target,
					search.WithHeuristic(m.HeuristicTable()), search.WithDepthLimit(50), search.WithMaxDepth(50))
				require.NoError(t, err, a)
				requireValidPath(t, g, res, start, m.Target)
				assert.GreaterOrEqual(t, res.Distance, best-1e-9, a)
				if a == search.AlgorithmUCS || a == search.AlgorithmAStar {
					assert.InDelta(t, best, res.Distance, 1e-9, a)
				}
			}
		})
	}
}

func TestHeuristicFallbackMakesAStarUninformed(t *testing.T) {
	g, table := romania(t)
	// goal is not the table target: A* must behave exactly like UCS
	ucs, err := search.UCS(g, "Arad", "Craiova")
	require.NoError(t, err)
	astar, err := search.AStar(g, "Arad", "Craiova", search.WithHeuristic(table))
	require.NoError(t, err)

	assert.Equal(t, ucs.Path, astar.Path)
	assert.Equal(t, ucs.NodesExpanded, astar.NodesExpanded)
	assert.Equal(t, ucs.Steps, astar.Steps)
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestWithoutTrace_KeepsMetrics(t *testing.T) {
	g, table := romania(t)
	for _, a := range search.All() {
		traced, err := search.Run(a, g, "Timisoara", "Neamt", search.WithHeuristic(table))
		require.NoError(t, err)
		bare, err := search.Run(a, g, "Timisoara", "Neamt", search.WithHeuristic(table), search.WithoutTrace())
		require.NoError(t, err)

		assert.Empty(t, bare.Steps, a)
		assert.NotEmpty(t, traced.Steps, a)
		assert.Equal(t, traced.Path, bare.Path, a)
		assert.Equal(t, traced.NodesExpanded, bare.NodesExpanded, a)
		assert.Equal(t, traced.NodesGenerated, bare.NodesGenerated, a)
		assert.Equal(t, traced.MaxFrontierSize, bare.MaxFrontierSize, a)
	}
}

func TestWithContext_Cancelled(t *testing.T) {
	g, _ := romania(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, a := range search.All() {
		_, err := search.Run(a, g, "Arad", "Bucharest", search.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, a)
	}

	// the trivial case never enters the loop
	res, err := search.BFS(g, "Arad", "Arad", search.WithContext(ctx))
	require.NoError(t, err)
	assert.True(t, res.Found())
}

func TestWithHeuristic_Nil(t *testing.T) {
	res, err := search.Greedy(triangle(t), "A", "C", search.WithHeuristic(nil))
	require.NoError(t, err)
	assert.True(t, res.Found())

	o := search.DefaultOptions()
	search.WithHeuristic(nil)(&o)
	assert.Equal(t, 0.0, o.Heuristic.Estimate("A", "C"))
	assert.Equal(t, search.DefaultDepthLimit, o.DepthLimit)
	assert.Equal(t, search.DefaultMaxDepth, o.MaxDepth)
	assert.True(t, o.Trace)

	custom := heuristic.Func(func(string, string) float64 { return 7 })
	search.WithHeuristic(custom)(&o)
	assert.Equal(t, 7.0, o.Heuristic.Estimate("A", "C"))
}
