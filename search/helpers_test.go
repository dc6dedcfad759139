package search_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/heuristic"
	"github.com/katalvlaran/roadsearch/mapdata"
	"github.com/katalvlaran/roadsearch/search"
	"github.com/stretchr/testify/require"
)

// triangle builds A–B(1), B–C(2), A–C(5).
func triangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

// split builds two components: A–B–C (with A–C) and D–E.
func split(t testing.TB) *core.Graph {
	t.Helper()
	g := triangle(t)
	require.NoError(t, g.AddEdge("D", "E", 4))

	return g
}

// romania returns the built-in map graph and its straight-line table.
func romania(t testing.TB) (*core.Graph, *heuristic.Table) {
	t.Helper()
	m := mapdata.Romania()
	g, err := m.Graph()
	require.NoError(t, err)

	return g, m.HeuristicTable()
}

// shortest is a Bellman-Ford reference distance (math.Inf(1) if unreachable).
func shortest(g *core.Graph, from, to string) float64 {
	dist := map[string]float64{}
	for _, v := range g.Vertices() {
		dist[v] = math.Inf(1)
	}
	dist[from] = 0
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range g.Edges() {
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
			}
		}
	}

	return dist[to]
}

// requireValidPath checks contiguity, endpoints and the reported distance.
func requireValidPath(t *testing.T, g *core.Graph, res *search.Result, start, goal string) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, goal, res.Path[len(res.Path)-1])

	sum := 0.0
	for i := 0; i+1 < len(res.Path); i++ {
		w, ok := g.Weight(res.Path[i], res.Path[i+1])
		require.Truef(t, ok, "%s: %s and %s are not adjacent", res.Algorithm, res.Path[i], res.Path[i+1])
		sum += w
	}
	require.InDelta(t, sum, res.Distance, 1e-9)
}

// frontiers and currents project a trace for compact asserts.
func frontiers(steps []search.Step) [][]string {
	out := make([][]string, len(steps))
	for i, s := range steps {
		out[i] = s.Frontier
	}

	return out
}

func currents(steps []search.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Current
	}

	return out
}
