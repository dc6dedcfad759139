package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadsearch/core"
)

func newTestGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}
