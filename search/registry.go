package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadsearch/core"
)

// Algorithm is the stable tag of a search strategy.
type Algorithm string

// Algorithm tags, as they appear in Result.Algorithm and in exports.
const (
	AlgorithmBFS           Algorithm = "bfs"
	AlgorithmUCS           Algorithm = "ucs"
	AlgorithmDFS           Algorithm = "dfs"
	AlgorithmDLS           Algorithm = "dls"
	AlgorithmIDS           Algorithm = "ids"
	AlgorithmBidirectional Algorithm = "bidirectional"
	AlgorithmGreedy        Algorithm = "greedy"
	AlgorithmAStar         Algorithm = "astar"
)

// Func is the common signature of every algorithm in this package.
type Func func(g *core.Graph, start, goal string, opts ...Option) (*Result, error)

var registry = map[Algorithm]Func{
	AlgorithmBFS:           BFS,
	AlgorithmUCS:           UCS,
	AlgorithmDFS:           DFS,
	AlgorithmDLS:           DLS,
	AlgorithmIDS:           IDS,
	AlgorithmBidirectional: Bidirectional,
	AlgorithmGreedy:        Greedy,
	AlgorithmAStar:         AStar,
}

// All returns every tag in comparison order.
func All() []Algorithm {
	return []Algorithm{
		AlgorithmBFS,
		AlgorithmUCS,
		AlgorithmDFS,
		AlgorithmDLS,
		AlgorithmIDS,
		AlgorithmBidirectional,
		AlgorithmGreedy,
		AlgorithmAStar,
	}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Valid reports whether a names a registered algorithm.
func (a Algorithm) Valid() bool {
	_, ok := registry[a]

	return ok
}

// Informed reports whether a consults the heuristic.
func (a Algorithm) Informed() bool {
	return a == AlgorithmGreedy || a == AlgorithmAStar
}

// ParseAlgorithm maps user input to a tag. Matching is case-insensitive
// and accepts "a*" and "a-star" for AStar, "bidi" for Bidirectional.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case "a*", "a-star":
		a = AlgorithmAStar
	case "bidi":
		a = AlgorithmBidirectional
	}
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	return a, nil
}

// Lookup returns the implementation of a.
func Lookup(a Algorithm) (Func, error) {
	fn, ok := registry[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}

	return fn, nil
}

// Run looks a up and invokes it.
func Run(a Algorithm, g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	fn, err := Lookup(a)
	if err != nil {
		return nil, err
	}

	return fn(g, start, goal, opts...)
}
