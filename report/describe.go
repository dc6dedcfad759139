package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadsearch/search"
)

// Describe writes a plain-text summary of one run:
//
//	Algorithm: A* Search
//
//	Path: Arad → Sibiu → Rimnicu Vilcea → Pitesti → Bucharest
//	Distance: 418 km
//	Cities on path: 5
//
//	Nodes expanded: 6
//	...
func Describe(w io.Writer, r *search.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Algorithm: %s\n\n", Label(r.Algorithm))

	if r.Found() {
		fmt.Fprintf(&b, "Path: %s\n", FormatPath(r.Path))
		fmt.Fprintf(&b, "Distance: %s\n", FormatDistance(r.Distance))
		fmt.Fprintf(&b, "Cities on path: %d\n\n", PathLength(r.Path))
	} else {
		b.WriteString("No path found.\n\n")
	}

	fmt.Fprintf(&b, "Nodes expanded: %d\n", r.NodesExpanded)
	fmt.Fprintf(&b, "Nodes generated: %d\n", r.NodesGenerated)
	fmt.Fprintf(&b, "Max frontier size: %d\n", r.MaxFrontierSize)
	fmt.Fprintf(&b, "Execution time: %s\n", FormatTime(r.ExecutionTime))

	_, err := io.WriteString(w, b.String())

	return err
}
