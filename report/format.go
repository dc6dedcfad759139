package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadsearch/core"
)

// ErrNotAdjacent is returned by PathCost for a path that leaves the road network.
var ErrNotAdjacent = errors.New("report: consecutive path cities are not adjacent")

// PathSeparator joins cities in printed paths.
const PathSeparator = " → "

// FormatTime renders milliseconds with a unit that keeps two decimals
// meaningful: µs below 1 ms, ms below 1 s, seconds above.
func FormatTime(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.2f µs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.2f ms", ms)
	default:
		return fmt.Sprintf("%.2f s", ms/1000)
	}
}

// FormatDistance renders a road distance in kilometres without trailing zeros.
func FormatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

// FormatPath joins the cities of a path.
func FormatPath(path []string) string {
	return strings.Join(path, PathSeparator)
}

// PathLength returns the number of cities on a path (0 for none).
func PathLength(path []string) int { return len(path) }

// PathCost sums the road distances along path on g, independently of what
// the algorithm reported. Paths shorter than two cities cost 0.
func PathCost(g *core.Graph, path []string) (float64, error) {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, path[i], path[i+1])
		}
		total += w
	}

	return total, nil
}
