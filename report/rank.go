package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/roadsearch/compare"
	"github.com/katalvlaran/roadsearch/search"
)

// Metric names a Result field that can be ranked on (lower is better).
type Metric string

// Rankable metrics, named as in the exported Result fields.
const (
	MetricDistance  Metric = "distance"
	MetricExpanded  Metric = "nodes_expanded"
	MetricGenerated Metric = "nodes_generated"
	MetricFrontier  Metric = "max_frontier_size"
	MetricTime      Metric = "execution_time"
)

// ErrUnknownMetric is returned for an unrecognised Metric.
var ErrUnknownMetric = errors.New("report: unknown metric")

// Metrics lists every rankable metric.
func Metrics() []Metric {
	return []Metric{MetricDistance, MetricExpanded, MetricGenerated, MetricFrontier, MetricTime}
}

// ParseMetric accepts a metric name or its short form
// (distance, expanded, generated, frontier, time).
func ParseMetric(s string) (Metric, error) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case MetricDistance, MetricExpanded, MetricGenerated, MetricFrontier, MetricTime:
		return m, nil
	case "expanded":
		return MetricExpanded, nil
	case "generated":
		return MetricGenerated, nil
	case "frontier":
		return MetricFrontier, nil
	case "time":
		return MetricTime, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Value extracts m from r.
func (m Metric) Value(r *search.Result) (float64, error) {
	switch m {
	case MetricDistance:
		return r.Distance, nil
	case MetricExpanded:
		return float64(r.NodesExpanded), nil
	case MetricGenerated:
		return float64(r.NodesGenerated), nil
	case MetricFrontier:
		return float64(r.MaxFrontierSize), nil
	case MetricTime:
		return r.ExecutionTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
	}
}

// Score pairs an algorithm with a ranking value.
type Score struct {
	Algorithm search.Algorithm `json:"algorithm" yaml:"algorithm"`
	Value     float64          `json:"value" yaml:"value"`
}

// EfficiencyScore rates a run from 0 to 100: half for expanding few nodes,
// half for running fast, each normalised by the largest value among the
// compared runs. A run without a path scores 0.
func EfficiencyScore(r *search.Result, maxNodes int, maxTime float64) float64 {
	if !r.Found() {
		return 0
	}
	nodes := 1.0
	if maxNodes > 0 {
		nodes -= float64(r.NodesExpanded) / float64(maxNodes)
	}
	elapsed := 1.0
	if maxTime > 0 {
		elapsed -= r.ExecutionTime / maxTime
	}

	return nodes*50 + elapsed*50
}

// Rank returns the efficiency score of every found record, best first.
// Equal scores keep comparison order.
func Rank(cmp *compare.Comparison) []Score {
	found := cmp.Found()
	maxNodes, maxTime := 0, 0.0
	for _, r := range found {
		maxNodes = max(maxNodes, r.NodesExpanded)
		maxTime = max(maxTime, r.ExecutionTime)
	}

	scores := make([]Score, len(found))
	for i, r := range found {
		scores[i] = Score{Algorithm: r.Algorithm, Value: EfficiencyScore(r, maxNodes, maxTime)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Value > scores[j].Value })

	return scores
}

// RankBy orders the found records by m, lowest first.
// Equal values keep comparison order.
func RankBy(cmp *compare.Comparison, m Metric) ([]Score, error) {
	found := cmp.Found()
	scores := make([]Score, len(found))
	for i, r := range found {
		v, err := m.Value(r)
		if err != nil {
			return nil, err
		}
		scores[i] = Score{Algorithm: r.Algorithm, Value: v}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Value < scores[j].Value })

	return scores, nil
}

// Summary holds per-metric averages over the found records.
type Summary struct {
	Count           int     `json:"count" yaml:"count"`
	Distance        float64 `json:"distance" yaml:"distance"`
	NodesExpanded   float64 `json:"nodes_expanded" yaml:"nodes_expanded"`
	NodesGenerated  float64 `json:"nodes_generated" yaml:"nodes_generated"`
	MaxFrontierSize float64 `json:"max_frontier_size" yaml:"max_frontier_size"`
	ExecutionTime   float64 `json:"execution_time" yaml:"execution_time"`
}

// Averages computes the mean of every metric over the found records.
// With no found record every field is 0.
func Averages(cmp *compare.Comparison) Summary {
	var s Summary
	for _, r := range cmp.Found() {
		s.Count++
		s.Distance += r.Distance
		s.NodesExpanded += float64(r.NodesExpanded)
		s.NodesGenerated += float64(r.NodesGenerated)
		s.MaxFrontierSize += float64(r.MaxFrontierSize)
		s.ExecutionTime += r.ExecutionTime
	}
	if s.Count == 0 {
		return s
	}
	n := float64(s.Count)
	s.Distance /= n
	s.NodesExpanded /= n
	s.NodesGenerated /= n
	s.MaxFrontierSize /= n
	s.ExecutionTime /= n

	return s
}
