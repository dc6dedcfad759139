package compare

import (
	"github.com/katalvlaran/roadsearch/heuristic"
	"github.com/katalvlaran/roadsearch/search"
)

// Config selects the algorithms and the parameters passed to each of them.
type Config struct {
	// Algorithms to run, in report order. Empty means search.All().
	Algorithms []search.Algorithm `yaml:"algorithms" json:"algorithms"`

	// DepthLimit is forwarded to DLS.
	DepthLimit int `yaml:"depth_limit" json:"depth_limit"`

	// MaxDepth is forwarded to IDS.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// Heuristic is forwarded to Greedy and AStar; nil means heuristic.Zero.
	Heuristic heuristic.Heuristic `yaml:"-" json:"-"`

	// Parallel runs each algorithm on its own goroutine.
	Parallel bool `yaml:"parallel" json:"parallel"`

	// WithoutTrace skips step recording in every run.
	WithoutTrace bool `yaml:"without_trace" json:"without_trace"`
}

// DefaultConfig returns every algorithm, the engine's default limits,
// sequential execution and tracing on.
func DefaultConfig() Config {
	return Config{
		Algorithms: search.All(),
		DepthLimit: search.DefaultDepthLimit,
		MaxDepth:   search.DefaultMaxDepth,
	}
}

// options translates the config into per-run search options.
func (c Config) options() []search.Option {
	opts := []search.Option{
		search.WithDepthLimit(c.DepthLimit),
		search.WithMaxDepth(c.MaxDepth),
		search.WithHeuristic(c.Heuristic),
	}
	if c.WithoutTrace {
		opts = append(opts, search.WithoutTrace())
	}

	return opts
}
