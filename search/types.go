package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/roadsearch/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrUnknownLocation is returned when start or goal is absent from the graph.
	ErrUnknownLocation = errors.New("search: unknown location")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an unrecognised algorithm tag.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

const (
	// DefaultDepthLimit is the DLS cut-off when WithDepthLimit is not given.
	DefaultDepthLimit = 10

	// DefaultMaxDepth bounds the IDS iterations: limits 0..DefaultMaxDepth-1.
	DefaultMaxDepth = 100
)

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the algorithm is invoked.
type Option func(*Options)

// Options holds the parameters shared by all algorithms.
// Each algorithm reads only the fields relevant to it.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// DepthLimit is the DLS cut-off: nodes at this depth are not expanded.
	DepthLimit int

	// MaxDepth is the number of IDS iterations (limits 0..MaxDepth-1).
	MaxDepth int

	// Heuristic feeds Greedy and AStar.
	Heuristic heuristic.Heuristic

	// Trace enables step snapshots. Metrics are unaffected.
	Trace bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background() (never cancels)
//   - DepthLimit = DefaultDepthLimit, MaxDepth = DefaultMaxDepth
//   - heuristic.Zero
//   - tracing on.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: DefaultDepthLimit,
		MaxDepth:   DefaultMaxDepth,
		Heuristic:  heuristic.Zero,
		Trace:      true,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthLimit sets the DLS cut-off.
//
//	n >= 0: nodes with Depth >= n are not expanded (0 = only the root is tested)
//	n < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.DepthLimit = n
	}
}

// WithMaxDepth sets how many depth limits IDS tries (0..n-1).
// Negative values are an ErrOptionViolation.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithHeuristic sets the estimate used by Greedy and AStar.
// A nil h restores heuristic.Zero.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			h = heuristic.Zero
		}
		o.Heuristic = h
	}
}

// WithoutTrace disables step recording; Result.Steps stays empty.
func WithoutTrace() Option {
	return func(o *Options) { o.Trace = false }
}

// buildOptions applies opts over the defaults and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
