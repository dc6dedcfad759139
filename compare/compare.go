package compare

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/search"
)

// Comparison holds one Result per algorithm for a single start/goal pair.
type Comparison struct {
	ID      string                              `json:"id" yaml:"id"`
	Start   string                              `json:"start" yaml:"start"`
	Goal    string                              `json:"goal" yaml:"goal"`
	Order   []search.Algorithm                  `json:"order" yaml:"order"`
	Results map[search.Algorithm]*search.Result `json:"results" yaml:"results"`
}

// Get returns the result recorded for a.
func (c *Comparison) Get(a search.Algorithm) (*search.Result, bool) {
	r, ok := c.Results[a]

	return r, ok
}

// Records returns every result in Order.
func (c *Comparison) Records() []*search.Result {
	out := make([]*search.Result, 0, len(c.Order))
	for _, a := range c.Order {
		if r, ok := c.Results[a]; ok {
			out = append(out, r)
		}
	}

	return out
}

// Found returns the results with a non-empty path, in Order.
// Ranking and averages consider only these.
func (c *Comparison) Found() []*search.Result {
	all := c.Records()
	out := all[:0:0]
	for _, r := range all {
		if r.Found() {
			out = append(out, r)
		}
	}

	return out
}

// Runner executes comparisons over one graph.
type Runner struct {
	g      *core.Graph
	cfg    Config
	logger logrus.FieldLogger
}

// NewRunner returns a Runner for g. A nil logger discards output.
func NewRunner(g *core.Graph, cfg Config, logger logrus.FieldLogger) *Runner {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = search.All()
	}

	return &Runner{g: g, cfg: cfg, logger: logger.WithField("module", "compare")}
}

// Config returns the effective configuration.
func (r *Runner) Config() Config { return r.cfg }

// Run executes every configured algorithm from start to goal.
//
// Errors from any run (unknown locations, cancellation, bad options) abort
// the comparison. Duplicate tags in Config.Algorithms are run once.
func (r *Runner) Run(ctx context.Context, start, goal string) (*Comparison, error) {
	order, err := r.order()
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		ID:      uuid.NewString(),
		Start:   start,
		Goal:    goal,
		Order:   order,
		Results: make(map[search.Algorithm]*search.Result, len(order)),
	}
	logger := r.logger.WithFields(logrus.Fields{
		"run_id":   cmp.ID,
		"start":    start,
		"goal":     goal,
		"parallel": r.cfg.Parallel,
	})
	logger.Debugf("comparing %d algorithms", len(order))

	if r.cfg.Parallel {
		err = r.runParallel(ctx, cmp, logger)
	} else {
		err = r.runSequential(ctx, cmp, logger)
	}
	if err != nil {
		return nil, err
	}

	logger.WithField("found", len(cmp.Found())).Info("comparison finished")

	return cmp, nil
}

// order validates and de-duplicates the configured tags.
func (r *Runner) order() ([]search.Algorithm, error) {
	seen := make(map[search.Algorithm]struct{}, len(r.cfg.Algorithms))
	out := make([]search.Algorithm, 0, len(r.cfg.Algorithms))
	for _, a := range r.cfg.Algorithms {
		if !a.Valid() {
			return nil, fmt.Errorf("compare: %w: %q", search.ErrUnknownAlgorithm, string(a))
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	return out, nil
}

func (r *Runner) runSequential(ctx context.Context, cmp *Comparison, logger logrus.FieldLogger) error {
	for _, a := range cmp.Order {
		res, err := r.runOne(ctx, a, cmp.Start, cmp.Goal, logger)
		if err != nil {
			return err
		}
		cmp.Results[a] = res
	}

	return nil
}

func (r *Runner) runParallel(ctx context.Context, cmp *Comparison, logger logrus.FieldLogger) error {
	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	for _, a := range cmp.Order {
		a := a
		g.Go(func() error {
			res, err := r.runOne(gCtx, a, cmp.Start, cmp.Goal, logger)
			if err != nil {
				return err
			}
			mu.Lock()
			cmp.Results[a] = res
			mu.Unlock()

			return nil
		})
	}

	return g.Wait()
}

// runOne executes a single algorithm and logs its metrics.
func (r *Runner) runOne(ctx context.Context, a search.Algorithm, start, goal string, logger logrus.FieldLogger) (*search.Result, error) {
	opts := append(r.cfg.options(), search.WithContext(ctx))
	res, err := search.Run(a, r.g, start, goal, opts...)
	if err != nil {
		logger.WithField("algorithm", a).WithError(err).Warn("run failed")
		return nil, fmt.Errorf("compare: %s: %w", a, err)
	}

	logger.WithFields(logrus.Fields{
		"algorithm":    a,
		"found":        res.Found(),
		"distance":     res.Distance,
		"expanded":     res.NodesExpanded,
		"generated":    res.NodesGenerated,
		"max_frontier": res.MaxFrontierSize,
		"time_ms":      res.ExecutionTime,
	}).Debug("run finished")

	return res, nil
}
