package cli

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadsearch/core"
	"github.com/katalvlaran/roadsearch/heuristic"
	"github.com/katalvlaran/roadsearch/mapdata"
	"github.com/katalvlaran/roadsearch/report"
	"github.com/katalvlaran/roadsearch/search"
)

// app carries the state every command needs once flags are parsed.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger

	s settings

	m *mapdata.Map
	g *core.Graph
}

// NewRootCommand builds the command tree. Results are written to out, logs
// and errors to errOut.
func NewRootCommand(out, errOut io.Writer, version string) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: newLogger(errOut)}

	root := &cobra.Command{
		Use:               "roadsearch",
		Short:             "Explore classic graph-search algorithms on a road map",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.s.MapPath, "map", "", "YAML map file (default: built-in Romania map)")
	pf.StringVar(&a.s.ConfigPath, "config", "", "YAML file with flag defaults")
	pf.BoolVarP(&a.s.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVarP(&a.s.Output, "output", "o", outputTable, "output format: table, json or yaml")

	root.AddCommand(
		a.citiesCommand(),
		a.runCommand(),
		a.compareCommand(),
		a.replayCommand(),
		a.generateCommand(),
	)

	return root
}

// Execute runs the CLI against the process streams and returns the exit code.
func Execute(ctx context.Context, version string) int {
	if err := NewRootCommand(os.Stdout, os.Stderr, version).ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// setup applies the config file, the log level and loads the map.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.s.ConfigPath != "" {
		if err := applyConfigFile(cmd.Flags(), a.s.ConfigPath); err != nil {
			return err
		}
	}
	if a.s.Verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	if err := validOutput(a.s.Output); err != nil {
		return err
	}

	m := mapdata.Romania()
	if a.s.MapPath != "" {
		loaded, err := mapdata.Load(a.s.MapPath)
		if err != nil {
			return errors.Wrap(err, "loading map")
		}
		m = loaded
	}
	g, err := m.Graph()
	if err != nil {
		return errors.Wrap(err, "building graph")
	}
	a.m, a.g = m, g

	a.log.WithFields(logrus.Fields{
		"map":    m.Name,
		"cities": g.VertexCount(),
		"roads":  g.EdgeCount(),
		"target": m.Target,
	}).Debug("map loaded")

	return nil
}

// estimator returns the map's straight-line table, or heuristic.Zero when
// the map has none.
func (a *app) estimator() heuristic.Heuristic {
	t := a.m.HeuristicTable()
	if t == nil {
		return heuristic.Zero
	}
	if t.Target() != a.s.To {
		a.log.WithFields(logrus.Fields{
			"target": t.Target(),
			"goal":   a.s.To,
		}).Debug("heuristic table targets another city; estimates fall back to 0")
	}

	return t
}

func (a *app) options(ctx context.Context) []search.Option {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithDepthLimit(a.s.DepthLimit),
		search.WithMaxDepth(a.s.MaxDepth),
		search.WithHeuristic(a.estimator()),
	}
	if a.s.NoTrace {
		opts = append(opts, search.WithoutTrace())
	}

	return opts
}

// runSearch runs the algorithm named tag between the configured endpoints.
func (a *app) runSearch(ctx context.Context, tag string) (*search.Result, error) {
	algo, err := search.ParseAlgorithm(tag)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log := a.log.WithFields(logrus.Fields{
		"algorithm": algo,
		"from":      a.s.From,
		"to":        a.s.To,
	})
	log.Debug("search started")

	res, err := search.Run(algo, a.g, a.s.From, a.s.To, a.options(ctx)...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s from %s to %s", algo, a.s.From, a.s.To)
	}

	log.WithFields(logrus.Fields{
		"found":     res.Found(),
		"distance":  res.Distance,
		"expanded":  res.NodesExpanded,
		"generated": res.NodesGenerated,
		"time_ms":   res.ExecutionTime,
	}).Debug("search finished")

	return res, nil
}

// write encodes v for the json and yaml outputs; it reports false for table
// output so the caller renders text instead.
func (a *app) write(v interface{}) (bool, error) {
	switch a.s.Output {
	case outputJSON:
		return true, report.WriteJSON(a.out, v)
	case outputYAML:
		return true, report.WriteYAML(a.out, v)
	}

	return false, nil
}
