package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadsearch/builder"
	"github.com/katalvlaran/roadsearch/compare"
	"github.com/katalvlaran/roadsearch/replay"
	"github.com/katalvlaran/roadsearch/report"
	"github.com/katalvlaran/roadsearch/search"
)

func (a *app) citiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities of the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.m.CityNames()
			if done, err := a.write(names); done {
				return err
			}
			for _, n := range names {
				if _, err := fmt.Fprintln(a.out, n); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Run one algorithm and print its result",
		Long: "Run one algorithm between --from and --to.\n\n" +
			"Algorithms: bfs, ucs, dfs, dls, ids, bidirectional, greedy, astar.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runSearch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if done, err := a.write(res); done {
				return err
			}

			return report.Describe(a.out, res)
		},
	}
	a.addSearchFlags(cmd.Flags())
	cmd.Flags().BoolVar(&a.s.NoTrace, "no-trace", false, "do not record step snapshots")

	return cmd
}

// comparisonReport is the json/yaml document of the compare command.
type comparisonReport struct {
	Comparison *compare.Comparison `json:"comparison" yaml:"comparison"`
	RankedBy   string              `json:"ranked_by" yaml:"ranked_by"`
	Ranking    []report.Score      `json:"ranking" yaml:"ranking"`
	Averages   report.Summary      `json:"averages" yaml:"averages"`
}

const rankEfficiency = "efficiency"

func (a *app) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms on the same endpoints and rank them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.compareConfig()
			if err != nil {
				return err
			}
			cmp, err := compare.NewRunner(a.g, cfg, a.log).Run(cmd.Context(), a.s.From, a.s.To)
			if err != nil {
				return errors.Wrapf(err, "comparing from %s to %s", a.s.From, a.s.To)
			}

			rep := comparisonReport{Comparison: cmp, RankedBy: rankEfficiency, Averages: report.Averages(cmp)}
			if a.s.RankBy == "" || a.s.RankBy == rankEfficiency {
				rep.Ranking = report.Rank(cmp)
			} else {
				m, err := report.ParseMetric(a.s.RankBy)
				if err != nil {
					return errors.WithStack(err)
				}
				if rep.Ranking, err = report.RankBy(cmp, m); err != nil {
					return errors.WithStack(err)
				}
				rep.RankedBy = string(m)
			}

			if done, err := a.write(rep); done {
				return err
			}

			return a.printComparison(rep)
		},
	}
	a.addSearchFlags(cmd.Flags())
	fs := cmd.Flags()
	fs.StringSliceVar(&a.s.Algorithms, "algorithms", nil, "algorithms to compare (default: all)")
	fs.BoolVar(&a.s.Parallel, "parallel", false, "run each algorithm on its own goroutine")
	fs.BoolVar(&a.s.NoTrace, "no-trace", false, "do not record step snapshots")
	fs.StringVar(&a.s.RankBy, "rank-by", rankEfficiency,
		"ranking: efficiency, distance, expanded, generated, frontier or time")

	return cmd
}

func (a *app) compareConfig() (compare.Config, error) {
	cfg := compare.DefaultConfig()
	if len(a.s.Algorithms) > 0 {
		cfg.Algorithms = make([]search.Algorithm, 0, len(a.s.Algorithms))
		for _, s := range a.s.Algorithms {
			algo, err := search.ParseAlgorithm(s)
			if err != nil {
				return cfg, errors.WithStack(err)
			}
			cfg.Algorithms = append(cfg.Algorithms, algo)
		}
	}
	cfg.DepthLimit = a.s.DepthLimit
	cfg.MaxDepth = a.s.MaxDepth
	cfg.Heuristic = a.estimator()
	cfg.Parallel = a.s.Parallel
	cfg.WithoutTrace = a.s.NoTrace

	return cfg, nil
}

func (a *app) printComparison(rep comparisonReport) error {
	cmp := rep.Comparison
	fmt.Fprintf(a.out, "%s → %s\n", cmp.Start, cmp.Goal)
	if len(cmp.Found()) == 0 {
		_, err := fmt.Fprintln(a.out, "No algorithm found a path.")
		return err
	}
	if err := report.Table(a.out, cmp); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nRanking (%s):\n", rep.RankedBy)
	for i, s := range rep.Ranking {
		fmt.Fprintf(a.out, "%d. %-22s %.2f\n", i+1, report.Label(s.Algorithm), s.Value)
	}

	avg := rep.Averages
	_, err := fmt.Fprintf(a.out, "\nAverages over %d paths: distance %.1f km, expanded %.1f, generated %.1f, max frontier %.1f, time %s\n",
		avg.Count, avg.Distance, avg.NodesExpanded, avg.NodesGenerated, avg.MaxFrontierSize, report.FormatTime(avg.ExecutionTime))

	return err
}

func (a *app) replayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <algorithm>",
		Short: "Play back the step trace of one algorithm",
		Long: "Run one algorithm and print its trace frame by frame.\n\n" +
			"With --output json or yaml the frames are written at once instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.s.NoTrace = false
			res, err := a.runSearch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if done, err := a.write(replay.Frames(res)); done {
				return err
			}

			opts := []replay.Option{replay.WithDelay(a.s.Delay)}
			if !isTerminal(a.out) {
				opts = append(opts, replay.WithPlain())
			}
			err = replay.NewPlayer(a.out, opts...).Play(cmd.Context(), res)

			return errors.Wrap(err, "replay")
		},
	}
	a.addSearchFlags(cmd.Flags())
	cmd.Flags().DurationVar(&a.s.Delay, "delay", defaultDelay, "pause between frames")

	return cmd
}

// generateFlags are the knobs of the generate command.
type generateFlags struct {
	rows, cols int
	cities     int
	p          float64
	seed       int64
	detour     float64
	target     string
	name       string
}

func (a *app) generateCommand() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate <grid|random>",
		Short: "Write a synthetic road map as YAML",
		Long: "Generate a grid or random road map with a straight-line table towards its\n" +
			"target city. The YAML can be passed back with --map.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var cons builder.Constructor
			switch args[0] {
			case "grid":
				cons = builder.Grid(f.rows, f.cols)
			case "random":
				cons = builder.Random(f.cities, f.p)
			default:
				return errors.Errorf("unknown map kind %q (want grid or random)", args[0])
			}
			if f.detour < 1 {
				return errors.Errorf("--detour must be ≥ 1, got %v", f.detour)
			}

			opts := []builder.Option{builder.WithSeed(f.seed), builder.WithDetour(1, f.detour)}
			if f.target != "" {
				opts = append(opts, builder.WithTarget(f.target))
			}
			if f.name != "" {
				opts = append(opts, builder.WithName(f.name))
			}
			m, err := builder.BuildMap(cons, opts...)
			if err != nil {
				return errors.Wrap(err, "generating map")
			}
			a.log.WithFields(logrus.Fields{
				"map":    m.Name,
				"cities": len(m.Cities),
				"roads":  len(m.Roads),
				"seed":   f.seed,
			}).Debug("map generated")

			if a.s.Output == outputJSON {
				return report.WriteJSON(a.out, m)
			}

			return m.Encode(a.out)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&f.rows, "rows", 5, "grid rows")
	fs.IntVar(&f.cols, "cols", 5, "grid columns")
	fs.IntVar(&f.cities, "cities", 20, "number of cities of a random map")
	fs.Float64Var(&f.p, "p", 0.1, "probability of each extra road of a random map")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.Float64Var(&f.detour, "detour", 1.2, "largest road stretch over the straight line")
	fs.StringVar(&f.target, "target", "", "straight-line target city (default: last city)")
	fs.StringVar(&f.name, "name", "", "map name")

	return cmd
}
