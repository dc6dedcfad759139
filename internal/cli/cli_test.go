package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadsearch/builder"
	"github.com/katalvlaran/roadsearch/compare"
	"github.com/katalvlaran/roadsearch/internal/cli"
	"github.com/katalvlaran/roadsearch/mapdata"
	"github.com/katalvlaran/roadsearch/replay"
	"github.com/katalvlaran/roadsearch/report"
	"github.com/katalvlaran/roadsearch/search"
)

var optimal = []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}

// execute runs the command tree with args and returns both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(&out, &errOut, "test")
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

type comparisonDoc struct {
	Comparison compare.Comparison `json:"comparison"`
	RankedBy   string             `json:"ranked_by"`
	Ranking    []report.Score     `json:"ranking"`
	Averages   report.Summary     `json:"averages"`
}

// ------------------------------------------------------------------------
// 1. cities
// ------------------------------------------------------------------------

func TestCities(t *testing.T) {
	out, _, err := execute(t, "cities")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	assert.Equal(t, "Arad", lines[0])
	assert.Equal(t, "Zerind", lines[19])

	out, _, err = execute(t, "cities", "-o", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, lines, names)
}

func TestCities_CustomMap(t *testing.T) {
	out, _, err := execute(t, "cities", "--map", "testdata/split.yaml", "-o", "yaml")
	require.NoError(t, err)
	var names []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &names))
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, names)
}

// ------------------------------------------------------------------------
// 2. run
// ------------------------------------------------------------------------

func TestRun_Describe(t *testing.T) {
	out, _, err := execute(t, "run", "ucs")
	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm: Uniform-Cost Search (UCS)\n")
	assert.Contains(t, out, "Path: Arad → Sibiu → Rimnicu Vilcea → Pitesti → Bucharest\n")
	assert.Contains(t, out, "Distance: 418 km\n")
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "run", "A*", "--output", "json")
	require.NoError(t, err)

	var res search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, search.AlgorithmAStar, res.Algorithm)
	assert.Equal(t, optimal, res.Path)
	assert.Equal(t, 418.0, res.Distance)
	assert.NotEmpty(t, res.Steps)

	out, _, err = execute(t, "run", "astar", "--output", "json", "--no-trace")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Steps)
}

func TestRun_Endpoints(t *testing.T) {
	out, _, err := execute(t, "run", "greedy", "--from", "Lugoj", "--to", "Bucharest", "-o", "json")
	require.NoError(t, err)
	var res search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Lugoj", res.Path[0])
	assert.Equal(t, "Bucharest", res.Path[len(res.Path)-1])

	out, _, err = execute(t, "run", "ucs", "--map", "testdata/split.yaml", "--from", "A", "--to", "C", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 3.0, res.Distance)

	out, _, err = execute(t, "run", "bfs", "--map", "testdata/split.yaml", "--from", "A", "--to", "E")
	require.NoError(t, err)
	assert.Contains(t, out, "No path found.")
}

func TestRun_Errors(t *testing.T) {
	_, errOut, err := execute(t, "run", "dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Contains(t, errOut, "Error:")

	_, _, err = execute(t, "run", "bfs", "--to", "Atlantis")
	assert.ErrorIs(t, err, search.ErrUnknownLocation)
	assert.Contains(t, err.Error(), "bfs from Arad to Atlantis")

	_, _, err = execute(t, "run", "dls", "--depth-limit", "-1")
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, _, err = execute(t, "run")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "bfs", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)

	_, _, err = execute(t, "cities", "--map", "testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading map")
}

func TestRun_Verbose(t *testing.T) {
	_, errOut, err := execute(t, "run", "bfs", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=debug")
	assert.Contains(t, errOut, `msg="map loaded"`)
	assert.Contains(t, errOut, `msg="search finished"`)

	_, errOut, err = execute(t, "run", "bfs")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "level=debug")
}

// ------------------------------------------------------------------------
// 3. compare
// ------------------------------------------------------------------------

func TestCompare_Table(t *testing.T) {
	out, errOut, err := execute(t, "compare")
	require.NoError(t, err)

	assert.Contains(t, out, "Arad → Bucharest\n")
	for _, a := range search.All() {
		assert.Contains(t, out, string(a))
	}
	assert.Contains(t, out, "Ranking (efficiency):")
	assert.Contains(t, out, "Averages over 8 paths")
	assert.Contains(t, errOut, `msg="comparison finished"`)
}

func TestCompare_RankByDistance(t *testing.T) {
	out, _, err := execute(t, "compare", "--algorithms", "bfs,ucs,astar", "--rank-by", "distance", "-o", "json")
	require.NoError(t, err)

	var doc comparisonDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "distance", doc.RankedBy)
	assert.Equal(t, []search.Algorithm{search.AlgorithmBFS, search.AlgorithmUCS, search.AlgorithmAStar}, doc.Comparison.Order)
	assert.Equal(t, []report.Score{
		{Algorithm: search.AlgorithmUCS, Value: 418},
		{Algorithm: search.AlgorithmAStar, Value: 418},
		{Algorithm: search.AlgorithmBFS, Value: 450},
	}, doc.Ranking)
	assert.Equal(t, 3, doc.Averages.Count)
	assert.NotEmpty(t, doc.Comparison.ID)

	_, _, err = execute(t, "compare", "--rank-by", "speed")
	assert.ErrorIs(t, err, report.ErrUnknownMetric)

	_, _, err = execute(t, "compare", "--algorithms", "bfs,dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestCompare_ParallelMatchesSequential(t *testing.T) {
	seqOut, _, err := execute(t, "compare", "-o", "json", "--no-trace")
	require.NoError(t, err)
	parOut, _, err := execute(t, "compare", "-o", "json", "--no-trace", "--parallel")
	require.NoError(t, err)

	var seq, par comparisonDoc
	require.NoError(t, json.Unmarshal([]byte(seqOut), &seq))
	require.NoError(t, json.Unmarshal([]byte(parOut), &par))
	require.Len(t, par.Comparison.Results, 8)
	for a, s := range seq.Comparison.Results {
		p := par.Comparison.Results[a]
		require.NotNil(t, p, a)
		assert.Equal(t, s.Path, p.Path, a)
		assert.Equal(t, s.NodesExpanded, p.NodesExpanded, a)
		assert.Empty(t, p.Steps, a)
	}
}

// ------------------------------------------------------------------------
// 4. replay
// ------------------------------------------------------------------------

func TestReplay(t *testing.T) {
	out, _, err := execute(t, "replay", "astar", "--delay", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "A* Search: step 1/")
	assert.Contains(t, out, "  current: Arad\n")
	assert.Contains(t, out, "path: Arad → Sibiu → Rimnicu Vilcea → Pitesti → Bucharest (418 km)")

	out, _, err = execute(t, "replay", "bidi", "--delay", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "backward current: Bucharest")
}

func TestReplay_Frames(t *testing.T) {
	out, _, err := execute(t, "replay", "ids", "-o", "json")
	require.NoError(t, err)

	var frames []replay.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frames))
	require.NotEmpty(t, frames)
	assert.Equal(t, 0, frames[0].Step.DepthLimit)
	last := frames[len(frames)-1]
	assert.True(t, last.Final)
	assert.Equal(t, []string{"Arad", "Sibiu", "Fagaras", "Bucharest"}, last.Path)
}

// ------------------------------------------------------------------------
// 5. config file
// ------------------------------------------------------------------------

func TestConfigFile(t *testing.T) {
	out, _, err := execute(t, "run", "ucs", "--config", "testdata/config.yaml")
	require.NoError(t, err)
	var res search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res), "output: json comes from the file")
	assert.Equal(t, "Timisoara", res.Path[0])

	// command-line flags win over the file
	out, _, err = execute(t, "run", "ucs", "--config", "testdata/config.yaml", "--from", "Arad")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, optimal, res.Path)

	// depth_limit 2 from the file: Bucharest is four roads from Timisoara
	out, _, err = execute(t, "run", "dls", "--config", "testdata/config.yaml")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Empty(t, res.Path)
}

func TestConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("speed: 3\n"), 0o600))
	_, _, err := execute(t, "cities", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown key "speed"`)

	typed := filepath.Join(dir, "typed.yaml")
	require.NoError(t, os.WriteFile(typed, []byte("max_depth: deep\n"), 0o600))
	_, _, err = execute(t, "run", "ids", "--config", typed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "max_depth"`)

	_, _, err = execute(t, "cities", "--config", filepath.Join(dir, "none.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestConfigFile_CompareKeys(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "compare.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"algorithms: [ucs, greedy]\nrank_by: expanded\nparallel: true\nno_trace: true\noutput: yaml\n"), 0o600))

	out, _, err := execute(t, "compare", "--config", cfg)
	require.NoError(t, err)

	var doc struct {
		RankedBy string         `yaml:"ranked_by"`
		Ranking  []report.Score `yaml:"ranking"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "nodes_expanded", doc.RankedBy)
	require.Len(t, doc.Ranking, 2)
	assert.Equal(t, search.AlgorithmGreedy, doc.Ranking[0].Algorithm)
}

// ------------------------------------------------------------------------
// 6. generate
// ------------------------------------------------------------------------

func TestGenerate_RoundTrip(t *testing.T) {
	out, _, err := execute(t, "generate", "grid", "--rows", "3", "--cols", "4", "--detour", "1")
	require.NoError(t, err)
	m, err := mapdata.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "grid-3x4", m.Name)
	assert.Equal(t, "2,3", m.Target)
	assert.Len(t, m.Roads, 17)

	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	runOut, _, err := execute(t, "run", "astar", "--map", path, "--from", "0,0", "--to", "2,3", "-o", "json")
	require.NoError(t, err)
	var res search.Result
	require.NoError(t, json.Unmarshal([]byte(runOut), &res))
	assert.Equal(t, 500.0, res.Distance)
	assert.Len(t, res.Path, 6)
}

func TestGenerate_Random(t *testing.T) {
	first, _, err := execute(t, "generate", "random", "--cities", "12", "--seed", "4", "-o", "json")
	require.NoError(t, err)
	second, _, err := execute(t, "generate", "random", "--cities", "12", "--seed", "4", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)

	var m struct {
		Cities []struct{ Name string } `json:"cities"`
		Target string                  `json:"target"`
	}
	require.NoError(t, json.Unmarshal([]byte(first), &m))
	assert.Len(t, m.Cities, 12)
	assert.Equal(t, "C11", m.Target)

	_, _, err = execute(t, "generate", "hexagon")
	assert.Error(t, err)
	_, _, err = execute(t, "generate", "grid", "--rows", "0")
	assert.ErrorIs(t, err, builder.ErrTooFewCities)
	_, _, err = execute(t, "generate", "grid", "--detour", "0.5")
	assert.Error(t, err)
}
