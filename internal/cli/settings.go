package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadsearch/search"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// Defaults of the search flags.
const (
	defaultFrom  = "Arad"
	defaultTo    = "Bucharest"
	defaultDelay = 500 * time.Millisecond
)

// settings holds the value of every flag once parsing and the config file
// have been applied.
type settings struct {
	MapPath    string
	ConfigPath string
	Verbose    bool
	Output     string

	From       string
	To         string
	DepthLimit int
	MaxDepth   int

	Parallel   bool
	NoTrace    bool
	Algorithms []string
	RankBy     string

	Delay time.Duration
}

// configKeys lists the flags a config file may set. The file uses the flag
// names, with '_' accepted in place of '-'.
var configKeys = map[string]struct{}{
	"map": {}, "verbose": {}, "output": {},
	"from": {}, "to": {}, "depth-limit": {}, "max-depth": {},
	"parallel": {}, "no-trace": {}, "algorithms": {}, "rank-by": {},
	"delay": {},
}

func validOutput(s string) error {
	switch s {
	case outputTable, outputJSON, outputYAML:
		return nil
	}

	return errors.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// addSearchFlags registers the endpoint and limit flags shared by run,
// compare and replay.
func (a *app) addSearchFlags(fs *pflag.FlagSet) {
	fs.StringVar(&a.s.From, "from", defaultFrom, "start city")
	fs.StringVar(&a.s.To, "to", defaultTo, "goal city")
	fs.IntVar(&a.s.DepthLimit, "depth-limit", search.DefaultDepthLimit, "depth limit for dls")
	fs.IntVar(&a.s.MaxDepth, "max-depth", search.DefaultMaxDepth, "largest depth limit tried by ids")
}

// applyConfigFile reads a YAML mapping of flag names to values and sets
// every flag of fs that was not given on the command line. Keys for flags
// the running command does not have are ignored; unknown keys are errors.
func applyConfigFile(fs *pflag.FlagSet, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := strings.ReplaceAll(k, "_", "-")
		if _, ok := configKeys[name]; !ok {
			return errors.Errorf("config %s: unknown key %q", path, k)
		}
		f := fs.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := fs.Set(name, configValue(values[k])); err != nil {
			return errors.Wrapf(err, "config %s: key %q", path, k)
		}
	}

	return nil
}

// configValue renders a decoded YAML value the way it would be typed on the
// command line. Lists become comma-separated.
func configValue(v interface{}) string {
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Sprint(v)
	}
	parts := make([]string, len(list))
	for i, item := range list {
		parts[i] = fmt.Sprint(item)
	}

	return strings.Join(parts, ",")
}
