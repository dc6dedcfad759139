// Package cli wires the roadsearch packages into a cobra command tree.
//
// Commands:
//
//	roadsearch cities                 list the cities of the map
//	roadsearch run <algorithm>        run one algorithm and describe the result
//	roadsearch compare                run several algorithms side by side
//	roadsearch replay <algorithm>     play back the trace of one run
//	roadsearch generate <grid|random> write a synthetic map for --map
//
// Every command accepts --map (a YAML map file, default the built-in
// Romania map), --config (a YAML file whose keys are flag names), --verbose
// and --output (table, json or yaml). Flags given on the command line win
// over values from the config file.
//
// Log lines go to the error stream through logrus; results go to the output
// stream so they can be piped.
package cli
