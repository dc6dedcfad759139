// Package report turns search Results and compare Comparisons into text
// for people: human labels, per-run summaries, a comparison table,
// efficiency ranking, metric averages and JSON/YAML export.
//
// Records with an empty path never take part in tables, rankings or
// averages; they are reported only by Describe.
package report
