package heuristic

import (
	"errors"
	"math"
	"sort"
)

// ErrBadEstimate indicates a negative or non-finite table value.
var ErrBadEstimate = errors.New("heuristic: estimate must be a finite non-negative number")

// ErrEmptyTarget indicates NewTable was given an empty target.
var ErrEmptyTarget = errors.New("heuristic: target is empty")

// Heuristic estimates the remaining cost from state to goal.
type Heuristic interface {
	Estimate(state, goal string) float64
}

// Func adapts an ordinary function to the Heuristic interface.
type Func func(state, goal string) float64

// Estimate calls f(state, goal).
func (f Func) Estimate(state, goal string) float64 { return f(state, goal) }

// Zero is the heuristic that always answers 0.
var Zero Heuristic = Func(func(string, string) float64 { return 0 })

// Table is an immutable lookup of estimates towards one fixed target.
type Table struct {
	target string
	values map[string]float64
}

// NewTable copies values into a Table bound to target.
//
// Errors:
//   - ErrEmptyTarget if target == "".
//   - ErrBadEstimate if any value is negative, NaN or infinite.
func NewTable(target string, values map[string]float64) (*Table, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}
	cp := make(map[string]float64, len(values))
	for state, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadEstimate
		}
		cp[state] = v
	}

	return &Table{target: target, values: cp}, nil
}

// Estimate returns the table value for state when goal is the table's
// target, and 0 otherwise (including for states missing from the table).
func (t *Table) Estimate(state, goal string) float64 {
	if t == nil || goal != t.target {
		return 0
	}

	return t.values[state]
}

// Target returns the designated goal the table was measured to.
func (t *Table) Target() string { return t.target }

// Len returns the number of states with a recorded estimate.
func (t *Table) Len() int { return len(t.values) }

// Lookup returns the raw value for state, regardless of goal.
func (t *Table) Lookup(state string) (float64, bool) {
	v, ok := t.values[state]

	return v, ok
}

// States returns the states with a recorded estimate, sorted.
func (t *Table) States() []string {
	out := make([]string, 0, len(t.values))
	for s := range t.values {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}
