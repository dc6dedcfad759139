package search

import "time"

// NoDepthLimit tags steps that were not produced under an IDS depth limit.
const NoDepthLimit = -1

// Step is one trace snapshot, taken before the iteration's pop.
// Current (and CurrentBackward) are filled in after the pop.
//
// Bidirectional runs use Frontier/Explored/Current for the forward side
// and the Backward* fields for the side searching from the goal.
type Step struct {
	Frontier []string `json:"frontier" yaml:"frontier"`
	Explored []string `json:"explored" yaml:"explored"`
	Current  string   `json:"current" yaml:"current"`

	BackwardFrontier []string `json:"backward_frontier,omitempty" yaml:"backward_frontier,omitempty"`
	BackwardExplored []string `json:"backward_explored,omitempty" yaml:"backward_explored,omitempty"`
	CurrentBackward  string   `json:"current_backward,omitempty" yaml:"current_backward,omitempty"`

	// DepthLimit is the IDS iteration limit, NoDepthLimit otherwise.
	DepthLimit int `json:"depth_limit" yaml:"depth_limit"`
}

// Result is the sole output of an algorithm run.
//
// Path is empty iff no goal-reaching node was popped; Distance is 0 then.
// ExecutionTime is wall-clock milliseconds from call to return.
type Result struct {
	Algorithm       Algorithm `json:"algorithm" yaml:"algorithm"`
	Path            []string  `json:"path" yaml:"path"`
	Distance        float64   `json:"distance" yaml:"distance"`
	NodesExpanded   int       `json:"nodes_expanded" yaml:"nodes_expanded"`
	NodesGenerated  int       `json:"nodes_generated" yaml:"nodes_generated"`
	MaxFrontierSize int       `json:"max_frontier_size" yaml:"max_frontier_size"`
	ExecutionTime   float64   `json:"execution_time" yaml:"execution_time"`
	Steps           []Step    `json:"steps" yaml:"steps"`
}

// Found reports whether the run reached the goal.
func (r *Result) Found() bool { return r != nil && len(r.Path) > 0 }

// Elapsed returns ExecutionTime as a time.Duration.
func (r *Result) Elapsed() time.Duration {
	return time.Duration(r.ExecutionTime * float64(time.Millisecond))
}

func newResult(algo Algorithm) *Result {
	return &Result{Algorithm: algo, Path: []string{}, Steps: []Step{}}
}

func millisSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
