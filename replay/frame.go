package replay

import "github.com/katalvlaran/roadsearch/search"

// Frame is one picture of a replay.
//
// Step frames carry a copy of the recorded Step; the closing frame has
// Final set and carries the Result's path and distance instead.
type Frame struct {
	Algorithm search.Algorithm `json:"algorithm" yaml:"algorithm"`

	// Index is 1-based; Total counts step frames only.
	Index int `json:"index" yaml:"index"`
	Total int `json:"total" yaml:"total"`

	Step search.Step `json:"step" yaml:"step"`

	Final    bool     `json:"final" yaml:"final"`
	Path     []string `json:"path,omitempty" yaml:"path,omitempty"`
	Distance float64  `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Bidirectional reports whether the frame holds a two-sided step.
func (f Frame) Bidirectional() bool {
	return f.Algorithm == search.AlgorithmBidirectional
}

// Frames converts r into len(r.Steps)+1 frames, the last one Final.
// A nil Result yields no frames.
func Frames(r *search.Result) []Frame {
	if r == nil {
		return nil
	}

	total := len(r.Steps)
	out := make([]Frame, 0, total+1)
	for i, s := range r.Steps {
		out = append(out, Frame{
			Algorithm: r.Algorithm,
			Index:     i + 1,
			Total:     total,
			Step:      s,
		})
	}

	path := make([]string, len(r.Path))
	copy(path, r.Path)
	out = append(out, Frame{
		Algorithm: r.Algorithm,
		Index:     total + 1,
		Total:     total,
		Step:      search.Step{DepthLimit: search.NoDepthLimit},
		Final:     true,
		Path:      path,
		Distance:  r.Distance,
	})

	return out
}
