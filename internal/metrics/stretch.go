// Package metrics provides run-level observations over a simulated rope.
package metrics

import (
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
)

// Stretch tracks the worst relative segment-length error seen over a run.
// Lower is better; zero means the solver held every segment at rest
// length throughout.
type Stretch struct {
	worst   float64
	samples int
}

func NewStretch() *Stretch { return &Stretch{} }

func (s *Stretch) Name() string { return "stretch" }

func (s *Stretch) Observe(r *rope.Rope, t float64) {
	s.samples++
	if e := sim.WorstStretch(r); e > s.worst {
		s.worst = e
	}
}

func (s *Stretch) Value() float64 { return s.worst }

func (s *Stretch) Reset() {
	s.worst = 0
	s.samples = 0
}

// Settle reports the time at which the stretch last exceeded a
// threshold, i.e. how long the rope took to calm down.
type Settle struct {
	threshold float64
	last      float64
}

func NewSettle(threshold float64) *Settle {
	return &Settle{threshold: threshold}
}

func (s *Settle) Name() string { return "settle" }

func (s *Settle) Observe(r *rope.Rope, t float64) {
	if sim.WorstStretch(r) > s.threshold {
		s.last = t
	}
}

func (s *Settle) Value() float64 { return s.last }

func (s *Settle) Reset() { s.last = 0 }
