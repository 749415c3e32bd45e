package metrics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/rope"
)

// Sway measures the RMS displacement of the rope tip from its first
// observed position, a proxy for how much the wind is working the rope.
type Sway struct {
	first   mgl64.Vec3
	sum     float64
	samples int
}

func NewSway() *Sway { return &Sway{} }

func (s *Sway) Name() string { return "sway" }

func (s *Sway) Observe(r *rope.Rope, t float64) {
	buf := r.Buffer()
	if buf.Empty() {
		return
	}
	tip := buf.Pos[buf.Last()]
	if s.samples == 0 {
		s.first = tip
	}
	d := tip.Sub(s.first).Len()
	s.sum += d * d
	s.samples++
}

func (s *Sway) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return math.Sqrt(s.sum / float64(s.samples))
}

func (s *Sway) Reset() {
	s.sum = 0
	s.samples = 0
}
