package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/ropesim/internal/rope"
)

func stretchedRope(t *testing.T, factor float64) *rope.Rope {
	t.Helper()
	p := rope.DefaultParams()
	p.Particles = 5
	p.Length = 1.0
	p.PreprocessIterations = 0
	r, err := rope.New(p)
	if err != nil {
		t.Fatalf("rope.New: %v", err)
	}
	buf := r.Buffer()
	rest := r.RestLength() * factor
	for i := 0; i < buf.Len(); i++ {
		buf.Pos[i] = [3]float64{0, -float64(i) * rest, 0}
	}
	return r
}

func TestStretchTracksWorst(t *testing.T) {
	s := NewStretch()
	s.Observe(stretchedRope(t, 1.2), 0.1)
	s.Observe(stretchedRope(t, 1.5), 0.2)
	s.Observe(stretchedRope(t, 1.1), 0.3)

	if v := s.Value(); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("worst stretch %f, expected 0.5", v)
	}

	s.Reset()
	if s.Value() != 0 {
		t.Error("Reset should clear the recorded worst")
	}
}

func TestSettleRecordsLastExceedance(t *testing.T) {
	s := NewSettle(0.25)
	s.Observe(stretchedRope(t, 1.5), 1.0) // over threshold
	s.Observe(stretchedRope(t, 1.3), 2.0) // over threshold
	s.Observe(stretchedRope(t, 1.1), 3.0) // calm

	if v := s.Value(); v != 2.0 {
		t.Errorf("settle time %f, expected 2.0", v)
	}
}

func TestSettleNeverExceeded(t *testing.T) {
	s := NewSettle(0.25)
	s.Observe(stretchedRope(t, 1.0), 1.0)
	if s.Value() != 0 {
		t.Error("a rope that never exceeds the threshold settles at t=0")
	}
}

func TestSwayRMS(t *testing.T) {
	r := stretchedRope(t, 1.0)
	buf := r.Buffer()
	s := NewSway()

	s.Observe(r, 0.1) // first sample fixes the reference, displacement 0
	buf.Pos[buf.Last()][0] += 3.0
	s.Observe(r, 0.2)
	buf.Pos[buf.Last()][0] += 1.0 // now 4 from the reference
	s.Observe(r, 0.3)

	want := math.Sqrt((0 + 9 + 16) / 3.0)
	if v := s.Value(); math.Abs(v-want) > 1e-9 {
		t.Errorf("sway %f, expected %f", v, want)
	}

	s.Reset()
	if s.Value() != 0 {
		t.Error("Reset should clear the accumulated sway")
	}
}
