package rope

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/anchor"
)

// quietParams returns a hanging rope with every force disabled and no
// settling, so tests control exactly what happens.
func quietParams(n int, length float64) Params {
	p := DefaultParams()
	p.Particles = n
	p.Length = length
	p.ApplyGravity = false
	p.ApplyWind = false
	p.ApplyDamping = false
	p.PreprocessIterations = 0
	p.Stiffness = 1.0
	return p
}

func TestCreateSpacing(t *testing.T) {
	for _, n := range []int{3, 5, 20, 200} {
		p := quietParams(n, 4.0)
		r, err := New(p)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		buf := r.Buffer()
		if buf.Len() != n {
			t.Fatalf("n=%d: buffer length %d", n, buf.Len())
		}
		rest := 4.0 / float64(n-1)
		for i := 0; i+1 < n; i++ {
			d := buf.Pos[i+1].Sub(buf.Pos[i]).Len()
			if math.Abs(d-rest) > 1e-9 {
				t.Fatalf("n=%d: segment %d length %f, expected %f", n, i, d, rest)
			}
		}
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"too few particles", func(p *Params) { p.Particles = 2 }, ErrParticleCount},
		{"too many particles", func(p *Params) { p.Particles = 201 }, ErrParticleCount},
		{"zero length", func(p *Params) { p.Length = 0 }, ErrLength},
		{"zero stiffness", func(p *Params) { p.Stiffness = 0 }, ErrStiffness},
		{"excess stiffness", func(p *Params) { p.Stiffness = 2.0 }, ErrStiffness},
		{"zero iterations", func(p *Params) { p.Iterations = 0 }, ErrIterations},
		{"rate above physics", func(p *Params) { p.SimulationRate = 120 }, ErrRate},
	}
	for _, tc := range cases {
		p := DefaultParams()
		tc.mutate(&p)
		if _, err := New(p); err != tc.want {
			t.Errorf("%s: got %v, expected %v", tc.name, err, tc.want)
		}
	}
}

func TestVerletDrift(t *testing.T) {
	// With zero acceleration and nothing attached, straight-line motion
	// is preserved: every tick adds the same implicit velocity.
	p := quietParams(5, 4.0)
	p.AttachStart = false
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	buf := r.Buffer()
	drift := mgl64.Vec3{0.01, 0.002, -0.005}
	for i := 0; i < buf.Len(); i++ {
		buf.Prev[i] = buf.Pos[i].Sub(drift)
	}

	start := make([]mgl64.Vec3, buf.Len())
	copy(start, buf.Pos)

	dt := 1.0 / 60.0
	ticks := 10
	for i := 0; i < ticks; i++ {
		r.Simulate(dt)
	}

	for i := 0; i < buf.Len(); i++ {
		want := start[i].Add(drift.Mul(float64(ticks)))
		if buf.Pos[i].Sub(want).Len() > 1e-9 {
			t.Fatalf("particle %d drifted to %v, expected %v", i, buf.Pos[i], want)
		}
	}
}

func TestAttachedNeverIntegrated(t *testing.T) {
	p := quietParams(4, 3.0)
	p.ApplyGravity = true
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}

	buf := r.Buffer()
	anchorPos := buf.Pos[0]
	for i := 0; i < 30; i++ {
		r.Simulate(1.0 / 60.0)
	}
	if buf.Pos[0] != anchorPos {
		t.Errorf("attached particle moved from %v to %v", anchorPos, buf.Pos[0])
	}
}

func TestHangingSagScenario(t *testing.T) {
	// N=3, length 2, start pinned, gravity only: after settling, each
	// segment holds its rest length of 1 and the rope hangs below the
	// anchor.
	p := DefaultParams()
	p.Particles = 3
	p.Length = 2.0
	p.AttachStart = true
	p.ApplyGravity = true
	p.Gravity = mgl64.Vec3{0, -9.8, 0}
	p.GravityScale = 1.0
	p.ApplyWind = false
	p.ApplyDamping = false
	p.Stiffness = 1.0
	p.Iterations = 2
	p.PreprocessIterations = 30

	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	buf := r.Buffer()

	for i := 0; i+1 < buf.Len(); i++ {
		d := buf.Pos[i+1].Sub(buf.Pos[i]).Len()
		if math.Abs(d-1.0) > 0.05 {
			t.Errorf("segment %d length %f, expected ~1.0", i, d)
		}
	}
	if buf.Pos[2].Y() >= buf.Pos[0].Y() {
		t.Error("free end should hang below the anchor")
	}
}

func TestChordSagsBelowLine(t *testing.T) {
	// Both ends pinned closer than the rope is long: the middle must
	// drop below the straight chord.
	p := DefaultParams()
	p.Particles = 9
	p.Length = 4.0
	p.ApplyWind = false
	p.ApplyDamping = true
	p.PreprocessIterations = 240
	p.Iterations = 6
	p.Stiffness = 1.0

	end := anchor.Fixed(mgl64.Vec3{3, 0, 0})
	r, err := New(p, WithEndTarget(end))
	if err != nil {
		t.Fatal(err)
	}
	buf := r.Buffer()
	mid := buf.Pos[buf.Len()/2]
	if mid.Y() >= -0.1 {
		t.Errorf("midpoint y = %f, expected sag below the chord", mid.Y())
	}
}

func TestPinnedTautRopeStaysStatic(t *testing.T) {
	// Total rest length equals the anchor separation exactly and gravity
	// is off: the constraint is already satisfied, so nothing may move.
	p := quietParams(5, 2.0)
	end := anchor.Fixed(mgl64.Vec3{0, -2, 0})
	r, err := New(p, WithEndTarget(end))
	if err != nil {
		t.Fatal(err)
	}

	buf := r.Buffer()
	before := make([]mgl64.Vec3, buf.Len())
	copy(before, buf.Pos)

	for i := 0; i < 120; i++ {
		r.Simulate(1.0 / 60.0)
	}
	for i := range before {
		if buf.Pos[i].Sub(before[i]).Len() > 1e-9 {
			t.Fatalf("particle %d moved by %v", i, buf.Pos[i].Sub(before[i]))
		}
	}
}

func TestEndTargetDrivesLastParticle(t *testing.T) {
	p := quietParams(4, 3.0)
	target := anchor.Sway{
		Center:    mgl64.Vec3{0, -3, 0},
		Axis:      mgl64.Vec3{1, 0, 0},
		Amplitude: 1.0,
		Hertz:     1.0,
	}
	r, err := New(p, WithEndTarget(target))
	if err != nil {
		t.Fatal(err)
	}

	r.Simulate(1.0 / 60.0)
	buf := r.Buffer()
	want := target.Position(r.Time())
	if buf.Pos[buf.Last()].Sub(want).Len() > 1e-12 {
		t.Errorf("end particle %v, expected target %v", buf.Pos[buf.Last()], want)
	}
}

func TestSimulationRateCadence(t *testing.T) {
	// At half the physics rate only every second call ticks, and the
	// tick that runs covers the skipped duration.
	p := quietParams(3, 2.0)
	p.AttachStart = false
	p.ApplyGravity = true
	p.SimulationRate = 30
	p.PhysicsRate = 60
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	buf := r.Buffer()

	start := buf.Pos[1]
	r.Simulate(1.0 / 60.0)
	if buf.Pos[1] != start {
		t.Fatal("first call should have skipped the tick")
	}
	r.Simulate(1.0 / 60.0)
	if buf.Pos[1] == start {
		t.Fatal("second call should have run the tick")
	}

	// Displacement matches a verlet step with the doubled dt.
	dt := 2.0 / 60.0
	want := start.Add(p.Gravity.Mul(dt * dt))
	if buf.Pos[1].Sub(want).Len() > 1e-12 {
		t.Errorf("position %v, expected %v for scaled step", buf.Pos[1], want)
	}
}

func TestSimulateDisabledSkipsPhase(t *testing.T) {
	p := quietParams(3, 2.0)
	p.ApplyGravity = true
	p.Simulate = false
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	buf := r.Buffer()
	before := buf.Pos[1]
	r.Simulate(1.0 / 60.0)
	if buf.Pos[1] != before {
		t.Error("disabled simulation must not move particles")
	}
}

func TestDestroy(t *testing.T) {
	r, err := New(quietParams(5, 2.0))
	if err != nil {
		t.Fatal(err)
	}
	r.Destroy()
	if !r.Buffer().Empty() {
		t.Fatal("destroy should empty the buffer")
	}
	// Both phases become no-ops, not panics.
	r.Simulate(1.0 / 60.0)
	if m := r.Render(mgl64.Vec3{0, 0, 5}); m != nil {
		t.Error("destroyed rope should render nil")
	}
}

func TestRebuildOnResize(t *testing.T) {
	r, err := New(quietParams(5, 2.0))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.SetParticleCount(12); err != nil {
		t.Fatal(err)
	}
	if r.Buffer().Len() != 12 {
		t.Fatalf("buffer length %d after resize", r.Buffer().Len())
	}
	rest := 2.0 / 11.0
	if math.Abs(r.RestLength()-rest) > 1e-12 {
		t.Errorf("rest length %f, expected %f", r.RestLength(), rest)
	}

	if err := r.SetParticleCount(1); err != ErrParticleCount {
		t.Errorf("expected ErrParticleCount, got %v", err)
	}
}
