// Package spline evaluates the cubic Catmull-Rom patches used to smooth
// the coarse particle chain for display.
package spline

import "github.com/go-gl/mathgl/mgl64"

// Sample is one evaluated point on a patch with its unit tangent.
type Sample struct {
	Position mgl64.Vec3
	Tangent  mgl64.Vec3
}

// Patch is a single Catmull-Rom segment between P1 and P2, with P0 and P3
// as neighboring control points. Tangents are the standard half-chords
// m1 = (P2-P0)/2 and m2 = (P3-P1)/2, expressed on the Hermite basis.
type Patch struct {
	P0, P1, P2, P3 mgl64.Vec3
}

func (p Patch) m1() mgl64.Vec3 { return p.P2.Sub(p.P0).Mul(0.5) }
func (p Patch) m2() mgl64.Vec3 { return p.P3.Sub(p.P1).Mul(0.5) }

// Point evaluates the patch position at t in [0, 1]. t=0 yields exactly
// P1 and t=1 exactly P2.
func (p Patch) Point(t float64) mgl64.Vec3 {
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return p.P1.Mul(h00).
		Add(p.m1().Mul(h10)).
		Add(p.P2.Mul(h01)).
		Add(p.m2().Mul(h11))
}

// Tangent evaluates the patch derivative at t, normalized. A degenerate
// (zero-length) derivative falls back to the straight chord, and a fully
// degenerate patch returns the zero vector rather than NaN.
func (p Patch) Tangent(t float64) mgl64.Vec3 {
	t2 := t * t

	d00 := 6*t2 - 6*t
	d10 := 3*t2 - 4*t + 1
	d01 := -6*t2 + 6*t
	d11 := 3*t2 - 2*t

	d := p.P1.Mul(d00).
		Add(p.m1().Mul(d10)).
		Add(p.P2.Mul(d01)).
		Add(p.m2().Mul(d11))

	if l := d.Len(); l > 0 {
		return d.Mul(1 / l)
	}
	if chord := p.P2.Sub(p.P1); chord.Len() > 0 {
		return chord.Normalize()
	}
	return mgl64.Vec3{}
}

// At evaluates position and unit tangent together.
func (p Patch) At(t float64) Sample {
	return Sample{Position: p.Point(t), Tangent: p.Tangent(t)}
}

// Presample fills out with spans+1 samples at fixed parameter steps
// t = 0, 1/spans, ..., 1, reusing out's backing array when it is large
// enough. spans must be at least 1.
func (p Patch) Presample(spans int, out []Sample) []Sample {
	if spans < 1 {
		spans = 1
	}
	n := spans + 1
	if cap(out) < n {
		out = make([]Sample, n)
	}
	out = out[:n]

	step := 1.0 / float64(spans)
	for i := 0; i < n; i++ {
		out[i] = p.At(float64(i) * step)
	}
	// Pin the endpoints exactly; the interpolation property should not be
	// at the mercy of floating-point summation of steps.
	out[0].Position = p.P1
	out[n-1].Position = p.P2
	return out
}
