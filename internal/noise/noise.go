// Package noise provides the scalar noise source used to drive wind.
package noise

import "math"

// Sampler produces a value in [-1, 1] for a point in space and time.
type Sampler interface {
	Sample(x, y, z, t float64) float64
}

// Constant always returns the same value. Useful for tests and for
// steady wind without turbulence.
type Constant float64

func (c Constant) Sample(x, y, z, t float64) float64 { return float64(c) }

// Value is hash-lattice value noise with fractal octaves. Sampling is a
// pure function of the coordinates, so the field is stable across ticks
// and identical for the same seed.
type Value struct {
	Seed      int64
	Octaves   int
	Frequency float64
}

func NewValue(seed int64) *Value {
	return &Value{Seed: seed, Octaves: 3, Frequency: 1.0}
}

// Sample folds time into the fourth lattice axis by sliding the z axis,
// which is cheaper than a true 4D lattice and indistinguishable for wind.
func (v *Value) Sample(x, y, z, t float64) float64 {
	octaves := v.Octaves
	if octaves < 1 {
		octaves = 1
	}
	freq := v.Frequency
	if freq <= 0 {
		freq = 1.0
	}

	sum := 0.0
	amp := 1.0
	norm := 0.0
	for o := 0; o < octaves; o++ {
		sum += amp * v.lattice(x*freq, y*freq, (z+t*0.35)*freq)
		norm += amp
		amp *= 0.5
		freq *= 2.0
	}
	return sum / norm
}

// lattice evaluates trilinear-interpolated value noise in [-1, 1].
func (v *Value) lattice(x, y, z float64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := smooth(x-x0), smooth(y-y0), smooth(z-z0)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	c000 := v.corner(ix, iy, iz)
	c100 := v.corner(ix+1, iy, iz)
	c010 := v.corner(ix, iy+1, iz)
	c110 := v.corner(ix+1, iy+1, iz)
	c001 := v.corner(ix, iy, iz+1)
	c101 := v.corner(ix+1, iy, iz+1)
	c011 := v.corner(ix, iy+1, iz+1)
	c111 := v.corner(ix+1, iy+1, iz+1)

	x00 := lerp(c000, c100, fx)
	x10 := lerp(c010, c110, fx)
	x01 := lerp(c001, c101, fx)
	x11 := lerp(c011, c111, fx)

	y0v := lerp(x00, x10, fy)
	y1v := lerp(x01, x11, fy)

	return lerp(y0v, y1v, fz)
}

// corner hashes an integer lattice point to [-1, 1].
func (v *Value) corner(x, y, z int64) float64 {
	h := uint64(v.Seed)
	h ^= uint64(x) * 0x9e3779b97f4a7c15
	h ^= uint64(y) * 0xbf58476d1ce4e5b9
	h ^= uint64(z) * 0x94d049bb133111eb
	h ^= h >> 31
	h *= 0xd6e8feb86659fd93
	h ^= h >> 27
	return float64(h&0xfffff)/float64(0x7ffff) - 1.0
}

func smooth(t float64) float64 { return t * t * (3 - 2*t) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
