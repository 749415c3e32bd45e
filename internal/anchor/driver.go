// Package anchor provides drivers for the rope's far endpoint. A driver
// stands in for whatever scene object the rope is attached to: each tick
// the rope copies the driver's position into its last particle.
package anchor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Driver resolves the attachment target's world position at time t.
type Driver interface {
	Position(t float64) mgl64.Vec3
}

// Fixed pins the endpoint to a constant point.
type Fixed mgl64.Vec3

func (f Fixed) Position(t float64) mgl64.Vec3 { return mgl64.Vec3(f) }

// Orbit sweeps the endpoint around a circle in the XZ plane.
type Orbit struct {
	Center mgl64.Vec3
	Radius float64
	Hertz  float64
}

func (o Orbit) Position(t float64) mgl64.Vec3 {
	a := 2 * math.Pi * o.Hertz * t
	return o.Center.Add(mgl64.Vec3{o.Radius * math.Cos(a), 0, o.Radius * math.Sin(a)})
}

// Sway oscillates the endpoint sinusoidally along an axis.
type Sway struct {
	Center    mgl64.Vec3
	Axis      mgl64.Vec3
	Amplitude float64
	Hertz     float64
}

func (s Sway) Position(t float64) mgl64.Vec3 {
	return s.Center.Add(s.Axis.Mul(s.Amplitude * math.Sin(2*math.Pi*s.Hertz*t)))
}
