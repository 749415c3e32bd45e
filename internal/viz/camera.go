package viz

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/mesh"
	"github.com/san-kum/ropesim/internal/rope"
)

// Camera projects world points onto the canvas: yaw/pitch orbit around a
// target at a fixed distance, simple perspective divide.
type Camera struct {
	Target     mgl64.Vec3
	Distance   float64
	Yaw, Pitch float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 12, Zoom: 1.0}
}

// Position returns the camera's world position, which is also what the
// rope's frame builder billboards against.
func (c *Camera) Position() mgl64.Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	dir := mgl64.Vec3{sy * cp, sp, cy * cp}
	return c.Target.Add(dir.Mul(c.Distance))
}

func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = mgl64.Clamp(c.Pitch+dPitch, -1.4, 1.4)
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.15, c.Zoom/1.2) }

// Project maps a world point to canvas sub-pixels. ok is false behind
// the camera.
func (c *Camera) Project(p mgl64.Vec3, pw, ph int) (int, int, bool) {
	// View basis looking from Position toward Target.
	eye := c.Position()
	fwd := c.Target.Sub(eye)
	if fwd.Len() == 0 {
		return 0, 0, false
	}
	fwd = fwd.Normalize()
	right := fwd.Cross(mgl64.Vec3{0, 1, 0})
	if right.Len() == 0 {
		right = mgl64.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up := right.Cross(fwd)

	rel := p.Sub(eye)
	z := rel.Dot(fwd)
	if z <= 0.05 {
		return 0, 0, false
	}
	scale := c.Zoom * float64(min(pw, ph)) * 0.9 / z
	x := rel.Dot(right) * scale
	y := rel.Dot(up) * scale
	return pw/2 + int(x), ph/2 - int(y), true
}

// DrawChain plots the particle chain as connected line segments.
func DrawChain(cv *Canvas, cam *Camera, buf *rope.Buffer) {
	pw, ph := cv.PixelSize()
	for i := 0; i+1 < buf.Len(); i++ {
		x0, y0, ok0 := cam.Project(buf.Pos[i], pw, ph)
		x1, y1, ok1 := cam.Project(buf.Pos[i+1], pw, ph)
		if ok0 && ok1 {
			cv.Line(x0, y0, x1, y1)
		}
	}
}

// DrawMesh plots the ribbon as a wireframe of quad edges. Vertices are
// origin-local, so the rope origin is added back for projection.
func DrawMesh(cv *Canvas, cam *Camera, m *mesh.Mesh, origin mgl64.Vec3) {
	if m == nil {
		return
	}
	pw, ph := cv.PixelSize()
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		tri := m.Vertices[i : i+3]
		for e := 0; e < 3; e++ {
			a := tri[e].Position.Add(origin)
			b := tri[(e+1)%3].Position.Add(origin)
			x0, y0, ok0 := cam.Project(a, pw, ph)
			x1, y1, ok1 := cam.Project(b, pw, ph)
			if ok0 && ok1 {
				cv.Line(x0, y0, x1, y1)
			}
		}
	}
}
