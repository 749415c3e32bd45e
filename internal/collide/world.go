package collide

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StaticWorld is a flat list of immobile bodies. N is small in every demo,
// so queries are linear scans.
type StaticWorld struct {
	bodies []Body
}

func NewStaticWorld(bodies ...Body) *StaticWorld {
	return &StaticWorld{bodies: bodies}
}

func (w *StaticWorld) Add(b Body) { w.bodies = append(w.bodies, b) }

func (w *StaticWorld) OverlapAABB(box AABB, mask uint32) []Body {
	var hits []Body
	for _, b := range w.bodies {
		if b.Mask()&mask == 0 {
			continue
		}
		bb := b.Bounds()
		overlap := true
		for a := 0; a < 3; a++ {
			if box.Max[a] < bb.Min[a] || box.Min[a] > bb.Max[a] {
				overlap = false
				break
			}
		}
		if overlap {
			hits = append(hits, b)
		}
	}
	return hits
}

// RayCast returns the nearest hit along the segment across all masked bodies.
func (w *StaticWorld) RayCast(from, to mgl64.Vec3, mask uint32) (RayHit, bool) {
	best := RayHit{}
	bestDist := math.Inf(1)
	found := false
	for _, b := range w.bodies {
		if b.Mask()&mask == 0 {
			continue
		}
		if hit, ok := b.RayCast(from, to); ok {
			d := hit.Position.Sub(from).Len()
			if d < bestDist {
				best, bestDist, found = hit, d, true
			}
		}
	}
	return best, found
}

// Sphere is a solid ball.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
	Layer  uint32
}

func (s *Sphere) Mask() uint32 { return s.Layer }

func (s *Sphere) Bounds() AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s *Sphere) RayCast(from, to mgl64.Vec3) (RayHit, bool) {
	dir := to.Sub(from)
	length := dir.Len()
	if length == 0 {
		return RayHit{}, false
	}
	dir = dir.Mul(1 / length)

	oc := from.Sub(s.Center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return RayHit{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 || t > length {
		return RayHit{}, false
	}
	p := from.Add(dir.Mul(t))
	return RayHit{Position: p, Normal: p.Sub(s.Center).Normalize(), Body: s}, true
}

// HalfSpace is an infinite solid below a plane, typically the ground.
type HalfSpace struct {
	Point  mgl64.Vec3
	Plane  mgl64.Vec3 // outward unit normal
	Layer  uint32
	Extent float64 // half-size of the reported AABB along the plane
}

func (h *HalfSpace) Mask() uint32 { return h.Layer }

func (h *HalfSpace) Bounds() AABB {
	ext := h.Extent
	if ext <= 0 {
		ext = 1e6
	}
	e := mgl64.Vec3{ext, ext, ext}
	return AABB{Min: h.Point.Sub(e), Max: h.Point.Add(e)}
}

func (h *HalfSpace) RayCast(from, to mgl64.Vec3) (RayHit, bool) {
	n := h.Plane
	d0 := from.Sub(h.Point).Dot(n)
	d1 := to.Sub(h.Point).Dot(n)
	if d0 < 0 {
		// Starting inside; report the start point pushed to the surface.
		return RayHit{Position: from.Sub(n.Mul(d0)), Normal: n, Body: h}, true
	}
	if d1 >= 0 {
		return RayHit{}, false
	}
	t := d0 / (d0 - d1)
	p := from.Add(to.Sub(from).Mul(t))
	return RayHit{Position: p, Normal: n, Body: h}, true
}
