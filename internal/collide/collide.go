// Package collide defines the spatial queries the rope runs against its
// environment, plus a small static world used by the demos and tests.
// The rope only ever consumes query results; it never owns bodies.
package collide

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Expand grows the box by d on every side.
func (b AABB) Expand(d float64) AABB {
	e := mgl64.Vec3{d, d, d}
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

// Contains reports whether p lies inside the box.
func (b AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// BoundsOf returns the tight AABB around a set of points.
func BoundsOf(pts []mgl64.Vec3) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	box := AABB{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		for a := 0; a < 3; a++ {
			if p[a] < box.Min[a] {
				box.Min[a] = p[a]
			}
			if p[a] > box.Max[a] {
				box.Max[a] = p[a]
			}
		}
	}
	return box
}

// RayHit describes the first intersection along a ray segment.
type RayHit struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Body     Body
}

// Body is anything the rope can rest against.
type Body interface {
	// Mask returns the collision layer bits of the body.
	Mask() uint32
	// Bounds returns the body's AABB.
	Bounds() AABB
	// RayCast intersects the segment from..to; ok is false on a miss.
	RayCast(from, to mgl64.Vec3) (RayHit, bool)
}

// World answers the two queries the rope needs per tick: a broad-phase
// overlap test against its bounding box and a segment ray cast. An empty
// or nil result is treated as "no collision" by the caller.
type World interface {
	OverlapAABB(box AABB, mask uint32) []Body
	RayCast(from, to mgl64.Vec3, mask uint32) (RayHit, bool)
}
