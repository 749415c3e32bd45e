package rope

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/collide"
)

// hitNormalEpsilon offsets collision ray origins along the previous hit
// normal so grazing segments do not start their cast inside the surface
// they rested on last tick.
const hitNormalEpsilon = 0.08

// solveDistance runs one relaxation pass over every adjacent pair,
// nudging particles toward the rest separation. An attached particle is
// an infinite-mass anchor: its partner absorbs the full correction, and a
// pair with both ends attached is left alone even when over-constrained.
func (r *Rope) solveDistance() {
	rest := r.rest
	k := r.params.Stiffness

	for i := 0; i+1 < r.buf.Len(); i++ {
		delta := r.buf.Pos[i+1].Sub(r.buf.Pos[i])
		length := delta.Len()
		if length == 0 {
			// Coincident particles give no direction to correct along.
			continue
		}
		excess := length - rest
		dir := delta.Mul(1 / length)

		switch {
		case r.buf.Attached[i] && r.buf.Attached[i+1]:
		case r.buf.Attached[i]:
			r.buf.Pos[i+1] = r.buf.Pos[i+1].Sub(dir.Mul(excess * k))
		case r.buf.Attached[i+1]:
			r.buf.Pos[i] = r.buf.Pos[i].Add(dir.Mul(excess * k))
		default:
			half := dir.Mul(excess * 0.5 * k)
			r.buf.Pos[i] = r.buf.Pos[i].Add(half)
			r.buf.Pos[i+1] = r.buf.Pos[i+1].Sub(half)
		}
	}
}

// solveCollision pushes penetrating particles back to the surface they
// crossed. It runs once per tick, after the distance passes, and only
// when the broad phase reports anything near the rope at all.
func (r *Rope) solveCollision() {
	if r.world == nil {
		return
	}
	box := collide.BoundsOf(r.buf.Pos).Expand(r.params.Width)
	if len(r.world.OverlapAABB(box, r.params.CollisionMask)) == 0 {
		return
	}

	for i := 0; i+1 < r.buf.Len(); i++ {
		from := r.buf.Pos[i].Add(r.lastHitNormal.Mul(hitNormalEpsilon))
		hit, ok := r.world.RayCast(from, r.buf.Pos[i+1], r.params.CollisionMask)
		if !ok {
			continue
		}

		// Remove the normal component of the penetration, leaving the
		// particle on the hit surface, then collapse its history so the
		// implicit velocity does not re-penetrate next tick.
		depth := hit.Position.Sub(r.buf.Pos[i+1]).Dot(hit.Normal)
		r.buf.Pos[i+1] = r.buf.Pos[i+1].Add(hit.Normal.Mul(depth))
		r.buf.Prev[i+1] = r.buf.Pos[i+1]

		// Persisted across ticks as the bias for the next cast.
		r.lastHitNormal = hit.Normal
	}
}

var zero3 mgl64.Vec3
