package rope

import "github.com/go-gl/mathgl/mgl64"

// ComputeFrames rebuilds the per-particle tangent/normal/binormal from
// the current positions and the camera. The normal faces the camera so
// the ribbon billboards toward the viewer; when no camera is known,
// callers pass the zero vector and the frame degrades but stays finite.
func (r *Rope) ComputeFrames(camera mgl64.Vec3) {
	n := r.buf.Len()
	if n < 2 {
		return
	}

	for i := 0; i < n; i++ {
		var chord mgl64.Vec3
		switch i {
		case 0:
			chord = r.buf.Pos[1].Sub(r.buf.Pos[0])
		case n - 1:
			chord = r.buf.Pos[n-1].Sub(r.buf.Pos[n-2])
		default:
			chord = r.buf.Pos[i+1].Sub(r.buf.Pos[i-1])
		}
		r.buf.Tangent[i] = safeNormalize(chord)
		r.buf.Normal[i] = safeNormalize(camera.Sub(r.buf.Pos[i]))
		r.buf.Binormal[i] = safeNormalize(r.buf.Normal[i].Cross(r.buf.Tangent[i]))
	}
}

// safeNormalize returns the unit vector, or zero for a degenerate input.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return mgl64.Vec3{}
}
