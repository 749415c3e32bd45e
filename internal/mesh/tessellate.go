package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/spline"
)

// Curvature thresholds deciding the subdivision count of a segment from
// the angle between its bounding tangents.
var (
	cos5  = math.Cos(5 * math.Pi / 180)
	cos15 = math.Cos(15 * math.Pi / 180)
	cos30 = math.Cos(30 * math.Pi / 180)
)

// Chain is the tessellator's read-only view of a rope: positions and
// display frames for each particle, in the space the mesh should be
// emitted in, plus the ribbon tunables.
type Chain struct {
	Pos      []mgl64.Vec3
	Tangent  []mgl64.Vec3
	Normal   []mgl64.Vec3
	Binormal []mgl64.Vec3

	RestLength  float64
	Width       float64
	LODDistance float64
	Color       [4]float32
}

// Tessellator rebuilds a ribbon mesh from a chain each frame. It keeps
// only scratch space; the pass itself is stateless given the chain.
type Tessellator struct {
	samples []spline.Sample
}

// SpanCount picks how many spline spans a segment gets: one when the
// segment midpoint is beyond the LOD distance or nearly straight, up to
// four for sharp bends. cosAngle is dot(tangent[i], tangent[i+1]).
func SpanCount(cosAngle, midDistance, lodDistance float64) int {
	if midDistance > lodDistance {
		return 1
	}
	switch {
	case cosAngle > cos5:
		return 1
	case cosAngle > cos15:
		return 2
	case cosAngle > cos30:
		return 3
	default:
		return 4
	}
}

// Build clears m and re-emits the whole ribbon. camera must be in the
// same space as the chain. Chains shorter than one segment emit nothing.
func (t *Tessellator) Build(c Chain, camera mgl64.Vec3, m *Mesh) {
	m.Clear()
	n := len(c.Pos)
	if n < 2 {
		return
	}
	half := c.Width / 2

	for i := 0; i+1 < n; i++ {
		p1 := c.Pos[i]
		p2 := c.Pos[i+1]

		// Virtual control points past the endpoints keep the end
		// segments from flattening out.
		var p0, p3 mgl64.Vec3
		if i > 0 {
			p0 = c.Pos[i-1]
		} else {
			p0 = p1.Sub(c.Tangent[0].Mul(c.RestLength))
		}
		if i+2 < n {
			p3 = c.Pos[i+2]
		} else {
			p3 = p2.Add(c.Tangent[n-1].Mul(c.RestLength))
		}

		mid := p1.Add(p2).Mul(0.5)
		spans := SpanCount(c.Tangent[i].Dot(c.Tangent[i+1]), mid.Sub(camera).Len(), c.LODDistance)

		patch := spline.Patch{P0: p0, P1: p1, P2: p2, P3: p3}
		t.samples = patch.Presample(spans, t.samples)

		step := 1.0 / float64(spans)
		for j := 0; j+1 < len(t.samples); j++ {
			a := t.samples[j]
			b := t.samples[j+1]

			aBin := ribbonBinormal(a, camera)
			bBin := ribbonBinormal(b, camera)

			// U spans the whole segment's parameter range so the
			// material tiling does not depend on the chosen LOD.
			u0 := float64(j) * step
			u1 := float64(j+1) * step

			normal := safeUnit(camera.Sub(a.Position))
			m.addQuad(
				a.Position.Add(aBin.Mul(half)),
				a.Position.Sub(aBin.Mul(half)),
				b.Position.Add(bBin.Mul(half)),
				b.Position.Sub(bBin.Mul(half)),
				normal, c.Color, u0, u1,
			)
		}
	}
}

// ribbonBinormal derives the width axis of the ribbon at a sample the
// same way the particle frames do: camera-facing normal crossed with the
// local tangent.
func ribbonBinormal(s spline.Sample, camera mgl64.Vec3) mgl64.Vec3 {
	normal := safeUnit(camera.Sub(s.Position))
	return safeUnit(normal.Cross(s.Tangent))
}

func safeUnit(v mgl64.Vec3) mgl64.Vec3 {
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return mgl64.Vec3{}
}
