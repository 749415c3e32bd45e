package rope

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestComputeFramesTangents(t *testing.T) {
	p := quietParams(3, 2.0)
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	r.ComputeFrames(mgl64.Vec3{5, 0, 0})

	down := mgl64.Vec3{0, -1, 0}
	buf := r.Buffer()

	// Straight vertical chain: endpoint tangents point to the neighbor,
	// interior tangent is the central chord; all the same direction here.
	for i := 0; i < buf.Len(); i++ {
		if buf.Tangent[i].Sub(down).Len() > 1e-12 {
			t.Errorf("tangent[%d] = %v, expected %v", i, buf.Tangent[i], down)
		}
	}
}

func TestComputeFramesOrthonormal(t *testing.T) {
	p := quietParams(5, 3.0)
	p.ApplyGravity = true
	p.ApplyDamping = true
	p.PreprocessIterations = 60
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	cam := mgl64.Vec3{4, 1, 6}
	r.ComputeFrames(cam)
	buf := r.Buffer()

	for i := 0; i < buf.Len(); i++ {
		n := buf.Normal[i]
		bn := buf.Binormal[i]
		tan := buf.Tangent[i]

		wantN := cam.Sub(buf.Pos[i]).Normalize()
		if n.Sub(wantN).Len() > 1e-9 {
			t.Errorf("normal[%d] not camera-facing", i)
		}
		if math.Abs(bn.Len()-1) > 1e-9 {
			t.Errorf("binormal[%d] not unit length", i)
		}
		if math.Abs(bn.Dot(tan)) > 1e-9 || math.Abs(bn.Dot(n)) > 1e-9 {
			t.Errorf("binormal[%d] not orthogonal to its frame", i)
		}
	}
}

func TestComputeFramesMissingCamera(t *testing.T) {
	// No camera means the zero vector; the frame degrades but must stay
	// finite even for a particle sitting exactly at the origin.
	p := quietParams(3, 2.0)
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	r.ComputeFrames(mgl64.Vec3{})
	buf := r.Buffer()
	for i := 0; i < buf.Len(); i++ {
		for _, vec := range []mgl64.Vec3{buf.Tangent[i], buf.Normal[i], buf.Binormal[i]} {
			for _, v := range vec {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("frame[%d] not finite: %v", i, vec)
				}
			}
		}
	}
}
