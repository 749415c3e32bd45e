// Package mesh turns a simulated particle chain into a camera-facing
// triangle-list ribbon. The mesh is rebuilt from scratch every drawn
// frame; no geometry survives between draws.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Vertex is one corner of an emitted triangle. Normal and Color are flat
// per quad; UV varies per vertex.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Color    [4]float32
	U, V     float64
}

// Mesh is a plain triangle list: every three consecutive vertices form
// one triangle in a fixed winding.
type Mesh struct {
	Vertices []Vertex
}

// Clear drops all geometry but keeps the allocation for the next rebuild.
func (m *Mesh) Clear() { m.Vertices = m.Vertices[:0] }

func (m *Mesh) TriangleCount() int { return len(m.Vertices) / 3 }

// addQuad emits the two triangles of a ribbon quad. a0/a1 are the near
// edge (left/right of the spine), b0/b1 the far edge; u0/u1 are the U
// coordinates of the two edges. Winding is fixed: counter-clockwise when
// viewed from the normal's side.
func (m *Mesh) addQuad(a0, a1, b0, b1 mgl64.Vec3, normal mgl64.Vec3, color [4]float32, u0, u1 float64) {
	va0 := Vertex{Position: a0, Normal: normal, Color: color, U: u0, V: 0}
	va1 := Vertex{Position: a1, Normal: normal, Color: color, U: u0, V: 1}
	vb0 := Vertex{Position: b0, Normal: normal, Color: color, U: u1, V: 0}
	vb1 := Vertex{Position: b1, Normal: normal, Color: color, U: u1, V: 1}

	m.Vertices = append(m.Vertices, va0, vb0, va1)
	m.Vertices = append(m.Vertices, va1, vb0, vb1)
}
