package rope

import "github.com/go-gl/mathgl/mgl64"

// Buffer holds the particle state as parallel arrays indexed 0..Len()-1.
// Pos/Prev carry the verlet state (velocity is implicit as Pos-Prev),
// Acc is rebuilt every tick, and Tangent/Normal/Binormal are the display
// frame, rebuilt once per rendered frame.
type Buffer struct {
	Pos      []mgl64.Vec3
	Prev     []mgl64.Vec3
	Acc      []mgl64.Vec3
	Attached []bool
	Tangent  []mgl64.Vec3
	Normal   []mgl64.Vec3
	Binormal []mgl64.Vec3
}

// Resize reallocates every array to length n, discarding prior contents.
func (b *Buffer) Resize(n int) {
	b.Pos = make([]mgl64.Vec3, n)
	b.Prev = make([]mgl64.Vec3, n)
	b.Acc = make([]mgl64.Vec3, n)
	b.Attached = make([]bool, n)
	b.Tangent = make([]mgl64.Vec3, n)
	b.Normal = make([]mgl64.Vec3, n)
	b.Binormal = make([]mgl64.Vec3, n)
}

func (b *Buffer) Len() int { return len(b.Pos) }

func (b *Buffer) Empty() bool { return len(b.Pos) == 0 }

// Last returns the index of the final particle.
func (b *Buffer) Last() int { return len(b.Pos) - 1 }

// Velocity returns the implicit per-tick displacement of particle i.
func (b *Buffer) Velocity(i int) mgl64.Vec3 {
	return b.Pos[i].Sub(b.Prev[i])
}
