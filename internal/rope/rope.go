// Package rope simulates a chain of verlet particles tied together by
// distance constraints and turns it into a smooth camera-facing ribbon.
// The host drives it through two entry points: [Rope.Simulate] once per
// physics tick and [Rope.Render] once per displayed frame.
package rope

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/anchor"
	"github.com/san-kum/ropesim/internal/collide"
	"github.com/san-kum/ropesim/internal/mesh"
	"github.com/san-kum/ropesim/internal/noise"
)

// preprocessDt is the fixed step used while settling a freshly created
// rope before it is first displayed.
const preprocessDt = 1.0 / 60.0

// Rope owns exactly one particle buffer and all the state needed to tick
// and draw it. It is not safe for concurrent use; both phases are bounded
// single-threaded loops by design.
type Rope struct {
	params Params
	origin mgl64.Vec3

	buf  Buffer
	rest float64

	end   anchor.Driver
	wind  noise.Sampler
	world collide.World

	lastHitNormal mgl64.Vec3

	frame uint64
	time  float64

	tess mesh.Tessellator
	out  mesh.Mesh

	// localPos/localFrame scratch for mesh emission in origin space.
	local []mgl64.Vec3

	Color [4]float32
}

// Option wires an external collaborator into the rope.
type Option func(*Rope)

// WithOrigin places the rope's start anchor and mesh origin.
func WithOrigin(p mgl64.Vec3) Option { return func(r *Rope) { r.origin = p } }

// WithEndTarget attaches the last particle to a moving target. Each tick
// its position is copied into the particle before integration.
func WithEndTarget(d anchor.Driver) Option { return func(r *Rope) { r.end = d } }

// WithWind supplies the noise source for the wind force term.
func WithWind(s noise.Sampler) Option { return func(r *Rope) { r.wind = s } }

// WithWorld supplies the collision query service.
func WithWorld(w collide.World) Option { return func(r *Rope) { r.world = w } }

// New validates the parameters, builds the rest pose and settles it.
func New(params Params, opts ...Option) (*Rope, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	r := &Rope{
		params: params,
		wind:   noise.NewValue(0),
		Color:  [4]float32{1, 1, 1, 1},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.create()
	return r, nil
}

// Params returns a copy of the current tunables.
func (r *Rope) Params() Params { return r.params }

// Buffer exposes the particle state for observers and renderers.
func (r *Rope) Buffer() *Buffer { return &r.buf }

// Origin returns the rope's world origin.
func (r *Rope) Origin() mgl64.Vec3 { return r.origin }

// RestLength returns the per-segment rest separation.
func (r *Rope) RestLength() float64 { return r.rest }

// Time returns the accumulated simulation time.
func (r *Rope) Time() float64 { return r.time }

// create lays the particles on the straight segment between the start
// anchor and the resolved end anchor, then pre-runs settling ticks so
// the rope is in a plausible pose before its first frame.
func (r *Rope) create() {
	n := r.params.Particles
	r.rest = r.params.RestLength()
	r.buf.Resize(n)

	endPos := r.origin.Add(mgl64.Vec3{0, -r.params.Length, 0})
	if r.end != nil {
		endPos = r.end.Position(r.time)
	}

	dir := endPos.Sub(r.origin)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		p := r.origin.Add(dir.Mul(f))
		r.buf.Pos[i] = p
		r.buf.Prev[i] = p
		r.buf.Acc[i] = r.params.Gravity.Mul(r.params.GravityScale)
	}
	r.buf.Attached[0] = r.params.AttachStart
	r.buf.Attached[n-1] = r.end != nil

	for i := 0; i < r.params.PreprocessIterations; i++ {
		r.tick(preprocessDt)
	}
	r.ComputeFrames(mgl64.Vec3{})
}

// Rebuild discards the particle buffer and recreates the rope from the
// current parameters. Any change to the particle count or length goes
// through here; there is no value-preserving resize.
func (r *Rope) Rebuild() {
	r.frame = 0
	r.lastHitNormal = mgl64.Vec3{}
	r.create()
}

// SetParticleCount changes the buffer size and rebuilds the rope.
func (r *Rope) SetParticleCount(n int) error {
	p := r.params
	p.Particles = n
	if err := p.Validate(); err != nil {
		return err
	}
	r.params = p
	r.Rebuild()
	return nil
}

// SetLength changes the rope length and rebuilds the rope.
func (r *Rope) SetLength(l float64) error {
	p := r.params
	p.Length = l
	if err := p.Validate(); err != nil {
		return err
	}
	r.params = p
	r.Rebuild()
	return nil
}

// SetAttachStart re-pins or releases the first particle without a rebuild.
func (r *Rope) SetAttachStart(attach bool) {
	r.params.AttachStart = attach
	if !r.buf.Empty() {
		r.buf.Attached[0] = attach
	}
}

// SetEndTarget swaps the far-end attachment. Passing nil releases it.
func (r *Rope) SetEndTarget(d anchor.Driver) {
	r.end = d
	if !r.buf.Empty() {
		r.buf.Attached[r.buf.Last()] = d != nil
	}
}

// Destroy drops the particle buffer. A destroyed rope ignores both
// phases until rebuilt.
func (r *Rope) Destroy() {
	r.buf.Resize(0)
}

// Simulate advances the simulation by one host physics tick of length
// dt. When the simulation rate is below the physics rate, most calls
// only count the frame; the tick that does run integrates with the whole
// skipped duration so injected energy tracks real elapsed time.
func (r *Rope) Simulate(dt float64) {
	if !r.params.Simulate || r.buf.Empty() {
		return
	}
	r.time += dt
	r.frame++

	skip := uint64(r.params.PhysicsRate / r.params.SimulationRate)
	if skip < 1 {
		skip = 1
	}
	if r.frame%skip != 0 {
		return
	}
	r.tick(dt * float64(skip))
}

// tick is one full simulation step: pin attachments, rebuild forces,
// integrate, then relax the constraints.
func (r *Rope) tick(dt float64) {
	r.pinAttached()
	r.accumulateForces()
	r.integrate(dt)
	for i := 0; i < r.params.Iterations; i++ {
		r.solveDistance()
	}
	if r.params.ApplyCollision {
		r.solveCollision()
	}
}

// pinAttached drives the endpoint particles from their anchors.
func (r *Rope) pinAttached() {
	if r.params.AttachStart {
		r.buf.Pos[0] = r.origin
		r.buf.Attached[0] = true
	}
	if r.end != nil {
		last := r.buf.Last()
		r.buf.Pos[last] = r.end.Position(r.time)
		r.buf.Attached[last] = true
	}
}

// Render recomputes the display frames for the given camera and rebuilds
// the ribbon mesh. Vertex positions are local to the rope's origin. The
// returned mesh is owned by the rope and valid until the next Render.
// Returns nil when drawing is disabled or the rope is destroyed.
func (r *Rope) Render(camera mgl64.Vec3) *mesh.Mesh {
	if !r.params.Draw || r.buf.Empty() {
		return nil
	}
	r.ComputeFrames(camera)

	n := r.buf.Len()
	if cap(r.local) < n {
		r.local = make([]mgl64.Vec3, n)
	}
	r.local = r.local[:n]
	for i := 0; i < n; i++ {
		r.local[i] = r.buf.Pos[i].Sub(r.origin)
	}

	chain := mesh.Chain{
		Pos:         r.local,
		Tangent:     r.buf.Tangent,
		Normal:      r.buf.Normal,
		Binormal:    r.buf.Binormal,
		RestLength:  r.rest,
		Width:       r.params.Width,
		LODDistance: r.params.LODDistance,
		Color:       r.Color,
	}
	r.tess.Build(chain, camera.Sub(r.origin), &r.out)
	return &r.out
}
