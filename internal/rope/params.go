package rope

import "github.com/go-gl/mathgl/mgl64"

// Hard limits on the simulation tunables. Creation reports an error for
// values outside these rather than clamping silently.
const (
	MinParticles = 3
	MaxParticles = 200
	MaxStiffness = 1.5

	// DefaultPhysicsRate is the host tick rate the simulation rate is
	// expressed against.
	DefaultPhysicsRate = 60
)

// Params carries every tunable of a rope instance. Changing Particles or
// Length on a live rope rebuilds it from scratch.
type Params struct {
	Length    float64
	Particles int

	Iterations           int
	Stiffness            float64
	PreprocessIterations int

	SimulationRate int
	PhysicsRate    int

	AttachStart bool

	ApplyGravity bool
	Gravity      mgl64.Vec3
	GravityScale float64

	ApplyWind bool
	Wind      mgl64.Vec3
	WindScale float64

	ApplyDamping  bool
	DampingFactor float64

	ApplyCollision bool
	CollisionMask  uint32

	Width       float64
	LODDistance float64

	Simulate bool
	Draw     bool
}

// DefaultParams mirrors a plain hanging cable.
func DefaultParams() Params {
	return Params{
		Length:               5.0,
		Particles:            10,
		Iterations:           2,
		Stiffness:            0.9,
		PreprocessIterations: 5,
		SimulationRate:       DefaultPhysicsRate,
		PhysicsRate:          DefaultPhysicsRate,
		AttachStart:          true,
		ApplyGravity:         true,
		Gravity:              mgl64.Vec3{0, -9.8, 0},
		GravityScale:         1.0,
		Wind:                 mgl64.Vec3{1, 0, 0},
		WindScale:            20.0,
		DampingFactor:        100.0,
		CollisionMask:        1,
		Width:                0.07,
		LODDistance:          50.0,
		Simulate:             true,
		Draw:                 true,
	}
}

// Validate rejects any out-of-range tunable.
func (p Params) Validate() error {
	if p.Particles < MinParticles || p.Particles > MaxParticles {
		return ErrParticleCount
	}
	if p.Length <= 0 {
		return ErrLength
	}
	if p.Stiffness <= 0 || p.Stiffness > MaxStiffness {
		return ErrStiffness
	}
	if p.Iterations < 1 {
		return ErrIterations
	}
	if p.PhysicsRate < 1 || p.SimulationRate < 1 || p.SimulationRate > p.PhysicsRate {
		return ErrRate
	}
	return nil
}

// RestLength is the target separation between adjacent particles.
func (p Params) RestLength() float64 {
	return p.Length / float64(p.Particles-1)
}
