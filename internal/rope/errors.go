package rope

import "errors"

// Configuration errors surfaced at creation/reconfiguration time.
var (
	// ErrParticleCount indicates a particle count outside [MinParticles, MaxParticles].
	ErrParticleCount = errors.New("rope: particle count out of range")

	// ErrLength indicates a non-positive rope length.
	ErrLength = errors.New("rope: length must be positive")

	// ErrStiffness indicates a stiffness outside (0, MaxStiffness].
	ErrStiffness = errors.New("rope: stiffness out of range")

	// ErrIterations indicates a non-positive solver iteration count.
	ErrIterations = errors.New("rope: iterations must be positive")

	// ErrRate indicates a simulation rate that does not divide the physics rate.
	ErrRate = errors.New("rope: simulation rate must be positive and at most the physics rate")
)
