// Package config maps the YAML configuration surface onto rope
// parameters and the external collaborators a demo scene needs.
package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ropesim/internal/anchor"
	"github.com/san-kum/ropesim/internal/collide"
	"github.com/san-kum/ropesim/internal/rope"
)

const (
	DefaultLength     = 5.0
	DefaultParticles  = 10
	DefaultIterations = 2
	DefaultStiffness  = 0.9
	DefaultPreprocess = 5
	DefaultWidth      = 0.07
	DefaultLOD        = 50.0
)

// Vec is a YAML-friendly 3D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec) V3() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// AttachEnd selects and parameterizes the far-end anchor driver.
// Mode "" or "none" leaves the end free.
type AttachEnd struct {
	Mode      string  `yaml:"mode"` // none | fixed | orbit | sway
	Target    Vec     `yaml:"target"`
	Radius    float64 `yaml:"radius"`
	Amplitude float64 `yaml:"amplitude"`
	Hertz     float64 `yaml:"hertz"`
	Axis      Vec     `yaml:"axis"`
}

// SphereObstacle is one collider in the demo scene.
type SphereObstacle struct {
	Center Vec     `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// Scene describes the static collision world.
type Scene struct {
	Ground  bool             `yaml:"ground"`
	GroundY float64          `yaml:"ground_y"`
	Spheres []SphereObstacle `yaml:"spheres"`
}

type Config struct {
	Length    float64 `yaml:"rope_length"`
	Particles int     `yaml:"simulation_particles"`

	Iterations           int     `yaml:"iterations"`
	Stiffness            float64 `yaml:"stiffness"`
	PreprocessIterations int     `yaml:"preprocess_iterations"`
	SimulationRate       int     `yaml:"simulation_rate"`
	PhysicsRate          int     `yaml:"physics_rate"`

	AttachStart bool      `yaml:"attach_start"`
	AttachEnd   AttachEnd `yaml:"attach_end_to"`

	ApplyGravity bool    `yaml:"apply_gravity"`
	Gravity      Vec     `yaml:"gravity"`
	GravityScale float64 `yaml:"gravity_scale"`

	ApplyWind bool    `yaml:"apply_wind"`
	Wind      Vec     `yaml:"wind"`
	WindScale float64 `yaml:"wind_scale"`
	WindSeed  int64   `yaml:"wind_seed"`

	ApplyDamping  bool    `yaml:"apply_damping"`
	DampingFactor float64 `yaml:"damping_factor"`

	ApplyCollision bool   `yaml:"apply_collision"`
	CollisionMask  uint32 `yaml:"collision_mask"`

	Width       float64 `yaml:"rope_width"`
	LODDistance float64 `yaml:"subdiv_lod_distance"`

	Simulate bool `yaml:"simulate"`
	Draw     bool `yaml:"draw"`

	Origin Vec   `yaml:"origin"`
	Scene  Scene `yaml:"scene"`
}

func Default() *Config {
	return &Config{
		Length:               DefaultLength,
		Particles:            DefaultParticles,
		Iterations:           DefaultIterations,
		Stiffness:            DefaultStiffness,
		PreprocessIterations: DefaultPreprocess,
		SimulationRate:       rope.DefaultPhysicsRate,
		PhysicsRate:          rope.DefaultPhysicsRate,
		AttachStart:          true,
		ApplyGravity:         true,
		Gravity:              Vec{Y: -9.8},
		GravityScale:         1.0,
		Wind:                 Vec{X: 1},
		WindScale:            20.0,
		ApplyDamping:         true,
		DampingFactor:        100.0,
		CollisionMask:        1,
		Width:                DefaultWidth,
		LODDistance:          DefaultLOD,
		Simulate:             true,
		Draw:                 true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RopeParams translates the config into validated rope parameters.
func (c *Config) RopeParams() rope.Params {
	return rope.Params{
		Length:               c.Length,
		Particles:            c.Particles,
		Iterations:           c.Iterations,
		Stiffness:            c.Stiffness,
		PreprocessIterations: c.PreprocessIterations,
		SimulationRate:       c.SimulationRate,
		PhysicsRate:          c.PhysicsRate,
		AttachStart:          c.AttachStart,
		ApplyGravity:         c.ApplyGravity,
		Gravity:              c.Gravity.V3(),
		GravityScale:         c.GravityScale,
		ApplyWind:            c.ApplyWind,
		Wind:                 c.Wind.V3(),
		WindScale:            c.WindScale,
		ApplyDamping:         c.ApplyDamping,
		DampingFactor:        c.DampingFactor,
		ApplyCollision:       c.ApplyCollision,
		CollisionMask:        c.CollisionMask,
		Width:                c.Width,
		LODDistance:          c.LODDistance,
		Simulate:             c.Simulate,
		Draw:                 c.Draw,
	}
}

// EndDriver resolves the attach_end_to block. A nil driver with a nil
// error means the end is free. An unknown mode is a configuration error.
func (c *Config) EndDriver() (anchor.Driver, error) {
	switch c.AttachEnd.Mode {
	case "", "none":
		return nil, nil
	case "fixed":
		return anchor.Fixed(c.AttachEnd.Target.V3()), nil
	case "orbit":
		return anchor.Orbit{
			Center: c.AttachEnd.Target.V3(),
			Radius: c.AttachEnd.Radius,
			Hertz:  c.AttachEnd.Hertz,
		}, nil
	case "sway":
		axis := c.AttachEnd.Axis.V3()
		if axis.Len() == 0 {
			axis = mgl64.Vec3{1, 0, 0}
		}
		return anchor.Sway{
			Center:    c.AttachEnd.Target.V3(),
			Axis:      axis.Normalize(),
			Amplitude: c.AttachEnd.Amplitude,
			Hertz:     c.AttachEnd.Hertz,
		}, nil
	default:
		return nil, fmt.Errorf("config: unknown attach_end_to mode %q", c.AttachEnd.Mode)
	}
}

// World builds the static collision world, or nil when the scene is empty.
func (c *Config) World() collide.World {
	if !c.Scene.Ground && len(c.Scene.Spheres) == 0 {
		return nil
	}
	w := collide.NewStaticWorld()
	if c.Scene.Ground {
		w.Add(&collide.HalfSpace{
			Point: mgl64.Vec3{0, c.Scene.GroundY, 0},
			Plane: mgl64.Vec3{0, 1, 0},
			Layer: c.CollisionMask,
		})
	}
	for _, s := range c.Scene.Spheres {
		w.Add(&collide.Sphere{Center: s.Center.V3(), Radius: s.Radius, Layer: c.CollisionMask})
	}
	return w
}
