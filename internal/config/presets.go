package config

// Presets are ready-made rope setups for the demos.
var Presets = map[string]*Config{
	"powerline": func() *Config {
		c := Default()
		c.Length = 12.0
		c.Particles = 24
		c.Iterations = 4
		c.Stiffness = 1.0
		c.PreprocessIterations = 60
		c.ApplyWind = true
		c.WindScale = 12.0
		c.AttachEnd = AttachEnd{Mode: "fixed", Target: Vec{X: 10, Y: 0, Z: 0}}
		return c
	}(),
	"tether": func() *Config {
		c := Default()
		c.Length = 6.0
		c.Particles = 16
		c.ApplyWind = true
		c.AttachEnd = AttachEnd{Mode: "orbit", Target: Vec{X: 3, Y: -2, Z: 0}, Radius: 1.5, Hertz: 0.25}
		return c
	}(),
	"chain": func() *Config {
		c := Default()
		c.Length = 4.0
		c.Particles = 30
		c.Iterations = 8
		c.Stiffness = 1.0
		c.ApplyWind = false
		c.ApplyCollision = true
		c.Scene = Scene{Ground: true, GroundY: -3.0}
		return c
	}(),
	"banner": func() *Config {
		c := Default()
		c.Length = 8.0
		c.Particles = 20
		c.Stiffness = 0.7
		c.ApplyWind = true
		c.WindScale = 35.0
		c.ApplyDamping = true
		c.DampingFactor = 40.0
		c.AttachEnd = AttachEnd{Mode: "sway", Target: Vec{X: 7, Y: 1, Z: 0}, Axis: Vec{Z: 1}, Amplitude: 0.8, Hertz: 0.4}
		return c
	}(),
}
