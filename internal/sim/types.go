package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/rope"
)

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	Observe(r *rope.Rope, t float64)
	Value() float64
	Reset()
}

// Observer is called once per simulated frame, after the tick.
type Observer interface {
	OnFrame(r *rope.Rope, t float64)
}

// Result is the record of one headless run.
type Result struct {
	Times   []float64
	Tip     []mgl64.Vec3
	Stretch []float64
	Metrics map[string]float64
	Frames  int
}
