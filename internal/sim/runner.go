// Package sim drives a rope at a fixed physics rate for headless runs:
// benchmarks, tuning sweeps, and recorded trajectories. Interactive
// front ends drive the rope directly instead.
package sim

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/rope"
)

// Runner ticks a rope for a duration, feeding metrics and observers.
type Runner struct {
	rope      *rope.Rope
	metrics   []Metric
	observers []Observer
}

func New(r *rope.Rope) *Runner {
	return &Runner{rope: r}
}

func (rn *Runner) AddMetric(m Metric)     { rn.metrics = append(rn.metrics, m) }
func (rn *Runner) AddObserver(o Observer) { rn.observers = append(rn.observers, o) }

// Run simulates for duration seconds at the rope's physics rate and
// returns the recorded trajectory. The context cancels between frames.
func (rn *Runner) Run(ctx context.Context, duration float64) (*Result, error) {
	p := rn.rope.Params()
	dt := 1.0 / float64(p.PhysicsRate)
	frames := int(duration * float64(p.PhysicsRate))
	if frames < 1 {
		return nil, fmt.Errorf("sim: duration %.3fs shorter than one frame", duration)
	}

	for _, m := range rn.metrics {
		m.Reset()
	}

	result := &Result{
		Times:   make([]float64, 0, frames),
		Tip:     make([]mgl64.Vec3, 0, frames),
		Stretch: make([]float64, 0, frames),
		Metrics: make(map[string]float64),
	}

	buf := rn.rope.Buffer()
	t := 0.0
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		rn.rope.Simulate(dt)
		t += dt

		for _, m := range rn.metrics {
			m.Observe(rn.rope, t)
		}
		for _, o := range rn.observers {
			o.OnFrame(rn.rope, t)
		}

		result.Times = append(result.Times, t)
		result.Tip = append(result.Tip, buf.Pos[buf.Last()])
		result.Stretch = append(result.Stretch, WorstStretch(rn.rope))
		result.Frames++
	}

	for _, m := range rn.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// WorstStretch returns the largest relative segment-length error of the
// chain, the quantity the constraint solver is driving to zero.
func WorstStretch(r *rope.Rope) float64 {
	buf := r.Buffer()
	rest := r.RestLength()
	if rest == 0 || buf.Len() < 2 {
		return 0
	}
	worst := 0.0
	for i := 0; i+1 < buf.Len(); i++ {
		l := buf.Pos[i+1].Sub(buf.Pos[i]).Len()
		e := l/rest - 1
		if e < 0 {
			e = -e
		}
		if e > worst {
			worst = e
		}
	}
	return worst
}
