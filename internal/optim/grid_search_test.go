package optim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
)

// scoreMetric reports a fixed value, letting tests steer the search
// without depending on simulation outcomes.
type scoreMetric struct{ v float64 }

func (m *scoreMetric) Name() string                    { return "score" }
func (m *scoreMetric) Observe(r *rope.Rope, t float64) {}
func (m *scoreMetric) Value() float64                  { return m.v }
func (m *scoreMetric) Reset()                          {}

func buildScored(score func(map[string]float64) float64) BuildRunner {
	return func(params map[string]float64) (*sim.Runner, error) {
		p := rope.DefaultParams()
		p.Particles = 4
		r, err := rope.New(p)
		if err != nil {
			return nil, err
		}
		rn := sim.New(r)
		rn.AddMetric(&scoreMetric{v: score(params)})
		return rn, nil
	}
}

func TestGridSearchFindsMinimum(t *testing.T) {
	g := NewGridSearch(
		[]string{"stiffness", "iterations"},
		[][]float64{{0.5, 0.7, 0.9}, {1, 3}},
		0.1,
	)
	build := buildScored(func(p map[string]float64) float64 {
		return math.Abs(p["stiffness"]-0.7) + math.Abs(p["iterations"]-3)
	})

	best, val, err := g.Search(context.Background(), build, "score")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if val != 0 {
		t.Errorf("best value %f, expected 0", val)
	}
	if best["stiffness"] != 0.7 || best["iterations"] != 3 {
		t.Errorf("best params %v, expected stiffness=0.7 iterations=3", best)
	}
}

func TestGridSearchSkipsFailedBuilds(t *testing.T) {
	g := NewGridSearch([]string{"stiffness"}, [][]float64{{0.5, 0.9}}, 0.1)
	build := func(params map[string]float64) (*sim.Runner, error) {
		if params["stiffness"] == 0.5 {
			return nil, errors.New("bad combination")
		}
		return buildScored(func(map[string]float64) float64 { return 1 })(params)
	}

	best, val, err := g.Search(context.Background(), build, "score")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if best["stiffness"] != 0.9 || val != 1 {
		t.Errorf("best = %v (%f), expected the surviving combination", best, val)
	}
}

func TestGridSearchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGridSearch([]string{"stiffness"}, [][]float64{{0.5}}, 0.1)
	_, _, err := g.Search(ctx, buildScored(func(map[string]float64) float64 { return 0 }), "score")
	if err != context.Canceled {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
}
