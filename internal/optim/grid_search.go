// Package optim sweeps rope tunables to minimize a run metric, e.g.
// finding the cheapest stiffness/iterations pair that keeps stretch
// under control.
package optim

import (
	"context"
	"math"

	"github.com/san-kum/ropesim/internal/sim"
)

// BuildRunner constructs a fresh runner for one parameter combination.
// Returning an error skips the combination.
type BuildRunner func(params map[string]float64) (*sim.Runner, error)

// GridSearch exhaustively evaluates the cross product of the parameter
// ranges and keeps the combination with the lowest metric value.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	Duration   float64
}

func NewGridSearch(params []string, ranges [][]float64, duration float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, Duration: duration}
}

func (g *GridSearch) Search(ctx context.Context, build BuildRunner, metricName string) (map[string]float64, float64, error) {
	best := math.Inf(1)
	var bestParams map[string]float64

	g.searchRecursive(ctx, 0, make(map[string]float64), build, metricName, &best, &bestParams)

	if ctx.Err() != nil {
		return bestParams, best, ctx.Err()
	}
	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build BuildRunner,
	metricName string,
	best *float64,
	bestParams *map[string]float64,
) {
	if ctx.Err() != nil {
		return
	}
	if depth == len(g.paramNames) {
		runner, err := build(current)
		if err != nil {
			return
		}
		result, err := runner.Run(ctx, g.Duration)
		if err != nil {
			return
		}
		if val, ok := result.Metrics[metricName]; ok && val < *best {
			*best = val
			picked := make(map[string]float64, len(current))
			for k, v := range current {
				picked[k] = v
			}
			*bestParams = picked
		}
		return
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val
		g.searchRecursive(ctx, depth+1, next, build, metricName, best, bestParams)
	}
}
