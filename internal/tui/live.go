// Package tui provides the terminal front ends: a plain ANSI live view
// and a bubbletea interactive browser.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
	"github.com/san-kum/ropesim/internal/viz"
)

const (
	liveWidth  = 78
	liveHeight = 22

	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is a sim.Observer that repaints the terminal at a capped
// frame rate while a run progresses.
type LiveRenderer struct {
	frameRate int
	lastFrame time.Time
	canvas    *viz.Canvas
	camera    *viz.Camera
	wireframe bool
}

func NewLiveRenderer(frameRate int, wireframe bool) *LiveRenderer {
	return &LiveRenderer{
		frameRate: frameRate,
		canvas:    viz.NewCanvas(liveWidth, liveHeight),
		camera:    viz.NewCamera(),
		wireframe: wireframe,
	}
}

func (lr *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (lr *LiveRenderer) Stop()  { fmt.Print(showCursor) }

func (lr *LiveRenderer) OnFrame(r *rope.Rope, t float64) {
	if elapsed := time.Since(lr.lastFrame); elapsed < time.Second/time.Duration(lr.frameRate) {
		return
	}
	lr.lastFrame = time.Now()

	buf := r.Buffer()
	lr.camera.Target = chainCenter(r)
	lr.canvas.Clear()
	if lr.wireframe {
		m := r.Render(lr.camera.Position())
		viz.DrawMesh(lr.canvas, lr.camera, m, r.Origin())
	} else {
		viz.DrawChain(lr.canvas, lr.camera, buf)
	}

	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(lr.canvas.String())
	tip := buf.Pos[buf.Last()]
	sb.WriteString(fmt.Sprintf("t=%6.2fs  particles=%d  stretch=%6.4f  tip=(%.2f %.2f %.2f)\n",
		t, buf.Len(), sim.WorstStretch(r), tip.X(), tip.Y(), tip.Z()))
	fmt.Print(sb.String())
}

func chainCenter(r *rope.Rope) mgl64.Vec3 {
	buf := r.Buffer()
	n := buf.Len()
	if n == 0 {
		return mgl64.Vec3{}
	}
	sum := buf.Pos[0]
	for _, p := range buf.Pos[1:] {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(n))
}
