// Package gui is the raylib 3D viewer: the tessellated ribbon with its
// particle chain, an orbiting camera, and runtime force toggles.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/ropesim/internal/mesh"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
)

// Monochrome palette matching the terminal front ends.
var (
	colBg       = rl.NewColor(10, 10, 10, 255)
	colRibbon   = rl.NewColor(200, 200, 200, 255)
	colWire     = rl.NewColor(90, 90, 90, 255)
	colParticle = rl.NewColor(255, 255, 255, 255)
	colAnchor   = rl.NewColor(240, 180, 60, 255)
	colText     = rl.NewColor(140, 140, 140, 255)
	colGrid     = rl.NewColor(30, 30, 30, 255)
)

// App owns the raylib window and the rope it displays.
type App struct {
	Rope    *rope.Rope
	Title   string
	paused  bool
	wire    bool
	points  bool
	lastTri int
}

func NewApp(r *rope.Rope, title string) *App {
	return &App{Rope: r, Title: title, points: true}
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	rl.InitWindow(1100, 700, "ropesim - "+a.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.Rope.Params().PhysicsRate))

	camera := rl.Camera3D{
		Position:   rl.NewVector3(8, 2, 8),
		Target:     rl.NewVector3(0, -2, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		a.handleInput()
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		if !a.paused {
			a.Rope.Simulate(1.0 / float64(a.Rope.Params().PhysicsRate))
		}

		camPos := mgl64.Vec3{
			float64(camera.Position.X),
			float64(camera.Position.Y),
			float64(camera.Position.Z),
		}
		m := a.Rope.Render(camPos)
		if m != nil {
			a.lastTri = m.TriangleCount()
		}

		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		rl.BeginMode3D(camera)
		rl.DrawGrid(20, 1.0)
		a.drawMesh(m)
		if a.points {
			a.drawParticles()
		}
		rl.EndMode3D()
		a.drawHUD()
		rl.EndDrawing()
	}
}

func (a *App) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.paused = !a.paused
	case rl.IsKeyPressed(rl.KeyW):
		a.wire = !a.wire
	case rl.IsKeyPressed(rl.KeyP):
		a.points = !a.points
	case rl.IsKeyPressed(rl.KeyR):
		a.Rope.Rebuild()
	}
}

func (a *App) drawMesh(m *mesh.Mesh) {
	if m == nil {
		return
	}
	origin := a.Rope.Origin()
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		v0 := toRl(m.Vertices[i].Position.Add(origin))
		v1 := toRl(m.Vertices[i+1].Position.Add(origin))
		v2 := toRl(m.Vertices[i+2].Position.Add(origin))
		if a.wire {
			rl.DrawLine3D(v0, v1, colWire)
			rl.DrawLine3D(v1, v2, colWire)
			rl.DrawLine3D(v2, v0, colWire)
		} else {
			rl.DrawTriangle3D(v0, v1, v2, colRibbon)
		}
	}
}

func (a *App) drawParticles() {
	buf := a.Rope.Buffer()
	for i := 0; i < buf.Len(); i++ {
		col := colParticle
		if buf.Attached[i] {
			col = colAnchor
		}
		rl.DrawSphere(toRl(buf.Pos[i]), 0.035, col)
	}
}

func (a *App) drawHUD() {
	buf := a.Rope.Buffer()
	line := fmt.Sprintf("t %.1fs   particles %d   triangles %d   stretch %.4f",
		a.Rope.Time(), buf.Len(), a.lastTri, sim.WorstStretch(a.Rope))
	rl.DrawText(line, 12, 12, 18, colText)
	rl.DrawText("space pause   w wireframe   p particles   r rebuild", 12, 36, 16, colGrid)
	if a.paused {
		rl.DrawText("paused", 12, 60, 18, colAnchor)
	}
}

func toRl(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}
