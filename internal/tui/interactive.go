package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ropesim/internal/config"
	"github.com/san-kum/ropesim/internal/noise"
	"github.com/san-kum/ropesim/internal/rope"
	"github.com/san-kum/ropesim/internal/sim"
	"github.com/san-kum/ropesim/internal/viz"
)

var (
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var presetInfo = map[string]string{
	"powerline": "slack span between two poles",
	"tether":    "free rope chasing an orbiting target",
	"chain":     "heavy chain dropping onto the ground",
	"banner":    "wind-whipped rope on a swaying mount",
}

type screen int

const (
	screenMenu screen = iota
	screenSim
)

type tickMsg time.Time

// Model is the bubbletea application: a preset menu and a live
// simulation screen with runtime toggles.
type Model struct {
	screen  screen
	cursor  int
	presets []string

	cfg  *config.Config
	rope *rope.Rope
	err  error

	canvas    *viz.Canvas
	camera    *viz.Camera
	wireframe bool
	paused    bool
}

func NewModel() Model {
	names := make([]string, 0, len(config.Presets))
	for name := range config.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return Model{
		presets: names,
		canvas:  viz.NewCanvas(72, 20),
		camera:  viz.NewCamera(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if m.screen != screenSim || m.rope == nil {
			return m, nil
		}
		if !m.paused {
			m.rope.Simulate(1.0 / float64(m.rope.Params().PhysicsRate))
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "enter":
			m.startPreset(m.presets[m.cursor])
			if m.err == nil {
				m.screen = screenSim
				return m, tick()
			}
		}
	case screenSim:
		switch msg.String() {
		case "q", "esc":
			m.screen = screenMenu
			m.rope = nil
		case "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "m":
			m.wireframe = !m.wireframe
		case "r":
			if m.rope != nil {
				m.rope.Rebuild()
			}
		case "left", "h":
			m.camera.Orbit(-0.15, 0)
		case "right", "l":
			m.camera.Orbit(0.15, 0)
		case "up", "k":
			m.camera.Orbit(0, 0.1)
		case "down", "j":
			m.camera.Orbit(0, -0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-":
			m.camera.ZoomOut()
		}
	}
	return m, nil
}

func (m *Model) startPreset(name string) {
	cfg := config.Presets[name]
	end, err := cfg.EndDriver()
	if err != nil {
		m.err = err
		return
	}
	opts := []rope.Option{
		rope.WithOrigin(cfg.Origin.V3()),
		rope.WithWind(noise.NewValue(cfg.WindSeed)),
	}
	if end != nil {
		opts = append(opts, rope.WithEndTarget(end))
	}
	if w := cfg.World(); w != nil {
		opts = append(opts, rope.WithWorld(w))
	}
	r, err := rope.New(cfg.RopeParams(), opts...)
	if err != nil {
		m.err = err
		return
	}
	m.cfg = cfg
	m.rope = r
	m.err = nil
	m.paused = false
}

func (m Model) View() string {
	if m.screen == screenMenu {
		return m.menuView()
	}
	return m.simView()
}

func (m Model) menuView() string {
	var sb strings.Builder
	sb.WriteString(white.Render("ropesim") + dim.Render("  verlet rope playground") + "\n\n")
	for i, name := range m.presets {
		cursor := "  "
		style := dim
		if i == m.cursor {
			cursor = cyan.Render("> ")
			style = white
		}
		sb.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, style.Render(name), dim.Render(presetInfo[name])))
	}
	if m.err != nil {
		sb.WriteString("\n" + yellow.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + dim.Render("enter run · j/k move · q quit") + "\n")
	return sb.String()
}

func (m Model) simView() string {
	if m.rope == nil {
		return dim.Render("no rope") + "\n"
	}
	buf := m.rope.Buffer()
	m.camera.Target = chainCenter(m.rope)
	m.canvas.Clear()
	if m.wireframe {
		mesh := m.rope.Render(m.camera.Position())
		viz.DrawMesh(m.canvas, m.camera, mesh, m.rope.Origin())
	} else {
		viz.DrawChain(m.canvas, m.camera, buf)
	}

	status := fmt.Sprintf("t=%.1fs  stretch=%.4f  particles=%d",
		m.rope.Time(), sim.WorstStretch(m.rope), buf.Len())
	mode := "chain"
	if m.wireframe {
		mode = "ribbon"
	}
	if m.paused {
		status += "  " + yellow.Render("paused")
	}

	var sb strings.Builder
	sb.WriteString(m.canvas.String())
	sb.WriteString(green.Render(status) + dim.Render("  ["+mode+"]") + "\n")
	sb.WriteString(dim.Render("space pause · m mesh · r rebuild · h/j/k/l orbit · +/- zoom · q back") + "\n")
	return sb.String()
}

// RunInteractive launches the preset browser and blocks until quit.
func RunInteractive() error {
	_, err := tea.NewProgram(NewModel(), tea.WithAltScreen()).Run()
	return err
}
