// Package tui provides a live terminal view of a body under a prescribed
// motion: each frame evaluates the motion at the current time and pushes
// the resulting placement through the body's update method, exactly the
// way a solver loop drives the body once per step.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ibflow/internal/body"
	"github.com/san-kum/ibflow/internal/geom"
	"github.com/san-kum/ibflow/internal/motion"
	"github.com/san-kum/ibflow/internal/viz"
)

const (
	canvasWidth  = 64
	canvasHeight = 22
	frameSweep   = 10.0
)

type TickMsg time.Time

type Model struct {
	bd          *body.Body
	mot         motion.Motion
	shapeName   string
	t, dt       float64
	running     bool
	showNormals bool
	frameMin    geom.Vec2
	frameMax    geom.Vec2
}

// NewModel frames the view over a sweep of the motion so the body does
// not wander off-canvas while it moves.
func NewModel(bd *body.Body, mot motion.Motion, shapeName string, dt float64) Model {
	m := Model{
		bd:        bd,
		mot:       mot,
		shapeName: shapeName,
		dt:        dt,
		running:   true,
	}
	m.frameMin, m.frameMax = sweepBounds(bd, mot)
	bd.Update(mot.At(0))
	return m
}

// sweepBounds samples the motion over a window and accumulates the
// bounding box of every placement visited.
func sweepBounds(bd *body.Body, mot motion.Motion) (geom.Vec2, geom.Vec2) {
	min := geom.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	max := geom.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	const samples = 120
	for i := 0; i <= samples; i++ {
		t := frameSweep * float64(i) / samples
		bd.Update(mot.At(t))
		lo, hi := bd.Bounds()
		min.X = math.Min(min.X, lo.X)
		min.Y = math.Min(min.Y, lo.Y)
		max.X = math.Max(max.X, hi.X)
		max.Y = math.Max(max.Y, hi.Y)
	}
	return min, max
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			m.showNormals = !m.showNormals
		case "r":
			m.t = 0
			m.bd.Update(m.mot.At(0))
		case "+", "=":
			m.dt *= 1.25
		case "-", "_":
			m.dt /= 1.25
		}
	case TickMsg:
		if m.running {
			m.t += m.dt
			m.bd.Update(m.mot.At(m.t))
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	canvas := viz.NewCanvas(canvasWidth, canvasHeight)
	vp := viz.NewViewport(canvas, m.frameMin, m.frameMax)
	pts := m.bd.InertialPoints()
	vp.DrawBoundary(pts)
	if m.showNormals {
		if normals, err := m.bd.Normals(); err == nil {
			span := math.Max(m.frameMax.X-m.frameMin.X, m.frameMax.Y-m.frameMin.Y)
			vp.DrawNormals(pts, normals, span*0.05)
		}
	}

	header := viz.HeaderStyle.Render(fmt.Sprintf("ibflow live: %s", m.shapeName))

	status := viz.StatusRunning.Render("running")
	if !m.running {
		status = viz.StatusPaused.Render("paused")
	}

	cfg := m.bd.Config()
	var stats strings.Builder
	stats.WriteString(viz.LabelStyle.Render("status") + status + "\n")
	stats.WriteString(statLine("time", fmt.Sprintf("%.2fs", m.t)))
	stats.WriteString(statLine("dt", fmt.Sprintf("%.4f", m.dt)))
	stats.WriteString(statLine("points", fmt.Sprintf("%d", m.bd.NumPoints())))
	stats.WriteString(statLine("ref", fmt.Sprintf("(%.3f, %.3f)", cfg.Ref.X, cfg.Ref.Y)))
	if min, max, err := m.bd.SpacingStats(); err == nil {
		stats.WriteString(statLine("spacing", fmt.Sprintf("%.4f .. %.4f", min, max)))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		viz.CanvasStyle.Render(canvas.String()),
		viz.StatsStyle.Render(stats.String()),
	)

	graph := ""
	if ds, err := m.bd.Spacing(); err == nil {
		graph = viz.GraphStyle.Render(asciigraph.Plot(ds,
			asciigraph.Height(6),
			asciigraph.Width(70),
			asciigraph.Caption("arc-length element per boundary point"),
		))
	}

	help := viz.HelpStyle.Render("space pause · n normals · +/- speed · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, main, graph, help)
}

func statLine(label, value string) string {
	return viz.LabelStyle.Render(label) + viz.ValueStyle.Render(value) + "\n"
}

// Run starts the live view and blocks until the user quits.
func Run(bd *body.Body, mot motion.Motion, shapeName string, dt float64) error {
	p := tea.NewProgram(NewModel(bd, mot, shapeName, dt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
