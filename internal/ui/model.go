package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"ringdial/internal/raster"
	"ringdial/internal/ring"
	"ringdial/internal/util"
)

// spinRate is how fast the indeterminate arc travels, degrees per second.
const spinRate = 270.0

// chromeRows is the vertical space reserved around the dial for the header,
// readout and help lines.
const chromeRows = 8

// Options configure the dial host.
type Options struct {
	RingWidth     int
	CircleScale   float64
	FixedSize     int // dots; 0 sizes the dial from the window
	FPS           int
	Indeterminate bool
	StartProgress float64
	Theme         Theme
}

// Model is the Bubbletea model hosting one progress dial. It owns the
// drawable, supplies its bounds from the window size, and re-rasterizes the
// frame only when the drawable has signalled an invalidation.
type Model struct {
	dial   *ring.Drawable
	canvas *raster.Canvas

	// redraws is bumped by the dial's invalidate sink; rendered is its value
	// at the last rasterization. They differ while a frame is stale.
	redraws  *int
	rendered int
	frame    string

	// Determinate progress eases toward target with a spring, so key presses
	// land smoothly instead of jumping.
	target float64
	shown  float64
	vel    float64
	spring harmonica.Spring

	spin float64 // indeterminate start angle, degrees

	bar      progress.Model
	keys     keyMap
	help     help.Model
	themeIdx int
	fps      int
	width    int
	height   int
	quitting bool
}

// New creates a dial host from options. Zero or negative FPS falls back
// to 30.
func New(opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}

	redraws := new(int)
	dial := ring.NewBuilder().
		RingWidth(opts.RingWidth).
		OutlineColor(opts.Theme.Outline).
		RingColor(opts.Theme.Ring).
		CenterColor(opts.Theme.Center).
		InnerCircleScale(opts.CircleScale).
		Size(opts.FixedSize).
		Invalidate(func() { *redraws++ }).
		Create()

	start := opts.StartProgress
	if opts.Indeterminate {
		dial.SetIndeterminate(true)
		dial.SetProgress(0)
	} else {
		dial.SetProgress(start)
	}

	m := Model{
		dial:     dial,
		redraws:  redraws,
		target:   start,
		shown:    start,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8),
		keys:     defaultKeyMap(),
		help:     help.New(),
		themeIdx: ThemeByName(opts.Theme.Name),
		fps:      fps,
	}
	m.bar = m.newBar(opts.Theme)
	return m
}

func (m Model) newBar(t Theme) progress.Model {
	b := progress.New(
		progress.WithScaledGradient(t.Ring.Hex(), t.gradientEnd()),
		progress.WithoutPercentage(),
	)
	if m.bar.Width > 0 {
		b.Width = m.bar.Width
	}
	return b
}

// Dial exposes the drawable, mainly for the level adapter and tests.
func (m Model) Dial() *ring.Drawable { return m.dial }

func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.rasterize()
		return m, nil

	case frameMsg:
		m.animate()
		if m.stale() {
			m.rasterize()
		}
		return m, frameCmd(m.fps)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		indeterminate := !m.dial.Indeterminate()
		m.dial.SetIndeterminate(indeterminate)
		if indeterminate {
			m.spin = 0
			m.dial.SetProgress(m.spin)
		} else {
			// Re-enter progress mode at the fraction we were showing.
			m.dial.SetProgress(m.shown)
		}

	case key.Matches(msg, m.keys.More):
		m.target = clamp01(m.target + 0.05)

	case key.Matches(msg, m.keys.Less):
		m.target = clamp01(m.target - 0.05)

	case key.Matches(msg, m.keys.Grow):
		m.dial.SetCircleScale(m.dial.CircleScale() + 0.05)

	case key.Matches(msg, m.keys.Shrink):
		m.dial.SetCircleScale(m.dial.CircleScale() - 0.05)

	case key.Matches(msg, m.keys.Theme):
		m.themeIdx = (m.themeIdx + 1) % len(themes)
		t := themes[m.themeIdx]
		m.dial.SetOutlineColor(t.Outline)
		m.dial.SetRingColor(t.Ring)
		m.dial.SetCenterColor(t.Center)
		m.bar = m.newBar(t)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	if m.stale() {
		m.rasterize()
	}
	return m, nil
}

// animate advances one frame: the spring in determinate mode, the spinning
// start angle in indeterminate mode.
func (m *Model) animate() {
	if m.dial.Indeterminate() {
		m.spin = math.Mod(m.spin+spinRate/float64(m.fps), 360)
		m.dial.SetProgress(m.spin)
		return
	}

	shown, vel := m.spring.Update(m.shown, m.vel, m.target)
	if math.Abs(shown-m.target) < 1e-3 && math.Abs(vel) < 1e-3 {
		shown, vel = m.target, 0
	}
	if shown == m.shown {
		m.vel = vel
		return
	}
	m.shown, m.vel = shown, vel
	m.dial.SetProgress(m.shown)
}

// layout sizes the canvas to the window, reserving chrome rows, and hands
// the dial its new bounds.
func (m *Model) layout() {
	cols := m.width - 4
	if cols < 10 {
		cols = 10
	}
	rows := m.height - chromeRows
	if rows < 6 {
		rows = 6
	}
	m.canvas = raster.New(cols, rows)
	m.dial.SetBounds(m.canvas.Bounds())

	barWidth := m.width - 8
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 60 {
		barWidth = 60
	}
	m.bar.Width = barWidth
	m.help.Width = m.width
}

func (m Model) stale() bool {
	return m.canvas != nil && *m.redraws != m.rendered
}

func (m *Model) rasterize() {
	if m.canvas == nil {
		return
	}
	m.canvas.Reset()
	m.dial.Draw(m.canvas)
	m.frame = m.canvas.Render()
	m.rendered = *m.redraws
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.canvas == nil {
		return "\n  " + statusStyle.Render("waiting for terminal size...") + "\n"
	}

	header := headerStyle.Render("ringdial")

	var readout string
	if m.dial.Indeterminate() {
		readout = statusStyle.Render(fmt.Sprintf("loading  arc at %3.0f°", m.spin))
	} else {
		readout = m.bar.ViewAs(m.shown) + " " + valueStyle.Render(util.FormatPercent(m.shown))
	}

	status := statusStyle.Render(fmt.Sprintf(
		"theme %s  center ×%.2f  ring %dpx",
		themes[m.themeIdx].Name, m.dial.CircleScale(), m.dial.RingWidth(),
	))

	lines := "\n"
	lines += "  " + header + "\n"
	lines += m.frame + "\n"
	lines += "  " + readout + "\n"
	lines += "  " + status + "\n"
	lines += "  " + helpStyle.Render(m.help.View(m.keys)) + "\n"

	return lines
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
