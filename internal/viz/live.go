package viz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/nodeweb/internal/anim"
	"github.com/san-kum/nodeweb/internal/metrics"
	"github.com/san-kum/nodeweb/internal/scene"
)

const (
	// WorldScale is the number of scene pixels covered by one braille dot.
	WorldScale = 8

	historyCapacity = 120

	// canvas padding, matching canvasStyle
	padX = 2
	padY = 1

	minCols = 10
	minRows = 4
)

// session is the loop-side state. It is only touched on the loop goroutine.
type session struct {
	scene   *scene.Scene
	canvas  *Canvas
	surface *Surface
	nodes   *metrics.History
	edges   *metrics.EdgeCount
	opacity *metrics.MeanOpacity
	paused  bool
}

func newSession(s *scene.Scene) *session {
	c := NewCanvas(minCols, minRows)
	sess := &session{
		scene:   s,
		canvas:  c,
		surface: NewSurface(c, WorldScale),
		nodes:   metrics.NewHistory(metrics.NewNodeCount(), historyCapacity),
		edges:   metrics.NewEdgeCount(),
		opacity: metrics.NewMeanOpacity(),
	}
	s.AddObserver(metrics.Set{sess.nodes, sess.edges, sess.opacity})
	return sess
}

func (s *session) resize(cols, rows int) {
	s.canvas.Resize(cols, rows)
	w, h := s.surface.WorldSize()
	if s.scene.Started() {
		s.scene.Resize(w, h)
		return
	}
	s.scene.Start(w, h)
}

func (s *session) pointerAt(col, row int) {
	x, y := s.surface.CellToWorld(col, row)
	s.scene.PointerMove(x, y)
	s.scene.PointerEnter()
}

// frame runs one scene frame and snapshots what the view needs.
func (s *session) frame() (frameMsg, bool) {
	if s.paused || !s.scene.Started() {
		return frameMsg{}, false
	}
	edges := s.scene.Frame(s.surface)
	eng := s.scene.Engine()
	return frameMsg{
		canvas:  s.canvas.String(),
		nodes:   eng.Particles(),
		target:  eng.Target(),
		edges:   edges,
		opacity: s.opacity.Value(),
		pointer: eng.HasPointer(),
		history: slices.Clone(s.nodes.Values()),
	}, true
}

type frameMsg struct {
	canvas  string
	nodes   int
	target  int
	edges   int
	opacity float64
	pointer bool
	history []float64
}

// Model is the bubbletea side of the terminal host. It never touches the
// scene directly; every change is posted to the loop.
type Model struct {
	title  string
	loop   *anim.Loop
	sess   *session
	theme  Theme
	styles styles
	fg, bg string

	cols, rows int
	inside     bool
	paused     bool
	frames     int
	last       frameMsg
}

// NewModel returns a model that posts its input to loop and renders the
// frames sess produces there.
func NewModel(loop *anim.Loop, sess *session, theme Theme) Model {
	st := sess.scene.Style()
	return Model{
		title:  sess.scene.Options().Canvas,
		loop:   loop,
		sess:   sess,
		theme:  theme,
		styles: newStyles(theme),
		fg:     st.Node.Hex(),
		bg:     st.Background.Hex(),
	}
}

// Init names the terminal window after the scene's canvas.
func (m Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Update handles input events. Scene changes are posted to the loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			paused := m.paused
			m.post(func() { m.sess.paused = paused })
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		}

	case tea.WindowSizeMsg:
		m.cols = max(msg.Width-panelWidth-2*padX-1, minCols)
		m.rows = max(msg.Height-2*padY, minRows)
		cols, rows := m.cols, m.rows
		m.post(func() { m.sess.resize(cols, rows) })

	case tea.MouseMsg:
		col, row := msg.X-padX, msg.Y-padY
		if col >= 0 && row >= 0 && col < m.cols && row < m.rows {
			m.inside = true
			m.post(func() { m.sess.pointerAt(col, row) })
		} else if m.inside {
			m.inside = false
			m.post(m.sess.scene.PointerLeave)
		}

	case tea.BlurMsg:
		if m.inside {
			m.inside = false
			m.post(m.sess.scene.PointerLeave)
		}

	case frameMsg:
		m.last = msg
		m.frames++
	}
	return m, nil
}

func (m Model) post(fn func()) {
	m.loop.Post(fn)
}

// View lays the canvas out next to the side panel.
func (m Model) View() string {
	canvas := m.last.canvas
	if canvas == "" {
		canvas = strings.Repeat(strings.Repeat(" ", m.cols)+"\n", max(m.rows-1, 0)) + strings.Repeat(" ", m.cols)
	}
	left := canvasStyle(m.fg, m.bg).Render(canvas)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.panel())
}

func (m Model) panel() string {
	st := m.styles
	var s strings.Builder

	status := st.active.Render(AnimatedSpinner(m.frames))
	if m.paused {
		status = st.paused.Render("PAUSED")
	}
	s.WriteString(st.header.Render("NODEWEB") + " " + status + "\n")

	if len(m.last.history) > 1 {
		chart := asciigraph.Plot(m.last.history,
			asciigraph.Height(5),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption("nodes"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	fill := 0.0
	if m.last.target > 0 {
		fill = float64(m.last.nodes) / float64(m.last.target)
	}
	pointer := "off"
	if m.last.pointer {
		pointer = "on"
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Nodes", fmt.Sprintf("%d / %d", m.last.nodes, m.last.target))
	row("Density", ProgressBar(fill, 20))
	row("Edges", fmt.Sprintf("%d", m.last.edges))
	row("Opacity", fmt.Sprintf("%.2f", m.last.opacity))
	row("Pointer", pointer)
	row("Theme", m.theme.Name)

	s.WriteString(st.help.Render("space pause  t theme  q quit"))
	return st.panel.Render(s.String())
}

// Run shows s in the terminal until the user quits or ctx ends. Frames run
// on an anim.Loop at fps; bubbletea only renders their snapshots.
func Run(ctx context.Context, s *scene.Scene, fps int, theme string) error {
	return run(ctx, s, fps, theme, tea.WithAltScreen())
}

func run(ctx context.Context, s *scene.Scene, fps int, theme string, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess := newSession(s)
	loop := anim.NewLoop(fps)
	opts = append(opts,
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	p := tea.NewProgram(NewModel(loop, sess, GetTheme(theme)), opts...)

	errc := make(chan error, 1)
	go func() {
		errc <- loop.Run(ctx, func() {
			if f, ok := sess.frame(); ok {
				p.Send(f)
			}
		})
	}()

	// Stop is lost if the loop goroutine has not reached Run yet; cancel is not.
	_, err := p.Run()
	cancel()
	loopErr := <-errc

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	if loopErr != nil && !errors.Is(loopErr, context.Canceled) {
		return loopErr
	}
	return nil
}
