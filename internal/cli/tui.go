package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seatforge/seatforge/pkg/geo"
	"github.com/seatforge/seatforge/pkg/layout"
	"github.com/seatforge/seatforge/pkg/nav"
	"github.com/seatforge/seatforge/pkg/viewport"
)

// Seat map glyph styles by status.
var (
	seatAvailableStyle = lipgloss.NewStyle().Foreground(colorGreen)
	seatHeldStyle      = lipgloss.NewStyle().Foreground(colorYellow)
	seatSoldStyle      = lipgloss.NewStyle().Foreground(colorRed)
	seatBookedStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	seatOtherStyle     = lipgloss.NewStyle().Foreground(colorDim)
	seatSelectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorCyan)
	objectStyle        = lipgloss.NewStyle().Foreground(colorGray)
)

// keyboardPanStep is the pan distance (screen px) per pan keypress.
const keyboardPanStep = 10

// SeatMapModel is the bubbletea model for interactive seat map browsing.
// Arrow keys traverse seats through the nav package; zoom and pan go
// through the viewport controller, so the TUI exercises the same math a
// pointer-driven renderer would.
type SeatMapModel struct {
	Cells   []layout.Cell
	Objects []layout.Object
	Angular bool // arc/circle config: navigate by seat index

	view     *viewport.Controller
	selected int
	width    int
	height   int
	fitted   bool
}

// NewSeatMapModel creates a seat map model for the generation result of
// cfg. The first generated cell starts selected.
func NewSeatMapModel(cfg layout.Config, result layout.Result) SeatMapModel {
	return SeatMapModel{
		Cells:   result.Cells,
		Objects: result.Objects,
		Angular: cfg.Kind == layout.KindArc || cfg.Kind == layout.KindCircle,
		view:    viewport.New(viewport.DefaultOptions()),
		width:   80,
		height:  24,
	}
}

func (m SeatMapModel) Init() tea.Cmd {
	return nil
}

func (m SeatMapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			m.move(nav.DirUp)
		case "down", "j":
			m.move(nav.DirDown)
		case "left", "h":
			m.move(nav.DirLeft)
		case "right", "l":
			m.move(nav.DirRight)

		case "+", "=":
			m.view.ZoomIn()
		case "-":
			m.view.ZoomOut()
		case "0":
			m.view.Reset()
			m.fit()
		case "f":
			m.fit()

		case "shift+up", "K":
			m.pan(0, keyboardPanStep)
		case "shift+down", "J":
			m.pan(0, -keyboardPanStep)
		case "shift+left", "H":
			m.pan(keyboardPanStep, 0)
		case "shift+right", "L":
			m.pan(-keyboardPanStep, 0)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.fitted {
			m.fit()
			m.fitted = true
		}
	}
	return m, nil
}

// move shifts the selection to the neighbor in dir, staying put at a
// boundary.
func (m *SeatMapModel) move(dir nav.Direction) {
	if len(m.Cells) == 0 {
		return
	}
	current := m.Cells[m.selected]

	var next *layout.Cell
	if m.Angular {
		next = nav.FindAngularNeighbor(m.Cells, current, dir, false)
	} else {
		next = nav.FindGridNeighbor(m.Cells, current, dir, false)
	}
	if next == nil {
		return
	}
	for i := range m.Cells {
		if m.Cells[i].ID == next.ID {
			m.selected = i
			return
		}
	}
}

// pan nudges the viewport through a synthetic one-step drag session.
func (m *SeatMapModel) pan(dx, dy float64) {
	m.view.StartPan(0, 0)
	m.view.UpdatePan(dx, dy)
	m.view.EndPan()
}

// fit zooms so the whole seat map is visible in the current canvas.
func (m *SeatMapModel) fit() {
	box := layout.BoundingBox(m.Cells)
	if box.Width == 0 || box.Height == 0 {
		return
	}
	w, h := m.canvasSize()
	m.view.FitToView(box.Width, box.Height, float64(w), float64(h), 1)
	// Anchor the content's top-left corner inside the canvas.
	m.view.StartPan(0, 0)
	m.view.UpdatePan(-box.X*m.view.Zoom(), -box.Y*m.view.Zoom())
	m.view.EndPan()
}

// canvasSize returns the drawable character grid, leaving room for the
// header and status lines.
func (m SeatMapModel) canvasSize() (w, h int) {
	w = m.width
	h = m.height - 4
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

func (m SeatMapModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Seat Map"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ navigate  +/- zoom  f fit  shift+arrows pan  q quit"))
	b.WriteString("\n")

	b.WriteString(m.renderCanvas())

	if m.selected < len(m.Cells) {
		c := m.Cells[m.selected]
		b.WriteString(fmt.Sprintf("%s %s  %s %.0f,%.0f  %s %.2fx",
			StyleDim.Render("seat"), StyleValue.Render(c.Meta.Label),
			StyleDim.Render("at"), c.X, c.Y,
			StyleDim.Render("zoom"), m.view.Zoom()))
	}
	b.WriteString("\n")
	return b.String()
}

// renderCanvas projects every cell through the view transform onto a
// character grid.
func (m SeatMapModel) renderCanvas() string {
	w, h := m.canvasSize()
	glyphs := make([]string, w*h)
	for i := range glyphs {
		glyphs[i] = " "
	}

	t := m.view.Transform()
	plot := func(p geo.Point, s string) {
		x, y := int(p.X), int(p.Y)
		if x >= 0 && x < w && y >= 0 && y < h {
			glyphs[y*w+x] = s
		}
	}

	for _, o := range m.Objects {
		plot(t.Apply(geo.Point{X: o.X, Y: o.Y}), objectStyle.Render("▭"))
	}
	for i, c := range m.Cells {
		if i == m.selected {
			continue // drawn last so it wins the glyph slot
		}
		plot(t.Apply(geo.Point{X: c.X, Y: c.Y}), statusGlyph(c.Meta.Status))
	}
	if m.selected < len(m.Cells) {
		c := m.Cells[m.selected]
		plot(t.Apply(geo.Point{X: c.X, Y: c.Y}), seatSelectedStyle.Render("◉"))
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(strings.Join(glyphs[y*w:(y+1)*w], ""))
		b.WriteString("\n")
	}
	return b.String()
}

// statusGlyph maps a seat status to its colored canvas glyph.
func statusGlyph(s layout.Status) string {
	switch s {
	case layout.StatusAvailable:
		return seatAvailableStyle.Render("●")
	case layout.StatusHeld:
		return seatHeldStyle.Render("●")
	case layout.StatusSold:
		return seatSoldStyle.Render("●")
	case layout.StatusBooked:
		return seatBookedStyle.Render("●")
	default:
		return seatOtherStyle.Render("○")
	}
}
