package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/morphpage/internal/lang"
	"github.com/san-kum/morphpage/internal/page"
)

const frameRate = 30

// FrameMsg drives the models' redraw.
type FrameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// NotFoundModel shows the morphing title centered on screen.
type NotFoundModel struct {
	page    *page.NotFound
	surface *Surface
	palette Palette
	styles  Styles
	lang    lang.Lang

	title         string
	hidden        bool
	width, height int
}

func NewNotFoundModel(p *page.NotFound, s *Surface, pal Palette, l lang.Lang) NotFoundModel {
	title, _, _ := s.Snapshot()
	return NotFoundModel{
		page:    p,
		surface: s,
		palette: pal,
		styles:  NewStyles(pal),
		lang:    l,
		title:   title,
	}
}

func (m NotFoundModel) Init() tea.Cmd { return frameTick() }

func (m NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.BlurMsg:
		m.hidden = true
		m.page.Visibility(true)
	case tea.FocusMsg:
		m.hidden = false
		m.page.Visibility(false)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case FrameMsg:
		m.title, _, _ = m.surface.Snapshot()
		return m, frameTick()
	}
	return m, nil
}

func (m NotFoundModel) View() string {
	var s strings.Builder
	s.WriteString(GradientText(m.title, m.palette.Primary, m.palette.Accent))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Hint.Render(lang.T(m.lang, "notfound.hint")))

	if m.width == 0 || m.height == 0 {
		return s.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}
