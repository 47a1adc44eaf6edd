package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/lang"
	"github.com/san-kum/morphpage/internal/page"
	"github.com/san-kum/morphpage/internal/typewriter"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	blinkFrames   = frameRate / 2
)

// FrontModel renders the landing page and routes keys to the page
// controller.
type FrontModel struct {
	page    *page.Front
	surface *Surface
	log     *zap.Logger

	typed    typewriter.Frame
	frames   int
	cursorOn bool

	policy        viewport.Model
	policyLang    lang.Lang
	policyPalette Palette

	width, height int
}

func NewFrontModel(p *page.Front, s *Surface, log *zap.Logger) FrontModel {
	if log == nil {
		log = zap.NewNop()
	}
	return FrontModel{
		page:     p,
		surface:  s,
		log:      log,
		cursorOn: true,
		policy:   viewport.New(defaultWidth-8, defaultHeight-8),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m FrontModel) Init() tea.Cmd { return frameTick() }

func (m FrontModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.policy.Width = max(m.width-8, 20)
		m.policy.Height = max(m.height-8, 5)
		if _, open := m.page.Popups.Open(); open {
			m.refreshPolicy(true)
		}
	case FrameMsg:
		_, m.typed, _ = m.surface.Snapshot()
		m.frames++
		if m.frames%blinkFrames == 0 {
			m.cursorOn = !m.cursorOn
		}
		return m, frameTick()
	}
	return m, nil
}

func (m FrontModel) handleKey(msg tea.KeyMsg) (FrontModel, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	if _, open := m.page.Popups.Open(); open {
		if m.page.Popups.HandleKey(key) {
			return m, nil
		}
		var cmd tea.Cmd
		m.policy, cmd = m.policy.Update(msg)
		return m, cmd
	}

	switch key {
	case "t":
		m.page.ToggleTheme()
	case "l":
		m.page.ToggleLanguage()
	case "p":
		m.page.OpenPolicy()
		m.refreshPolicy(false)
	}
	return m, nil
}

// handleMouse closes the popup on a left click outside its box. Other mouse
// input scrolls the policy.
func (m FrontModel) handleMouse(msg tea.MouseMsg) (FrontModel, tea.Cmd) {
	l, open := m.page.Popups.Open()
	if !open {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		box := m.popupBox(l, NewStyles(PaletteFor(m.page.Theme.Current())))
		w, h := lipgloss.Width(box), lipgloss.Height(box)
		x0, y0 := (m.width-w)/2, (m.height-h)/2
		onBackdrop := msg.X < x0 || msg.X >= x0+w || msg.Y < y0 || msg.Y >= y0+h
		m.page.Popups.ClickOverlay(l, onBackdrop)
		return m, nil
	}
	var cmd tea.Cmd
	m.policy, cmd = m.policy.Update(msg)
	return m, cmd
}

// refreshPolicy re-renders the popup content when the language or theme
// changed since the last render, or always when force is set.
func (m *FrontModel) refreshPolicy(force bool) {
	l := m.page.Lang.Current()
	pal := PaletteFor(m.page.Theme.Current())
	if !force && l == m.policyLang && pal.Name == m.policyPalette.Name {
		m.policy.GotoTop()
		return
	}

	content, err := RenderPolicy(l, pal, m.policy.Width-2)
	if err != nil {
		m.log.Warn("viz: policy render failed, showing plain text", zap.Error(err))
		content, _ = PolicyMarkdown(l)
	}
	m.policy.SetContent(content)
	m.policy.GotoTop()
	m.policyLang, m.policyPalette = l, pal
}

func (m FrontModel) View() string {
	l := m.page.Lang.Current()
	pal := PaletteFor(m.page.Theme.Current())
	st := NewStyles(pal)

	if popupLang, open := m.page.Popups.Open(); open {
		return m.popupView(popupLang, st)
	}

	var s strings.Builder
	s.WriteString(st.Title.Render(lang.T(l, "front.title")))
	s.WriteString("\n")
	s.WriteString(Separator(min(m.width, 60), st.Hint))
	s.WriteString("\n\n")

	s.WriteString(st.Highlight.Render(m.typed.Highlight))
	s.WriteString(st.Body.Render(m.typed.Rest))
	if m.cursorOn {
		s.WriteString(st.Cursor.Render("▌"))
	} else {
		s.WriteString(" ")
	}
	s.WriteString("\n\n")

	status := fmt.Sprintf("%s · %s · %s",
		lang.T(l, "theme."+string(m.page.Theme.Current())),
		strings.ToUpper(string(l)),
		lang.T(l, "front.policy_link"))
	s.WriteString(st.Status.Render(status))
	s.WriteString("\n")
	s.WriteString(st.Hint.Render(lang.T(l, "front.hint")))

	body := lipgloss.NewStyle().Width(min(m.width, 64)).Render(s.String())
	return st.Page.Render(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body))
}

func (m FrontModel) popupView(l lang.Lang, st Styles) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.popupBox(l, st))
}

func (m FrontModel) popupBox(l lang.Lang, st Styles) string {
	var s strings.Builder
	s.WriteString(st.Title.Render(lang.T(l, "popup.title")))
	s.WriteString("\n")
	s.WriteString(m.policy.View())
	s.WriteString("\n")
	s.WriteString(st.Hint.Render(lang.T(l, "popup.close")))
	return st.Popup.Render(s.String())
}
