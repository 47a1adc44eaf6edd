package viz

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/morphpage/internal/clock"
	"github.com/san-kum/morphpage/internal/config"
	"github.com/san-kum/morphpage/internal/lang"
	"github.com/san-kum/morphpage/internal/morph"
	"github.com/san-kum/morphpage/internal/page"
	"github.com/san-kum/morphpage/internal/prefs"
	"github.com/san-kum/morphpage/internal/theme"
	"github.com/san-kum/morphpage/internal/typewriter"
)

func key(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSurface(t *testing.T) {
	s := NewSurface()

	if err := s.Render("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.RenderFrame(typewriter.Frame{Highlight: "a", Rest: "b"}); err != nil {
		t.Fatal(err)
	}
	title, typed, v := s.Snapshot()
	if title != "abc" || typed.String() != "ab" {
		t.Errorf("got %q / %q", title, typed.String())
	}
	if v != 2 {
		t.Errorf("expected version 2, got %d", v)
	}

	s.Close()
	if err := s.Render("x"); !errors.Is(err, morph.ErrMissingSink) {
		t.Errorf("expected ErrMissingSink after close, got %v", err)
	}
	if err := s.RenderFrame(typewriter.Frame{}); !errors.Is(err, typewriter.ErrMissingSink) {
		t.Errorf("expected ErrMissingSink after close, got %v", err)
	}
	if title, _, _ := s.Snapshot(); title != "abc" {
		t.Errorf("closed surface changed: %q", title)
	}
}

func TestPaletteFor(t *testing.T) {
	if PaletteFor(theme.Dark).Name != theme.Dark {
		t.Error("expected dark palette")
	}
	if PaletteFor(theme.Light).GlamourStyle() != "light" {
		t.Error("expected light glamour style")
	}
	if PaletteFor("neon").Name != theme.Light {
		t.Error("unknown theme should map to light")
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", PaletteLight.Primary, PaletteLight.Accent) != "" {
		t.Error("empty text should stay empty")
	}
	out := GradientText("Ошибка", PaletteLight.Primary, PaletteLight.Accent)
	for _, r := range "Ошибка" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("rune %q missing from %q", r, out)
		}
	}
}

func TestSeparator(t *testing.T) {
	st := NewStyles(PaletteLight).Hint
	if got := strings.Count(Separator(6, st), "─"); got != 6 {
		t.Errorf("expected 6 segments, got %d", got)
	}
	wide := Separator(12, st)
	if strings.Count(wide, "─") != 8 || !strings.Contains(wide, "◆") {
		t.Errorf("unexpected separator %q", wide)
	}
}

func TestPolicy(t *testing.T) {
	for _, l := range lang.Supported {
		md, err := PolicyMarkdown(l)
		if err != nil {
			t.Fatalf("%s: %v", l, err)
		}
		if !strings.HasPrefix(md, "# ") {
			t.Errorf("%s: policy should start with a heading", l)
		}

		out, err := RenderPolicy(l, PaletteDark, 60)
		if err != nil {
			t.Fatalf("%s: %v", l, err)
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("%s: empty render", l)
		}
	}

	if _, err := PolicyMarkdown("de"); err == nil {
		t.Error("expected error for unknown language")
	}
}

func newNotFound(t *testing.T) (NotFoundModel, *page.NotFound, *clock.Manual) {
	t.Helper()
	sched := clock.NewManual()
	s := NewSurface()
	nf, err := page.NewNotFound(config.DefaultConfig().Morph, s, page.WithScheduler(sched))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(nf.Stop)
	return NewNotFoundModel(nf, s, PaletteLight, lang.English), nf, sched
}

func TestNotFoundModelFollowsSurface(t *testing.T) {
	m, nf, sched := newNotFound(t)
	if m.title != config.DefaultText {
		t.Fatalf("expected initial title %q, got %q", config.DefaultText, m.title)
	}

	nf.Start()
	sched.Advance(500 * time.Millisecond)

	next, cmd := m.Update(FrameMsg(time.Now()))
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	m = next.(NotFoundModel)
	if m.title != "404 — О#ибочка" {
		t.Errorf("unexpected title %q", m.title)
	}
	if !strings.Contains(m.View(), "#") {
		t.Error("view should show the morphed title")
	}
}

func TestNotFoundModelVisibility(t *testing.T) {
	m, nf, _ := newNotFound(t)
	nf.Start()

	next, _ := m.Update(tea.BlurMsg{})
	m = next.(NotFoundModel)
	if nf.Animator.Running() || !m.hidden {
		t.Error("blur should pause the title")
	}

	next, _ = m.Update(tea.FocusMsg{})
	m = next.(NotFoundModel)
	if !nf.Animator.Running() || m.hidden {
		t.Error("focus should resume the title")
	}
}

func TestNotFoundModelQuit(t *testing.T) {
	m, _, _ := newNotFound(t)
	for _, k := range []string{"q", "esc"} {
		if _, cmd := m.Update(key(k)); !isQuit(cmd) {
			t.Errorf("%s should quit", k)
		}
	}
}

func newFront(t *testing.T) (FrontModel, *page.Front) {
	t.Helper()
	s := NewSurface()
	f, err := page.NewFront(config.DefaultConfig(), prefs.New(nil, nil), s, page.WithScheduler(clock.NewManual()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(f.Close)
	return NewFrontModel(f, s, nil), f
}

func TestFrontModelKeys(t *testing.T) {
	m, f := newFront(t)

	next, _ := m.Update(key("t"))
	m = next.(FrontModel)
	if f.Theme.Current() != theme.Dark {
		t.Errorf("t should toggle theme, got %s", f.Theme.Current())
	}

	next, _ = m.Update(key("l"))
	m = next.(FrontModel)
	if f.Lang.Current() != lang.Russian {
		t.Errorf("l should toggle language, got %s", f.Lang.Current())
	}
	if !strings.Contains(m.View(), "Мидл") {
		t.Error("view should use the russian title")
	}

	next, _ = m.Update(key("p"))
	m = next.(FrontModel)
	if !f.Popups.Visible(lang.Russian) || !f.Popups.ScrollLocked() {
		t.Fatal("p should open the policy popup")
	}
	if !strings.Contains(m.View(), lang.T(lang.Russian, "popup.title")) {
		t.Error("view should show the popup")
	}

	// page keys are ignored while the popup is open
	next, _ = m.Update(key("t"))
	m = next.(FrontModel)
	if f.Theme.Current() != theme.Dark {
		t.Error("theme changed behind the popup")
	}

	next, _ = m.Update(key("esc"))
	m = next.(FrontModel)
	if f.Popups.ScrollLocked() {
		t.Error("esc should close the popup")
	}

	if _, cmd := m.Update(key("q")); !isQuit(cmd) {
		t.Error("q should quit")
	}
}

func TestFrontModelBackdropClick(t *testing.T) {
	m, f := newFront(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(FrontModel)

	click := func(x, y int) {
		next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m = next.(FrontModel)
	}

	next, _ = m.Update(key("p"))
	m = next.(FrontModel)
	click(40, 12)
	if !f.Popups.Visible(lang.English) {
		t.Error("click on the popup content should keep it open")
	}

	click(0, 0)
	if f.Popups.ScrollLocked() {
		t.Error("click on the backdrop should close the popup")
	}

	// without a popup clicks do nothing
	click(0, 0)
	if f.Popups.ScrollLocked() {
		t.Error("click opened a popup")
	}
}

func TestFrontModelShowsTypedFrame(t *testing.T) {
	m, f := newFront(t)
	f.Start()

	next, _ := m.Update(FrameMsg(time.Now()))
	m = next.(FrontModel)
	if m.typed.String() != "" {
		t.Errorf("expected empty first frame, got %q", m.typed.String())
	}
	if !strings.Contains(m.View(), "Middle") {
		t.Error("view should show the title")
	}
}
