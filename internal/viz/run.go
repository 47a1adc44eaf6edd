package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/config"
	"github.com/san-kum/morphpage/internal/lang"
	"github.com/san-kum/morphpage/internal/page"
	"github.com/san-kum/morphpage/internal/theme"
)

// RunNotFound runs the not-found page until the user quits. The saved
// theme and language pick the palette and hint text.
func RunNotFound(mc config.MorphConfig, store page.Store, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	surface := NewSurface()
	defer surface.Close()

	nf, err := page.NewNotFound(mc, surface, page.WithLogger(log))
	if err != nil {
		return err
	}
	defer nf.Stop()

	pal := PaletteFor(theme.NewManager(store, theme.WithLogger(log)).Current())
	l := lang.NewManager(store, lang.WithLogger(log)).Current()

	nf.Start()
	model := NewNotFoundModel(nf, surface, pal, l)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus()).Run(); err != nil {
		return fmt.Errorf("viz: not-found page: %w", err)
	}
	return nil
}

// RunFront runs the landing page until the user quits.
func RunFront(cfg *config.Config, store page.Store, player theme.Player, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	surface := NewSurface()
	defer surface.Close()

	opts := []page.Option{page.WithLogger(log)}
	if player != nil {
		opts = append(opts, page.WithPlayer(player))
	}
	front, err := page.NewFront(cfg, store, surface, opts...)
	if err != nil {
		return err
	}
	defer front.Close()

	front.Start()
	model := NewFrontModel(front, surface, log)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("viz: front page: %w", err)
	}
	return nil
}
