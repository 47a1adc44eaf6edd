package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/morphpage/internal/theme"
)

// Palette defines the colors of one page theme.
type Palette struct {
	Name       theme.Name
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color
}

var (
	PaletteLight = Palette{
		Name:       theme.Light,
		Primary:    lipgloss.Color("#1a1a2e"),
		Secondary:  lipgloss.Color("#3d3d5c"),
		Accent:     lipgloss.Color("#e94560"),
		Background: lipgloss.Color("#f5f5f0"),
		Text:       lipgloss.Color("#1a1a2e"),
		Muted:      lipgloss.Color("#8a8a99"),
		Highlight:  lipgloss.Color("#2e9e4f"), // green tagline head
		Border:     lipgloss.Color("#c8c8d0"),
	}

	PaletteDark = Palette{
		Name:       theme.Dark,
		Primary:    lipgloss.Color("#f0f0f0"),
		Secondary:  lipgloss.Color("#b0b0c8"),
		Accent:     lipgloss.Color("#ff2e63"),
		Background: lipgloss.Color("#0f0f14"),
		Text:       lipgloss.Color("#e8e8e8"),
		Muted:      lipgloss.Color("#666680"),
		Highlight:  lipgloss.Color("#39ff88"),
		Border:     lipgloss.Color("#444466"),
	}
)

// PaletteFor returns the palette of a page theme, light for anything unknown.
func PaletteFor(name theme.Name) Palette {
	if name == theme.Dark {
		return PaletteDark
	}
	return PaletteLight
}

// GlamourStyle names the glamour standard style matching the palette.
func (p Palette) GlamourStyle() string {
	if p.Name == theme.Dark {
		return "dark"
	}
	return "light"
}
