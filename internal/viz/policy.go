package viz

import (
	"embed"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/san-kum/morphpage/internal/lang"
)

//go:embed policy/*.md
var policyFS embed.FS

// PolicyMarkdown returns the raw policy text for l.
func PolicyMarkdown(l lang.Lang) (string, error) {
	data, err := policyFS.ReadFile("policy/" + string(l) + ".md")
	if err != nil {
		return "", fmt.Errorf("viz: no policy for %q: %w", l, err)
	}
	return string(data), nil
}

// RenderPolicy renders the policy for l with the glamour style matching p.
func RenderPolicy(l lang.Lang, p Palette, width int) (string, error) {
	md, err := PolicyMarkdown(l)
	if err != nil {
		return "", err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(p.GlamourStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("viz: policy renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("viz: render policy: %w", err)
	}
	return out, nil
}
