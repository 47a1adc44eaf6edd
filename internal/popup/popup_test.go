package popup

import (
	"testing"

	"github.com/san-kum/morphpage/internal/lang"
)

func TestShowHide(t *testing.T) {
	m := NewManager(nil)
	if m.ScrollLocked() {
		t.Fatal("no popup should be open initially")
	}

	m.Show(lang.Russian)
	if !m.Visible(lang.Russian) || m.Visible(lang.English) {
		t.Error("expected only the russian popup visible")
	}
	if !m.ScrollLocked() {
		t.Error("expected scroll lock while a popup is open")
	}
	if l, ok := m.Open(); !ok || l != lang.Russian {
		t.Errorf("expected ru open, got %s %v", l, ok)
	}

	m.Hide(lang.Russian)
	if m.ScrollLocked() {
		t.Error("expected scroll unlocked after hide")
	}
}

func TestShowUnknownLanguage(t *testing.T) {
	m := NewManager(nil)
	m.Show("de")
	if m.ScrollLocked() {
		t.Error("unknown language must not open a popup")
	}
}

func TestClickOverlay(t *testing.T) {
	m := NewManager(nil)
	m.Show(lang.English)

	m.ClickOverlay(lang.English, false)
	if !m.Visible(lang.English) {
		t.Error("click on popup content must not close it")
	}
	m.ClickOverlay(lang.English, true)
	if m.Visible(lang.English) {
		t.Error("click on backdrop should close the popup")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		open     bool
		key      string
		consumed bool
	}{
		{"esc closes open popup", true, "esc", true},
		{"escape alias", true, "escape", true},
		{"esc with nothing open", false, "esc", false},
		{"other key", true, "q", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil)
			if tt.open {
				m.Show(lang.English)
			}
			if got := m.HandleKey(tt.key); got != tt.consumed {
				t.Errorf("expected consumed=%v, got %v", tt.consumed, got)
			}
			if tt.consumed && m.ScrollLocked() {
				t.Error("expected popup closed")
			}
		})
	}
}
