// Package popup keeps the show/hide state of the per-language policy popups.
package popup

import (
	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/lang"
)

// Manager holds one overlay per language. While any overlay is visible the
// page behind it must not scroll.
type Manager struct {
	visible map[lang.Lang]bool
	log     *zap.Logger
}

func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{visible: make(map[lang.Lang]bool, len(lang.Supported)), log: log}
	for _, l := range lang.Supported {
		m.visible[l] = false
	}
	return m
}

// Show opens the popup for l. Unknown languages are ignored.
func (m *Manager) Show(l lang.Lang) {
	if _, ok := m.visible[l]; !ok {
		m.log.Debug("popup: no popup for language", zap.String("language", string(l)))
		return
	}
	m.visible[l] = true
}

func (m *Manager) Hide(l lang.Lang) {
	if _, ok := m.visible[l]; ok {
		m.visible[l] = false
	}
}

func (m *Manager) Visible(l lang.Lang) bool {
	return m.visible[l]
}

// Open returns the language of the visible popup, if any.
func (m *Manager) Open() (lang.Lang, bool) {
	for _, l := range lang.Supported {
		if m.visible[l] {
			return l, true
		}
	}
	return "", false
}

// ClickOverlay handles a click inside l's overlay. Only a click on the
// backdrop itself closes it; clicks on the content do not.
func (m *Manager) ClickOverlay(l lang.Lang, onBackdrop bool) {
	if onBackdrop {
		m.Hide(l)
	}
}

// HandleKey closes every open popup on escape. It reports whether the key
// was consumed.
func (m *Manager) HandleKey(key string) bool {
	if key != "esc" && key != "escape" {
		return false
	}
	consumed := false
	for l, v := range m.visible {
		if v {
			m.visible[l] = false
			consumed = true
		}
	}
	return consumed
}

func (m *Manager) ScrollLocked() bool {
	_, ok := m.Open()
	return ok
}
