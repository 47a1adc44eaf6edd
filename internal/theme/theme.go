// Package theme switches the page between its light and dark palettes and
// remembers the choice.
package theme

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"

	Default  = Light
	storeKey = "theme"
)

var ErrUnknownTheme = errors.New("theme: unknown theme")

// Store is the preference storage the manager persists to.
type Store interface {
	Get(key, def string) string
	Set(key, value string)
}

// Player plays the toggle sound.
type Player interface {
	Play() error
}

// Parse accepts "light" and "dark".
func Parse(s string) (Name, error) {
	switch Name(s) {
	case Light, Dark:
		return Name(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Manager is not safe for concurrent use; the page drives it from its
// event loop.
type Manager struct {
	store   Store
	player  Player
	log     *zap.Logger
	current Name
}

type Option func(*Manager)

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithPlayer sets the toggle sound. Without one toggling is silent.
func WithPlayer(p Player) Option {
	return func(m *Manager) { m.player = p }
}

// NewManager loads the saved theme. An unreadable or unknown saved value
// falls back to Default.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}

	saved := m.store.Get(storeKey, string(Default))
	name, err := Parse(saved)
	if err != nil {
		m.log.Warn("theme: ignoring saved theme", zap.String("saved", saved))
		name = Default
	}
	m.apply(name)
	return m
}

func (m *Manager) Current() Name {
	return m.current
}

func (m *Manager) Set(name Name) error {
	if _, err := Parse(string(name)); err != nil {
		return err
	}
	m.apply(name)
	return nil
}

// Toggle flips between light and dark, persists the result and plays the
// click.
func (m *Manager) Toggle() Name {
	next := Light
	if m.current == Light {
		next = Dark
	}
	m.apply(next)
	m.playSound()
	return next
}

func (m *Manager) apply(name Name) {
	m.current = name
	m.store.Set(storeKey, string(name))
}

func (m *Manager) playSound() {
	if m.player == nil {
		return
	}
	if err := m.player.Play(); err != nil {
		m.log.Warn("theme: toggle sound failed", zap.Error(err))
	}
}
