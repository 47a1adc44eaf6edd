// Package lang tracks the page language and notifies subscribers when it
// changes. Translations are static strings compiled into the binary.
package lang

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Lang string

const (
	English Lang = "en"
	Russian Lang = "ru"

	Default  = English
	storeKey = "language"
)

var ErrUnsupported = errors.New("lang: unsupported language")

// Supported lists the page languages in display order.
var Supported = []Lang{English, Russian}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// Parse maps any BCP 47-ish tag ("ru", "ru-RU", "en_GB") onto a supported
// page language.
func Parse(s string) (Lang, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return Supported[idx], nil
}

// Tag returns the x/text tag for l.
func (l Lang) Tag() language.Tag {
	if l == Russian {
		return language.Russian
	}
	return language.English
}

type Store interface {
	Get(key, def string) string
	Set(key, value string)
}

// Manager is not safe for concurrent use.
type Manager struct {
	store   Store
	log     *zap.Logger
	current Lang
	subs    map[int]func(Lang)
	nextID  int
}

type Option func(*Manager)

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager restores the saved language, falling back to Default.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   zap.NewNop(),
		subs:  make(map[int]func(Lang)),
	}
	for _, opt := range opts {
		opt(m)
	}

	saved := store.Get(storeKey, string(Default))
	l, err := Parse(saved)
	if err != nil {
		m.log.Warn("lang: ignoring saved language", zap.String("saved", saved))
		l = Default
	}
	m.current = l
	store.Set(storeKey, string(l))
	return m
}

func (m *Manager) Current() Lang {
	return m.current
}

// Set switches the language, persists it and notifies every subscriber,
// even when the language did not change.
func (m *Manager) Set(l Lang) error {
	if l != English && l != Russian {
		return fmt.Errorf("%w: %q", ErrUnsupported, string(l))
	}
	m.current = l
	m.store.Set(storeKey, string(l))
	m.log.Debug("lang: language changed", zap.String("language", string(l)))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subs[id]; ok {
			fn(l)
		}
	}
	return nil
}

func (m *Manager) Toggle() Lang {
	next := Russian
	if m.current == Russian {
		next = English
	}
	m.Set(next)
	return next
}

// Subscribe registers fn for language changes. Subscribers run in
// registration order. The returned func unsubscribes.
func (m *Manager) Subscribe(fn func(Lang)) (cancel func()) {
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() { delete(m.subs, id) }
}
