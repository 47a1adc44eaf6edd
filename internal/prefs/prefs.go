// Package prefs stores small page preferences (theme, language) with best
// effort persistence on top of gdata.
package prefs

import (
	"sync"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

const object = "prefs"

// Store is a string key/value store. Reads and writes never fail: storage
// problems are logged and the in-memory value is used instead.
type Store struct {
	mu  sync.Mutex
	mgr *gdata.Manager // nil means memory only
	mem map[string]string
	log *zap.Logger
}

// New wraps an opened gdata manager. mgr may be nil.
func New(mgr *gdata.Manager, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		mgr: mgr,
		mem: make(map[string]string),
		log: log,
	}
}

// Open creates the per-user data directory for appName. If that fails the
// store falls back to memory only.
func Open(appName string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warn("prefs: storage unavailable, keeping preferences in memory",
			zap.String("app", appName), zap.Error(err))
		return New(nil, log)
	}
	return New(mgr, log)
}

// Persistent reports whether values survive the process.
func (s *Store) Persistent() bool {
	return s.mgr != nil
}

// Get returns the stored value, or def when it is missing or empty.
func (s *Store) Get(key, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.mem[key]; ok {
		if v == "" {
			return def
		}
		return v
	}
	if s.mgr == nil || !s.mgr.ObjectPropExists(object, key) {
		return def
	}
	data, err := s.mgr.LoadObjectProp(object, key)
	if err != nil {
		s.log.Warn("prefs: read failed", zap.String("key", key), zap.Error(err))
		return def
	}
	v := string(data)
	s.mem[key] = v
	if v == "" {
		return def
	}
	return v
}

func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mem[key] = value
	if s.mgr == nil {
		return
	}
	if err := s.mgr.SaveObjectProp(object, key, []byte(value)); err != nil {
		s.log.Warn("prefs: write failed", zap.String("key", key), zap.Error(err))
	}
}
