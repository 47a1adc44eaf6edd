// Package page wires the page behaviors together. Everything a page needs
// is passed in; nothing is looked up globally.
package page

import (
	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/clock"
	"github.com/san-kum/morphpage/internal/theme"
)

// Store is the preference storage shared by the theme and language managers.
type Store interface {
	Get(key, def string) string
	Set(key, value string)
}

type options struct {
	log    *zap.Logger
	sched  clock.Scheduler
	player theme.Player
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func WithScheduler(s clock.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.sched = s
		}
	}
}

// WithPlayer sets the theme toggle sound.
func WithPlayer(p theme.Player) Option {
	return func(o *options) { o.player = p }
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop(), sched: clock.Real{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
