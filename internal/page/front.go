package page

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/config"
	"github.com/san-kum/morphpage/internal/lang"
	"github.com/san-kum/morphpage/internal/popup"
	"github.com/san-kum/morphpage/internal/theme"
	"github.com/san-kum/morphpage/internal/typewriter"
)

// Front is the landing page controller: theme, language, policy popups and
// the typed tagline.
type Front struct {
	Theme      *theme.Manager
	Lang       *lang.Manager
	Popups     *popup.Manager
	Typewriter *typewriter.Typewriter

	log         *zap.Logger
	unsubscribe func()
}

// NewFront builds the managers in page order and subscribes the typewriter
// to language changes. Typing starts with Start.
func NewFront(cfg *config.Config, store Store, sink typewriter.Sink, opts ...Option) (*Front, error) {
	o := buildOptions(opts)

	tw, err := typewriter.New(sink,
		typewriter.WithLogger(o.log),
		typewriter.WithScheduler(o.sched),
		typewriter.WithSpeed(cfg.Typewriter.Speed()),
		typewriter.WithScripts(cfg.Typewriter.Scripts()),
	)
	if err != nil {
		return nil, fmt.Errorf("page: typewriter: %w", err)
	}

	seedDefaults(store, cfg.Page)

	f := &Front{
		Theme:      theme.NewManager(store, theme.WithLogger(o.log), theme.WithPlayer(o.player)),
		Lang:       lang.NewManager(store, lang.WithLogger(o.log)),
		Popups:     popup.NewManager(o.log),
		Typewriter: tw,
		log:        o.log,
	}
	f.unsubscribe = f.Lang.Subscribe(f.Typewriter.OnLanguage)

	o.log.Info("page: front page initialized",
		zap.String("theme", string(f.Theme.Current())),
		zap.String("language", string(f.Lang.Current())))
	return f, nil
}

// seedDefaults stores the configured theme and language for first-time
// visitors so the managers pick them up as if they had been saved.
func seedDefaults(store Store, pc config.PageConfig) {
	if store.Get("theme", "") == "" && pc.Theme != "" {
		store.Set("theme", pc.Theme)
	}
	if store.Get("language", "") == "" && pc.Language != "" {
		store.Set("language", pc.Language)
	}
}

// Start types the tagline for the current language.
func (f *Front) Start() {
	f.Typewriter.OnLanguage(f.Lang.Current())
}

// ToggleLanguage switches language; the typewriter restarts through its
// subscription.
func (f *Front) ToggleLanguage() lang.Lang {
	return f.Lang.Toggle()
}

func (f *Front) ToggleTheme() theme.Name {
	return f.Theme.Toggle()
}

// OpenPolicy shows the policy popup of the current language.
func (f *Front) OpenPolicy() {
	f.Popups.Show(f.Lang.Current())
}

func (f *Front) Close() {
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
	f.Typewriter.Stop()
}
