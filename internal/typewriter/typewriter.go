// Package typewriter reveals a text one rune at a time, painting a leading
// run of runes in the highlight style.
package typewriter

import (
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/clock"
	"github.com/san-kum/morphpage/internal/lang"
)

const DefaultSpeed = 60 * time.Millisecond

var (
	ErrMissingSink = errors.New("typewriter: sink unavailable")
	ErrSpeed       = errors.New("typewriter: speed must be positive")
)

// Frame is the typed prefix split into its highlighted head and the rest.
type Frame struct {
	Highlight string
	Rest      string
	Done      bool
}

func (f Frame) String() string { return f.Highlight + f.Rest }

type Sink interface {
	RenderFrame(f Frame) error
}

type SinkFunc func(Frame) error

func (fn SinkFunc) RenderFrame(f Frame) error { return fn(f) }

// Script is what gets typed for one language. Highlight is only used for
// its length: that many leading runes are highlighted.
type Script struct {
	Text      string
	Highlight string
}

type Typewriter struct {
	mu      sync.Mutex
	sink    Sink
	sched   clock.Scheduler
	log     *zap.Logger
	speed   time.Duration
	scripts map[lang.Lang]Script

	text      []rune
	highlight int
	index     int
	typing    bool

	timer clock.Timer
	gen   uint64
}

type Option func(*Typewriter)

func WithLogger(l *zap.Logger) Option {
	return func(t *Typewriter) {
		if l != nil {
			t.log = l
		}
	}
}

func WithScheduler(s clock.Scheduler) Option {
	return func(t *Typewriter) {
		if s != nil {
			t.sched = s
		}
	}
}

func WithSpeed(d time.Duration) Option {
	return func(t *Typewriter) {
		if d > 0 {
			t.speed = d
		}
	}
}

// WithScripts sets the per-language texts used by OnLanguage.
func WithScripts(s map[lang.Lang]Script) Option {
	return func(t *Typewriter) { t.scripts = s }
}

func New(sink Sink, opts ...Option) (*Typewriter, error) {
	if sink == nil {
		return nil, ErrMissingSink
	}
	t := &Typewriter{
		sink:    sink,
		sched:   clock.Real{},
		log:     zap.NewNop(),
		speed:   DefaultSpeed,
		scripts: map[lang.Lang]Script{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Start types text from scratch, abandoning any run in progress. The first
// highlight runes are reported in Frame.Highlight.
func (t *Typewriter) Start(text string, highlight int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.text = []rune(text)
	t.highlight = max(highlight, 0)
	t.index = 0
	t.typing = true
	t.stepLocked()
}

func (t *Typewriter) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.typing = false
}

// OnLanguage restarts typing with the script for l. It is meant to be
// subscribed to language changes.
func (t *Typewriter) OnLanguage(l lang.Lang) {
	t.mu.Lock()
	s, ok := t.scripts[l]
	t.mu.Unlock()
	if !ok {
		t.log.Debug("typewriter: no script for language", zap.String("language", string(l)))
		t.Stop()
		return
	}
	t.Start(s.Text, utf8.RuneCountInString(s.Highlight))
}

func (t *Typewriter) Typing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.typing
}

func (t *Typewriter) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return ErrSpeed
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.speed = d
	return nil
}

func (t *Typewriter) cancelLocked() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Typewriter) stepLocked() {
	if !t.typing || t.index > len(t.text) {
		t.typing = false
		return
	}

	if err := t.sink.RenderFrame(t.frameLocked()); err != nil {
		t.log.Warn("typewriter: render failed, stopping", zap.Error(err))
		t.typing = false
		return
	}
	t.index++

	gen := t.gen
	t.timer = t.sched.AfterFunc(t.speed, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if gen != t.gen {
			return
		}
		t.timer = nil
		t.stepLocked()
	})
}

func (t *Typewriter) frameLocked() Frame {
	n := min(t.index, len(t.text))
	h := min(n, t.highlight)
	return Frame{
		Highlight: string(t.text[:h]),
		Rest:      string(t.text[h:n]),
		Done:      n == len(t.text),
	}
}
