package morph

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/clock"
)

type Animator struct {
	mu    sync.Mutex
	sink  Sink
	sched clock.Scheduler
	log   *zap.Logger

	text  []rune
	table map[rune]rune
	order []rune

	cursor  int
	scanned int // positions examined in the current pass
	running bool
	pausing bool // the clean-text pause timer is armed

	interval time.Duration
	pause    time.Duration

	timer clock.Timer
	gen   uint64
}

type Option func(*Animator)

func WithLogger(l *zap.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.log = l
		}
	}
}

func WithScheduler(s clock.Scheduler) Option {
	return func(a *Animator) {
		if s != nil {
			a.sched = s
		}
	}
}

// New builds an animator and renders the unmodified text once. The loop does
// not run until Start.
func New(text string, sink Sink, cfg Config, opts ...Option) (*Animator, error) {
	if sink == nil {
		return nil, ErrMissingSink
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Animator{
		sink:     sink,
		sched:    clock.Real{},
		log:      zap.NewNop(),
		text:     []rune(text),
		table:    make(map[rune]rune, len(cfg.Substitutions)),
		interval: cfg.Interval,
		pause:    cfg.Pause,
	}
	for _, opt := range opts {
		opt(a)
	}
	for _, s := range cfg.Substitutions {
		a.addLocked(s.From, s.To)
	}

	if err := a.initialRender(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Animator) initialRender() (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("morph: sink panicked on initial render", zap.Any("panic", r))
			err = fmt.Errorf("morph: initial render panicked: %w", ErrMissingSink)
		}
	}()
	if err := a.sink.Render(string(a.text)); err != nil {
		return fmt.Errorf("morph: initial render: %w", err)
	}
	return nil
}

func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.startLocked()
}

// Stop cancels the loop, restores the original text and rewinds the cursor.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.haltLocked()
	a.cursor, a.scanned = 0, 0
	a.renderLocked(string(a.text))
}

// Pause cancels the loop but leaves both the displayed frame and the cursor
// where they are.
func (a *Animator) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.haltLocked()
}

// Resume continues from the current cursor.
func (a *Animator) Resume() {
	a.Start()
}

func (a *Animator) SetText(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	wasRunning := a.running
	a.haltLocked()
	a.text = []rune(text)
	a.cursor, a.scanned = 0, 0
	if !a.renderLocked(text) {
		return
	}
	if wasRunning {
		a.startLocked()
	}
}

func (a *Animator) SetSpeed(d time.Duration) error {
	if d <= 0 {
		return &ConfigError{Field: "interval", Value: d}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.interval = d
	// a pending clean-text pause keeps its deadline; the new interval
	// applies once it ends
	if a.running && !a.pausing {
		a.armLocked(a.interval, a.tickLocked)
	}
	return nil
}

// SetPause changes the clean-text pause. It applies from the next pass.
func (a *Animator) SetPause(d time.Duration) error {
	if d < 0 {
		return &ConfigError{Field: "pause", Value: d}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pause = d
	return nil
}

func (a *Animator) AddSubstitution(from, to rune) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addLocked(from, to)
}

func (a *Animator) RemoveSubstitution(from rune) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.table[from]; !ok {
		return
	}
	delete(a.table, from)
	for i, r := range a.order {
		if r == from {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Substitutions returns the table in insertion order.
func (a *Animator) Substitutions() []Substitution {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Substitution, 0, len(a.order))
	for _, r := range a.order {
		out = append(out, Substitution{From: r, To: a.table[r]})
	}
	return out
}

func (a *Animator) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return string(a.text)
}

func (a *Animator) Cursor() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cursor
}

func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

func (a *Animator) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

func (a *Animator) addLocked(from, to rune) {
	if _, ok := a.table[from]; !ok {
		a.order = append(a.order, from)
	}
	a.table[from] = to
}

func (a *Animator) startLocked() {
	if a.running {
		return
	}
	a.running = true
	// resuming inside the clean-text pause starts the next pass
	if a.scanned >= len(a.text) {
		a.cursor, a.scanned = 0, 0
	}
	a.armLocked(a.interval, a.tickLocked)
}

func (a *Animator) haltLocked() {
	a.cancelLocked()
	a.running = false
	a.pausing = false
}

// cancelLocked drops the pending timer. Bumping gen also invalidates a
// callback that already fired and is waiting on the lock.
func (a *Animator) cancelLocked() {
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Animator) armLocked(d time.Duration, fn func()) {
	a.cancelLocked()
	gen := a.gen
	a.timer = a.sched.AfterFunc(d, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if gen != a.gen || !a.running {
			return
		}
		a.timer = nil
		fn()
	})
}

func (a *Animator) tickLocked() {
	n := len(a.text)
	for a.scanned < n {
		i := a.cursor
		a.cursor = (a.cursor + 1) % n
		a.scanned++

		to, ok := a.table[a.text[i]]
		if !ok {
			continue
		}
		frame := make([]rune, n)
		copy(frame, a.text)
		frame[i] = to
		if a.renderLocked(string(frame)) {
			a.armLocked(a.interval, a.tickLocked)
		}
		return
	}

	if !a.renderLocked(string(a.text)) {
		return
	}
	a.nextPassLocked()
}

func (a *Animator) nextPassLocked() {
	if a.pause <= 0 {
		a.cursor, a.scanned = 0, 0
		a.armLocked(a.interval, a.tickLocked)
		return
	}
	a.armLocked(a.pause, func() {
		a.pausing = false
		a.cursor, a.scanned = 0, 0
		a.armLocked(a.interval, a.tickLocked)
	})
	a.pausing = true
}

// renderLocked writes a frame. A failing or panicking sink leaves the
// animator inert.
func (a *Animator) renderLocked(text string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("morph: sink panicked, animator stopped", zap.Any("panic", r))
			a.haltLocked()
			ok = false
		}
	}()
	if err := a.sink.Render(text); err != nil {
		a.log.Warn("morph: render failed, animator stopped", zap.Error(err))
		a.haltLocked()
		return false
	}
	return true
}
