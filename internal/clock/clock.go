// Package clock provides the one-shot timer abstraction the page components
// schedule their ticks on.
//
// [Real] wraps time.AfterFunc. [Manual] keeps a virtual clock that only
// moves when told to, so animations can be stepped frame by frame (tests,
// and the CLI's instant frame dump).
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules on the runtime timer heap.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manual is a virtual-time scheduler. Callbacks run synchronously on the
// goroutine that calls Advance or Step, never while Manual's lock is held,
// so callbacks may arm new timers.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	m   *Manual
	at  time.Duration
	seq int
	f   func()
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for i, p := range t.m.pending {
		if p == t {
			t.m.pending = append(t.m.pending[:i], t.m.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Now is the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending is the number of armed timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// popDue removes and returns the earliest timer due at or before limit.
// A negative limit means no limit.
func (m *Manual) popDue(limit time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	t := m.pending[0]
	if limit >= 0 && t.at > limit {
		return nil
	}
	m.pending = m.pending[1:]
	if t.at > m.now {
		m.now = t.at
	}
	return t
}

// Advance moves virtual time forward by d, firing every timer that falls
// due on the way, including ones armed by earlier callbacks. It returns how
// many callbacks ran.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	fired := 0
	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.f()
		fired++
	}

	m.mu.Lock()
	if m.now < target {
		m.now = target
	}
	m.mu.Unlock()
	return fired
}

// Step jumps to the earliest pending timer and fires it. It returns the
// virtual time that passed and false when nothing was pending.
func (m *Manual) Step() (time.Duration, bool) {
	before := m.Now()
	t := m.popDue(-1)
	if t == nil {
		return 0, false
	}
	t.f()
	return t.at - before, true
}
