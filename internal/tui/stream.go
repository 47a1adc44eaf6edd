package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/san-kum/morphpage/internal/morph"
)

const (
	clearLine  = "\r\033[2K"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Stream redraws a single terminal line with every frame it is given.
type Stream struct {
	mu      sync.Mutex
	w       io.Writer
	limit   int
	frames  int
	started bool
	closed  bool
	done    chan struct{}
}

// NewStream writes to w. After limit frames Done is closed; limit 0 means
// no limit.
func NewStream(w io.Writer, limit int) *Stream {
	return &Stream{w: w, limit: limit, done: make(chan struct{})}
}

// Render implements morph.Sink.
func (s *Stream) Render(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return morph.ErrMissingSink
	}
	if !s.started {
		if _, err := io.WriteString(s.w, hideCursor); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		s.started = true
	}
	if _, err := io.WriteString(s.w, clearLine+text); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	s.frames++
	if s.limit > 0 && s.frames == s.limit {
		close(s.done)
	}
	return nil
}

func (s *Stream) Done() <-chan struct{} {
	return s.done
}

func (s *Stream) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Close restores the cursor and ends the line. Later renders fail with
// morph.ErrMissingSink.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if !s.started {
		return nil
	}
	_, err := io.WriteString(s.w, showCursor+"\n")
	return err
}
