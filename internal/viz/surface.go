package viz

import (
	"sync"

	"github.com/san-kum/morphpage/internal/morph"
	"github.com/san-kum/morphpage/internal/typewriter"
)

// Surface is the display the animations write to. Writes never block; the
// page models read the latest frame on their frame tick.
type Surface struct {
	mu      sync.Mutex
	title   string
	typed   typewriter.Frame
	version uint64
	closed  bool
}

func NewSurface() *Surface {
	return &Surface{}
}

// Render implements morph.Sink.
func (s *Surface) Render(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return morph.ErrMissingSink
	}
	s.title = text
	s.version++
	return nil
}

// RenderFrame implements typewriter.Sink.
func (s *Surface) RenderFrame(f typewriter.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return typewriter.ErrMissingSink
	}
	s.typed = f
	s.version++
	return nil
}

// Snapshot returns the latest title, typed frame and a version that changes
// on every write.
func (s *Surface) Snapshot() (string, typewriter.Frame, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title, s.typed, s.version
}

// Close detaches the surface. Later writes fail, which makes the writers go
// inert.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
