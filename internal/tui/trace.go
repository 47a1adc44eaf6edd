package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/morphpage/internal/clock"
	"github.com/san-kum/morphpage/internal/morph"
)

// TraceFrame is one rendered frame of a dry run.
type TraceFrame struct {
	At    time.Duration
	Text  string
	Index int // substituted rune index, -1 for the clean text
}

// Trace runs an animator on virtual time and records its first n ticks.
func Trace(text string, cfg morph.Config, n int) ([]TraceFrame, error) {
	sched := clock.NewManual()
	source := []rune(text)
	frames := make([]TraceFrame, 0, n+1)

	sink := morph.SinkFunc(func(s string) error {
		frames = append(frames, TraceFrame{At: sched.Now(), Text: s, Index: changedIndex(source, []rune(s))})
		return nil
	})
	a, err := morph.New(text, sink, cfg, morph.WithScheduler(sched))
	if err != nil {
		return nil, err
	}
	a.Start()
	defer a.Pause()

	for len(frames) < n+1 {
		if _, ok := sched.Step(); !ok {
			break
		}
	}
	return frames, nil
}

func changedIndex(a, b []rune) int {
	for i := range a {
		if i < len(b) && a[i] != b[i] {
			return i
		}
	}
	return -1
}

// WriteTrace prints the frames and a plot of the substituted index over the
// frame sequence.
func WriteTrace(w io.Writer, frames []TraceFrame) error {
	series := make([]float64, 0, len(frames))
	for _, f := range frames {
		if _, err := fmt.Fprintf(w, "%8s  %3d  %s\n", f.At, f.Index, f.Text); err != nil {
			return err
		}
		series = append(series, float64(f.Index))
	}
	if len(series) < 2 {
		return nil
	}
	chart := asciigraph.Plot(series,
		asciigraph.Height(6),
		asciigraph.Width(min(len(series)*2, 72)),
		asciigraph.Caption("substituted index per frame (-1 = clean)"))
	_, err := fmt.Fprintf(w, "\n%s\n", chart)
	return err
}
