package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickFreq     = 1800.0
	clickDuration = 60 * time.Millisecond
)

var ErrNotInitialized = errors.New("audio: speaker not initialized")

// Clicker plays the short tick heard when the page theme flips.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewClicker creates a clicker. volume is clamped to 0..1; the page uses 0.1.
func NewClicker(volume float64) *Clicker {
	return &Clicker{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
	}
}

func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play restarts the click from the beginning.
func (c *Clicker) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	c.mixer.Clear()
	c.mixer.Add(beep.Take(SampleRate.N(clickDuration), NewClickGenerator(SampleRate, clickFreq, c.volume)))
	speaker.Unlock()
	return nil
}

func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// ClickGenerator is a sine burst with an exponential decay envelope.
type ClickGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

func NewClickGenerator(sr beep.SampleRate, freq, volume float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq, volume: volume}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 60)
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
