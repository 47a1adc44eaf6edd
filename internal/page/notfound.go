package page

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/morphpage/internal/config"
	"github.com/san-kum/morphpage/internal/morph"
)

// NotFound runs the morphing title of the not-found page.
type NotFound struct {
	Animator *morph.Animator
	log      *zap.Logger
}

func NewNotFound(mc config.MorphConfig, sink morph.Sink, opts ...Option) (*NotFound, error) {
	o := buildOptions(opts)

	cfg, err := mc.ToMorph()
	if err != nil {
		o.log.Warn("page: morph title disabled", zap.Error(err))
		return nil, fmt.Errorf("page: %w", err)
	}
	a, err := morph.New(mc.Text, sink, cfg, morph.WithLogger(o.log), morph.WithScheduler(o.sched))
	if err != nil {
		o.log.Warn("page: morph title disabled", zap.Error(err))
		return nil, fmt.Errorf("page: %w", err)
	}
	return &NotFound{Animator: a, log: o.log}, nil
}

func (p *NotFound) Start() { p.Animator.Start() }

// Stop tears the title down, leaving the clean text on screen.
func (p *NotFound) Stop() { p.Animator.Stop() }

// Visibility pauses the title while the page is hidden and resumes it when
// the page comes back.
func (p *NotFound) Visibility(hidden bool) {
	if hidden {
		p.log.Debug("page: hidden, pausing title")
		p.Animator.Pause()
		return
	}
	p.log.Debug("page: visible, resuming title")
	p.Animator.Resume()
}
