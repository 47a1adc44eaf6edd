package morph

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/morphpage/internal/clock"
)

// diff returns the indexes where two equal-length rune strings differ.
func diff(a, b string) []int {
	ra, rb := []rune(a), []rune(b)
	var out []int
	for i := range ra {
		if i < len(rb) && ra[i] != rb[i] {
			out = append(out, i)
		}
	}
	return out
}

var _ = Describe("Animator", func() {
	var (
		sched *clock.Manual
		sink  *recordingSink
	)

	BeforeEach(func() {
		sched = clock.NewManual()
		sink = &recordingSink{}
	})

	build := func(text string, subs ...Substitution) *Animator {
		a, err := New(text, sink, Config{Interval: tick, Pause: time.Second, Substitutions: subs}, WithScheduler(sched))
		Expect(err).NotTo(HaveOccurred())
		return a
	}

	Describe("a full pass", func() {
		It("substitutes each matching rune once, left to right", func() {
			text := "ошибочка бага"
			a := build(text, DefaultSubstitutions()...)
			a.Start()

			var hits []int
			for {
				sched.Advance(tick)
				frame := sink.last()
				if frame == text {
					break
				}
				d := diff(text, frame)
				Expect(d).To(HaveLen(1), "frame %q", frame)
				hits = append(hits, d[0])
			}

			var want []int
			for i, r := range []rune(text) {
				if strings.ContainsRune("шбча", r) {
					want = append(want, i)
				}
			}
			Expect(hits).To(Equal(want))
		})

		It("continues from the cursor after a pause", func() {
			a := build("абв", Substitution{'а', '1'}, Substitution{'в', '3'})
			a.Start()
			sched.Advance(tick)
			Expect(sink.last()).To(Equal("1бв"))

			a.Pause()
			a.Resume()
			sched.Advance(tick)
			Expect(sink.last()).To(Equal("аб3"))
		})
	})

	Describe("rendered output", func() {
		It("never differs from the source in more than one rune", func() {
			text := "404 — Ошибочка"
			a := build(text, DefaultSubstitutions()...)
			a.Start()
			for i := 0; i < 40; i++ {
				sched.Advance(tick)
				Expect(len(diff(text, sink.last()))).To(BeNumerically("<=", 1))
			}
		})

		It("stays clean when nothing matches", func() {
			a := build("clean", Substitution{'ш', '#'})
			a.Start()
			sched.Advance(10 * time.Second)
			for _, f := range sink.frames {
				Expect(f).To(Equal("clean"))
			}
			// one clean frame per pause cycle, not per interval
			Expect(len(sink.frames)).To(BeNumerically("<", 10))
		})
	})

	Describe("Stop", func() {
		It("renders the original text from any cursor", func() {
			for ticks := 0; ticks < 6; ticks++ {
				sink = &recordingSink{}
				a := build("шаг", Substitution{'ш', '#'}, Substitution{'а', '%'})
				a.Start()
				sched.Advance(time.Duration(ticks) * tick)
				a.Stop()
				Expect(sink.last()).To(Equal("шаг"))
				Expect(a.Cursor()).To(BeZero())
			}
		})
	})
})
