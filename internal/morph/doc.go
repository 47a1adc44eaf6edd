// Package morph implements the character morph animator behind the glitching
// "not found" title.
//
// An [Animator] walks a cursor across its source text. On every tick it
// replaces the next rune that has an entry in the substitution table and
// writes the result to a [Sink]. Once a pass over the text has no more
// substitutable runes left, the clean text is shown for the configured pause
// and the next pass starts again at index 0.
//
// # Example
//
//	a, err := morph.New("404 — Ошибочка", sink, morph.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	a.Start()
//	defer a.Stop()
//
// # Thread Safety
//
// Animator methods are safe to call from any goroutine. Sinks are invoked
// with the animator's lock held and must not call back into the animator.
package morph
