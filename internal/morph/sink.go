package morph

// Sink receives every frame the animator produces. The animator never reads
// back from it.
type Sink interface {
	Render(text string) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(text string) error

func (f SinkFunc) Render(text string) error { return f(text) }
