package morph

import "time"

const (
	DefaultInterval = 250 * time.Millisecond
	DefaultPause    = time.Second
)

// Substitution replaces From with To when the cursor reaches it.
type Substitution struct {
	From rune
	To   rune
}

type Config struct {
	Interval      time.Duration
	Pause         time.Duration
	Substitutions []Substitution
}

// DefaultSubstitutions is the glyph set used by the not-found title.
func DefaultSubstitutions() []Substitution {
	return []Substitution{
		{From: 'ш', To: '#'},
		{From: 'б', To: '@'},
		{From: 'ч', To: '&'},
		{From: 'а', To: '%'},
	}
}

func DefaultConfig() Config {
	return Config{
		Interval:      DefaultInterval,
		Pause:         DefaultPause,
		Substitutions: DefaultSubstitutions(),
	}
}

// Validate rejects a non-positive interval and a negative pause. A zero
// pause is legal and means the next pass starts without waiting.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return &ConfigError{Field: "interval", Value: c.Interval}
	}
	if c.Pause < 0 {
		return &ConfigError{Field: "pause", Value: c.Pause}
	}
	return nil
}
