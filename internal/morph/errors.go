package morph

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors for animator construction and reconfiguration.
var (
	// ErrConfiguration indicates a non-positive tick interval or a negative pause.
	ErrConfiguration = errors.New("morph: invalid configuration")

	// ErrMissingSink indicates the display sink is unavailable.
	ErrMissingSink = errors.New("morph: display sink unavailable")
)

// ConfigError names the offending setting.
type ConfigError struct {
	Field string
	Value time.Duration
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("morph: invalid %s %v", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
