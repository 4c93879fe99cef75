package scene

import (
	"errors"
	"fmt"
)

// ErrParameterBounds indicates a numeric option outside its valid range.
var ErrParameterBounds = errors.New("scene: parameter out of valid bounds")

// ConfigError reports the option that stopped a scene from being built.
type ConfigError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scene: invalid %s %v: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
