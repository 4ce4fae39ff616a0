package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded value fails validation.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func wrapLoad(source string, err error) error {
	return fmt.Errorf("config: load %s: %w", source, err)
}
