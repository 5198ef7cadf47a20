package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors. They signal a programming mistake in the option set and
// are always returned as errors, never folded into a validation result.
var (
	// ErrInvalidOptions is returned when the option set contains unrecognised keys.
	ErrInvalidOptions = errors.New("invalid validation options")

	// ErrInvalidOptionValue is returned when a recognised option holds a value of the wrong type.
	ErrInvalidOptionValue = errors.New("invalid validation option value")

	// ErrUnknownPattern is returned when a symbolic pattern name is not in the registry.
	ErrUnknownPattern = errors.New("unknown predefined pattern")
)

// ConfigurationError describes an option set that cannot be used.
type ConfigurationError struct {
	// Unknown lists the supplied keys missing from the canonical key set.
	Unknown []string
	// Available lists every recognised key, in canonical order.
	Available []string
	// Err carries the decoding failure when the keys were fine but a value was not.
	Err error
}

func (e *ConfigurationError) Error() string {
	if len(e.Unknown) == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", ErrInvalidOptionValue, e.Err)
		}
		return ErrInvalidOptionValue.Error()
	}

	var b strings.Builder
	b.WriteString("invalid option(s):\n- ")
	b.WriteString(strings.Join(e.Unknown, "\n- "))
	b.WriteString("\n\navailable options:\n- ")
	b.WriteString(strings.Join(e.Available, "\n- "))
	return b.String()
}

func (e *ConfigurationError) Unwrap() []error {
	if len(e.Unknown) > 0 {
		return []error{ErrInvalidOptions}
	}
	if e.Err != nil {
		return []error{ErrInvalidOptionValue, e.Err}
	}
	return []error{ErrInvalidOptionValue}
}

// UnknownPatternError is returned when a regexPattern option names a preset
// that does not exist.
type UnknownPatternError struct {
	Name string
}

func (e *UnknownPatternError) Error() string {
	return fmt.Sprintf("the regex pattern '%s' is not available in the predefined patterns", e.Name)
}

func (e *UnknownPatternError) Unwrap() error {
	return ErrUnknownPattern
}

// IsConfigurationError reports whether err came from a bad option set
// rather than from the validated value.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidOptions) ||
		errors.Is(err, ErrInvalidOptionValue) ||
		errors.Is(err, ErrUnknownPattern)
}
