package config

import (
	"fmt"
	"time"
)

type InvalidYAMLError struct {
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf(".vtag.yml is not a valid yaml document: %v", e.Wrapped)
}

type InvalidDurationError struct {
	Wrapped error
	Value   string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf(
		".vtag.yml property timeout has invalid duration '%s': %v",
		e.Value,
		e.Wrapped,
	)
}

type InvalidTimeoutError struct {
	Value time.Duration
}

func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf(".vtag.yml property timeout must not be negative: %s", e.Value)
}
