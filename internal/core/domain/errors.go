package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a rejected candidate. Nothing is mutated when it
	// is returned.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidSort is returned for an unknown sort field or direction.
	ErrInvalidSort = errors.New("invalid sort")
)

// ValidationError names the candidate field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
