package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the store and services. The HTTP boundary is the
// only place these are translated into status codes.
var (
	// ErrNotFound indicates the addressed record, or a referenced foreign
	// record, does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrIDMismatch indicates an update whose addressed id and body id differ.
	ErrIDMismatch = errors.New("identifier in path does not match identifier in body")

	// ErrConcurrentModification indicates a conditioned write lost a race with
	// a concurrent update. It is surfaced to the caller, never retried.
	ErrConcurrentModification = errors.New("record was modified concurrently")
)

// ValidationError reports a single field constraint violation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}
