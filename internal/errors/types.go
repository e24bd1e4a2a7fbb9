// Package errors classifies failures so retry policies can tell transient
// faults from permanent ones.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Category drives retry behaviour.
type Category int

const (
	// Recoverable failures may succeed on a later attempt: 5xx responses,
	// rate limiting, network timeouts.
	Recoverable Category = iota

	// Irrecoverable failures will keep failing no matter how often they are
	// retried: authentication problems, malformed requests, missing
	// resources.
	Irrecoverable
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError attaches a Category to an error so callers up the stack
// can pick a retry policy without re-inspecting status codes.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // 0 for non-HTTP failures
	Body       string // response body, kept for debugging
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err should not be retried. Unclassified
// errors count as recoverable so unknown failures still get retried.
func IsIrrecoverable(err error) bool {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Category == Irrecoverable
	}
	return false
}
