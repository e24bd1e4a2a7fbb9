package errors

import "fmt"

// ClassifyStatus maps an HTTP status code to a retry category. Client errors
// are permanent except 408 and 429; server errors and anything unexpected
// are treated as transient.
func ClassifyStatus(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError wraps an API failure with its status-derived category.
// underlying carries the detailed error shown to callers.
func NewHTTPError(statusCode int, body string, underlying error) *ClassifiedError {
	return &ClassifiedError{
		Category:   ClassifyStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: underlying,
	}
}

// NewNetworkError wraps a transport-level failure. These are always
// recoverable since the fault may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: network error: %w", operation, err),
	}
}
