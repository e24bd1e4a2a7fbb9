package types

import (
	"errors"
	"fmt"
)

// ------------------------------
// Shared Errors
// ------------------------------

// Sentinel errors surfaced by every operation. Match with errors.Is; the
// root package re-exports them.
var (
	// ErrValidation marks input rejected before any HTTP request was made.
	ErrValidation = errors.New("invalid input")

	// ErrConnection marks a transport-level failure (DNS, dial, timeout).
	ErrConnection = errors.New("connection failed")

	// ErrClientClosed is returned by every operation after Close.
	ErrClientClosed = errors.New("client is closed")

	// HTTP status mappings.
	ErrBadRequest      = errors.New("bad request")               // 400
	ErrAuthentication  = errors.New("authentication failed")     // 401, missing key
	ErrPaymentRequired = errors.New("payment or quota required") // 402
	ErrAccessDenied    = errors.New("access denied")             // 403
	ErrNotFound        = errors.New("resource not found")        // 404
	ErrRateLimited     = errors.New("rate limit exceeded")       // 429
	ErrServer          = errors.New("server error")              // 5xx
)

// ErrorEnvelope is the body the API sends with non-2xx responses.
type ErrorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// APIError is a non-2xx response decoded into a catchable error. It
// unwraps to the sentinel matching its status code, so both
// errors.Is(err, ErrNotFound) and errors.As(err, *APIError) work.
type APIError struct {
	StatusCode int
	Status     string // envelope status field, usually "error"
	Message    string // envelope message, or raw body when not JSON
	RequestID  string // X-Request-ID sent with the request, for support
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("vidnavigator: HTTP %d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("vidnavigator: HTTP %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel for the status code, or nil for codes with
// no narrower mapping.
func (e *APIError) Unwrap() error {
	return sentinelFor(e.StatusCode)
}

func sentinelFor(code int) error {
	switch {
	case code == 400:
		return ErrBadRequest
	case code == 401:
		return ErrAuthentication
	case code == 402:
		return ErrPaymentRequired
	case code == 403:
		return ErrAccessDenied
	case code == 404:
		return ErrNotFound
	case code == 429:
		return ErrRateLimited
	case code >= 500:
		return ErrServer
	default:
		return nil
	}
}
