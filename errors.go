package vidnavigator

import (
	"errors"

	"github.com/vidnavigator/vidnavigator-go/internal/types"
	"github.com/vidnavigator/vidnavigator-go/internal/uploadqueue"
)

// Re-export shared SDK errors so callers compare against single symbols
// with errors.Is.
var (
	// ErrValidation marks input rejected locally, before any HTTP request.
	ErrValidation = types.ErrValidation

	// ErrConnection marks a transport-level failure (DNS, dial, timeout).
	ErrConnection = types.ErrConnection

	// ErrClientClosed is returned by every operation after Close.
	ErrClientClosed = types.ErrClientClosed

	// API status mappings.
	ErrBadRequest      = types.ErrBadRequest      // 400
	ErrAuthentication  = types.ErrAuthentication  // 401, or missing key
	ErrPaymentRequired = types.ErrPaymentRequired // 402
	ErrAccessDenied    = types.ErrAccessDenied    // 403
	ErrNotFound        = types.ErrNotFound        // 404
	ErrRateLimited     = types.ErrRateLimited     // 429
	ErrServer          = types.ErrServer          // 5xx
)

// ErrBackPressure is returned by EnqueueUpload when the upload queue for
// the path's shard is full.
var ErrBackPressure = uploadqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// APIError carries the decoded error envelope of a non-2xx response.
// errors.As(err, *(*APIError)) exposes the status code, message and the
// request ID to quote in support tickets.
type APIError = types.APIError
