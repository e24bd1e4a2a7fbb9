package vidnavigator

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the API-key transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath the
// auth wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL overrides the default API base URL, useful for testing and
// staging. A trailing slash is trimmed so path joining stays predictable.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = strings.TrimRight(u, "/")
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time of a single HTTP request
// (connection, TLS handshake, redirects and reading the response). The
// value must be greater than zero. Transcription and analysis calls can
// legitimately run long, so raise it before lowering it.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. to supply a
// proxy or custom TLS configuration. The client's transport still gets
// wrapped with the API-key headers.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = h
		return nil
	}
}

// WithMaxRetries bounds how many extra attempts follow a recoverable
// failure (5xx, 429, network errors). Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) error {
		if n < 0 {
			return fmt.Errorf("max retries must be >= 0")
		}
		c.maxRetries = n
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped to the log when enabled is true.
//
// The debug transport sits beneath the API-key wrapper, and dumps include
// headers and bodies. Keep it away from production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
