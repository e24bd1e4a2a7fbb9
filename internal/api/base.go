// Package api implements one free function per VidNavigator endpoint.
// Endpoint files validate inputs and describe the call; the shared core
// here owns request building, retries, error mapping and metrics.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	sdkerrors "github.com/vidnavigator/vidnavigator-go/internal/errors"
	"github.com/vidnavigator/vidnavigator-go/internal/types"
)

// Caller bundles what every endpoint call needs. The zero MaxRetries
// disables retries; N allows N extra attempts after the first.
type Caller struct {
	HTTP       *http.Client
	BaseURL    string
	MaxRetries int
}

// maxErrorBody bounds how much of an error response we keep for messages.
const maxErrorBody = 1 << 20

// getJSON issues a GET and decodes the enveloped reply into out.
func getJSON(ctx context.Context, c Caller, op, path string, query url.Values, out any) error {
	return doRequest(ctx, c, op, http.MethodGet, path, query, nil, "", out)
}

// postJSON issues a POST with a JSON body and decodes the reply into out.
func postJSON(ctx context.Context, c Caller, op, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", op, err)
	}
	return doRequest(ctx, c, op, http.MethodPost, path, nil, body, "application/json", out)
}

// postEmpty issues a bodyless POST (retry, cancel) and decodes into out.
func postEmpty(ctx context.Context, c Caller, op, path string, out any) error {
	return doRequest(ctx, c, op, http.MethodPost, path, nil, nil, "", out)
}

// deleteJSON issues a DELETE and decodes the reply into out.
func deleteJSON(ctx context.Context, c Caller, op, path string, out any) error {
	return doRequest(ctx, c, op, http.MethodDelete, path, nil, nil, "", out)
}

// doRequest runs one call with retries. The request is rebuilt for every
// attempt so JSON bodies rewind cleanly; recoverable failures back off
// exponentially until the retry budget or ctx runs out.
func doRequest(ctx context.Context, c Caller, op, method, path string, query url.Values, body []byte, contentType string, out any) error {
	attempt := func() error {
		req, err := newRequest(ctx, c, method, path, query, body, contentType)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("%s: build request: %w", op, err))
		}

		start := time.Now()
		resp, err := c.HTTP.Do(req)
		requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return backoff.Permanent(cerr)
			}
			requestsTotal.WithLabelValues(op, "error").Inc()
			return sdkerrors.NewNetworkError(op, fmt.Errorf("%w: %v", types.ErrConnection, err))
		}

		err = handleResponse(op, resp, out)
		if err != nil && sdkerrors.IsIrrecoverable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(error, time.Duration) {
		requestRetries.WithLabelValues(op).Inc()
	}
	return backoff.RetryNotify(attempt, retryPolicy(ctx, c.MaxRetries), notify)
}

// handleResponse maps the status code, counts the attempt and decodes a
// successful body into out (out may be nil for discarded payloads).
func handleResponse(op string, resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	requestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return sdkerrors.NewHTTPError(resp.StatusCode, string(raw), parseAPIError(resp, raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// A 2xx with an undecodable body will not improve on retry.
		return &sdkerrors.ClassifiedError{
			Category:   sdkerrors.Irrecoverable,
			Underlying: fmt.Errorf("%s: decode response: %w", op, err),
		}
	}
	return nil
}

// parseAPIError turns a non-2xx reply into an APIError. The API sends
// {"status": "error", "message": ...}; anything else degrades to the raw
// body, then to the standard status text.
func parseAPIError(resp *http.Response, raw []byte) *types.APIError {
	status := "error"
	message := strings.TrimSpace(string(raw))

	var env types.ErrorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		message = env.Message
		if env.Status != "" {
			status = env.Status
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	requestID := ""
	if resp.Request != nil {
		requestID = resp.Request.Header.Get("X-Request-ID")
	}

	return &types.APIError{
		StatusCode: resp.StatusCode,
		Status:     status,
		Message:    message,
		RequestID:  requestID,
	}
}

func newRequest(ctx context.Context, c Caller, method, path string, query url.Values, body []byte, contentType string) (*http.Request, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func retryPolicy(ctx context.Context, maxRetries int) backoff.BackOffContext {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 250 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = 0 // the attempt budget bounds retries, not wall time
	if maxRetries < 0 {
		maxRetries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(maxRetries)), ctx)
}
