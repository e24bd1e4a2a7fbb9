package vidnavigator

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithBaseURL(t *testing.T) {
	c := &Client{}
	if err := WithBaseURL("https://staging.vidnavigator.com/v1/")(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.baseURL != "https://staging.vidnavigator.com/v1" {
		t.Fatalf("trailing slash not trimmed: %q", c.baseURL)
	}
	if err := WithBaseURL("  ")(c); err == nil {
		t.Fatal("expected error for blank base URL")
	}
}

func TestWithHTTPTimeout(t *testing.T) {
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestWithMaxRetries(t *testing.T) {
	c := &Client{}
	if err := WithMaxRetries(0)(c); err != nil {
		t.Fatalf("zero retries should be allowed: %v", err)
	}
	if err := WithMaxRetries(-1)(c); err == nil {
		t.Fatal("expected error for negative retries")
	}
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// debug logging wraps transport; requests still reach the base
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New("test-api-key",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithHTTPTimeout(2*time.Second),
		WithDebugLogging(true),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}
