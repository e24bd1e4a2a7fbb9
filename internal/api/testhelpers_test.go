package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/vidnavigator/vidnavigator-go/internal/uploadqueue"
)

// testCaller points a Caller at an httptest server. Retries stay off
// unless a test opts in.
func testCaller(srv *httptest.Server) Caller {
	return Caller{HTTP: srv.Client(), BaseURL: srv.URL}
}

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// mockExec records submitted keys and runs jobs inline.
type mockExec struct {
	mu    sync.Mutex
	n     int
	calls []string
}

func (m *mockExec) Submit(ctx context.Context, key string, job uploadqueue.Job) error {
	m.mu.Lock()
	m.n++
	m.calls = append(m.calls, key)
	m.mu.Unlock()
	return job.Run(ctx)
}

// failingExec implements types.Executor and always fails Submit.
type failingExec struct{}

func (f *failingExec) Submit(ctx context.Context, key string, job uploadqueue.Job) error {
	return fmt.Errorf("submit failed")
}
