package vidnavigator_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	vidnavigator "github.com/vidnavigator/vidnavigator-go"
)

// newMockClient wires a client to an httptest server and closes both when
// the test finishes.
func newMockClient(t *testing.T, handler http.Handler) *vidnavigator.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := vidnavigator.New("test-api-key", vidnavigator.WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}
