package types

import (
	"context"

	"github.com/vidnavigator/vidnavigator-go/internal/uploadqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor accepts background jobs keyed for per-key FIFO ordering. The
// async upload path depends on this instead of the concrete executor so
// tests can substitute their own.
type Executor interface {
	Submit(ctx context.Context, key string, job uploadqueue.Job) error
}
