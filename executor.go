package vidnavigator

import (
	"context"

	"github.com/vidnavigator/vidnavigator-go/internal/uploadqueue"
)

// executor abstracts the internal async job runner used by upload APIs.
type executor interface {
	Submit(context.Context, string, uploadqueue.Job) error
	Stop()
}

// Note: every client includes an executor by default; async methods require it.
