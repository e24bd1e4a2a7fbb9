package vidnavigator

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vidnavigator/vidnavigator-go/internal/job"
)

func TestAwaitUploads(t *testing.T) {
	c, err := New("test-api-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	path := "/videos/daily-standup.mp4"
	var ranFirst int32

	// enqueue a dummy job then barrier
	if err := c.exec.Submit(context.Background(), path, job.New(func(ctx context.Context) error {
		time.Sleep(30 * time.Millisecond)
		atomic.StoreInt32(&ranFirst, 1)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	start := time.Now()
	if err := c.AwaitUploads(ctx, path); err != nil {
		t.Fatalf("await uploads: %v", err)
	}
	elapsed := time.Since(start)

	if atomic.LoadInt32(&ranFirst) == 0 {
		t.Fatalf("barrier returned before previous job executed")
	}

	if elapsed < 25*time.Millisecond {
		t.Fatalf("AwaitUploads returned too quickly: %v", elapsed)
	}
}

func TestAwaitUploads_CtxCanceled(t *testing.T) {
	c, err := New("test-api-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.AwaitUploads(ctx, "/videos/x.mp4"); err == nil {
		t.Fatal("expected context error")
	}
}
