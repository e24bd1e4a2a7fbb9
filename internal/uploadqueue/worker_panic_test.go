package uploadqueue

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// A panicking job kills its own worker; other shards keep processing.
func TestShardExecutor_WorkerPanicIsolation(t *testing.T) {
	t.Parallel()
	p := NewShardExecutor(Config{Shards: 4, QueueSize: 8, MaxAttempts: 1, BaseBackoff: time.Millisecond})
	defer p.Stop()

	// Find two keys that land on different shards.
	panicKey := "panic-0.mp4"
	otherKey := ""
	for i := 0; i < 64; i++ {
		k := fmt.Sprintf("healthy-%d.mp4", i)
		if p.shardFor(k) != p.shardFor(panicKey) {
			otherKey = k
			break
		}
	}
	if otherKey == "" {
		t.Fatal("could not find key on a different shard")
	}

	_ = p.Submit(context.Background(), panicKey, JobFunc(func(ctx context.Context) error {
		panic("job blew up")
	}))

	done := make(chan struct{})
	_ = p.Submit(context.Background(), otherKey, JobFunc(func(ctx context.Context) error {
		close(done)
		return nil
	}))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("healthy shard stopped processing after sibling panic")
	}
}
