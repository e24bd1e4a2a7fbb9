package uploadqueue

import (
	"errors"
	"fmt"
)

// ErrExecutorClosed is returned by Submit after Stop has been called.
var ErrExecutorClosed = errors.New("uploadqueue: executor closed")

// ErrQueueFull is the sentinel matched by errors.Is for *QueueFullError.
var ErrQueueFull = errors.New("uploadqueue: shard queue full")

// QueueFullError reports that a shard queue stayed full for the whole
// enqueue timeout. It carries the shard snapshot for diagnostics.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("uploadqueue: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Is lets errors.Is(err, ErrQueueFull) match regardless of the snapshot.
func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
