package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilJobFunc is returned when a nil closure is run.
var ErrNilJobFunc = errors.New("nil JobFunc")

// jobFunc lets plain closures travel through the upload executor.
type jobFunc func(context.Context) error

func (f jobFunc) Run(ctx context.Context) error {
	if f == nil {
		return fmt.Errorf("jobfunc: %w", ErrNilJobFunc)
	}
	return f(ctx)
}

// New wraps a closure as a job the upload executor accepts.
func New(fn func(context.Context) error) jobFunc {
	return jobFunc(fn)
}
