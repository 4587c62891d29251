package store

import (
	"context"
	"sync/atomic"
)

// Task is a running action started with Store.Start
type Task struct {
	cancel    context.CancelFunc
	cancelled atomic.Bool
	done      chan struct{}
	err       error
}

// Cancel unsubscribes from the action. Signals emitted afterwards are dropped.
func (t *Task) Cancel() {
	t.cancelled.Store(true)
	t.cancel()
}

// Done is closed when the action returns
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the action returns or ctx is done
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
