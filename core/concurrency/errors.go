// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for concurrency module.

package concurrency

import (
	"fmt"

	"github.com/momentics/voxkit/api"
)

var (
	// ErrPoolClosed indicates the pool has been shut down
	ErrPoolClosed = fmt.Errorf("spin pool: %w", api.ErrClosed)

	// ErrDispatchSize indicates a task count outside [0, workers]
	ErrDispatchSize = fmt.Errorf("spin pool: %w: dispatch count", api.ErrInvalidArgument)

	// ErrNilTask indicates Dispatch was given no task body
	ErrNilTask = fmt.Errorf("spin pool: %w: nil task", api.ErrInvalidArgument)
)

// TaskPanicError reports a task body that panicked on a worker.
// The worker recovers, so the round still completes.
type TaskPanicError struct {
	Worker int
	Value  any
	Stack  []byte
}

func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("spin pool: task panicked on worker %d: %v", e.Worker, e.Value)
}

// Unwrap exposes a panic value that was itself an error.
func (e *TaskPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
