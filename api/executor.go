// Package api
// Author: momentics
//
// Dispatcher contract for synchronous SPMD fan-out.

package api

// Dispatcher runs one task body on a subset of workers and returns after
// every armed worker has finished.
type Dispatcher interface {
	// Dispatch invokes task once for each worker index in [0, count).
	Dispatch(count int, task func(worker int)) error

	// UsedThreadCount returns the number of workers owned by the dispatcher.
	UsedThreadCount() int
}
