// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that own goroutines or OS
// threads and must be torn down explicitly.
type GracefulShutdown interface {
	// Close stops the component and waits for its goroutines. Repeated
	// calls return nil.
	Close() error
}
