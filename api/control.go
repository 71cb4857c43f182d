// File: api/control.go
// Package api defines the Metrics contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Metrics is a concurrent-safe named metric sink.
type Metrics interface {
	// Set stores value under key.
	Set(key string, value any)
	// Add increments the int64 counter under key and returns the new value.
	Add(key string, delta int64) int64
	// GetSnapshot returns a copy of every metric.
	GetSnapshot() map[string]any
}
