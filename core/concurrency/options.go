// File: core/concurrency/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for SpinPool.

package concurrency

import "runtime"

// DefaultSpinBudget is the number of empty polls before a spinning goroutine
// yields its P with runtime.Gosched.
const DefaultSpinBudget = 4096

type poolConfig struct {
	workers    int
	pin        bool
	spinBudget int
}

func defaultPoolConfig() poolConfig {
	return poolConfig{
		workers:    DefaultWorkers(),
		spinBudget: DefaultSpinBudget,
	}
}

// Option configures a SpinPool.
type Option func(*poolConfig)

// DefaultWorkers returns max(1, GOMAXPROCS-1), leaving one P for the caller.
func DefaultWorkers() int {
	return max(1, runtime.GOMAXPROCS(0)-1)
}

// WithWorkers sets the worker count. Values below 1 keep the default.
func WithWorkers(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithPinning pins worker i to the i-th allowed CPU, round-robin.
func WithPinning(enabled bool) Option {
	return func(c *poolConfig) {
		c.pin = enabled
	}
}

// WithSpinBudget sets the polls between yields. Values below 1 keep the default.
func WithSpinBudget(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.spinBudget = n
		}
	}
}
