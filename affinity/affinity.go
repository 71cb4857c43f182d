// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import (
	"fmt"

	"github.com/momentics/voxkit/api"
)

// ErrNotSupported is returned where thread pinning is unavailable.
var ErrNotSupported = fmt.Errorf("affinity: %w", api.ErrNotSupported)

// SetAffinity pins the calling OS thread to the given logical CPU.
// The caller must hold the thread with runtime.LockOSThread for the pin to
// stay attached to the goroutine.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: %w: cpu %d", api.ErrInvalidArgument, cpuID)
	}
	return setAffinityPlatform(cpuID)
}

// AllowedCPUs lists the logical CPUs the process may run on, in ascending order.
func AllowedCPUs() ([]int, error) {
	return allowedCPUsPlatform()
}

// CPUFor maps a worker index onto the allowed CPU set round-robin.
func CPUFor(worker int, cpus []int) int {
	if len(cpus) == 0 {
		return worker
	}
	return cpus[worker%len(cpus)]
}
