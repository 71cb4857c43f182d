//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux-specific platform metrics or debug probe integrations.

package control

import (
	"github.com/momentics/voxkit/affinity"
)

// RegisterPlatformProbes sets Linux-specific debug metrics.
func RegisterPlatformProbes(dp *DebugProbes) {
	registerRuntimeProbes(dp)
	dp.RegisterProbe("platform.allowed_cpus", func() any {
		cpus, err := affinity.AllowedCPUs()
		if err != nil {
			return err.Error()
		}
		return cpus
	})
}
