//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows-specific metrics/debug introspection points.

package control

import (
	"golang.org/x/sys/windows"
)

// RegisterPlatformProbes sets Windows-specific debug probes.
func RegisterPlatformProbes(dp *DebugProbes) {
	registerRuntimeProbes(dp)
	dp.RegisterProbe("platform.windows_version", func() any {
		v := windows.RtlGetVersion()
		return []uint32{v.MajorVersion, v.MinorVersion, v.BuildNumber}
	})
}
