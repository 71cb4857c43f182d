// control/platform.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import "runtime"

// registerRuntimeProbes adds the probes every platform shares.
func registerRuntimeProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.gomaxprocs", func() any {
		return runtime.GOMAXPROCS(0)
	})
	dp.RegisterProbe("platform.os", func() any {
		return runtime.GOOS + "/" + runtime.GOARCH
	})
}
