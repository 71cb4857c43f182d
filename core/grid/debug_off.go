//go:build !voxdebug

package grid

// debugChecks enables per-axis coordinate assertions on checked accessors.
// Build with -tags voxdebug to turn them on.
const debugChecks = false
