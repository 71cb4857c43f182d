//go:build voxdebug

package grid

// debugChecks enables per-axis coordinate assertions on checked accessors.
const debugChecks = true
