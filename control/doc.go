// Package control
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Run configuration, runtime metrics and debug introspection for voxkit
// programs.
//
// Provides concurrent-safe state handling primitives including:
//   - Typed configuration with defaults and validation
//   - Metrics registry with snapshot reads
//   - Debug probe registration and state export
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
