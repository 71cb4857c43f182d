// File: api/grid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dimension provider contract for 3D containers.

package api

// Dims exposes the extents of a 3D container. Cells are addressed row-major
// with X varying fastest: index = x + y*X + z*X*Y.
type Dims interface {
	X() int
	Y() int
	Z() int
}
