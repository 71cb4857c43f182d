// File: core/grid/dims.go
// Package grid implements dense and bit-packed 3D containers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dimension providers come in two flavors with one contract: RuntimeDims keeps
// the extents in a value, ConstDims encodes them in its type arguments so the
// extents are fixed when the program is compiled.

package grid

import (
	"errors"
	"fmt"

	"github.com/momentics/voxkit/api"
)

// Dims is the dimension provider contract shared by Dense and Bits.
type Dims = api.Dims

// ErrInvalidDims reports a negative extent.
var ErrInvalidDims = errors.New("grid: invalid dimensions")

// TotalLen returns X*Y*Z.
func TotalLen(d Dims) int {
	return d.X() * d.Y() * d.Z()
}

// ValidateDims reports whether every extent of d is non-negative.
func ValidateDims(d Dims) error {
	if d.X() < 0 || d.Y() < 0 || d.Z() < 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidDims, d.X(), d.Y(), d.Z())
	}
	return nil
}

// RuntimeDims holds extents chosen at run time: {X, Y, Z}.
type RuntimeDims [3]int

// NewRuntimeDims validates and packs the extents.
func NewRuntimeDims(x, y, z int) (RuntimeDims, error) {
	d := RuntimeDims{x, y, z}
	if err := ValidateDims(d); err != nil {
		return RuntimeDims{}, err
	}
	return d, nil
}

func (d RuntimeDims) X() int { return d[0] }
func (d RuntimeDims) Y() int { return d[1] }
func (d RuntimeDims) Z() int { return d[2] }

// Extent is a zero-size type naming one compile-time axis length.
type Extent interface {
	Len() int
}

// Predefined extents. Any other zero-size type implementing Extent works too.
type (
	E1   struct{}
	E2   struct{}
	E3   struct{}
	E4   struct{}
	E8   struct{}
	E16  struct{}
	E32  struct{}
	E64  struct{}
	E128 struct{}
	E256 struct{}
	E512 struct{}
)

func (E1) Len() int   { return 1 }
func (E2) Len() int   { return 2 }
func (E3) Len() int   { return 3 }
func (E4) Len() int   { return 4 }
func (E8) Len() int   { return 8 }
func (E16) Len() int  { return 16 }
func (E32) Len() int  { return 32 }
func (E64) Len() int  { return 64 }
func (E128) Len() int { return 128 }
func (E256) Len() int { return 256 }
func (E512) Len() int { return 512 }

// ConstDims fixes its extents in the type, e.g. ConstDims[E32, E32, E32].
type ConstDims[EX, EY, EZ Extent] struct{}

func (ConstDims[EX, EY, EZ]) X() int {
	var e EX
	return e.Len()
}

func (ConstDims[EX, EY, EZ]) Y() int {
	var e EY
	return e.Len()
}

func (ConstDims[EX, EY, EZ]) Z() int {
	var e EZ
	return e.Len()
}

// Coord is a cell position.
type Coord struct {
	X, Y, Z int
}

// layout caches the strides of a dimension provider so that addressing does
// not go through the Dims methods on every access.
type layout struct {
	nx, ny, nz int
	strideZ    int
}

func newLayout(d Dims) layout {
	if err := ValidateDims(d); err != nil {
		panic(err)
	}
	return layout{nx: d.X(), ny: d.Y(), nz: d.Z(), strideZ: d.X() * d.Y()}
}

func (l layout) total() int { return l.strideZ * l.nz }

func (l layout) contains(x, y, z int) bool {
	return uint(x) < uint(l.nx) && uint(y) < uint(l.ny) && uint(z) < uint(l.nz)
}

// linear returns x + y*X + z*X*Y without any check.
func (l layout) linear(x, y, z int) int {
	return x + y*l.nx + z*l.strideZ
}

// checked is linear with the debug-build coordinate assertion.
func (l layout) checked(x, y, z int) int {
	if debugChecks && !l.contains(x, y, z) {
		panic(fmt.Sprintf("grid: (%d, %d, %d) out of range %dx%dx%d", x, y, z, l.nx, l.ny, l.nz))
	}
	return l.linear(x, y, z)
}

func (l layout) coord(i int) Coord {
	return Coord{X: i % l.nx, Y: (i / l.nx) % l.ny, Z: i / l.strideZ}
}
