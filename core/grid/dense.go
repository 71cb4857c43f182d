// File: core/grid/dense.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Dense is a flat row-major 3D array. The element order of Data matches the
// layout GPU-side buffers expect: x + y*X + z*X*Y.

package grid

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrSizeMismatch reports backing data whose length differs from the
// dimension product.
var ErrSizeMismatch = errors.New("grid: data length does not match dimensions")

// Dense is a 3D array over a dimension provider D.
//
// Checked accessors assert coordinates only in voxdebug builds; out-of-range
// coordinates that still map inside the backing slice silently alias another
// cell in release builds. Dense is NOT safe for concurrent writes to the same
// cell; disjoint cells may be written from different goroutines.
type Dense[T any, D Dims] struct {
	data []T
	dims D
	l    layout
}

// NewFilled creates a grid with every cell set to value.
func NewFilled[T any, D Dims](dims D, value T) *Dense[T, D] {
	g := NewDefault[T](dims)
	g.Fill(value)
	return g
}

// NewDefault creates a grid of zero values.
func NewDefault[T any, D Dims](dims D) *Dense[T, D] {
	l := newLayout(dims)
	return &Dense[T, D]{data: make([]T, l.total()), dims: dims, l: l}
}

// NewFromFunc creates a grid calling gen once per cell, in index order.
func NewFromFunc[T any, D Dims](dims D, gen func() T) *Dense[T, D] {
	g := NewDefault[T](dims)
	for i := range g.data {
		g.data[i] = gen()
	}
	return g
}

// FromSlice wraps data, which must hold exactly TotalLen(dims) elements.
// The grid takes ownership of data.
func FromSlice[T any, D Dims](dims D, data []T) (*Dense[T, D], error) {
	if err := ValidateDims(dims); err != nil {
		return nil, err
	}
	if want := TotalLen(dims); len(data) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(data), want)
	}
	return &Dense[T, D]{data: data, dims: dims, l: newLayout(dims)}, nil
}

// Dims returns the dimension provider.
func (g *Dense[T, D]) Dims() D { return g.dims }

// Dimensions returns the extents as (X, Y, Z).
func (g *Dense[T, D]) Dimensions() (x, y, z int) { return g.l.nx, g.l.ny, g.l.nz }

// Len returns the number of cells.
func (g *Dense[T, D]) Len() int { return len(g.data) }

// Index returns the linear index of (x, y, z).
func (g *Dense[T, D]) Index(x, y, z int) int { return g.l.checked(x, y, z) }

// Contains reports whether (x, y, z) lies inside the grid.
func (g *Dense[T, D]) Contains(x, y, z int) bool { return g.l.contains(x, y, z) }

// Get returns the cell at (x, y, z).
func (g *Dense[T, D]) Get(x, y, z int) T { return g.data[g.l.checked(x, y, z)] }

// GetPtr returns a pointer to the cell at (x, y, z).
func (g *Dense[T, D]) GetPtr(x, y, z int) *T { return &g.data[g.l.checked(x, y, z)] }

// Set stores value at (x, y, z).
func (g *Dense[T, D]) Set(x, y, z int, value T) { g.data[g.l.checked(x, y, z)] = value }

// GetUnchecked returns the cell at (x, y, z) without coordinate checks.
// The caller guarantees x < X, y < Y and z < Z.
func (g *Dense[T, D]) GetUnchecked(x, y, z int) T { return g.data[g.l.linear(x, y, z)] }

// GetUncheckedPtr is GetPtr without coordinate checks.
func (g *Dense[T, D]) GetUncheckedPtr(x, y, z int) *T { return &g.data[g.l.linear(x, y, z)] }

// SetUnchecked is Set without coordinate checks.
func (g *Dense[T, D]) SetUnchecked(x, y, z int, value T) { g.data[g.l.linear(x, y, z)] = value }

// Fill sets every cell to value.
func (g *Dense[T, D]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

// CopyFrom copies every cell of other, which must have the same extents.
func (g *Dense[T, D]) CopyFrom(other *Dense[T, D]) error {
	if g.l != other.l {
		return fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d", ErrSizeMismatch,
			g.l.nx, g.l.ny, g.l.nz, other.l.nx, other.l.ny, other.l.nz)
	}
	copy(g.data, other.data)
	return nil
}

// Data returns the row-major backing slice. It aliases the grid.
func (g *Dense[T, D]) Data() []T { return g.data }

// All yields every cell with its coordinate in index order.
func (g *Dense[T, D]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.data {
			if !yield(g.l.coord(i), v) {
				return
			}
		}
	}
}

// String renders the grid slice by slice, one row of X values per line.
func (g *Dense[T, D]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dense [%d x %d x %d]:\n", g.l.nx, g.l.ny, g.l.nz)
	for z := 0; z < g.l.nz; z++ {
		for y := 0; y < g.l.ny; y++ {
			b.WriteString("[ ")
			for x := 0; x < g.l.nx; x++ {
				fmt.Fprintf(&b, "%v ", g.data[g.l.linear(x, y, z)])
			}
			b.WriteString("]\n")
		}
	}
	return b.String()
}

// View reads a Dense grid through a conversion from T to U.
// It borrows the grid and owns no storage.
type View[T, U any, D Dims] struct {
	grid *Dense[T, D]
	to   func(T) U
}

// NewView creates a read-only converting view of g.
func NewView[T, U any, D Dims](g *Dense[T, D], to func(T) U) View[T, U, D] {
	return View[T, U, D]{grid: g, to: to}
}

// Get returns the converted cell at (x, y, z).
func (v View[T, U, D]) Get(x, y, z int) U { return v.to(v.grid.Get(x, y, z)) }

// At is Get addressed by Coord.
func (v View[T, U, D]) At(c Coord) U { return v.Get(c.X, c.Y, c.Z) }

// ViewMut reads and writes a Dense grid through a pair of conversions.
type ViewMut[T, U any, D Dims] struct {
	View[T, U, D]
	from func(U) T
}

// NewViewMut creates a read-write converting view of g.
func NewViewMut[T, U any, D Dims](g *Dense[T, D], to func(T) U, from func(U) T) ViewMut[T, U, D] {
	return ViewMut[T, U, D]{View: NewView(g, to), from: from}
}

// Set converts value back to T and stores it at (x, y, z).
func (v ViewMut[T, U, D]) Set(x, y, z int, value U) { v.grid.Set(x, y, z, v.from(value)) }
