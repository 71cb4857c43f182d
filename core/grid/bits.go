// File: core/grid/bits.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bits packs one boolean per cell into unsigned words, using the same
// row-major addressing as Dense. Bit b of word w holds cell w*BITS+b.

package grid

import (
	"fmt"
	"math/bits"
)

// Word is the storage unit of a bit grid.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Bits is a boolean 3D array packed into words of type W.
//
// Checked Get and Set verify each axis: in release builds an out-of-range
// read returns false and an out-of-range write is dropped; voxdebug builds
// panic instead. The unchecked variants skip the guard.
type Bits[W Word, D Dims] struct {
	words []W
	dims  D
	l     layout
	width int
}

// wordBits returns the bit width of W.
func wordBits[W Word]() int {
	var zero W
	return bits.OnesCount64(uint64(^zero))
}

// NewBits creates a bit grid with every cell false.
func NewBits[W Word, D Dims](dims D) *Bits[W, D] {
	l := newLayout(dims)
	width := wordBits[W]()
	return &Bits[W, D]{
		words: make([]W, (l.total()+width-1)/width),
		dims:  dims,
		l:     l,
		width: width,
	}
}

// NewBitsFilled creates a bit grid with every cell set to value.
func NewBitsFilled[W Word, D Dims](dims D, value bool) *Bits[W, D] {
	b := NewBits[W](dims)
	b.Fill(value)
	return b
}

// Dims returns the dimension provider.
func (b *Bits[W, D]) Dims() D { return b.dims }

// Dimensions returns the extents as (X, Y, Z).
func (b *Bits[W, D]) Dimensions() (x, y, z int) { return b.l.nx, b.l.ny, b.l.nz }

// BitsPerWord returns the bit width of W.
func (b *Bits[W, D]) BitsPerWord() int { return b.width }

// WordCount returns ceil(X*Y*Z / BitsPerWord).
func (b *Bits[W, D]) WordCount() int { return len(b.words) }

// Words returns the backing words. The slice aliases the grid.
func (b *Bits[W, D]) Words() []W { return b.words }

// Index returns the linear bit position of (x, y, z).
func (b *Bits[W, D]) Index(x, y, z int) int { return b.l.linear(x, y, z) }

// Contains reports whether (x, y, z) lies inside the grid.
func (b *Bits[W, D]) Contains(x, y, z int) bool { return b.l.contains(x, y, z) }

func (b *Bits[W, D]) outOfRange(x, y, z int) {
	if debugChecks {
		panic(fmt.Sprintf("grid: bit (%d, %d, %d) out of range %dx%dx%d", x, y, z, b.l.nx, b.l.ny, b.l.nz))
	}
}

// Get returns the bit at (x, y, z), or false when it lies outside the grid.
func (b *Bits[W, D]) Get(x, y, z int) bool {
	if !b.l.contains(x, y, z) {
		b.outOfRange(x, y, z)
		return false
	}
	return b.GetUnchecked(x, y, z)
}

// Set stores value at (x, y, z). Writes outside the grid are dropped.
func (b *Bits[W, D]) Set(x, y, z int, value bool) {
	if !b.l.contains(x, y, z) {
		b.outOfRange(x, y, z)
		return
	}
	b.SetUnchecked(x, y, z, value)
}

// GetUnchecked returns the bit at (x, y, z) without the range guard.
func (b *Bits[W, D]) GetUnchecked(x, y, z int) bool {
	pos := b.l.linear(x, y, z)
	return b.words[pos/b.width]>>uint(pos%b.width)&1 != 0
}

// SetUnchecked stores value at (x, y, z) without the range guard.
func (b *Bits[W, D]) SetUnchecked(x, y, z int, value bool) {
	pos := b.l.linear(x, y, z)
	mask := W(1) << uint(pos%b.width)
	if value {
		b.words[pos/b.width] |= mask
	} else {
		b.words[pos/b.width] &^= mask
	}
}

// Fill sets every word to all ones or all zeros. Padding bits past the last
// cell follow the fill value.
func (b *Bits[W, D]) Fill(value bool) {
	var w W
	if value {
		w = ^w
	}
	for i := range b.words {
		b.words[i] = w
	}
}

// Count returns the number of cells set to true.
func (b *Bits[W, D]) Count() int {
	n := 0
	total := b.l.total()
	for i, w := range b.words {
		v := uint64(w)
		if tail := total - i*b.width; tail < b.width {
			v &= 1<<uint(tail) - 1
		}
		n += bits.OnesCount64(v)
	}
	return n
}
