// File: core/ring/ring.go
// Package ring implements a fixed-length circular container with a cursor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring cycles N generations of a resource. The owner calls MoveNext once per
// frame; Current is the copy being recorded and Previous the copy the prior
// frame used. Absolute indexing wraps modulo the length and ignores the cursor.

package ring

import (
	"errors"
	"fmt"
	"iter"

	"github.com/momentics/voxkit/api"
)

// Ensure compile-time interface compliance.
var _ api.FrameRing[any] = (*Ring[any])(nil)

// ErrZeroLength is returned when a ring would be created or resized to hold
// no elements.
var ErrZeroLength = errors.New("ring: length must be at least 1")

// Ring is a fixed-length circular sequence with a movable cursor.
// Len is always at least 1.
//
// Ring is NOT safe for concurrent use.
type Ring[T any] struct {
	data   []T
	cursor int
}

func checkLen(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrZeroLength, n)
	}
	return nil
}

// New creates a ring of n zero values.
func New[T any](n int) (*Ring[T], error) {
	if err := checkLen(n); err != nil {
		return nil, err
	}
	return &Ring[T]{data: make([]T, n)}, nil
}

// NewFilled creates a ring of n copies of value. Copies are shallow.
func NewFilled[T any](n int, value T) (*Ring[T], error) {
	r, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := range r.data {
		r.data[i] = value
	}
	return r, nil
}

// NewWith creates a ring whose element i is gen(i).
func NewWith[T any](n int, gen func(i int) T) (*Ring[T], error) {
	r, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := range r.data {
		r.data[i] = gen(i)
	}
	return r, nil
}

// FromSlice creates a ring holding a copy of s.
func FromSlice[T any](s []T) (*Ring[T], error) {
	if err := checkLen(len(s)); err != nil {
		return nil, err
	}
	return &Ring[T]{data: append([]T(nil), s...)}, nil
}

// wrap maps any integer onto [0, len).
func (r *Ring[T]) wrap(i int) int {
	n := len(r.data)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Current returns the element at the cursor.
func (r *Ring[T]) Current() T { return r.data[r.cursor] }

// CurrentPtr returns a pointer to the element at the cursor.
func (r *Ring[T]) CurrentPtr() *T { return &r.data[r.cursor] }

// Previous returns the element one step behind the cursor.
func (r *Ring[T]) Previous() T { return r.data[r.wrap(r.cursor-1)] }

// PreviousPtr returns a pointer to the element one step behind the cursor.
func (r *Ring[T]) PreviousPtr() *T { return &r.data[r.wrap(r.cursor-1)] }

// Next returns the element one step ahead of the cursor.
func (r *Ring[T]) Next() T { return r.data[r.wrap(r.cursor+1)] }

// NextPtr returns a pointer to the element one step ahead of the cursor.
func (r *Ring[T]) NextPtr() *T { return &r.data[r.wrap(r.cursor+1)] }

// MoveNext advances the cursor by one, wrapping at the end.
func (r *Ring[T]) MoveNext() {
	r.cursor++
	if r.cursor == len(r.data) {
		r.cursor = 0
	}
}

// MovePrevious moves the cursor back by one, wrapping at the start.
func (r *Ring[T]) MovePrevious() {
	if r.cursor == 0 {
		r.cursor = len(r.data) - 1
		return
	}
	r.cursor--
}

// Get returns the element at absolute index i modulo Len.
func (r *Ring[T]) Get(i int) T { return r.data[r.wrap(i)] }

// GetPtr returns a pointer to the element at absolute index i modulo Len.
func (r *Ring[T]) GetPtr(i int) *T { return &r.data[r.wrap(i)] }

// Set stores v at absolute index i modulo Len.
func (r *Ring[T]) Set(i int, v T) { r.data[r.wrap(i)] = v }

// First returns the element at index 0, regardless of the cursor.
func (r *Ring[T]) First() T { return r.data[0] }

// Cursor returns the cursor position in [0, Len).
func (r *Ring[T]) Cursor() int { return r.cursor }

// ResetCursor moves the cursor back to index 0.
func (r *Ring[T]) ResetCursor() { r.cursor = 0 }

// Len returns the number of elements.
func (r *Ring[T]) Len() int { return len(r.data) }

// AsSlice returns the backing storage in index order. The slice aliases the
// ring until the next Resize.
func (r *Ring[T]) AsSlice() []T { return r.data }

// All yields (index, element) in index order, starting at 0.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range r.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a ring with a shallow copy of the elements and the same cursor.
func (r *Ring[T]) Clone() *Ring[T] {
	return &Ring[T]{data: append([]T(nil), r.data...), cursor: r.cursor}
}

// Resize changes the length to n, filling new slots with zero values.
func (r *Ring[T]) Resize(n int) error {
	return r.ResizeWith(n, func(int) T {
		var zero T
		return zero
	})
}

// ResizeFilled changes the length to n, filling new slots with value.
func (r *Ring[T]) ResizeFilled(n int, value T) error {
	return r.ResizeWith(n, func(int) T { return value })
}

// ResizeWith changes the length to n. The first min(Len, n) elements keep
// their index; slot i of the grown tail is gen(i). A cursor that falls off
// the end is clamped to n-1.
func (r *Ring[T]) ResizeWith(n int, gen func(i int) T) error {
	if err := checkLen(n); err != nil {
		return err
	}
	data := make([]T, n)
	kept := copy(data, r.data)
	for i := kept; i < n; i++ {
		data[i] = gen(i)
	}
	r.data = data
	if r.cursor >= n {
		r.cursor = n - 1
	}
	return nil
}
