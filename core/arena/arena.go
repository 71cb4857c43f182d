// File: core/arena/arena.go
// Package arena implements an index-stable slot allocator.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Arena hands out integer handles into a slot slice and recycles freed slots,
// lowest index first. The free set is an ordered B-tree so that reuse order is
// deterministic and a double insertion is detected immediately.

package arena

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/btree"
)

// ErrCorruptFreeList is the panic value raised when an index reaches the free
// set twice. It signals a bug in this package, never a caller error.
var ErrCorruptFreeList = errors.New("arena: free list corrupted")

// Handle identifies a slot. Handles carry no generation: once freed, a handle
// may be reissued by a later Allocate and then refers to the new occupant.
type Handle int

// freeDegree is the B-tree degree of the free set.
const freeDegree = 32

type slot[T any] struct {
	value T
	live  bool
}

// Arena is a slot allocator with O(1) amortized Allocate and Free.
//
// Arena is NOT safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  *btree.BTreeG[Handle]
	live  int
}

func lessHandle(a, b Handle) bool { return a < b }

// New creates an arena with capacity empty slots.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	a := &Arena[T]{
		free: btree.NewG[Handle](freeDegree, lessHandle),
	}
	a.Grow(capacity)
	return a
}

// Allocate stores value in the lowest free slot and returns its handle.
// When no slot is free the capacity doubles (or becomes 1 for an empty
// arena) first, so Allocate always succeeds.
func (a *Arena[T]) Allocate(value T) Handle {
	h, ok := a.free.DeleteMin()
	if !ok {
		a.Grow(max(1, 2*len(a.slots)))
		if h, ok = a.free.DeleteMin(); !ok {
			panic(fmt.Errorf("%w: no free slot after growing to %d", ErrCorruptFreeList, len(a.slots)))
		}
	}
	a.slots[h] = slot[T]{value: value, live: true}
	a.live++
	return h
}

// Get returns the value stored under h. ok is false when h is out of range
// or its slot is empty.
func (a *Arena[T]) Get(h Handle) (value T, ok bool) {
	if !a.Contains(h) {
		return value, false
	}
	return a.slots[h].value, true
}

// GetPtr returns a pointer to the value stored under h, or nil when h is
// out of range or empty. The pointer is invalidated by Grow and by any
// Allocate that grows the arena.
func (a *Arena[T]) GetPtr(h Handle) (*T, bool) {
	if !a.Contains(h) {
		return nil, false
	}
	return &a.slots[h].value, true
}

// Contains reports whether h refers to an occupied slot.
func (a *Arena[T]) Contains(h Handle) bool {
	return h >= 0 && int(h) < len(a.slots) && a.slots[h].live
}

// Take removes the value stored under h and frees its slot.
func (a *Arena[T]) Take(h Handle) (value T, ok bool) {
	if !a.Contains(h) {
		return value, false
	}
	value = a.slots[h].value
	a.release(h)
	return value, true
}

// Free empties the slot under h. Freeing an empty or out-of-range handle is
// a no-op.
func (a *Arena[T]) Free(h Handle) {
	if !a.Contains(h) {
		return
	}
	a.release(h)
}

// release clears an occupied slot and returns its index to the free set.
func (a *Arena[T]) release(h Handle) {
	a.slots[h] = slot[T]{}
	a.live--
	if _, dup := a.free.ReplaceOrInsert(h); dup {
		panic(fmt.Errorf("%w: handle %d freed twice", ErrCorruptFreeList, h))
	}
}

// Clear empties every slot and makes the whole index range free again.
// Capacity is kept.
func (a *Arena[T]) Clear() {
	clear(a.slots)
	a.live = 0
	a.free.Clear(true)
	for i := range a.slots {
		a.free.ReplaceOrInsert(Handle(i))
	}
}

// Grow extends the arena to capacity slots. It is a no-op when capacity is
// not larger than the current one.
func (a *Arena[T]) Grow(capacity int) {
	old := len(a.slots)
	if capacity <= old {
		return
	}
	a.slots = append(a.slots, make([]slot[T], capacity-old)...)
	for i := old; i < capacity; i++ {
		if _, dup := a.free.ReplaceOrInsert(Handle(i)); dup {
			panic(fmt.Errorf("%w: fresh handle %d already free", ErrCorruptFreeList, i))
		}
	}
}

// Cap returns the total number of slots, occupied or not.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Len returns the number of occupied slots.
func (a *Arena[T]) Len() int { return a.live }

// FreeCount returns the number of empty slots.
func (a *Arena[T]) FreeCount() int { return a.free.Len() }

// All yields (handle, value) for every occupied slot in ascending handle order.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range a.slots {
			if !a.slots[i].live {
				continue
			}
			if !yield(Handle(i), a.slots[i].value) {
				return
			}
		}
	}
}

// Pointers yields (handle, *value) for every occupied slot in ascending
// handle order. The loop body may modify values in place but must not
// allocate into or free from the arena.
func (a *Arena[T]) Pointers() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range a.slots {
			if !a.slots[i].live {
				continue
			}
			if !yield(Handle(i), &a.slots[i].value) {
				return
			}
		}
	}
}

// Drain yields and frees every occupied slot in ascending handle order.
// Each live entry is produced exactly once; stopping early leaves the
// remaining entries in place.
func (a *Arena[T]) Drain() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range a.slots {
			h := Handle(i)
			value, ok := a.Take(h)
			if !ok {
				continue
			}
			if !yield(h, value) {
				return
			}
		}
	}
}
