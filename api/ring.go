// Package api
// Author: momentics@gmail.com
//
// N-buffered frame resource contract.

package api

// FrameRing cycles a fixed number of resource generations. Owners call
// MoveNext exactly once per frame and never assume index 0 is current.
type FrameRing[T any] interface {
	// Current returns the resource of the frame being recorded.
	Current() T
	// Previous returns the resource the prior frame used.
	Previous() T
	// Next returns the resource the following frame will use.
	Next() T
	// MoveNext advances to the next generation.
	MoveNext()
	// MovePrevious steps back one generation.
	MovePrevious()
	// Len returns the ring depth.
	Len() int
}
