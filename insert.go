package rawvec

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"slices"
)

// ReserveRange opens a window of n slots at index, shifting the elements
// s[index:] right by n. It returns the extended slice together with the
// window, which has length and capacity n and is set to zero values.
//
// The length of the returned slice already includes the window. Clients must
// fill every slot of the window before the slice is used for anything else;
// they must not rely on the prior contents of the window.
//
// index must be in [0, len(s)] and n must not be negative, otherwise
// ReserveRange panics with an error wrapping ErrIndexOutOfBounds, leaving s
// unmodified. If n is 0, s is returned unchanged with an empty window.
//
// If cap(s) does not suffice, the elements are moved to a new backing array
// (following the growth rules of append) and the old one must not be used
// any more.
func ReserveRange[S ~[]E, E any](s S, index, n int) (S, []E) {
	precondition(index >= 0 && index <= len(s), ErrIndexOutOfBounds,
		"reserve range at %d for length %d", index, len(s))
	precondition(n >= 0, ErrIllegalArguments, "reserve range of negative size %d", n)
	if n == 0 {
		return s, s[index:index:index]
	}
	oldLen := len(s)
	if cap(s)-oldLen < n {
		tracer().Debugf("reserve range: growing capacity %d for %d+%d elements", cap(s), oldLen, n)
		s = slices.Grow(s, n)
	}
	s = s[:oldLen+n]
	// Source and destination may overlap: shift from the high end down, so
	// no element is overwritten before it has been moved.
	for i := oldLen - 1; i >= index; i-- {
		s[i+n] = s[i]
	}
	window := s[index : index+n : index+n]
	clear(window)
	return s, window
}

// InsertRange inserts items at index and returns the modified slice,
// which is s[:index] ++ items ++ s[index:].
//
// Index must be in [0, len(s)], otherwise InsertRange panics with an error
// wrapping ErrIndexOutOfBounds.
func InsertRange[S ~[]E, E any](s S, index int, items ...E) S {
	s, window := ReserveRange(s, index, len(items))
	copy(window, items)
	return s
}

// InsertSeq inserts the values of seq at index. seq is expected to produce
// exactly n values, which allows the gap to be opened with a single shift.
// Values beyond n are not consumed. If seq produces fewer than n values, the
// unused part of the gap is closed again.
//
// Index must be in [0, len(s)], otherwise InsertSeq panics with an error
// wrapping ErrIndexOutOfBounds.
func InsertSeq[S ~[]E, E any](s S, index, n int, seq iter.Seq[E]) S {
	s, window := ReserveRange(s, index, n)
	if n == 0 {
		return s
	}
	written := 0
	for e := range seq {
		window[written] = e
		written++
		if written == n {
			break
		}
	}
	if written < n {
		tracer().Debugf("insert seq: sequence produced %d of %d values", written, n)
		missing := n - written
		// Closing the gap moves elements to the left: iterate low to high.
		for i := index + n; i < len(s); i++ {
			s[i-missing] = s[i]
		}
		clear(s[len(s)-missing:])
		s = s[:len(s)-missing]
	}
	return s
}
