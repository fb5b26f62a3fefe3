package rawvec

import (
	"fmt"
	"iter"
	"slices"
)

// Vec is a growable contiguous array. It is a thin wrapper around a Go
// slice, exposing the capabilities the range operations build on: length,
// capacity, reservation of additional capacity and setting the length
// directly.
//
// A Vec created by
//
//	Vec[E]{}
//
// is a valid empty array.
type Vec[E any] struct {
	items []E
}

// NewVec creates an empty array with room for capacity elements.
func NewVec[E any](capacity int) *Vec[E] {
	precondition(capacity >= 0, ErrIllegalArguments, "negative capacity %d", capacity)
	return &Vec[E]{items: make([]E, 0, capacity)}
}

// FromSlice creates an array holding items. The array takes ownership of
// the backing array of items.
func FromSlice[E any](items []E) *Vec[E] {
	return &Vec[E]{items: items}
}

// Len returns the number of elements.
func (v *Vec[E]) Len() int {
	return len(v.items)
}

// Cap returns the number of elements the array can hold without reallocating.
func (v *Vec[E]) Cap() int {
	return cap(v.items)
}

// Reserve makes sure there is room for at least n more elements.
// Indices of existing elements stay valid; slices returned by Items before
// the call may be detached from the array.
func (v *Vec[E]) Reserve(n int) {
	precondition(n >= 0, ErrIllegalArguments, "reserve negative count %d", n)
	v.items = slices.Grow(v.items, n)
}

// SetLen sets the length of the array. Growing the length exposes zero
// values, shrinking it forgets the cut-off elements without releasing them
// and resets their slots.
// SetLen panics with an error wrapping ErrIndexOutOfBounds if n is negative
// or greater than Cap().
func (v *Vec[E]) SetLen(n int) {
	precondition(n >= 0 && n <= cap(v.items), ErrIndexOutOfBounds,
		"set length %d for capacity %d", n, cap(v.items))
	if n < len(v.items) {
		clear(v.items[n:])
	} else {
		clear(v.items[len(v.items):n])
	}
	v.items = v.items[:n]
}

// Items returns the elements as a slice sharing the array's storage.
// The slice is valid until the next operation which changes the length.
func (v *Vec[E]) Items() []E {
	return v.items
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vec[E]) At(i int) E {
	return v.items[i]
}

// Push appends items.
func (v *Vec[E]) Push(items ...E) {
	v.items = append(v.items, items...)
}

// Pop removes the last element and transfers it to the caller.
// If the array is empty, Pop returns false.
func (v *Vec[E]) Pop() (E, bool) {
	var zero E
	if len(v.items) == 0 {
		return zero, false
	}
	last := len(v.items) - 1
	item := v.items[last]
	v.items[last] = zero
	v.items = v.items[:last]
	return item, true
}

// All iterates over index/element pairs.
func (v *Vec[E]) All() iter.Seq2[int, E] {
	return slices.All(v.items)
}

// Drop releases all elements and empties the array. Capacity is retained.
func (v *Vec[E]) Drop() {
	v.items = Drop(v.items)
}

// ReserveRange opens a window of n zeroed slots at index.
// See function ReserveRange for the contract.
func (v *Vec[E]) ReserveRange(index, n int) []E {
	var window []E
	v.items, window = ReserveRange(v.items, index, n)
	return window
}

// InsertRange inserts items at index.
func (v *Vec[E]) InsertRange(index int, items ...E) {
	v.items = InsertRange(v.items, index, items...)
}

// InsertSeq inserts the n values of seq at index.
func (v *Vec[E]) InsertSeq(index, n int, seq iter.Seq[E]) {
	v.items = InsertSeq(v.items, index, n, seq)
}

// RemoveAll removes all elements matching pred, preserving the order of the
// kept elements.
func (v *Vec[E]) RemoveAll(pred func(E) bool, removed func(E)) {
	v.items = RemoveAll(v.items, pred, removed)
}

// SwapRemoveAll removes all elements matching pred without preserving the
// order of the kept elements.
func (v *Vec[E]) SwapRemoveAll(pred func(E) bool, removed func(E)) {
	v.items = SwapRemoveAll(v.items, pred, removed)
}

func (v *Vec[E]) String() string {
	return fmt.Sprint(v.items)
}
