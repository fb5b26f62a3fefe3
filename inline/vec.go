package inline

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/npillmayer/rawvec"
)

// Vec is a sequence of at most N elements, where N is the length of the
// array type S. The elements are stored in S, which is part of the Vec value.
//
// The zero value is an empty container, ready to use.
//
// A Vec owns its live elements. Drop releases them (see rawvec.Releaser);
// Pop hands an element over to the caller. A Vec must not be copied after
// first use, as the copy would share ownership of the elements.
type Vec[T any, S Storage[T]] struct {
	_ [0]func() // incomparable
	// n is the logical item count; live items are store[:n].
	n int
	// store is the fixed backing storage. Slots >= n hold zero values.
	store S
}

// New returns an empty container.
func New[T any, S Storage[T]]() Vec[T, S] {
	return Vec[T, S]{}
}

// Cap returns the capacity N of the container.
func (v *Vec[T, S]) Cap() int {
	return len(v.store)
}

// Len returns the number of live elements.
func (v *Vec[T, S]) Len() int {
	return v.n
}

// IsEmpty reports whether the container holds no elements.
func (v *Vec[T, S]) IsEmpty() bool {
	return v.n == 0
}

// IsFull reports whether a call to Push would fail.
func (v *Vec[T, S]) IsFull() bool {
	return v.n >= len(v.store)
}

// Push appends item. If the container is full, Push returns a
// *CapacityError carrying item and leaves the container unchanged.
// The error satisfies errors.Is(err, ErrFull).
func (v *Vec[T, S]) Push(item T) error {
	if v.IsFull() {
		tracer().Debugf("inline: push rejected, capacity %d exhausted", len(v.store))
		return &CapacityError[T]{Item: item, Cap: len(v.store)}
	}
	v.store[v.n] = item
	v.n++
	return nil
}

// TryPush appends item. If the container is full, it returns item and false.
func (v *Vec[T, S]) TryPush(item T) (T, bool) {
	if err := v.Push(item); err != nil {
		return item, false
	}
	var zero T
	return zero, true
}

// Pop removes the last element and transfers it to the caller.
// If the container is empty, Pop returns false.
func (v *Vec[T, S]) Pop() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	item := v.store[v.n]
	v.store[v.n] = zero
	return item, true
}

// Peek returns the last element without removing it.
func (v *Vec[T, S]) Peek() (T, bool) {
	if v.n == 0 {
		var zero T
		return zero, false
	}
	return v.store[v.n-1], true
}

// PeekRef returns a pointer to the last element, or nil if the container is
// empty. The pointer is valid until the element is popped.
func (v *Vec[T, S]) PeekRef() *T {
	if v.n == 0 {
		return nil
	}
	return &v.store[v.n-1]
}

// Get returns the element at index i. If i is not in [0, Len()), Get
// returns false.
func (v *Vec[T, S]) Get(i int) (T, bool) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, false
	}
	return v.store[i], true
}

// Ref returns a pointer to the element at index i, or nil if i is not in
// [0, Len()).
func (v *Vec[T, S]) Ref(i int) *T {
	if i < 0 || i >= v.n {
		return nil
	}
	return &v.store[i]
}

// Items returns the live elements as a slice backed by the inline storage.
// Length and capacity of the slice are Len(); appending to it will therefore
// copy instead of writing into dead slots. The slice must not be used after
// the container's length changes.
func (v *Vec[T, S]) Items() []T {
	if v.n == 0 {
		return nil
	}
	return unsafe.Slice(v.slot(0), v.n)
}

// slot returns the address of slot i. Indexing S with a constant would not
// compile for every array length in Storage, hence the variable index.
func (v *Vec[T, S]) slot(i int) *T {
	return &v.store[i]
}

// Slice returns the live elements [from, to). Bounds are checked like a Go
// slice expression on Items(), i.e. invalid bounds panic.
func (v *Vec[T, S]) Slice(from, to int) []T {
	return v.Items()[from:to]
}

// All iterates over index/element pairs, front to back.
func (v *Vec[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.store[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements, front to back.
func (v *Vec[T, S]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.store[i]) {
				return
			}
		}
	}
}

// Backward iterates over index/element pairs, back to front, i.e. in the
// order successive calls to Pop would return them.
func (v *Vec[T, S]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.store[i]) {
				return
			}
		}
	}
}

// Drop releases every live element exactly once and empties the container.
// Dead slots are not touched.
func (v *Vec[T, S]) Drop() {
	for i := 0; i < v.n; i++ {
		rawvec.Release(v.store[i])
	}
	v.Clear()
}

// Clear empties the container without releasing the elements. It is meant
// for elements whose ownership has been passed on by other means, e.g. after
// copying Items() elsewhere.
func (v *Vec[T, S]) Clear() {
	var zero T
	for i := 0; i < v.n; i++ {
		v.store[i] = zero
	}
	v.n = 0
}

func (v *Vec[T, S]) String() string {
	return fmt.Sprint(v.Items())
}
