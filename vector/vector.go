/*
Package vector provides a fixed-size tuple type with tuple-style formatting.

	v := vector.New[int]([3]int{1, 2, 3})
	fmt.Println(v)          // (1,2,3)
	fmt.Printf("%#v\n", v)  // Vector(1, 2, 3)
*/
package vector

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"

	"github.com/npillmayer/rawvec/inline"
)

// Vector is a tuple of N values of type T, where N is the length of A.
type Vector[T any, A inline.Storage[T]] struct {
	buf A
}

// New creates a vector holding buf.
func New[T any, A inline.Storage[T]](buf A) Vector[T, A] {
	return Vector[T, A]{buf: buf}
}

// Len returns the dimension of the vector.
func (v Vector[T, A]) Len() int {
	return len(v.buf)
}

// At returns component i. It panics if i is out of range.
func (v Vector[T, A]) At(i int) T {
	return v.buf[i]
}

// Array returns a copy of the components.
func (v Vector[T, A]) Array() A {
	return v.buf
}

// Items returns the components as a slice sharing the vector's storage.
func (v *Vector[T, A]) Items() []T {
	if len(v.buf) == 0 {
		return nil
	}
	first := 0 // constant indices do not compile for [0]T
	return unsafe.Slice(&v.buf[first], len(v.buf))
}

// All iterates over index/component pairs.
func (v Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.buf); i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// String formats the vector as a tuple, e.g. "(1,2,3)".
func (v Vector[T, A]) String() string {
	return v.format("(", ",", ")", "%v")
}

// GoString formats the vector for debugging, e.g. `Vector("a", "b")`.
func (v Vector[T, A]) GoString() string {
	return v.format("Vector(", ", ", ")", "%#v")
}

func (v Vector[T, A]) format(open, sep, closing, verb string) string {
	var b strings.Builder
	b.WriteString(open)
	for i := 0; i < len(v.buf); i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, verb, v.buf[i])
	}
	b.WriteString(closing)
	return b.String()
}
