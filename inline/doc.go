/*
Package inline provides a fixed-capacity container which stores its elements
inline, i.e. inside the container value itself.

The capacity is part of the type: Vec[T, [8]T] holds at most 8 elements of
type T in an array field. Embedding such a Vec in a struct therefore embeds
the storage as well, and no operation on it allocates.

	var stack inline.Vec8[string]
	stack.Push("a")
	stack.Push("b")
	top, _ := stack.Pop() // "b"

Slots in [0, Len()) are live. Slots beyond are dead and always hold the zero
value of T; the length counter is the only authority on which slots are
live.

# Capacities

Go has no constant type parameters, so the capacity is expressed by the
storage type S, which must be one of the array types listed in Storage:
[N]T for N in 0 to 8, 10, 12, 16, 20, 24, 32, 48, 64, 96, 128, 256, 512
and 1024. Other lengths do not satisfy the constraint, i.e. Vec[T, [9]T]
does not compile; use the next larger capacity instead.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rawvec'
func tracer() tracing.Trace {
	return tracing.Select("rawvec")
}
