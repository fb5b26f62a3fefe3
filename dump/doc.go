/*
Package dump outputs the slot layout of containers for debugging purposes.

Console writes a one-line slot map, coloring live slots if the output is a
terminal; Dot writes the same information in Graphviz DOT format.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rawvec'
func tracer() tracing.Trace {
	return tracing.Select("rawvec")
}

// Slotted is a container with a fixed number of slots, of which the first
// Len() are live. inline.Vec and rawvec.Vec satisfy it.
type Slotted[T any] interface {
	Len() int
	Cap() int
	Items() []T
}
