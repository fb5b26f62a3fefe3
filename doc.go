/*
Package rawvec offers low-level container primitives which manage element
storage directly.

Slices

Go slices already are growable contiguous arrays. What they lack are bulk
editing primitives with clear ownership rules: inserting a batch of elements
at an arbitrary index with a single shift, and removing every element matching
a predicate while handing each removed element to the client exactly once.
Package rawvec provides these as generic functions over slice types

	s, window := rawvec.ReserveRange(s, index, n)  // open a gap of n zeroed slots
	s = rawvec.InsertRange(s, index, items...)     // open a gap and fill it
	s = rawvec.RemoveAll(s, pred, removed)         // order-preserving compaction
	s = rawvec.SwapRemoveAll(s, pred, removed)     // swap-removal, order not kept

and as methods of the thin host type Vec, which exposes length, capacity,
reservation and length-setting explicitly.

Ownership

Elements may implement Releaser. An element handed to a removal callback is
owned by the callback; if no callback is given, the element is released. An
element is never released twice and kept elements are never touched.
Slots vacated by an operation are reset to the zero value, so the garbage
collector does not retain values through them.

Sub-packages

Package inline contains a fixed-capacity container stored inline in its owner.
Packages iterators, vector, dump and droptest are helpers built on top.

None of the types in this module are safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rawvec

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'rawvec'
func tracer() tracing.Trace {
	return tracing.Select("rawvec")
}

// Error is an error type for the rawvec module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an insertion index is
// greater than the length of the array or a length exceeds the capacity.
// It is raised as a panic, as it signals a programming error.
const ErrIndexOutOfBounds = Error("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// precondition panics with an error wrapping err if condition does not hold.
// The error is traced to the core tracer before panicking.
func precondition(condition bool, err error, format string, args ...any) {
	if !condition {
		e := fmt.Errorf("%w: "+format, append([]any{err}, args...)...)
		T().Errorf("rawvec: %v", e)
		panic(e)
	}
}
