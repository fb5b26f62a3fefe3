/*
Package iterators provides lookahead wrappers for iter.Seq.

NPeekable looks ahead at most N values, buffering them in an inline
container; AnyPeekable looks ahead arbitrarily far, buffering in a ring
queue. Both hand out copies of buffered values and address them by index,
so no reference into a buffer outlives a subsequent refill.

Wrappers pull from their source with iter.Pull. Clients which abandon a
wrapper before the source is exhausted must call Stop.
*/
package iterators

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rawvec'
func tracer() tracing.Trace {
	return tracing.Select("rawvec")
}
