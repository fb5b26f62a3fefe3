package rawvec

// Releaser is implemented by elements which hold resources beyond their
// memory, e.g. pooled buffers or handles. Containers in this module call
// Release exactly once for every element they own and give up without
// handing it to a client.
type Releaser interface {
	Release()
}

// Release releases x if it implements Releaser.
func Release[E any](x E) {
	if r, ok := any(x).(Releaser); ok {
		r.Release()
	}
}

// Drop releases every element of s, resets all slots to the zero value and
// returns s truncated to length 0. Capacity is retained.
func Drop[S ~[]E, E any](s S) S {
	for i := range s {
		Release(s[i])
	}
	clear(s)
	return s[:0]
}

// disposer returns a removal callback which hands elements to removed, or
// releases them if removed is nil.
func disposer[E any](removed func(E)) func(E) {
	if removed != nil {
		return removed
	}
	return Release[E]
}
