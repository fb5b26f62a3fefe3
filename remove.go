package rawvec

// SwapRemoveAll removes every element of s for which pred returns true and
// returns the shortened slice. Each removed element is handed to removed
// after it has left the slice; with a nil callback it is released instead.
//
// Matches are searched from the right end of a shrinking unprocessed prefix:
// after a match at position i has been replaced by the last element of the
// slice, only s[:i] remains to be inspected. Every element whose position is
// >= i has already been inspected, including the element just moved to i.
// Therefore pred is called exactly once for every element. The order of the
// kept elements is not preserved.
//
// pred must not modify the slice.
func SwapRemoveAll[S ~[]E, E any](s S, pred func(E) bool, removed func(E)) S {
	dispose := disposer(removed)
	rest := len(s)
	for {
		idx := lastMatch(s[:rest], pred)
		if idx < 0 {
			return s
		}
		last := len(s) - 1
		item := s[idx]
		s[idx] = s[last]
		var zero E
		s[last] = zero
		s = s[:last]
		dispose(item)
		rest = idx
	}
}

// lastMatch returns the highest index i with pred(s[i]), or -1.
func lastMatch[E any](s []E, pred func(E) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// RemoveAll removes every element of s for which pred returns true and
// returns the shortened slice. The relative order of the kept elements is
// preserved. Removed elements are handed to removed in slice order; with a
// nil callback they are released instead.
//
// RemoveAll runs in a single forward pass, calling pred exactly once per
// element and moving every kept element at most once.
//
// pred must not modify the slice.
func RemoveAll[S ~[]E, E any](s S, pred func(E) bool, removed func(E)) S {
	dispose := disposer(removed)
	count := 0
	var zero E
	for i := range s {
		if pred(s[i]) {
			item := s[i]
			s[i] = zero
			dispose(item)
			count++
		} else if count > 0 {
			// Destination is strictly behind the source and has already
			// been vacated, so moving low to high never clobbers a live
			// element.
			s[i-count] = s[i]
		}
	}
	n := len(s) - count
	clear(s[n:])
	return s[:n]
}
