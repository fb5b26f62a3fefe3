package iterators

import (
	"iter"
	"slices"

	"github.com/npillmayer/rawvec/inline"
)

// NPeekable wraps a sequence and lets clients look at up to N upcoming
// values, where N is the length of the array type S.
type NPeekable[T any, S inline.Storage[T]] struct {
	next func() (T, bool)
	stop func()
	buf  inline.Vec[T, S] // lookahead, front first
	done bool
}

// NewNPeekable wraps seq.
func NewNPeekable[T any, S inline.Storage[T]](seq iter.Seq[T]) *NPeekable[T, S] {
	next, stop := iter.Pull(seq)
	return &NPeekable[T, S]{next: next, stop: stop}
}

// NPeekableFromSlice wraps the values of items.
func NPeekableFromSlice[T any, S inline.Storage[T]](items []T) *NPeekable[T, S] {
	return NewNPeekable[T, S](slices.Values(items))
}

// Lookahead returns N, the maximum distance for PeekN.
func (p *NPeekable[T, S]) Lookahead() int {
	return p.buf.Cap()
}

// Peek returns the next value without consuming it.
func (p *NPeekable[T, S]) Peek() (T, bool) {
	return p.PeekN(0)
}

// PeekN returns the i-th upcoming value without consuming it, where
// PeekN(0) is the value the next call to Next will return.
// It returns false if i is not in [0, N) or the sequence ends before.
func (p *NPeekable[T, S]) PeekN(i int) (T, bool) {
	if i < 0 || i >= p.buf.Cap() {
		tracer().Debugf("npeekable: lookahead %d exceeds buffer of %d", i, p.buf.Cap())
		var zero T
		return zero, false
	}
	if !p.fill(i + 1) {
		var zero T
		return zero, false
	}
	return p.buf.Get(i)
}

// fill pulls values until the buffer holds at least k of them.
func (p *NPeekable[T, S]) fill(k int) bool {
	for p.buf.Len() < k {
		if p.done {
			return false
		}
		x, ok := p.next()
		if !ok {
			p.done = true
			return false
		}
		if err := p.buf.Push(x); err != nil {
			panic(err) // k <= Cap() is checked by callers
		}
	}
	return true
}

// Next consumes and returns the next value.
func (p *NPeekable[T, S]) Next() (T, bool) {
	if p.buf.IsEmpty() {
		if p.done {
			var zero T
			return zero, false
		}
		x, ok := p.next()
		if !ok {
			p.done = true
		}
		return x, ok
	}
	items := p.buf.Items()
	head := items[0]
	copy(items, items[1:])
	p.buf.Pop() // drops the duplicate of the last value
	return head, true
}

// All returns a sequence consuming the remaining values, buffered ones first.
func (p *NPeekable[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := p.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Stop discards buffered values and stops the underlying sequence.
func (p *NPeekable[T, S]) Stop() {
	p.stop()
	p.done = true
	p.buf.Clear()
}
