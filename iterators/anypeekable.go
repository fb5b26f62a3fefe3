package iterators

import (
	"iter"
	"slices"

	"github.com/eapache/queue"
)

// AnyPeekable wraps a sequence and lets clients look arbitrarily far ahead.
// Values looked at are buffered until they are consumed.
type AnyPeekable[T any] struct {
	next func() (T, bool)
	stop func()
	buf  *queue.Queue // lookahead, front first
	done bool
}

// NewAnyPeekable wraps seq.
func NewAnyPeekable[T any](seq iter.Seq[T]) *AnyPeekable[T] {
	next, stop := iter.Pull(seq)
	return &AnyPeekable[T]{
		next: next,
		stop: stop,
		buf:  queue.New(),
	}
}

// AnyPeekableFromSlice wraps the values of items.
func AnyPeekableFromSlice[T any](items []T) *AnyPeekable[T] {
	return NewAnyPeekable(slices.Values(items))
}

// Buffered returns the number of values pulled from the source but not
// consumed yet.
func (p *AnyPeekable[T]) Buffered() int {
	return p.buf.Length()
}

// Peek returns the next value without consuming it.
func (p *AnyPeekable[T]) Peek() (T, bool) {
	return p.PeekN(0)
}

// PeekN returns the i-th upcoming value without consuming it.
// It returns false if the sequence ends before.
func (p *AnyPeekable[T]) PeekN(i int) (T, bool) {
	if i < 0 || !p.fill(i+1) {
		var zero T
		return zero, false
	}
	return p.at(i), true
}

// PeekAll returns a sequence over all upcoming values, without consuming
// them. Values are pulled from the source and buffered as the sequence
// advances. The values are copies; PeekAll hands out no references into
// the buffer.
func (p *AnyPeekable[T]) PeekAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			x, ok := p.PeekN(i)
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Next consumes and returns the next value.
func (p *AnyPeekable[T]) Next() (T, bool) {
	if p.buf.Length() > 0 {
		x, _ := p.buf.Remove().(T)
		return x, true
	}
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

// All returns a sequence consuming the remaining values, buffered ones first.
func (p *AnyPeekable[T]) All() iter.Seq[T] {
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
func (p *AnyPeekable[T]) Stop() {
	p.stop()
	p.done = true
	p.buf = queue.New()
}

func (p *AnyPeekable[T]) fill(k int) bool {
	for p.buf.Length() < k {
		if p.done {
			return false
		}
		x, ok := p.next()
		if !ok {
			p.done = true
			return false
		}
		p.buf.Add(x)
	}
	return true
}

// at returns buffered value i. A nil interface stored for an interface
// type T yields the zero value.
func (p *AnyPeekable[T]) at(i int) T {
	x, _ := p.buf.Get(i).(T)
	return x
}
