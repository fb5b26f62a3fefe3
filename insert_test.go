package rawvec

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkReserveRange(t *testing.T, src []int, sentinel int, index, n int) {
	t.Helper()
	s := slices.Clone(src)
	s, window := ReserveRange(s, index, n)
	require.Len(t, window, n)
	assert.Equal(t, n, cap(window), "window capacity must not reach beyond the window")
	for i := range window {
		assert.Zero(t, window[i], "window slot %d not reset", i)
		window[i] = sentinel
	}
	require.Len(t, s, len(src)+n)
	for i := index; i < index+n; i++ {
		assert.Equal(t, sentinel, s[i], "slot %d outside window", i)
	}
	rest := slices.Concat(s[:index], s[index+n:])
	assert.Equal(t, src, rest, "elements around window changed for index=%d n=%d", index, n)
}

func TestReserveRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rawvec")
	defer teardown()

	src := []int{1, 2, 3, 4, 5}
	checkReserveRange(t, src, 0, 0, 4)
	checkReserveRange(t, src, 0, 0, 8)
	checkReserveRange(t, src, -7, 3, 8)
	checkReserveRange(t, src, -7, 5, 8)
	checkReserveRange(t, src, -7, 2, 1) // adjacent: shift distance 1
	checkReserveRange(t, src, -7, 1, 2) // overlapping source and destination
	checkReserveRange(t, src, -7, 4, 1)
	checkReserveRange(t, nil, -7, 0, 3)
}

func TestReserveRangeInPlaceOverlap(t *testing.T) {
	// Enough capacity: the shift happens inside the same backing array,
	// with source and destination ranges overlapping.
	s := make([]int, 6, 16)
	for i := range s {
		s[i] = i + 1
	}
	base := &s[0]
	s, window := ReserveRange(s, 1, 2)
	require.Same(t, base, &s[0], "no reallocation expected")
	window[0], window[1] = -1, -2
	assert.Equal(t, []int{1, -1, -2, 2, 3, 4, 5, 6}, s)
}

func TestReserveRangeZeroLength(t *testing.T) {
	s := []int{1, 2, 3}
	out, window := ReserveRange(s, 2, 0)
	assert.Empty(t, window)
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, cap(s), cap(out))
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}

func TestReserveRangeOutOfBounds(t *testing.T) {
	s := []int{1, 2, 3}
	expectPanic(t, ErrIndexOutOfBounds, func() { ReserveRange(s, 4, 1) })
	expectPanic(t, ErrIndexOutOfBounds, func() { ReserveRange(s, -1, 1) })
	expectPanic(t, ErrIllegalArguments, func() { ReserveRange(s, 1, -1) })
	assert.Equal(t, []int{1, 2, 3}, s, "array must stay unmodified")
}

// errorRecorder counts traces on error level and forwards everything else.
type errorRecorder struct {
	tracing.Trace
	errors []string
}

func (r *errorRecorder) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
	r.Trace.Errorf(format, args...)
}

func TestPreconditionTracesToCoreTracer(t *testing.T) {
	saved := gtrace.CoreTracer
	defer func() { gtrace.CoreTracer = saved }()
	rec := &errorRecorder{Trace: gotestingadapter.New(t)}
	gtrace.CoreTracer = rec
	//
	expectPanic(t, ErrIndexOutOfBounds, func() { ReserveRange([]int{1}, 2, 1) })
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "index out of bounds")
}

func TestInsertRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rawvec")
	defer teardown()

	tests := []struct {
		items []int
		index int
	}{
		{[]int{-1, -2, -3}, 0},
		{[]int{-1}, 0},
		{[]int{-1, -2, -3}, 3},
		{[]int{-1, -2, -3, -4}, 5},
		{[]int{-1, -2, -3, -4, -5, -6}, 3},
		{nil, 2},
	}
	src := []int{1, 2, 3, 4, 5}
	for _, tt := range tests {
		got := InsertRange(slices.Clone(src), tt.index, tt.items...)
		want := slices.Concat(src[:tt.index], tt.items, src[tt.index:])
		assert.Equal(t, want, got, "insert %v at %d", tt.items, tt.index)
	}
}

func TestInsertRangeExample(t *testing.T) {
	got := InsertRange([]int{1, 2, 3, 4, 5}, 3, -1, -2, -3)
	assert.Equal(t, []int{1, 2, 3, -1, -2, -3, 4, 5}, got)
}

func TestInsertRangeOutOfBounds(t *testing.T) {
	expectPanic(t, ErrIndexOutOfBounds, func() { InsertRange([]int{1}, 2, 9) })
}

func TestInsertSeq(t *testing.T) {
	src := []string{"a", "b", "c"}
	got := InsertSeq(slices.Clone(src), 1, 2, slices.Values([]string{"x", "y"}))
	assert.Equal(t, []string{"a", "x", "y", "b", "c"}, got)
}

func TestInsertSeqDoesNotOverconsume(t *testing.T) {
	consumed := 0
	seq := func(yield func(int) bool) {
		for i := 10; ; i++ {
			consumed++
			if !yield(i) {
				return
			}
		}
	}
	got := InsertSeq([]int{1, 2}, 1, 3, seq)
	assert.Equal(t, []int{1, 10, 11, 12, 2}, got)
	assert.Equal(t, 3, consumed)
}

func TestInsertSeqClosesShortGap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rawvec")
	defer teardown()

	s := make([]int, 0, 16)
	s = append(s, 1, 2, 3, 4)
	got := InsertSeq(s, 1, 5, slices.Values([]int{-1, -2}))
	assert.Equal(t, []int{1, -1, -2, 2, 3, 4}, got)
	// slots vacated by closing the gap are reset
	assert.Equal(t, []int{0, 0, 0}, got[len(got):len(got)+3])
}
