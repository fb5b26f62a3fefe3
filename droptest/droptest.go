/*
Package droptest provides helpers to verify element ownership in tests.

A Watcher hands out markers. A marker counts how often it has been released;
a container handling ownership correctly releases every marker it owns
exactly once.

	w := droptest.NewWatcher[int]()
	defer w.Close()
	v.Push(w.Alloc(1))
	...
	v.Drop()
	if !w.AllProperlyReleased() { ... }

Markers implement rawvec.Releaser structurally.

Watchers broadcast every release to subscribers, which lets tests observe
the order of releases.
*/
package droptest

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rawvec'
func tracer() tracing.Trace {
	return tracing.Select("rawvec")
}

// Watcher allocates markers and keeps track of them.
type Watcher[P any] struct {
	markers    []*Marker[P]
	cast       *caster.Caster // broadcaster for release events
	subscribed atomic.Bool
}

// Event is broadcast whenever a marker is released.
type Event struct {
	ID       int // marker id, in order of allocation
	Releases int // release count after this release
}

// NewWatcher creates a watcher.
func NewWatcher[P any]() *Watcher[P] {
	return &Watcher[P]{
		cast: caster.New(nil),
	}
}

// Alloc creates a marker carrying props.
func (w *Watcher[P]) Alloc(props P) *Marker[P] {
	m := &Marker[P]{
		props: props,
		id:    len(w.markers),
		w:     w,
	}
	w.markers = append(w.markers, m)
	return m
}

// Markers returns all markers in order of allocation.
func (w *Watcher[P]) Markers() []*Marker[P] {
	return w.markers
}

// AllProperlyReleased reports whether every marker has been released
// exactly once.
func (w *Watcher[P]) AllProperlyReleased() bool {
	for _, m := range w.markers {
		if !m.IsProperlyReleased() {
			return false
		}
	}
	return true
}

// Leaked returns the markers which have not been released.
func (w *Watcher[P]) Leaked() []*Marker[P] {
	var out []*Marker[P]
	for _, m := range w.markers {
		if m.Releases() == 0 {
			out = append(out, m)
		}
	}
	return out
}

// Twice returns the markers which have been released more than once.
func (w *Watcher[P]) Twice() []*Marker[P] {
	var out []*Marker[P]
	for _, m := range w.markers {
		if m.Releases() > 1 {
			out = append(out, m)
		}
	}
	return out
}

// Subscribe returns a channel receiving an Event for every subsequent
// release. capacity is the channel's buffer size; a subscriber not keeping
// up will block releases.
func (w *Watcher[P]) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	ch, ok := w.cast.Sub(ctx, capacity)
	if ok {
		w.subscribed.Store(true)
	}
	return ch, ok
}

// Close stops broadcasting and closes all subscriber channels.
func (w *Watcher[P]) Close() {
	w.cast.Close()
}

func (w *Watcher[P]) released(m *Marker[P]) {
	if m.releases > 1 {
		tracer().Errorf("droptest: marker %d released %d times", m.id, m.releases)
	}
	if w.subscribed.Load() {
		w.cast.Pub(Event{ID: m.id, Releases: m.releases})
	}
}

// Marker is a value with a release counter.
type Marker[P any] struct {
	props    P
	id       int
	releases int
	w        *Watcher[P]
}

// Props returns the value the marker has been allocated with.
func (m *Marker[P]) Props() P {
	return m.props
}

// ID returns the allocation index of the marker.
func (m *Marker[P]) ID() int {
	return m.id
}

// Release counts a release.
func (m *Marker[P]) Release() {
	m.releases++
	m.w.released(m)
}

// Releases returns how often the marker has been released.
func (m *Marker[P]) Releases() int {
	return m.releases
}

// IsProperlyReleased reports whether the marker has been released exactly once.
func (m *Marker[P]) IsProperlyReleased() bool {
	return m.releases == 1
}

func (m *Marker[P]) String() string {
	return fmt.Sprintf("marker#%d(%v)", m.id, m.props)
}
