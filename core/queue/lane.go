// File: core/queue/lane.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A lane is one enqueue source: a lock-free ring fast path plus a
// mutex-guarded growable overflow ring. The overflow keeps Enqueue
// infallible and gives bulk batches a single atomic publication point.

package queue

import (
	"sync"
	"sync/atomic"

	eq "github.com/eapache/queue"
)

type lane[T any] struct {
	fast *ring[T]

	mu          sync.Mutex
	overflow    *eq.Queue
	overflowLen atomic.Int64

	size atomic.Int64
}

func newLane[T any](capacity int) *lane[T] {
	return &lane[T]{
		fast:     newRing[T](capacity),
		overflow: eq.New(),
	}
}

// enqueue adds one item. While the overflow holds items, new items follow
// them in so a single producer's order is preserved end to end.
func (l *lane[T]) enqueue(item T) {
	l.size.Add(1)
	if l.overflowLen.Load() == 0 && l.fast.enqueue(item) {
		return
	}
	l.mu.Lock()
	l.overflow.Add(item)
	l.overflowLen.Add(1)
	l.mu.Unlock()
}

// enqueueBulk publishes the whole batch under the overflow lock, making it
// visible to dequeuers all at once.
func (l *lane[T]) enqueueBulk(items []T) {
	if len(items) == 0 {
		return
	}
	l.size.Add(int64(len(items)))
	l.mu.Lock()
	for _, item := range items {
		l.overflow.Add(item)
	}
	l.overflowLen.Add(int64(len(items)))
	l.mu.Unlock()
}

// tryDequeue pops the oldest item. The fast ring drains first: by the time
// a producer spills into the overflow its ring entries are all older than
// the spilled ones.
func (l *lane[T]) tryDequeue() (item T, ok bool) {
	if item, ok = l.fast.dequeue(); ok {
		l.size.Add(-1)
		return item, true
	}
	if l.overflowLen.Load() == 0 {
		var zero T
		return zero, false
	}
	l.mu.Lock()
	if l.overflow.Length() == 0 {
		l.mu.Unlock()
		var zero T
		return zero, false
	}
	item = l.overflow.Remove().(T)
	l.overflowLen.Add(-1)
	l.mu.Unlock()
	l.size.Add(-1)
	return item, true
}

func (l *lane[T]) length() int {
	n := l.size.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}
