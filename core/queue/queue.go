// File: core/queue/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded MPMC queue with producer tokens. Tokenless producers share one
// lane; each token owns a private lane. Dequeuers rotate over all lanes so
// no producer is starved.

package queue

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/mpmcpool/api"
)

// DefaultLaneCapacity is the fast-ring capacity of each lane.
const DefaultLaneCapacity = 1024

// Ensure compile-time interface compliance.
var _ api.Queue[api.Task] = (*Queue[api.Task])(nil)

// Queue is an unbounded MPMC queue of T.
type Queue[T any] struct {
	shared *lane[T]

	mu    sync.Mutex                 // guards token lane creation
	lanes atomic.Pointer[[]*lane[T]] // token lanes, append-only

	rr       atomic.Uint64 // dequeue rotation cursor
	capacity int
}

// Token identifies a producer to the queue. Enqueues through a token land
// in the token's private lane: no contention with other producers and
// strict FIFO for that producer. A token must not outlive its queue.
type Token[T any] struct {
	lane *lane[T]
}

// New creates a queue whose lanes buffer capacity items on the fast path.
// capacity <= 0 selects DefaultLaneCapacity.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultLaneCapacity
	}
	q := &Queue[T]{
		shared:   newLane[T](capacity),
		capacity: capacity,
	}
	empty := make([]*lane[T], 0)
	q.lanes.Store(&empty)
	return q
}

// NewToken mints a producer token with its own lane.
func (q *Queue[T]) NewToken() *Token[T] {
	l := newLane[T](q.capacity)
	q.mu.Lock()
	old := *q.lanes.Load()
	next := make([]*lane[T], len(old)+1)
	copy(next, old)
	next[len(old)] = l
	q.lanes.Store(&next)
	q.mu.Unlock()
	return &Token[T]{lane: l}
}

// Enqueue adds one item through the shared lane. Never fails.
func (q *Queue[T]) Enqueue(item T) {
	q.shared.enqueue(item)
}

// EnqueueWith adds one item through the token's lane.
func (q *Queue[T]) EnqueueWith(t *Token[T], item T) {
	t.lane.enqueue(item)
}

// EnqueueBulk publishes a batch atomically through the shared lane.
func (q *Queue[T]) EnqueueBulk(items []T) {
	q.shared.enqueueBulk(items)
}

// EnqueueBulkWith publishes a batch atomically through the token's lane.
func (q *Queue[T]) EnqueueBulkWith(t *Token[T], items []T) {
	t.lane.enqueueBulk(items)
}

// TryDequeue removes the oldest item of the first non-empty lane it finds,
// rotating the starting lane between calls. Items of different lanes come
// out in no particular order. ok false means the queue looked empty.
func (q *Queue[T]) TryDequeue() (T, bool) {
	lanes := *q.lanes.Load()
	n := len(lanes) + 1
	start := int(q.rr.Add(1) % uint64(n))
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		var l *lane[T]
		if idx == 0 {
			l = q.shared
		} else {
			l = lanes[idx-1]
		}
		if item, ok := l.tryDequeue(); ok {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// SizeApprox returns a size hint summed across lanes. Racy by design; used
// only to coalesce wake-ups.
func (q *Queue[T]) SizeApprox() int {
	total := q.shared.length()
	for _, l := range *q.lanes.Load() {
		total += l.length()
	}
	return total
}
