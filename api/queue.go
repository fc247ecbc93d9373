// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// MPMC queue capability consumed by the worker pool.

package api

// Queue is the multi-producer/multi-consumer queue contract. Enqueue always
// succeeds (the queue grows on demand); TryDequeue never blocks.
type Queue[T any] interface {
	// Enqueue adds one item.
	Enqueue(item T)

	// EnqueueBulk publishes a batch atomically: a dequeuer observes either
	// none or all of the batch.
	EnqueueBulk(items []T)

	// TryDequeue removes the oldest available item, ok false if empty.
	TryDequeue() (T, bool)

	// SizeApprox returns a non-authoritative size hint. It is used only to
	// coalesce wake-ups and must never drive correctness decisions.
	SizeApprox() int
}
