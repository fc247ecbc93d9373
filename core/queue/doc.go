// File: core/queue/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package queue implements the unbounded MPMC task queue behind the worker
// pool. The fast path is a bounded lock-free ring (Vyukov sequence scheme);
// overflow and atomically-published bulk batches spill into a mutex-guarded
// growable ring. Producer tokens reserve a private lane, which keeps a
// single producer's items FIFO and off the shared enqueue head.
package queue
