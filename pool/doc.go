// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pool implements the MPMC worker pool: a dynamic set of workers
// draining the lock-free task queue fed by any number of producers.
// Workers park on a mutex+condvar wake coordinator when the queue looks
// empty and are woken by submissions, resizes, and shutdown. See worker.go
// for the dispatch loop and wake.go for the wake-up discipline.
package pool
