// File: taskpack/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package taskpack groups related tasks into a pack: an ordered set of
// task slots with completion counting, per-task result slots, an optional
// per-task callback, an optional reduce step, and an optional embedded
// wait task that performs the completion barrier on a worker thread.
//
// Three interchangeable completion-wait strategies are selectable at
// construction: spin (lowest latency, highest CPU), spin-then-block, and
// per-signal blocking (no producer-side spin). See strategy.go.
//
// A pack must be fully populated before its tasks are handed to a pool,
// and must outlive its tasks: call Wait (or GetResult) before letting the
// pack go.
//
// A wait task occupies its worker until the rest of the pack finishes.
// Keep the pool at least one worker larger than the number of wait tasks
// in flight, or the barrier can starve the tasks it is waiting for.
package taskpack
