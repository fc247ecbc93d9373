// File: api/completion.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Completion-wait contract shared by all task-pack wait strategies.

package api

// Completion is the barrier protocol between a group of tasks and its
// waiters. Every task signals exactly once; any number of threads may wait.
type Completion interface {
	// SignalTaskComplete records completion of task i. Called by the task
	// closure as its final act, including on panic paths.
	SignalTaskComplete(i int)

	// Wait blocks the caller until every real task has signalled.
	// Re-entrant across multiple waiters.
	Wait()

	// WaitComplete is the in-worker barrier used by an embedded wait task.
	// It returns once every real task has signalled and, where the strategy
	// maintains one, publishes the completion flag for secondary waiters.
	WaitComplete()

	// NCompleted returns the number of tasks that have signalled so far.
	NCompleted() int
}
