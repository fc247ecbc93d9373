// File: taskpack/value.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Value pack: per-task result slots, optional reduce, result cell.

package taskpack

import (
	"time"

	"github.com/momentics/mpmcpool/api"
)

// Pack is a pack whose tasks each produce an R. Results land in ordered
// slots; an optional reduce combines them after all real tasks complete.
type Pack[R any] struct {
	core    packCore
	results []R
	reduce  func() R
	cell    *resultCell[R]
}

// New creates a value pack with n empty task and result slots.
func New[R any](n int, opts ...Option) *Pack[R] {
	return &Pack[R]{
		core:    newCore(n, opts),
		results: make([]R, n),
		cell:    newResultCell[R](),
	}
}

// SetTaskAt stores fn into slot i. The stored closure writes slot i's
// result, then signals completion; a panicking task is recorded, leaves
// its zero result, and still counts as complete.
func (p *Pack[R]) SetTaskAt(i int, fn func() R) error {
	return p.core.setTask(i, func() {
		defer func() {
			if r := recover(); r != nil {
				p.core.recordPanic(i, r)
			}
			p.core.strat.SignalTaskComplete(i)
		}()
		p.results[i] = fn()
	})
}

// SetWaitTaskAt installs a wait task that performs the completion barrier
// on a worker thread, runs the reduce, and publishes its result to the
// cell GetResult blocks on. On a zero-size pack this has no effect.
func (p *Pack[R]) SetWaitTaskAt(i int) error {
	return p.core.installWaitTask(i, func() {
		p.core.strat.WaitComplete()
		p.cell.put(p.runReduce(i))
	})
}

// SetReduce records the closure combining per-task results into one R.
func (p *Pack[R]) SetReduce(fn func() R) error {
	if p.core.submitted.Load() {
		return api.ErrPackSubmitted
	}
	p.reduce = fn
	return nil
}

// SetCallback records a per-task completion callback.
func (p *Pack[R]) SetCallback(fn func(i int)) error {
	return p.core.setCallback(fn)
}

// SetInterval tunes the nap between spin checks.
func (p *Pack[R]) SetInterval(d time.Duration) {
	p.core.strat.setInterval(d)
}

// Tasks seals the pack and returns its tasks for pool.SubmitBulk. Every
// non-wait slot must be populated first: workers skip nil tasks silently,
// so a hole would keep Wait from ever returning.
func (p *Pack[R]) Tasks() []api.Task {
	return p.core.takeTasks()
}

// Wait blocks until every real task has signalled completion. After Wait
// returns, every result slot holds its task's value.
func (p *Pack[R]) Wait() {
	p.core.strat.Wait()
}

// ResultAt returns the result of task i. The caller must have observed
// completion of i, via Wait or the callback, before reading.
func (p *Pack[R]) ResultAt(i int) R {
	return p.results[i]
}

// GetResult returns the reduced result. With a wait task installed it
// blocks on the result cell, moving the completion spin onto a worker;
// otherwise it waits in place and runs the reduce inline.
func (p *Pack[R]) GetResult() R {
	if p.core.waitIdx >= 0 {
		return p.cell.get()
	}
	p.Wait()
	if p.reduce != nil {
		return p.reduce()
	}
	var zero R
	return zero
}

// NCompletedTasks returns the number of tasks completed so far.
func (p *Pack[R]) NCompletedTasks() int {
	return p.core.strat.NCompleted()
}

// Completion exposes the pack's wait strategy.
func (p *Pack[R]) Completion() api.Completion {
	return p.core.strat
}

// Err returns the captured panics of this pack's tasks, nil if none.
// Meaningful after Wait.
func (p *Pack[R]) Err() error {
	return p.core.err()
}

// runReduce runs the reduce with panic capture; a panicking reduce is
// recorded and yields the zero R so GetResult still returns.
func (p *Pack[R]) runReduce(i int) (out R) {
	defer func() {
		if r := recover(); r != nil {
			p.core.recordPanic(i, r)
		}
	}()
	if p.reduce != nil {
		out = p.reduce()
	}
	return out
}
