// File: taskpack/pack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared pack core and the void pack variant.

package taskpack

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/momentics/mpmcpool/api"
)

// packCore carries everything the value and void variants share: the
// ordered task slots, the wait strategy, the embedded wait-task index,
// and captured panics.
type packCore struct {
	tasks     []api.Task
	strat     strategy
	waitIdx   int
	submitted atomic.Bool

	panicMu  sync.Mutex
	panicErr error
}

func newCore(n int, opts []Option) packCore {
	var o packOptions
	for _, opt := range opts {
		opt(&o)
	}
	return packCore{
		tasks:   make([]api.Task, n),
		strat:   buildStrategy(n, o),
		waitIdx: -1,
	}
}

// setTask stores a wrapped closure into slot i. Re-setting a plain task
// slot is allowed before submission; the wait-task slot is not.
func (c *packCore) setTask(i int, task api.Task) error {
	if c.submitted.Load() {
		return api.ErrPackSubmitted
	}
	if i == c.waitIdx {
		return api.ErrSlotOccupied
	}
	c.tasks[i] = task
	return nil
}

// installWaitTask places the strategy's wait closure into an empty slot
// and lowers the completion target by one. At most one wait task per
// pack; its index is free to be anywhere in the pack.
func (c *packCore) installWaitTask(i int, run api.Task) error {
	if c.submitted.Load() {
		return api.ErrPackSubmitted
	}
	if len(c.tasks) == 0 {
		return nil
	}
	if c.waitIdx >= 0 {
		return api.ErrWaitTaskInstalled
	}
	if c.tasks[i] != nil {
		return api.ErrSlotOccupied
	}
	c.waitIdx = i
	c.tasks[i] = run
	c.strat.setTarget(len(c.tasks) - 1)
	return nil
}

// takeTasks seals the pack and hands its tasks over for bulk submission.
func (c *packCore) takeTasks() []api.Task {
	c.submitted.Store(true)
	return c.tasks
}

func (c *packCore) setCallback(fn func(int)) error {
	if c.submitted.Load() {
		return api.ErrPackSubmitted
	}
	c.strat.setCallback(fn)
	return nil
}

func (c *packCore) recordPanic(i int, r any) {
	c.panicMu.Lock()
	c.panicErr = multierr.Append(c.panicErr, fmt.Errorf("task %d panicked: %v", i, r))
	c.panicMu.Unlock()
}

func (c *packCore) err() error {
	c.panicMu.Lock()
	defer c.panicMu.Unlock()
	return c.panicErr
}

// VoidPack is a pack of tasks producing no results.
type VoidPack struct {
	core packCore
}

// NewVoid creates a void pack with n empty task slots.
func NewVoid(n int, opts ...Option) *VoidPack {
	return &VoidPack{core: newCore(n, opts)}
}

// SetTaskAt stores fn into slot i. The stored closure signals completion
// as its final act, on panic paths included.
func (p *VoidPack) SetTaskAt(i int, fn func()) error {
	return p.core.setTask(i, func() {
		defer func() {
			if r := recover(); r != nil {
				p.core.recordPanic(i, r)
			}
			p.core.strat.SignalTaskComplete(i)
		}()
		fn()
	})
}

// SetWaitTaskAt installs the strategy's completion barrier into slot i.
// On a zero-size pack this has no effect.
func (p *VoidPack) SetWaitTaskAt(i int) error {
	return p.core.installWaitTask(i, func() {
		p.core.strat.WaitComplete()
	})
}

// SetCallback records a per-task completion callback.
func (p *VoidPack) SetCallback(fn func(i int)) error {
	return p.core.setCallback(fn)
}

// SetInterval tunes the nap between spin checks.
func (p *VoidPack) SetInterval(d time.Duration) {
	p.core.strat.setInterval(d)
}

// Tasks seals the pack and returns its tasks for pool.SubmitBulk. Every
// non-wait slot must be populated first: workers skip nil tasks silently,
// so a hole would keep Wait from ever returning.
func (p *VoidPack) Tasks() []api.Task {
	return p.core.takeTasks()
}

// Wait blocks until every real task has signalled completion.
func (p *VoidPack) Wait() {
	p.core.strat.Wait()
}

// NCompletedTasks returns the number of tasks completed so far.
func (p *VoidPack) NCompletedTasks() int {
	return p.core.strat.NCompleted()
}

// Completion exposes the pack's wait strategy.
func (p *VoidPack) Completion() api.Completion {
	return p.core.strat
}

// Err returns the captured panics of this pack's tasks, nil if none.
// Meaningful after Wait.
func (p *VoidPack) Err() error {
	return p.core.err()
}
