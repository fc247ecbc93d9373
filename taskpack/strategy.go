// File: taskpack/strategy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared state of the completion-wait strategies. Each strategy stands
// alone behind the api.Completion contract; waitBase carries only the
// counters, target, spin interval, and callback they all need.
//
// Go's sync/atomic operations are sequentially consistent, so the counter
// increment publishes the task's side effects to any waiter that observes
// the final count; the blocking strategies additionally close a channel,
// which carries its own happens-before edge for secondary waiters.

package taskpack

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/momentics/mpmcpool/api"
)

// strategy is the internal surface packs drive; the exported behavior is
// api.Completion.
type strategy interface {
	api.Completion
	setTarget(n int)
	setCallback(fn func(int))
	setInterval(d time.Duration)
}

type waitBase struct {
	target   atomic.Int64
	done     atomic.Int64 // signals finished, callback included; waiters watch this
	entered  atomic.Int64 // signals started; reported by NCompleted
	interval atomic.Int64 // nanoseconds between spin checks, 0 busy-spins
	callback func(int)
}

func (b *waitBase) setTarget(n int)             { b.target.Store(int64(n)) }
func (b *waitBase) setCallback(fn func(int))    { b.callback = fn }
func (b *waitBase) setInterval(d time.Duration) { b.interval.Store(int64(d)) }

// NCompleted returns the number of tasks that have signalled so far.
func (b *waitBase) NCompleted() int {
	return int(b.entered.Load())
}

// signalBase increments the completed count, fires the callback, and only
// then advances the counter waiters watch, so a waiter that returns has
// seen every callback finish. It returns the new waiter-side count.
func (b *waitBase) signalBase(i int) int64 {
	b.entered.Add(1)
	if b.callback != nil {
		b.callback(i)
	}
	return b.done.Add(1)
}

// spinUntilDone polls the counter, yielding or napping per the interval.
func (b *waitBase) spinUntilDone() {
	for b.done.Load() < b.target.Load() {
		if d := time.Duration(b.interval.Load()); d > 0 {
			time.Sleep(d)
		} else {
			runtime.Gosched()
		}
	}
}
