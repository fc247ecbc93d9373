// File: taskpack/spinblock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spin-then-block strategy: signalling stays lock-free; waiters block on
// a completion flag. The flag is a channel closed exactly once, either by
// the final signal or by an embedded wait task spinning the counter down.
// Good when many waiters exist and busy-waiting is unacceptable.

package taskpack

import (
	"sync"
	"time"
)

type spinBlockWait struct {
	waitBase
	once sync.Once
	flag chan struct{}
}

func newSpinBlockWait(target int, interval time.Duration) *spinBlockWait {
	s := &spinBlockWait{flag: make(chan struct{})}
	s.setTarget(target)
	s.setInterval(interval)
	return s
}

func (s *spinBlockWait) SignalTaskComplete(i int) {
	if s.signalBase(i) >= s.target.Load() {
		s.once.Do(func() { close(s.flag) })
	}
}

// Wait blocks on the flag; the channel close gives every waiter the
// happens-before edge that makes all result slots visible.
func (s *spinBlockWait) Wait() {
	if s.done.Load() >= s.target.Load() {
		return
	}
	<-s.flag
}

// WaitComplete spins the counter down on a worker thread, then publishes
// the flag for secondary waiters.
func (s *spinBlockWait) WaitComplete() {
	s.spinUntilDone()
	s.once.Do(func() { close(s.flag) })
}
