// File: taskpack/blocking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-signal blocking strategy: every signal takes a short mutex section
// and notifies a condvar, so neither producers nor the wait task ever
// spin. Best for packs of many long tasks.

package taskpack

import (
	"sync"
	"time"
)

type blockingWait struct {
	waitBase
	mu   sync.Mutex
	cond *sync.Cond
	once sync.Once
	flag chan struct{}
}

func newBlockingWait(target int, interval time.Duration) *blockingWait {
	s := &blockingWait{flag: make(chan struct{})}
	s.cond = sync.NewCond(&s.mu)
	s.setTarget(target)
	s.setInterval(interval)
	return s
}

func (s *blockingWait) SignalTaskComplete(i int) {
	n := s.signalBase(i)
	s.mu.Lock()
	s.cond.Broadcast()
	s.mu.Unlock()
	if n >= s.target.Load() {
		s.once.Do(func() { close(s.flag) })
	}
}

func (s *blockingWait) Wait() {
	if s.done.Load() >= s.target.Load() {
		return
	}
	<-s.flag
}

// WaitComplete blocks on the signal condvar until every real task has
// signalled, then publishes the flag for secondary waiters.
func (s *blockingWait) WaitComplete() {
	s.mu.Lock()
	for s.done.Load() < s.target.Load() {
		s.cond.Wait()
	}
	s.mu.Unlock()
	s.once.Do(func() { close(s.flag) })
}
