// File: taskpack/spin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Spin strategy: waiters poll the counter. Lowest completion latency,
// highest CPU; suited to small packs of short tasks.

package taskpack

import "time"

type spinWait struct {
	waitBase
}

func newSpinWait(target int, interval time.Duration) *spinWait {
	s := &spinWait{}
	s.setTarget(target)
	s.setInterval(interval)
	return s
}

// SignalTaskComplete is pure atomic counting plus the optional callback.
func (s *spinWait) SignalTaskComplete(i int) {
	s.signalBase(i)
}

func (s *spinWait) Wait() {
	s.spinUntilDone()
}

func (s *spinWait) WaitComplete() {
	s.spinUntilDone()
}
