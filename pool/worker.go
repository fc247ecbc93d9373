// File: pool/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker dispatch loop: dequeue fast path, escalating idle backoff, then
// park on the wake coordinator. Panics are caught at the dispatch boundary
// so a worker survives any task.

package pool

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/momentics/mpmcpool/internal/affinity"
)

type worker struct {
	id      int
	active  atomic.Bool
	stopped chan struct{}
}

// runWorker is the body of one worker goroutine. It exits when either the
// pool's active flag or its own flag goes false; a worker retired by
// Shrink leaves remaining work to the survivors.
func (p *Pool) runWorker(w *worker) {
	defer close(w.stopped)

	if p.pin {
		runtime.LockOSThread()
		var pinner affinity.Pinner
		if err := pinner.Pin(w.id); err != nil {
			p.log.Warn("worker pin failed",
				zap.String("pool", p.id),
				zap.Int("worker", w.id),
				zap.Error(err))
		}
		defer func() {
			pinner.Unpin()
			runtime.UnlockOSThread()
		}()
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Microsecond
	bo.MaxInterval = p.maxNap
	bo.RandomizationFactor = 0

	idle := 0
	for p.active.Load() && w.active.Load() {
		if task, ok := p.queue.TryDequeue(); ok {
			idle = 0
			bo.Reset()
			p.runTask(task)
			continue
		}
		// Nap a few times with growing intervals before taking the
		// condvar; most empty windows are shorter than a park/wake
		// round trip.
		if idle < p.idleSpins {
			idle++
			time.Sleep(bo.NextBackOff())
			continue
		}
		p.wake.park(func() bool {
			return !p.active.Load() || !w.active.Load() || p.queue.SizeApprox() > 0
		})
		idle = 0
		bo.Reset()
	}
}

// runTask executes one dequeued task. Nil tasks are skipped silently.
func (p *Pool) runTask(task Task) {
	if task == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.panics.Add(1)
			if p.metrics != nil {
				p.metrics.panics.Inc()
			}
			p.log.Error("task panicked",
				zap.String("pool", p.id),
				zap.Any("panic", r),
				zap.Stack("stack"))
		}
		p.completed.Add(1)
		if p.metrics != nil {
			p.metrics.completed.Inc()
		}
	}()
	task()
}
