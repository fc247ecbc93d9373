// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker pool lifecycle and submission paths.

package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/momentics/mpmcpool/api"
	"github.com/momentics/mpmcpool/config"
	"github.com/momentics/mpmcpool/core/queue"
)

// Task is the unit of work accepted by the pool.
type Task = api.Task

// Ensure compile-time interface compliance.
var _ api.Executor = (*Pool)(nil)

// Pool owns a dynamic set of workers draining one MPMC task queue.
// All methods are safe for concurrent use.
type Pool struct {
	id    string
	queue *queue.Queue[Task]
	wake  *wakeCoordinator

	active atomic.Bool

	mu      sync.Mutex // structural: workers slice membership
	workers []*worker
	nextID  int

	log        *zap.Logger
	metricsReg prometheus.Registerer
	metrics    *poolMetrics

	submitted atomic.Int64
	completed atomic.Int64
	panics    atomic.Int64

	pin       bool
	laneCap   int
	idleSpins int
	maxNap    time.Duration

	closeOnce sync.Once
}

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	Submitted  int64
	Completed  int64
	Panics     int64
	Workers    int
	QueueDepth int
}

// New creates a pool with size workers, started immediately.
// size must be positive.
func New(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, api.ErrInvalidWorkerCount
	}
	p := &Pool{
		id:        uuid.NewString(),
		wake:      newWakeCoordinator(),
		log:       zap.NewNop(),
		laneCap:   queue.DefaultLaneCapacity,
		idleSpins: 4,
		maxNap:    time.Millisecond,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = queue.New[Task](p.laneCap)
	if p.metricsReg != nil {
		p.metrics = newPoolMetrics(p.metricsReg, p.id, func() float64 {
			return float64(p.queue.SizeApprox())
		})
	}
	p.active.Store(true)

	p.mu.Lock()
	p.spawnLocked(size)
	p.mu.Unlock()

	p.log.Info("pool started",
		zap.String("pool", p.id),
		zap.Int("workers", size))
	return p, nil
}

// NewDefault creates a pool sized to the detected hardware concurrency.
func NewDefault(opts ...Option) *Pool {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	p, _ := New(n, opts...)
	return p
}

// FromConfig creates a pool from a validated configuration. Options apply
// on top of the config.
func FromConfig(cfg config.Config, opts ...Option) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	base := []Option{
		WithLaneCapacity(cfg.LaneCapacity),
		WithIdleSpin(cfg.IdleSpins, time.Duration(cfg.MaxIdleNap)),
	}
	if cfg.PinWorkers {
		base = append(base, WithPinning())
	}
	return New(workers, append(base, opts...)...)
}

// ID returns the pool's instance identity used in logs and metric labels.
func (p *Pool) ID() string {
	return p.id
}

// Size returns the current worker count.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// NewProducerToken mints a token bound to the pool's queue. Submissions
// through the token avoid the shared enqueue head and stay FIFO for the
// producer that owns it.
func (p *Pool) NewProducerToken() *ProducerToken {
	return &ProducerToken{qt: p.queue.NewToken()}
}

// Submit enqueues one task and wakes a worker.
func (p *Pool) Submit(task Task) error {
	if !p.active.Load() {
		return api.ErrPoolClosed
	}
	p.queue.Enqueue(task)
	p.noteSubmitted(1)
	p.wake.wakeOne()
	return nil
}

// SubmitWith enqueues one task through the producer token.
func (p *Pool) SubmitWith(token *ProducerToken, task Task) error {
	if !p.active.Load() {
		return api.ErrPoolClosed
	}
	p.queue.EnqueueWith(token.qt, task)
	p.noteSubmitted(1)
	p.wake.wakeOne()
	return nil
}

// SubmitBulk enqueues a batch atomically. An empty batch is a no-op: no
// enqueue, no wake-up.
func (p *Pool) SubmitBulk(tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if !p.active.Load() {
		return api.ErrPoolClosed
	}
	p.queue.EnqueueBulk(tasks)
	p.noteSubmitted(len(tasks))
	p.wakeForBatch(len(tasks))
	return nil
}

// SubmitBulkWith enqueues a batch atomically through the producer token.
func (p *Pool) SubmitBulkWith(token *ProducerToken, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if !p.active.Load() {
		return api.ErrPoolClosed
	}
	p.queue.EnqueueBulkWith(token.qt, tasks)
	p.noteSubmitted(len(tasks))
	p.wakeForBatch(len(tasks))
	return nil
}

// Expand grows the pool by n workers. n <= 0 is a no-op.
func (p *Pool) Expand(n int) {
	if n <= 0 || !p.active.Load() {
		return
	}
	p.mu.Lock()
	p.spawnLocked(n)
	size := len(p.workers)
	p.mu.Unlock()
	p.log.Info("pool expanded",
		zap.String("pool", p.id),
		zap.Int("added", n),
		zap.Int("workers", size))
}

// Shrink retires the last min(n, size) workers: their active flags drop,
// every parked worker is woken, and Shrink blocks until exactly the
// targeted workers have exited.
func (p *Pool) Shrink(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	k := n
	if k > len(p.workers) {
		k = len(p.workers)
	}
	if k == 0 {
		p.mu.Unlock()
		return
	}
	victims := p.workers[len(p.workers)-k:]
	for _, w := range victims {
		w.active.Store(false)
	}
	p.wake.wakeAll()
	for _, w := range victims {
		<-w.stopped
	}
	p.workers = p.workers[:len(p.workers)-k]
	size := len(p.workers)
	if p.metrics != nil {
		p.metrics.workers.Set(float64(size))
	}
	p.mu.Unlock()
	p.log.Info("pool shrunk",
		zap.String("pool", p.id),
		zap.Int("removed", k),
		zap.Int("workers", size))
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Submitted:  p.submitted.Load(),
		Completed:  p.completed.Load(),
		Panics:     p.panics.Load(),
		Workers:    p.Size(),
		QueueDepth: p.queue.SizeApprox(),
	}
}

// Close shuts the pool down: the active flag drops, every worker is woken
// and joined. Tasks still queued are abandoned; in-flight tasks run to
// completion. Close is idempotent and never deadlocks regardless of how
// much work remains queued.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.active.Store(false)
		p.wake.wakeAll()
		p.mu.Lock()
		workers := p.workers
		p.workers = nil
		if p.metrics != nil {
			p.metrics.workers.Set(0)
		}
		p.mu.Unlock()
		for _, w := range workers {
			<-w.stopped
		}
		p.log.Info("pool closed",
			zap.String("pool", p.id),
			zap.Int64("completed", p.completed.Load()),
			zap.Int("abandoned", p.queue.SizeApprox()))
	})
}

// spawnLocked starts n workers. Caller holds p.mu.
func (p *Pool) spawnLocked(n int) {
	for i := 0; i < n; i++ {
		w := &worker{id: p.nextID, stopped: make(chan struct{})}
		p.nextID++
		w.active.Store(true)
		p.workers = append(p.workers, w)
		go p.runWorker(w)
	}
	if p.metrics != nil {
		p.metrics.workers.Set(float64(len(p.workers)))
	}
}

func (p *Pool) noteSubmitted(n int) {
	p.submitted.Add(int64(n))
	if p.metrics != nil {
		p.metrics.submitted.Add(float64(n))
	}
}

// wakeForBatch wakes one worker for a single task and everyone for more.
func (p *Pool) wakeForBatch(n int) {
	if n == 1 {
		p.wake.wakeOne()
		return
	}
	p.wake.wakeAll()
}
