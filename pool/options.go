// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for pool construction.

package pool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option customizes pool initialization.
type Option func(*Pool)

// WithLogger attaches a structured logger. Default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pool) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMetrics registers pool metrics with the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(p *Pool) {
		p.metricsReg = reg
	}
}

// WithPinning pins each worker's OS thread to a CPU.
func WithPinning() Option {
	return func(p *Pool) {
		p.pin = true
	}
}

// WithLaneCapacity overrides the fast-path ring size of each queue lane.
func WithLaneCapacity(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.laneCap = n
		}
	}
}

// WithIdleSpin tunes how long a worker naps on an empty queue before
// parking: spins escalating naps bounded by maxNap each.
func WithIdleSpin(spins int, maxNap time.Duration) Option {
	return func(p *Pool) {
		if spins >= 0 {
			p.idleSpins = spins
		}
		if maxNap > 0 {
			p.maxNap = maxNap
		}
	}
}
