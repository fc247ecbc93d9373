// File: pool/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Prometheus collectors for pool observability, labelled by pool instance.

package pool

import "github.com/prometheus/client_golang/prometheus"

type poolMetrics struct {
	submitted prometheus.Counter
	completed prometheus.Counter
	panics    prometheus.Counter
	workers   prometheus.Gauge
	depth     prometheus.GaugeFunc
}

func newPoolMetrics(reg prometheus.Registerer, id string, depth func() float64) *poolMetrics {
	labels := prometheus.Labels{"pool": id}
	m := &poolMetrics{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "mpmcpool_tasks_submitted_total",
			Help:        "Tasks accepted by the pool.",
			ConstLabels: labels,
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "mpmcpool_tasks_completed_total",
			Help:        "Tasks executed to completion, panics included.",
			ConstLabels: labels,
		}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "mpmcpool_task_panics_total",
			Help:        "Tasks that panicked and were recovered.",
			ConstLabels: labels,
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "mpmcpool_workers",
			Help:        "Current worker count.",
			ConstLabels: labels,
		}),
		depth: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "mpmcpool_queue_depth",
			Help:        "Approximate queued task count.",
			ConstLabels: labels,
		}, depth),
	}
	reg.MustRegister(m.submitted, m.completed, m.panics, m.workers, m.depth)
	return m
}
