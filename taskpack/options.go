// File: taskpack/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pack construction options: strategy selection, spin interval, callback.

package taskpack

import "time"

type strategyKind int

const (
	strategySpin strategyKind = iota
	strategySpinBlock
	strategyBlocking
)

type packOptions struct {
	kind     strategyKind
	interval time.Duration
	callback func(int)
}

// Option customizes pack construction.
type Option func(*packOptions)

// WithSpinWait selects the spin strategy (the default).
func WithSpinWait() Option {
	return func(o *packOptions) { o.kind = strategySpin }
}

// WithSpinBlockWait selects the spin-then-block strategy.
func WithSpinBlockWait() Option {
	return func(o *packOptions) { o.kind = strategySpinBlock }
}

// WithBlockingWait selects the per-signal blocking strategy.
func WithBlockingWait() Option {
	return func(o *packOptions) { o.kind = strategyBlocking }
}

// WithInterval sets the nap between spin checks; 0 busy-spins.
func WithInterval(d time.Duration) Option {
	return func(o *packOptions) { o.interval = d }
}

// WithCallback records a callback invoked exactly once per completed
// task, after the completion counter increment, with the task's index.
func WithCallback(fn func(i int)) Option {
	return func(o *packOptions) { o.callback = fn }
}

func buildStrategy(n int, o packOptions) strategy {
	var s strategy
	switch o.kind {
	case strategySpinBlock:
		s = newSpinBlockWait(n, o.interval)
	case strategyBlocking:
		s = newBlockingWait(n, o.interval)
	default:
		s = newSpinWait(n, o.interval)
	}
	if o.callback != nil {
		s.setCallback(o.callback)
	}
	return s
}
