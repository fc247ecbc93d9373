// File: taskpack/cell.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot result cell: the wait task publishes the reduce result, the
// producer blocks on it via GetResult.

package taskpack

import "sync"

type resultCell[R any] struct {
	ch   chan R
	once sync.Once
	val  R
}

func newResultCell[R any]() *resultCell[R] {
	return &resultCell[R]{ch: make(chan R, 1)}
}

// put publishes the value. Extra puts are dropped; only the first wins.
func (c *resultCell[R]) put(v R) {
	select {
	case c.ch <- v:
	default:
	}
}

// get blocks until the value is published, then keeps returning it.
func (c *resultCell[R]) get() R {
	c.once.Do(func() { c.val = <-c.ch })
	return c.val
}
