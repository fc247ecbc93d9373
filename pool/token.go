// File: pool/token.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Producer token handle minted by the pool.

package pool

import "github.com/momentics/mpmcpool/core/queue"

// ProducerToken grants a producer a private queue lane: faster enqueues
// and FIFO order for that producer. A token is bound to exactly one pool
// and must not outlive it.
type ProducerToken struct {
	qt *queue.Token[Task]
}
