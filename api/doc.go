// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the public contracts of mpmcpool: the task type,
// the MPMC queue capability, the executor surface, the completion-wait
// contract, thread affinity, and the shared error variables.
//
// The package is intentionally dependency-free so implementations and
// callers can agree on contracts without pulling anything else in.
package api
