// File: api/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The unit of work executed by pool workers.

package api

// Task is an opaque unit of work. It captures whatever state its producer
// needs and returns nothing; results travel through task-pack result slots.
//
// A nil Task is legal in a queue and is skipped silently by workers.
type Task func()
