// File: internal/affinity/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package affinity pins worker OS threads to CPUs. The Linux implementation
// uses sched_setaffinity; other platforms are no-ops. Callers must hold the
// thread with runtime.LockOSThread before pinning.
package affinity
