// File: internal/affinity/affinity_other.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// No-op affinity for platforms without sched_setaffinity support.

package affinity

func platformPin(cpuID int) error { return nil }

func platformUnpin() error { return nil }
