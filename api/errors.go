// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error variables used across the mpmcpool library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidWorkerCount   = fmt.Errorf("invalid worker count")
	ErrPoolClosed           = fmt.Errorf("pool is closed")
	ErrSlotOccupied         = fmt.Errorf("task slot is occupied")
	ErrWaitTaskInstalled    = fmt.Errorf("wait task already installed")
	ErrPackSubmitted        = fmt.Errorf("pack already submitted")
	ErrAffinityNotSupported = fmt.Errorf("CPU affinity not supported")
)
