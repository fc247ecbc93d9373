// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-generic affinity surface; the platform files implement
// platformPin / platformUnpin.

package affinity

import (
	"runtime"

	"github.com/momentics/mpmcpool/api"
)

// Pinner implements api.Affinity for the current OS thread.
type Pinner struct{}

var _ api.Affinity = Pinner{}

// Pin locks the current OS thread to cpuID. cpuID is taken modulo the
// number of logical CPUs.
func (Pinner) Pin(cpuID int) error {
	if cpuID < 0 {
		return api.ErrAffinityNotSupported
	}
	return platformPin(cpuID % runtime.NumCPU())
}

// Unpin restores the full CPU mask.
func (Pinner) Unpin() error {
	return platformUnpin()
}
