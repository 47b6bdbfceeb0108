// File: pool/lock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock policy selection. Every pool operation holds its policy's lock for
// the whole critical section; the policy is fixed at construction.

package pool

import (
	"sync"

	"github.com/momentics/fixedpool/api"
	"github.com/momentics/fixedpool/core/concurrency"
)

// noLock is the zero-overhead policy for single-goroutine pools.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// lockerFor maps a policy tag to its sync.Locker implementation.
func lockerFor(p api.LockPolicy) sync.Locker {
	switch p {
	case api.LockNone:
		return noLock{}
	case api.LockSpin:
		return new(concurrency.SpinLock)
	default:
		return new(sync.Mutex)
	}
}
