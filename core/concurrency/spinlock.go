// File: core/concurrency/spinlock.go
// Package concurrency provides low-level synchronization primitives for
// the allocator hot path.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"runtime"
	"sync/atomic"
)

const cacheLinePad = 64

const (
	unlocked uint32 = iota
	locked
)

// SpinLock is a busy-wait mutual exclusion flag. A successful Lock observes
// every write made before the previous Unlock: Swap carries acquire
// semantics, Store carries release semantics.
//
// SpinLock implements sync.Locker. It beats the OS mutex under the short
// critical sections of pool operations on platforms with expensive kernel
// mutexes; see pool.DefaultLockPolicy.
type SpinLock struct {
	state atomic.Uint32
	_     [cacheLinePad - 4]byte
}

// Lock spins until the flag transitions from unlocked to locked.
func (s *SpinLock) Lock() {
	for s.state.Swap(locked) == locked {
		runtime.Gosched()
	}
}

// Unlock releases the flag. Must only be called by the goroutine that
// holds the lock.
func (s *SpinLock) Unlock() {
	s.state.Store(unlocked)
}
