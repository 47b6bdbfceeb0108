//go:build !windows

// File: pool/policy_default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/fixedpool/api"

// DefaultLockPolicy returns the measured-best policy for this platform.
// Non-Windows futex-backed mutexes outperform spinning under contention.
func DefaultLockPolicy() api.LockPolicy { return api.LockMutex }
