//go:build windows

// File: pool/policy_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/fixedpool/api"

// DefaultLockPolicy returns the measured-best policy for this platform.
// Windows kernel mutexes are expensive relative to the pool's short
// critical sections; spinning wins there.
func DefaultLockPolicy() api.LockPolicy { return api.LockSpin }
