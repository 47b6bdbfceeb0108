// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"testing"

	"github.com/momentics/fixedpool/api"
	"github.com/momentics/fixedpool/core/concurrency"
)

func TestLockerFor(t *testing.T) {
	if _, ok := lockerFor(api.LockNone).(noLock); !ok {
		t.Error("LockNone must map to the no-op locker")
	}
	if _, ok := lockerFor(api.LockMutex).(*sync.Mutex); !ok {
		t.Error("LockMutex must map to sync.Mutex")
	}
	if _, ok := lockerFor(api.LockSpin).(*concurrency.SpinLock); !ok {
		t.Error("LockSpin must map to the spin lock")
	}
}

func TestDefaultLockPolicy(t *testing.T) {
	p := DefaultLockPolicy()
	if p != api.LockMutex && p != api.LockSpin {
		t.Errorf("platform default must be a synchronizing policy, got %v", p)
	}
}
