// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"errors"
	"testing"

	"github.com/momentics/fixedpool/api"
)

func TestConfigStore_UpdateNotifies(t *testing.T) {
	cs := NewConfigStore(api.PoolDefaults{ItemsPerBlock: 1024, Policy: api.LockMutex})

	var got api.PoolDefaults
	cs.OnReload(func(d api.PoolDefaults) { got = d })

	want := api.PoolDefaults{ItemsPerBlock: 256, Policy: api.LockSpin}
	if err := cs.Update(want); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got != want {
		t.Errorf("listener saw %+v, want %+v", got, want)
	}
	if cs.Defaults() != want {
		t.Errorf("Defaults() = %+v, want %+v", cs.Defaults(), want)
	}
}

func TestConfigStore_RejectsInvalidUpdate(t *testing.T) {
	initial := api.PoolDefaults{ItemsPerBlock: 64, Policy: api.LockMutex}
	cs := NewConfigStore(initial)

	err := cs.Update(api.PoolDefaults{ItemsPerBlock: 0})
	if !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if cs.Defaults() != initial {
		t.Errorf("rejected update must not change the stored defaults")
	}
}

func TestPoolStatsRegistry_SnapshotAndTotals(t *testing.T) {
	r := NewPoolStatsRegistry()
	r.Register("pool.1", func() api.PoolStats {
		return api.PoolStats{TotalAlloc: 10, TotalFree: 4, InUse: 6, Blocks: 1, BytesOwned: 4096}
	})
	r.Register("pool.2", func() api.PoolStats {
		return api.PoolStats{TotalAlloc: 3, TotalFree: 1, InUse: 2, Blocks: 2, BytesOwned: 8192}
	})

	snap := r.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(snap))
	}
	if snap["pool.1"].InUse != 6 {
		t.Errorf("pool.1 InUse = %d, want 6", snap["pool.1"].InUse)
	}

	totals := r.Totals()
	if totals.InUse != 8 || totals.Blocks != 3 || totals.BytesOwned != 12288 {
		t.Errorf("unexpected totals: %+v", totals)
	}

	r.Unregister("pool.1")
	if _, ok := r.Snapshot()["pool.1"]; ok {
		t.Error("unregistered pool must leave the snapshot")
	}
}

func TestDebugProbes_DumpState(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("pool.1.live", func() any { return 42 })

	if got := dp.DumpState()["pool.1.live"]; got != 42 {
		t.Errorf("probe output = %v, want 42", got)
	}

	dp.Unregister("pool.1.live")
	if len(dp.DumpState()) != 0 {
		t.Error("unregistered probe must leave the dump")
	}
}
