// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Per-pool statistics. Pools register a live source rather than pushing
// snapshots, so a poll always reflects the counters at call time.

package control

import (
	"sync"

	"github.com/momentics/fixedpool/api"
)

// PoolStatsRegistry tracks live api.PoolStats sources by pool name.
type PoolStatsRegistry struct {
	mu      sync.RWMutex
	sources map[string]func() api.PoolStats
}

// NewPoolStatsRegistry creates an empty registry.
func NewPoolStatsRegistry() *PoolStatsRegistry {
	return &PoolStatsRegistry{
		sources: make(map[string]func() api.PoolStats),
	}
}

// Register attaches a stats source under name, replacing any previous one.
func (r *PoolStatsRegistry) Register(name string, source func() api.PoolStats) {
	r.mu.Lock()
	r.sources[name] = source
	r.mu.Unlock()
}

// Unregister detaches a source, for pools destroyed at runtime.
func (r *PoolStatsRegistry) Unregister(name string) {
	r.mu.Lock()
	delete(r.sources, name)
	r.mu.Unlock()
}

// Snapshot polls every source. Each pool's counters are internally
// consistent (taken under its own lock); pools are polled one after
// another, not atomically across the registry.
func (r *PoolStatsRegistry) Snapshot() map[string]api.PoolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]api.PoolStats, len(r.sources))
	for name, source := range r.sources {
		out[name] = source()
	}
	return out
}

// Totals sums the snapshot across all pools.
func (r *PoolStatsRegistry) Totals() api.PoolStats {
	var total api.PoolStats
	for _, s := range r.Snapshot() {
		total.TotalAlloc += s.TotalAlloc
		total.TotalFree += s.TotalFree
		total.InUse += s.InUse
		total.Blocks += s.Blocks
		total.BytesOwned += s.BytesOwned
	}
	return total
}
