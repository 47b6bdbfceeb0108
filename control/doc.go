// Package control
// Author: momentics <momentics@gmail.com>
//
// Reloadable allocator defaults, per-pool statistics, and debug
// introspection for fixedpool.
//
// ConfigStore holds the typed defaults (items per block, lock policy)
// applied when pools are created through the facade, and notifies
// listeners when they change. PoolStatsRegistry polls live api.PoolStats
// sources so observers see current counters, not stale snapshots.
// DebugProbes exposes ad-hoc hooks (live-set size, freelist depth) for
// leak hunting.
package control
