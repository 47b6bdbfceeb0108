// File: api/control.go
// Package api defines the Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages reloadable allocator defaults, per-pool statistics, and
// debug probes. Pools register a stats source when created through the
// facade and unregister on destroy.
type Control interface {
	// Defaults returns the configuration applied to pools created without
	// explicit parameters.
	Defaults() PoolDefaults

	// SetDefaults replaces the defaults and notifies reload listeners.
	// Fails with ErrInvalidArgument when ItemsPerBlock is not positive.
	SetDefaults(d PoolDefaults) error

	// OnReload registers a listener invoked with each new defaults value.
	OnReload(fn func(PoolDefaults))

	// RegisterPool attaches a live stats source under a pool name.
	RegisterPool(name string, source func() PoolStats)

	// UnregisterPool detaches a pool's stats source.
	UnregisterPool(name string)

	// Stats polls every registered pool.
	Stats() map[string]PoolStats

	// Totals sums Stats across all registered pools.
	Totals() PoolStats

	// RegisterDebugProbe inserts a named debug hook.
	RegisterDebugProbe(name string, fn func() any)

	// UnregisterDebugProbe removes a debug hook.
	UnregisterDebugProbe(name string)

	// DumpState returns the output of every debug probe.
	DumpState() map[string]any
}
