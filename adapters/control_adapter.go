// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control over the control package's
// typed stores: pool defaults, per-pool stats sources, debug probes.

package adapters

import (
	"github.com/momentics/fixedpool/api"
	"github.com/momentics/fixedpool/control"
)

type ControlAdapter struct {
	config *control.ConfigStore
	stats  *control.PoolStatsRegistry
	debug  *control.DebugProbes
}

var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter creates an adapter seeded with the given defaults.
func NewControlAdapter(d api.PoolDefaults) api.Control {
	return &ControlAdapter{
		config: control.NewConfigStore(d),
		stats:  control.NewPoolStatsRegistry(),
		debug:  control.NewDebugProbes(),
	}
}

func (c *ControlAdapter) Defaults() api.PoolDefaults {
	return c.config.Defaults()
}

func (c *ControlAdapter) SetDefaults(d api.PoolDefaults) error {
	return c.config.Update(d)
}

func (c *ControlAdapter) OnReload(fn func(api.PoolDefaults)) {
	c.config.OnReload(fn)
}

func (c *ControlAdapter) RegisterPool(name string, source func() api.PoolStats) {
	c.stats.Register(name, source)
}

func (c *ControlAdapter) UnregisterPool(name string) {
	c.stats.Unregister(name)
}

func (c *ControlAdapter) Stats() map[string]api.PoolStats {
	return c.stats.Snapshot()
}

func (c *ControlAdapter) Totals() api.PoolStats {
	return c.stats.Totals()
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

func (c *ControlAdapter) UnregisterDebugProbe(name string) {
	c.debug.Unregister(name)
}

func (c *ControlAdapter) DumpState() map[string]any {
	return c.debug.DumpState()
}
