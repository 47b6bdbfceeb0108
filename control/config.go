// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed, reloadable allocator defaults. The facade reads the current
// value at every Create, so an update applies to all pools created after
// it without touching existing ones.

package control

import (
	"sync"

	"github.com/momentics/fixedpool/api"
)

// ConfigStore holds the current pool defaults with atomic snapshot and
// listener support. Listeners run synchronously inside Update so tests
// and reload chains observe a deterministic order.
type ConfigStore struct {
	mu        sync.RWMutex
	defaults  api.PoolDefaults
	listeners []func(api.PoolDefaults)
}

// NewConfigStore initializes a store with the given defaults.
func NewConfigStore(d api.PoolDefaults) *ConfigStore {
	return &ConfigStore{defaults: d}
}

// Defaults returns the current value.
func (cs *ConfigStore) Defaults() api.PoolDefaults {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.defaults
}

// Update replaces the defaults and notifies listeners with the new value.
// Fails with api.ErrInvalidArgument when ItemsPerBlock is not positive;
// the stored value is unchanged then.
func (cs *ConfigStore) Update(d api.PoolDefaults) error {
	if d.ItemsPerBlock <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
			WithContext("items_per_block", d.ItemsPerBlock)
	}
	cs.mu.Lock()
	cs.defaults = d
	listeners := make([]func(api.PoolDefaults), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn(d)
	}
	return nil
}

// OnReload registers a listener invoked with each accepted update.
func (cs *ConfigStore) OnReload(fn func(api.PoolDefaults)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
