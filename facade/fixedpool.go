// File: facade/fixedpool.go
// Unified facade layer for the fixedpool library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the FixedPool struct, which aggregates pool managers
// behind opaque pointer-sized handles, the boundary shape used when the
// allocator is embedded into foreign runtimes. It exposes create/destroy,
// single and contiguous-run allocation, deallocation, and the acquire/
// release pair for flat live-set snapshots, plus the Control interface for
// defaults, metrics, and debug probes.

package facade

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/momentics/fixedpool/adapters"
	"github.com/momentics/fixedpool/api"
	"github.com/momentics/fixedpool/pool"
)

// Handle is an opaque pointer-sized token referring to one pool manager.
// The zero Handle is never issued.
type Handle uintptr

// Config seeds the facade's reloadable defaults at construction time.
// Later changes go through Control.SetDefaults and apply to pools created
// after the update.
type Config struct {
	DefaultItemsPerBlock int            // used when Create is called with itemsPerBlock == 0
	Policy               api.LockPolicy // lock policy for new pools
	EnableMetrics        bool           // publish per-pool counters via Control
	EnableDebug          bool           // register per-pool debug probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		DefaultItemsPerBlock: 1024,
		Policy:               pool.DefaultLockPolicy(),
		EnableMetrics:        true,
		EnableDebug:          true,
	}
}

// FixedPool is the main facade type.
type FixedPool struct {
	control api.Control
	config  *Config

	mu    sync.RWMutex
	pools map[Handle]*pool.Manager
	next  Handle

	// Snapshot slices are recycled between AcquireItemList/ReleaseItemList
	// cycles so the boundary allocates only when a snapshot outgrows every
	// previously released one.
	lists *pool.SyncPool[[]unsafe.Pointer]
}

// New constructs a FixedPool facade with the given configuration.
func New(cfg *Config) *FixedPool {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &FixedPool{
		control: adapters.NewControlAdapter(api.PoolDefaults{
			ItemsPerBlock: cfg.DefaultItemsPerBlock,
			Policy:        cfg.Policy,
		}),
		config: cfg,
		pools:  make(map[Handle]*pool.Manager),
		lists: pool.NewSyncPool(func() []unsafe.Pointer {
			return nil
		}),
	}
}

// Create builds a pool for items of itemSize bytes and returns its handle.
// itemsPerBlock == 0 selects the current default; the lock policy always
// comes from the current defaults. Fails with api.ErrInvalidItemSize or
// api.ErrOutOfMemory; no handle is issued then.
func (f *FixedPool) Create(itemSize, itemsPerBlock int) (Handle, error) {
	defaults := f.control.Defaults()
	if itemsPerBlock == 0 {
		itemsPerBlock = defaults.ItemsPerBlock
	}
	m, err := pool.NewManager(itemSize, itemsPerBlock,
		pool.WithLockPolicy(defaults.Policy))
	if err != nil {
		return 0, err
	}

	f.mu.Lock()
	f.next++
	h := f.next
	f.pools[h] = m
	f.mu.Unlock()

	if f.config.EnableMetrics {
		f.control.RegisterPool(poolName(h), m.Stats)
	}
	if f.config.EnableDebug {
		f.control.RegisterDebugProbe(poolName(h)+".live", func() any {
			return len(m.AllocatedItems())
		})
	}
	return h, nil
}

// Destroy releases the pool's slabs and invalidates the handle.
func (f *FixedPool) Destroy(h Handle) error {
	f.mu.Lock()
	m, ok := f.pools[h]
	delete(f.pools, h)
	f.mu.Unlock()
	if !ok {
		return api.NewError(api.ErrCodeHandleNotFound, api.ErrHandleNotFound).
			WithContext("handle", uintptr(h))
	}
	if f.config.EnableMetrics {
		f.control.UnregisterPool(poolName(h))
	}
	if f.config.EnableDebug {
		f.control.UnregisterDebugProbe(poolName(h) + ".live")
	}
	return m.Close()
}

// NewItem allocates one slot from the pool behind h.
func (f *FixedPool) NewItem(h Handle) (unsafe.Pointer, error) {
	m, err := f.manager(h)
	if err != nil {
		return nil, err
	}
	return m.NewItem()
}

// NewItems allocates count contiguous slots from the pool behind h.
func (f *FixedPool) NewItems(h Handle, count int) (unsafe.Pointer, error) {
	m, err := f.manager(h)
	if err != nil {
		return nil, err
	}
	return m.NewItems(count)
}

// DeleteItem returns a slot to the pool behind h. A dead handle is a no-op:
// the boundary contract makes freeing against a destroyed pool undefined,
// and dropping it is the cheapest conforming behavior.
func (f *FixedPool) DeleteItem(h Handle, item unsafe.Pointer) {
	m, err := f.manager(h)
	if err != nil {
		return
	}
	m.DeleteItem(item)
}

// AcquireItemList returns a flat copy of the live-set snapshot and its
// count. The slots themselves may be freed by concurrent callers right
// after the snapshot; only the returned array remains valid until
// ReleaseItemList.
func (f *FixedPool) AcquireItemList(h Handle) ([]unsafe.Pointer, int, error) {
	m, err := f.manager(h)
	if err != nil {
		return nil, 0, err
	}
	snapshot := m.AllocatedItems()

	list := f.lists.Get()
	if cap(list) < len(snapshot) {
		list = make([]unsafe.Pointer, len(snapshot))
	}
	list = list[:len(snapshot)]
	copy(list, snapshot)
	return list, len(list), nil
}

// ReleaseItemList recycles an array obtained from AcquireItemList.
func (f *FixedPool) ReleaseItemList(list []unsafe.Pointer) {
	if list == nil {
		return
	}
	f.lists.Put(list[:0])
}

// GetControl exposes the facade's Control interface.
func (f *FixedPool) GetControl() api.Control {
	return f.control
}

// PoolCount reports the number of live handles.
func (f *FixedPool) PoolCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.pools)
}

func (f *FixedPool) manager(h Handle) (*pool.Manager, error) {
	f.mu.RLock()
	m, ok := f.pools[h]
	f.mu.RUnlock()
	if !ok {
		return nil, api.NewError(api.ErrCodeHandleNotFound, api.ErrHandleNotFound).
			WithContext("handle", uintptr(h))
	}
	return m, nil
}

func poolName(h Handle) string {
	return fmt.Sprintf("pool.%d", h)
}
