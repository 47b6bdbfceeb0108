// File: pool/manager.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool manager: owns the ordered slab sequence, the freelist head, and the
// lock policy. Free slots store the address of the next free slot in their
// own first pointer-sized bytes; itemSize >= pointer size makes that legal.

package pool

import (
	"sync"
	"unsafe"

	"github.com/momentics/fixedpool/api"
)

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// Manager is a fixed-size-object pool allocator.
//
// With api.LockMutex or api.LockSpin every operation is safe for concurrent
// use; api.LockNone restricts the pool to a single goroutine.
type Manager struct {
	itemSize      int
	itemsPerBlock int
	blockSize     int
	policy        api.LockPolicy

	mu     sync.Locker
	blocks []block
	head   unsafe.Pointer // most recently freed slot; nil when freelist empty
	closed bool

	totalAlloc int64
	totalFree  int64
}

var _ api.FixedAllocator = (*Manager)(nil)

// Option customizes manager construction.
type Option func(*Manager)

// WithLockPolicy selects the synchronization policy. The default is
// DefaultLockPolicy() for the build platform.
func WithLockPolicy(p api.LockPolicy) Option {
	return func(m *Manager) { m.policy = p }
}

// NewManager creates a pool handing out items of itemSize bytes from slabs
// of itemsPerBlock slots. The first slab is reserved eagerly.
func NewManager(itemSize, itemsPerBlock int, opts ...Option) (*Manager, error) {
	if itemSize < ptrSize {
		return nil, api.NewError(api.ErrCodeInvalidItemSize, api.ErrInvalidItemSize).
			WithContext("item_size", itemSize).
			WithContext("pointer_size", ptrSize)
	}
	if itemsPerBlock <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
			WithContext("items_per_block", itemsPerBlock)
	}
	m := &Manager{
		itemSize:      itemSize,
		itemsPerBlock: itemsPerBlock,
		blockSize:     itemSize * itemsPerBlock,
		policy:        DefaultLockPolicy(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.mu = lockerFor(m.policy)
	if _, err := m.addBlock(); err != nil {
		return nil, err
	}
	return m, nil
}

// storedPtr reads the freelist link held in a free slot's first bytes.
func storedPtr(item unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(item)
}

// setStoredPtr writes the freelist link into a free slot's first bytes.
func setStoredPtr(item, next unsafe.Pointer) {
	*(*unsafe.Pointer)(item) = next
}

// addBlock reserves and appends one slab. Caller must hold the lock
// (or be the constructor). The pool is unchanged on failure.
func (m *Manager) addBlock() (*block, error) {
	b, err := newBlock(m.blockSize, m.itemsPerBlock)
	if err != nil {
		return nil, err
	}
	m.blocks = append(m.blocks, b)
	return &m.blocks[len(m.blocks)-1], nil
}

// takeUninitialized hands out count slots from b's uninitialized tail.
// Caller must hold the lock and have checked b.uninitialized >= count.
func (m *Manager) takeUninitialized(b *block, count int) unsafe.Pointer {
	ret := b.itemAt(m.itemSize, m.itemsPerBlock-b.uninitialized)
	b.uninitialized -= count
	m.totalAlloc += int64(count)
	return ret
}

// NewItem returns one slot: the freelist head when one exists (LIFO, the
// most recently freed slot is cache-hot), otherwise the newest slab's
// uninitialized tail, otherwise a fresh slab. Older slabs' tails are never
// re-examined; the freelist is the fast path that drains them.
func (m *Manager) NewItem() (unsafe.Pointer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, api.ErrPoolClosed
	}
	if m.head != nil {
		ret := m.head
		m.head = storedPtr(ret)
		m.totalAlloc++
		return ret, nil
	}
	last := &m.blocks[len(m.blocks)-1]
	if last.uninitialized > 0 {
		return m.takeUninitialized(last, 1), nil
	}
	nb, err := m.addBlock()
	if err != nil {
		return nil, err
	}
	return m.takeUninitialized(nb, 1), nil
}

// NewItems returns the first of count contiguous slots, carved from the
// first slab whose uninitialized tail fits the run, or from a fresh slab.
// The freelist is never consulted; it cannot provide contiguous runs.
func (m *Manager) NewItems(count int) (unsafe.Pointer, error) {
	if count < 1 || count > m.itemsPerBlock {
		return nil, api.NewError(api.ErrCodeInvalidCount, api.ErrInvalidCount).
			WithContext("count", count).
			WithContext("items_per_block", m.itemsPerBlock)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, api.ErrPoolClosed
	}
	for i := range m.blocks {
		if m.blocks[i].uninitialized >= count {
			return m.takeUninitialized(&m.blocks[i], count), nil
		}
	}
	nb, err := m.addBlock()
	if err != nil {
		return nil, err
	}
	return m.takeUninitialized(nb, count), nil
}

// DeleteItem pushes item onto the freelist: the previous head is written
// into the item's first pointer-sized bytes and item becomes the new head.
// O(1); no ownership or double-free validation happens here. Freeing a
// foreign pointer, freeing twice, or freeing part of a contiguous run
// corrupts the freelist.
func (m *Manager) DeleteItem(item unsafe.Pointer) {
	m.mu.Lock()
	setStoredPtr(item, m.head)
	m.head = item
	m.totalFree++
	m.mu.Unlock()
}

// Contains reports whether item lies inside one of the manager's slabs on
// a slot boundary. Debug helper for probes and tests; DeleteItem never
// calls it, keeping deallocation O(1).
func (m *Manager) Contains(item unsafe.Pointer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blockOf(item) >= 0
}

func (m *Manager) blockOf(item unsafe.Pointer) int {
	addr := uintptr(item)
	for i := range m.blocks {
		base := uintptr(unsafe.Pointer(&m.blocks[i].memory[0]))
		if addr >= base && addr < base+uintptr(m.blockSize) {
			if (addr-base)%uintptr(m.itemSize) == 0 {
				return i
			}
			return -1
		}
	}
	return -1
}

// Stats exposes allocation counters for observability.
func (m *Manager) Stats() api.PoolStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return api.PoolStats{
		TotalAlloc: m.totalAlloc,
		TotalFree:  m.totalFree,
		InUse:      m.totalAlloc - m.totalFree,
		Blocks:     int64(len(m.blocks)),
		BytesOwned: int64(len(m.blocks) * m.blockSize),
	}
}

// Info describes the pool's immutable configuration.
func (m *Manager) Info() api.PoolInfo {
	return api.PoolInfo{
		ItemSize:      m.itemSize,
		ItemsPerBlock: m.itemsPerBlock,
		Policy:        m.policy,
	}
}

// Close releases every slab back to the OS. All outstanding items become
// invalid. Close is idempotent.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	m.head = nil
	var firstErr error
	for i := range m.blocks {
		if err := m.blocks[i].release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.blocks = nil
	return firstErr
}
