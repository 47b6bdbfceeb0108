// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines the abstract allocator API: fixed-size item pools with
// intrusive freelists and live-set introspection.

package api

import "unsafe"

// FixedAllocator manages raw memory slots of a single configured byte size.
//
// Returned pointers refer to slots inside slabs owned by the allocator.
// A slot's payload belongs to the caller between NewItem and DeleteItem;
// the allocator never touches it during that interval.
type FixedAllocator interface {
	// NewItem returns one slot in the live state.
	NewItem() (unsafe.Pointer, error)

	// NewItems returns the first of count contiguous slots.
	// count must not exceed the pool's items-per-block.
	NewItems(count int) (unsafe.Pointer, error)

	// DeleteItem returns a slot to the pool. The pointer must have been
	// obtained from NewItem or NewItems of this allocator and must not
	// already be free; the allocator performs no validation.
	DeleteItem(item unsafe.Pointer)

	// AllocatedItems reconstructs the set of currently live slots.
	// Intended for leak detection and GC integration, not hot paths.
	AllocatedItems() []unsafe.Pointer

	// Stats exposes resource/accounting metrics for observability.
	Stats() PoolStats

	// Close releases all slab memory. The allocator must not be used
	// afterwards.
	Close() error
}

// ObjectPool provides generic pooling of Go objects allocated transiently.
type ObjectPool[T any] interface {
	// Get returns an available instance from pool
	Get() T

	// Put returns an instance for reuse
	Put(obj T)
}
