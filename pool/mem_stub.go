//go:build !linux && !windows

// File: pool/mem_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed slab memory for platforms without a dedicated mapping path.
// The Go heap does not move allocations, so slot addresses stay stable,
// and []byte backing stores carry no pointer maps, so freelist links
// written into slots are never scanned.

package pool

// blockMem reserves size bytes of raw slab memory.
func blockMem(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// blockFree releases a slab; the garbage collector reclaims heap slabs
// once the manager drops its reference.
func blockFree(mem []byte) error {
	return nil
}
