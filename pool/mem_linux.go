//go:build linux

// File: pool/mem_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux slab memory via anonymous private mmap. Addresses are stable for
// the mapping's lifetime and the pages sit outside the Go heap, so the
// freelist links written into slots are invisible to the garbage collector.

package pool

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/fixedpool/api"
)

// blockMem reserves size bytes of raw slab memory.
func blockMem(size int) ([]byte, error) {
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, api.NewError(api.ErrCodeOutOfMemory, api.ErrOutOfMemory).
			WithContext("size", size).
			WithContext("mmap", err)
	}
	return mem, nil
}

// blockFree returns a slab obtained from blockMem to the OS.
func blockFree(mem []byte) error {
	if mem == nil {
		return nil
	}
	return unix.Munmap(mem)
}
