//go:build windows

// File: pool/mem_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows slab memory via VirtualAlloc committed pages.

package pool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/fixedpool/api"
)

var (
	kern32           = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAlloc = kern32.NewProc("VirtualAlloc")
	procVirtualFree  = kern32.NewProc("VirtualFree")
)

// blockMem reserves size bytes of raw slab memory.
func blockMem(size int) ([]byte, error) {
	addr, _, errno := procVirtualAlloc.Call(
		0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE,
	)
	if addr == 0 {
		return nil, api.NewError(api.ErrCodeOutOfMemory, api.ErrOutOfMemory).
			WithContext("size", size).
			WithContext("virtual_alloc", errno)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// blockFree returns a slab obtained from blockMem to the OS.
func blockFree(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	ret, _, errno := procVirtualFree.Call(
		uintptr(unsafe.Pointer(&mem[0])), 0, windows.MEM_RELEASE)
	if ret == 0 {
		return fmt.Errorf("VirtualFree: %v", errno)
	}
	return nil
}
