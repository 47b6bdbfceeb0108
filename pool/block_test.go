// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"testing"
	"unsafe"
)

func TestBlock_Layout(t *testing.T) {
	const itemSize, perBlock = 32, 16
	b, err := newBlock(itemSize*perBlock, perBlock)
	if err != nil {
		t.Fatalf("newBlock: %v", err)
	}
	defer b.release()

	if b.uninitialized != perBlock {
		t.Fatalf("fresh block must have a fully uninitialized tail, got %d", b.uninitialized)
	}
	if len(b.memory) != itemSize*perBlock {
		t.Fatalf("slab must be itemSize*itemsPerBlock bytes, got %d", len(b.memory))
	}

	base := uintptr(b.itemAt(itemSize, 0))
	for i := 1; i < perBlock; i++ {
		if got := uintptr(b.itemAt(itemSize, i)); got != base+uintptr(i*itemSize) {
			t.Errorf("slot %d at %#x, want %#x", i, got, base+uintptr(i*itemSize))
		}
	}
}

func TestBlock_SlotHoldsPointer(t *testing.T) {
	b, err := newBlock(64*4, 4)
	if err != nil {
		t.Fatalf("newBlock: %v", err)
	}
	defer b.release()

	// A free slot stores the next-free link in its own first bytes.
	s0 := b.itemAt(64, 0)
	s1 := b.itemAt(64, 1)
	setStoredPtr(s0, s1)
	if storedPtr(s0) != s1 {
		t.Error("slot must round-trip a stored pointer")
	}
	setStoredPtr(s0, nil)
	if storedPtr(s0) != unsafe.Pointer(nil) {
		t.Error("slot must round-trip a nil link")
	}
}

func TestBlock_ReleaseIdempotent(t *testing.T) {
	b, err := newBlock(128, 2)
	if err != nil {
		t.Fatalf("newBlock: %v", err)
	}
	if err := b.release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := b.release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
	if b.memory != nil {
		t.Error("release must leave the block in a null state")
	}
}
