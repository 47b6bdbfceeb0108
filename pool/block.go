// File: pool/block.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "unsafe"

// block is one contiguous slab of itemSize*itemsPerBlock bytes.
// uninitialized counts the trailing slots never yet handed out; the
// handed-out slots are always the prefix [0, itemsPerBlock-uninitialized).
type block struct {
	memory        []byte
	uninitialized int
}

// newBlock reserves one slab. Fails with api.ErrOutOfMemory when the
// underlying reservation fails.
func newBlock(blockSize, itemsPerBlock int) (block, error) {
	mem, err := blockMem(blockSize)
	if err != nil {
		return block{}, err
	}
	return block{memory: mem, uninitialized: itemsPerBlock}, nil
}

// itemAt returns the address of slot i. Valid for the block's lifetime.
func (b *block) itemAt(itemSize, i int) unsafe.Pointer {
	return unsafe.Pointer(&b.memory[i*itemSize])
}

// release returns the slab to the OS and leaves the block in a null state
// safe for repeated release.
func (b *block) release() error {
	if b.memory == nil {
		return nil
	}
	err := blockFree(b.memory)
	b.memory = nil
	return err
}
