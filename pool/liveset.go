// File: pool/liveset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Live-set reconstruction. Cost is O(handed-out slots + freelist length),
// intended for leak detection, correctness testing, and GC integration
// rather than per-allocation use.

package pool

import "unsafe"

// AllocatedItems reconstructs the set of currently live slots: every slot
// ever handed out, minus those reachable from the freelist. The snapshot
// is consistent as of lock acquisition; order is unspecified.
func (m *Manager) AllocatedItems() []unsafe.Pointer {
	m.mu.Lock()
	defer m.mu.Unlock()

	set := make(map[unsafe.Pointer]struct{}, m.handedOutLocked())

	// Handed-out slots are the prefix of every slab.
	for i := range m.blocks {
		b := &m.blocks[i]
		handed := m.itemsPerBlock - b.uninitialized
		for j := 0; j < handed; j++ {
			set[b.itemAt(m.itemSize, j)] = struct{}{}
		}
	}

	// Subtract the freelist.
	for itr := m.head; itr != nil; itr = storedPtr(itr) {
		delete(set, itr)
	}

	out := make([]unsafe.Pointer, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

func (m *Manager) handedOutLocked() int {
	n := 0
	for i := range m.blocks {
		n += m.itemsPerBlock - m.blocks[i].uninitialized
	}
	return n
}
