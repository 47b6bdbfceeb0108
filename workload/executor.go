// File: workload/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package workload

import (
	"unsafe"

	"github.com/eapache/queue"

	"github.com/momentics/fixedpool/api"
)

// Executor replays actions against an allocator. Actions can be fed
// incrementally from generator goroutines; Drain consumes the pending
// queue in FIFO order. Deletes use swap-with-last removal so the live
// slice stays dense.
//
// Executor is not safe for concurrent use; run one per goroutine when
// stressing a shared allocator.
type Executor struct {
	alloc   api.FixedAllocator
	pending *queue.Queue
	items   []unsafe.Pointer
}

// NewExecutor creates an executor bound to alloc.
func NewExecutor(alloc api.FixedAllocator) *Executor {
	return &Executor{
		alloc:   alloc,
		pending: queue.New(),
	}
}

// Feed appends actions to the pending queue.
func (e *Executor) Feed(actions ...Action) {
	for _, a := range actions {
		e.pending.Add(a)
	}
}

// Drain executes every pending action. The first allocator failure stops
// the drain and is returned; remaining actions stay queued.
func (e *Executor) Drain() error {
	for e.pending.Length() > 0 {
		a := e.pending.Peek().(Action)
		if a == Create {
			p, err := e.alloc.NewItem()
			if err != nil {
				return err
			}
			e.items = append(e.items, p)
		} else {
			i := int(a)
			if i >= len(e.items) {
				return api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
					WithContext("delete_index", i).
					WithContext("live_items", len(e.items))
			}
			e.alloc.DeleteItem(e.items[i])
			last := len(e.items) - 1
			e.items[i] = e.items[last]
			e.items = e.items[:last]
		}
		e.pending.Remove()
	}
	return nil
}

// Pending reports how many actions remain queued.
func (e *Executor) Pending() int {
	return e.pending.Length()
}

// Live returns a copy of the addresses currently held by the executor.
func (e *Executor) Live() []unsafe.Pointer {
	out := make([]unsafe.Pointer, len(e.items))
	copy(out, e.items)
	return out
}
