// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-size-object pool allocator for hioload workloads dominated by
// frequent short-lived objects of uniform size: slab-backed storage, an
// intrusive LIFO freelist threaded through the free slots' own bytes, a
// swappable lock policy, and live-set reconstruction for leak detection
// and garbage-collector integration.
// See manager.go, block.go, liveset.go for implementation details.
package pool
