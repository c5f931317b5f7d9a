// Package alloc provides the allocation strategies the benchmark
// harness swaps underneath containers: a pass-through heap allocator
// and a fixed-capacity arena (bump) allocator.
//
// A Strategy produces one fresh Allocator per trial. Containers draw
// all of their element storage from that Allocator, so switching the
// strategy changes where memory comes from without changing what is
// measured.
package alloc

import "unsafe"

// wordSize is the native word size, used for alignment and for the
// per-node overhead estimate.
const wordSize = int(unsafe.Sizeof(uintptr(0)))

// Allocator hands out raw byte regions and owns them until Release:
// regions may hold pointers the collector never scans, so
// reachability comes from the allocator, not from the pointers
// stored inside.
type Allocator interface {
	// AllocBytes returns an n-byte region. The region remains valid
	// until Release. Returns nil if n <= 0.
	AllocBytes(n int) []byte

	// Release drops all regions at once. No individual deallocation
	// exists.
	Release()
}

// Hint describes the trial about to run so a strategy can size any
// up-front reservation.
type Hint struct {
	ElemSize int // size of one element in bytes
	Capacity int // target size N of the trial
}

// Strategy produces a fresh Allocator for each trial.
type Strategy interface {
	Name() string
	New(h Hint) Allocator
}

// NodeSize estimates the per-element footprint as if every container
// were a doubly-linked list: element plus two link pointers. The
// estimate is used uniformly for all container kinds, which
// over-reserves for contiguous containers; that is deliberate, it
// keeps every configuration inside a single capacity formula.
func NodeSize(elemSize int) int {
	return elemSize + 2*wordSize
}

// alignUp rounds n up to the native word size.
func alignUp(n int) int {
	mask := wordSize - 1
	return (n + mask) &^ mask
}
