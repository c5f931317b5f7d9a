// Package seq implements the sequence containers under measurement:
// a growable vector, a doubly linked list and a chunked deque, all
// behind one interface and all drawing element storage from an
// alloc.Allocator so allocation strategies can be swapped without
// touching container code.
package seq

import "github.com/shivam-909/seqbench/alloc"

// Sequence is the common surface the operation policies drive.
// Positional operations take logical indices; containers without
// random access pay their natural traversal cost, which is part of
// what the benchmarks measure.
type Sequence[T any] interface {
	Len() int

	PushBack(v T)
	PushFront(v T)

	// Grow appends a zeroed element and returns a pointer to it, so
	// callers can build the element in place without an intermediate
	// value. GrowFront is the symmetric prepend.
	Grow() *T
	GrowFront() *T

	At(i int) T
	Set(i int, v T)
	Insert(i int, v T)
	RemoveAt(i int)
	PopBack() (T, bool)

	// Reserve pre-sizes capacity where the container has a capacity
	// concept; otherwise it is a no-op.
	Reserve(n int)

	Sort(less func(a, b T) bool)

	// Range visits elements front to back until fn returns false.
	Range(fn func(v T) bool)
}

// Builder constructs an empty container bound to an allocator.
type Builder[T any] func(a alloc.Allocator) Sequence[T]

// BackInserter adapts a sequence to a generic append function, the
// same insertion surface for containers with and without random
// access.
func BackInserter[T any](s Sequence[T]) func(T) {
	return s.PushBack
}
