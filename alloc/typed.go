package alloc

import "unsafe"

// New carves a zeroed T out of the allocator.
func New[T any](a Allocator) *T {
	var zero T
	b := a.AllocBytes(int(unsafe.Sizeof(zero)))
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// MakeSlice carves a zeroed slice of n elements of T out of the
// allocator. Returns nil if n <= 0.
func MakeSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocBytes(n * int(unsafe.Sizeof(zero)))
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Sizeof reports the in-memory size of T in bytes.
func Sizeof[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
