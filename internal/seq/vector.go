package seq

import (
	"sort"

	"github.com/shivam-909/seqbench/alloc"
)

// Vector is a contiguous growable array. Growth doubles capacity;
// under the arena strategy the abandoned old buffer is never
// reclaimed, which the arena's slack budget is sized to absorb.
type Vector[T any] struct {
	a    alloc.Allocator
	data []T
	n    int
}

// NewVector returns an empty vector bound to a. No storage is
// carved until the first element arrives.
func NewVector[T any](a alloc.Allocator) *Vector[T] {
	return &Vector[T]{a: a}
}

func (v *Vector[T]) Len() int { return v.n }

// regrow moves the elements into a fresh buffer of at least minCap.
func (v *Vector[T]) regrow(minCap int) {
	newCap := 2 * cap(v.data)
	if newCap < 8 {
		newCap = 8
	}
	if newCap < minCap {
		newCap = minCap
	}
	nd := alloc.MakeSlice[T](v.a, newCap)
	copy(nd, v.data[:v.n])
	v.data = nd
}

func (v *Vector[T]) PushBack(val T) {
	if v.n == cap(v.data) {
		v.regrow(v.n + 1)
	}
	v.data = v.data[:v.n+1]
	v.data[v.n] = val
	v.n++
}

func (v *Vector[T]) PushFront(val T) {
	v.Insert(0, val)
}

func (v *Vector[T]) Grow() *T {
	var zero T
	v.PushBack(zero)
	return &v.data[v.n-1]
}

func (v *Vector[T]) GrowFront() *T {
	var zero T
	v.Insert(0, zero)
	return &v.data[0]
}

func (v *Vector[T]) At(i int) T { return v.data[i] }

func (v *Vector[T]) Set(i int, val T) { v.data[i] = val }

func (v *Vector[T]) Insert(i int, val T) {
	if v.n == cap(v.data) {
		v.regrow(v.n + 1)
	}
	v.data = v.data[:v.n+1]
	copy(v.data[i+1:], v.data[i:v.n])
	v.data[i] = val
	v.n++
}

func (v *Vector[T]) RemoveAt(i int) {
	copy(v.data[i:], v.data[i+1:v.n])
	var zero T
	v.data[v.n-1] = zero
	v.n--
	v.data = v.data[:v.n]
}

func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	val := v.data[v.n-1]
	v.data[v.n-1] = zero
	v.n--
	v.data = v.data[:v.n]
	return val, true
}

func (v *Vector[T]) Reserve(n int) {
	if n > cap(v.data) {
		v.regrow(n)
	}
}

func (v *Vector[T]) Sort(less func(a, b T) bool) {
	s := v.data[:v.n]
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
}

func (v *Vector[T]) Range(fn func(val T) bool) {
	for i := 0; i < v.n; i++ {
		if !fn(v.data[i]) {
			return
		}
	}
}
