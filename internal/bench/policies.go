package bench

import (
	"github.com/shivam-909/seqbench/internal/seq"
	"github.com/shivam-909/seqbench/internal/values"
)

// hole keeps search results observable so the scan cannot be
// discarded as dead code.
var hole bool

// FillBack appends n freshly constructed (zero) elements.
type FillBack[T any] struct{}

func (FillBack[T]) Apply(s seq.Sequence[T], n int) {
	var zero T
	for i := 0; i < n; i++ {
		s.PushBack(zero)
	}
}

// FillBackInserter appends n zero elements through the generic
// back-insertion abstraction instead of a direct append call.
type FillBackInserter[T any] struct{}

func (FillBackInserter[T]) Apply(s seq.Sequence[T], n int) {
	ins := seq.BackInserter(s)
	var zero T
	for i := 0; i < n; i++ {
		ins(zero)
	}
}

// EmplaceBack appends n elements constructed in place.
type EmplaceBack[T any] struct{}

func (EmplaceBack[T]) Apply(s seq.Sequence[T], n int) {
	for i := 0; i < n; i++ {
		s.Grow()
	}
}

// FillFront prepends n zero elements.
type FillFront[T any] struct{}

func (FillFront[T]) Apply(s seq.Sequence[T], n int) {
	var zero T
	for i := 0; i < n; i++ {
		s.PushFront(zero)
	}
}

// EmplaceFront prepends n elements constructed in place.
type EmplaceFront[T any] struct{}

func (EmplaceFront[T]) Apply(s seq.Sequence[T], n int) {
	for i := 0; i < n; i++ {
		s.GrowFront()
	}
}

// ReserveSize pre-reserves capacity for n elements ahead of the rest
// of the chain.
type ReserveSize[T any] struct{}

func (ReserveSize[T]) Apply(s seq.Sequence[T], n int) {
	s.Reserve(n)
}

// Find performs one full scan for a key no generator produces, the
// worst case for a linear search.
type Find[T values.Value[T]] struct{}

func (Find[T]) Apply(s seq.Sequence[T], _ int) {
	const absent = ^uint64(0)
	found := false
	s.Range(func(v T) bool {
		if v.Key() == absent {
			found = true
			return false
		}
		return true
	})
	hole = found
}

// Insert performs n random-position insertions of random elements.
type Insert[T values.Value[T]] struct{}

func (Insert[T]) Apply(s seq.Sequence[T], n int) {
	r := newRand()
	var zero T
	for i := 0; i < n; i++ {
		s.Insert(r.IntN(s.Len()+1), zero.WithKey(randomKey(r)))
	}
}

// Erase performs n random-position removals.
type Erase[T any] struct{}

func (Erase[T]) Apply(s seq.Sequence[T], n int) {
	r := newRand()
	for i := 0; i < n; i++ {
		s.RemoveAt(r.IntN(s.Len()))
	}
}

// Sort orders the container in place by its declared ordering.
type Sort[T values.Value[T]] struct{}

func (Sort[T]) Apply(s seq.Sequence[T], _ int) {
	s.Sort(func(a, b T) bool { return a.Less(b) })
}

// SmartDelete releases and removes every element, each release
// dropping one independent heap indirection.
type SmartDelete[T values.Value[T]] struct{}

func (SmartDelete[T]) Apply(s seq.Sequence[values.Smart[T]], _ int) {
	for {
		v, ok := s.PopBack()
		if !ok {
			return
		}
		v.Release()
	}
}

// RandomSortedInsert finds the sorted position for a random element
// and inserts there, n times over.
type RandomSortedInsert[T values.Value[T]] struct{}

func (RandomSortedInsert[T]) Apply(s seq.Sequence[T], n int) {
	r := newRand()
	var zero T
	for i := 0; i < n; i++ {
		v := zero.WithKey(randomKey(r))
		pos := 0
		s.Range(func(e T) bool {
			if !e.Less(v) {
				return false
			}
			pos++
			return true
		})
		s.Insert(pos, v)
	}
}
