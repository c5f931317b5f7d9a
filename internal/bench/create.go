package bench

import (
	"math/rand/v2"
	"time"

	"github.com/shivam-909/seqbench/alloc"
	"github.com/shivam-909/seqbench/internal/seq"
	"github.com/shivam-909/seqbench/internal/values"
)

// newRand returns a freshly seeded source. Reproducibility across
// trials is not a goal; stable average cost is.
func newRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
}

// randomKey draws a 63-bit key, so the maximum key stays absent and
// usable as a worst-case search target.
func randomKey(r *rand.Rand) uint64 {
	return r.Uint64() >> 1
}

// Empty starts every trial from a size-0 container.
type Empty[T any] struct{}

func (Empty[T]) Make(_ int, a alloc.Allocator, build seq.Builder[T]) seq.Sequence[T] {
	return build(a)
}

func (Empty[T]) Clean() {}

// FilledRandom starts every trial from a container holding n
// uniformly random elements.
type FilledRandom[T values.Value[T]] struct{}

func (FilledRandom[T]) Make(n int, a alloc.Allocator, build seq.Builder[T]) seq.Sequence[T] {
	s := build(a)
	r := newRand()
	var zero T
	for i := 0; i < n; i++ {
		s.PushBack(zero.WithKey(randomKey(r)))
	}
	return s
}

func (FilledRandom[T]) Clean() {}

// SmartFilled starts every trial from n heap-indirected elements so
// that bulk destruction has a real per-element deallocation cost.
// Clean drops the release bookkeeping between trials.
type SmartFilled[T values.Value[T]] struct {
	Reg *values.Registry
}

func (p SmartFilled[T]) Make(n int, a alloc.Allocator, build seq.Builder[values.Smart[T]]) seq.Sequence[values.Smart[T]] {
	s := build(a)
	r := newRand()
	var zero T
	for i := 0; i < n; i++ {
		s.PushBack(values.NewSmart(p.Reg, zero.WithKey(randomKey(r))))
	}
	return s
}

func (p SmartFilled[T]) Clean() {
	p.Reg.Reset()
}
