package alloc

import "fmt"

// slack is the number of extra elements the arena budget tolerates
// beyond the trial's target size. It absorbs temporary
// over-allocation during container growth (a vector abandons its old
// buffer on every doubling under bump allocation).
const slack = 1000

// Arena is the fixed-capacity strategy: New reserves the whole
// budget up front and hands out a bump allocator over it. Nothing is
// ever freed individually; the buffer is dropped as a whole on
// Release.
type Arena struct{}

func (Arena) Name() string { return "arena" }

// New reserves NodeSize(ElemSize) * (Capacity + slack) bytes
// eagerly. One arena serves exactly one trial.
func (Arena) New(h Hint) Allocator {
	size := NodeSize(h.ElemSize) * (h.Capacity + slack)
	return &arenaAllocator{buf: make([]byte, size)}
}

// OverflowError reports an allocation that does not fit in the
// arena's remaining space. It is delivered by panic: exhaustion
// invalidates the measurement and must abort the run rather than
// fall back to another allocator.
type OverflowError struct {
	Capacity  int // total buffer size in bytes
	InUse     int // bytes already handed out (after alignment)
	Requested int // size of the failing request
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("alloc: arena exhausted: requested %d bytes with %d of %d in use",
		e.Requested, e.InUse, e.Capacity)
}

type arenaAllocator struct {
	buf []byte
	off int
}

func (a *arenaAllocator) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	if a.buf == nil {
		panic("alloc: arena use after Release")
	}
	off := alignUp(a.off)
	if off+n > len(a.buf) {
		panic(&OverflowError{Capacity: len(a.buf), InUse: off, Requested: n})
	}
	a.off = off + n
	return a.buf[off : off+n : off+n]
}

func (a *arenaAllocator) Release() {
	a.buf = nil
	a.off = 0
}

// InUse reports the bytes handed out so far, alignment included.
func (a *arenaAllocator) InUse() int { return a.off }

// Capacity reports the total buffer size.
func (a *arenaAllocator) Capacity() int { return len(a.buf) }
