package alloc

// Heap is the general-purpose strategy: requests are served by the
// runtime allocator, with no capacity limit and no eager
// reservation. Every region handed out is retained until Release:
// carved nodes reference each other through raw memory the collector
// does not scan, so the allocator itself must keep them alive.
type Heap struct{}

func (Heap) Name() string { return "heap" }

func (Heap) New(Hint) Allocator { return &heapAllocator{} }

type heapAllocator struct {
	bufs [][]byte
}

func (a *heapAllocator) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	b := make([]byte, n)
	a.bufs = append(a.bufs, b)
	return b
}

// Release drops the retained regions. The allocator stays usable;
// regions handed out afterwards are retained again.
func (a *heapAllocator) Release() { a.bufs = nil }
