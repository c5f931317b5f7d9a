package seq

import (
	"sort"

	"github.com/shivam-909/seqbench/alloc"
)

// blockBytes is the target size of one deque block. Small elements
// share a block; elements at or above blockBytes get one element per
// block.
const blockBytes = 512

// Deque is a double-ended queue over fixed-size blocks: O(1)
// indexing, O(1) amortized pushes at both ends, linear shifting for
// positional insert and remove. Blocks are carved from the
// allocator; the block table is container metadata, not element
// storage.
type Deque[T any] struct {
	a        alloc.Allocator
	blocks   [][]T
	blockLen int
	start    int // slot offset of the first element within the blocks span
	n        int
}

// NewDeque returns an empty deque bound to a.
func NewDeque[T any](a alloc.Allocator) *Deque[T] {
	bl := blockBytes / alloc.Sizeof[T]()
	if bl < 1 {
		bl = 1
	}
	return &Deque[T]{a: a, blockLen: bl}
}

func (d *Deque[T]) Len() int { return d.n }

func (d *Deque[T]) slot(i int) *T {
	pos := d.start + i
	return &d.blocks[pos/d.blockLen][pos%d.blockLen]
}

func (d *Deque[T]) PushBack(val T) {
	*d.backSlot() = val
}

// backSlot extends the deque by one zeroed element at the back and
// returns its address.
func (d *Deque[T]) backSlot() *T {
	end := d.start + d.n
	if end == len(d.blocks)*d.blockLen {
		d.blocks = append(d.blocks, alloc.MakeSlice[T](d.a, d.blockLen))
	}
	d.n++
	p := &d.blocks[end/d.blockLen][end%d.blockLen]
	var zero T
	*p = zero
	return p
}

func (d *Deque[T]) PushFront(val T) {
	*d.frontSlot() = val
}

// frontSlot extends the deque by one zeroed element at the front and
// returns its address. When front headroom runs out the block table
// doubles toward the front; headroom entries are carved lazily on
// first use, so front growth is O(1) amortized and the allocator only
// pays for blocks that hold elements.
func (d *Deque[T]) frontSlot() *T {
	if d.start == 0 {
		k := len(d.blocks)
		if k < 1 {
			k = 1
		}
		grown := make([][]T, k+len(d.blocks))
		copy(grown[k:], d.blocks)
		d.blocks = grown
		d.start = k * d.blockLen
	}
	d.start--
	d.n++
	idx := d.start / d.blockLen
	if d.blocks[idx] == nil {
		d.blocks[idx] = alloc.MakeSlice[T](d.a, d.blockLen)
	}
	p := &d.blocks[idx][d.start%d.blockLen]
	var zero T
	*p = zero
	return p
}

func (d *Deque[T]) Grow() *T { return d.backSlot() }

func (d *Deque[T]) GrowFront() *T { return d.frontSlot() }

func (d *Deque[T]) At(i int) T { return *d.slot(i) }

func (d *Deque[T]) Set(i int, val T) { *d.slot(i) = val }

func (d *Deque[T]) Insert(i int, val T) {
	d.backSlot()
	for j := d.n - 1; j > i; j-- {
		*d.slot(j) = *d.slot(j - 1)
	}
	*d.slot(i) = val
}

func (d *Deque[T]) RemoveAt(i int) {
	for j := i; j < d.n-1; j++ {
		*d.slot(j) = *d.slot(j + 1)
	}
	d.PopBack()
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	p := d.slot(d.n - 1)
	val := *p
	*p = zero
	d.n--
	return val, true
}

// Reserve is a no-op: a deque grows block by block.
func (d *Deque[T]) Reserve(int) {}

func (d *Deque[T]) Sort(less func(a, b T) bool) {
	sort.Sort(&dequeSorter[T]{d: d, less: less})
}

type dequeSorter[T any] struct {
	d    *Deque[T]
	less func(a, b T) bool
}

func (s *dequeSorter[T]) Len() int { return s.d.n }

func (s *dequeSorter[T]) Less(i, j int) bool {
	return s.less(*s.d.slot(i), *s.d.slot(j))
}

func (s *dequeSorter[T]) Swap(i, j int) {
	pi, pj := s.d.slot(i), s.d.slot(j)
	*pi, *pj = *pj, *pi
}

func (d *Deque[T]) Range(fn func(val T) bool) {
	for i := 0; i < d.n; i++ {
		if !fn(*d.slot(i)) {
			return
		}
	}
}
