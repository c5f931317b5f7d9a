package seq

import "github.com/shivam-909/seqbench/alloc"

type listNode[T any] struct {
	v          T
	prev, next *listNode[T]
}

// List is a doubly linked list whose nodes are carved one by one
// from the allocator. Removal unlinks without freeing; individual
// deallocation does not exist under the arena, and under the heap
// the runtime reclaims unreachable nodes.
type List[T any] struct {
	a          alloc.Allocator
	head, tail *listNode[T]
	n          int
}

// NewList returns an empty list bound to a.
func NewList[T any](a alloc.Allocator) *List[T] {
	return &List[T]{a: a}
}

func (l *List[T]) Len() int { return l.n }

func (l *List[T]) newNode(val T) *listNode[T] {
	nd := alloc.New[listNode[T]](l.a)
	nd.v = val
	return nd
}

func (l *List[T]) PushBack(val T) {
	nd := l.newNode(val)
	if l.tail == nil {
		l.head, l.tail = nd, nd
	} else {
		nd.prev = l.tail
		l.tail.next = nd
		l.tail = nd
	}
	l.n++
}

func (l *List[T]) PushFront(val T) {
	nd := l.newNode(val)
	if l.head == nil {
		l.head, l.tail = nd, nd
	} else {
		nd.next = l.head
		l.head.prev = nd
		l.head = nd
	}
	l.n++
}

func (l *List[T]) Grow() *T {
	var zero T
	l.PushBack(zero)
	return &l.tail.v
}

func (l *List[T]) GrowFront() *T {
	var zero T
	l.PushFront(zero)
	return &l.head.v
}

// nodeAt walks from the nearer end.
func (l *List[T]) nodeAt(i int) *listNode[T] {
	if i < l.n/2 {
		nd := l.head
		for ; i > 0; i-- {
			nd = nd.next
		}
		return nd
	}
	nd := l.tail
	for i = l.n - 1 - i; i > 0; i-- {
		nd = nd.prev
	}
	return nd
}

func (l *List[T]) At(i int) T { return l.nodeAt(i).v }

func (l *List[T]) Set(i int, val T) { l.nodeAt(i).v = val }

func (l *List[T]) Insert(i int, val T) {
	switch {
	case i == l.n:
		l.PushBack(val)
	case i == 0:
		l.PushFront(val)
	default:
		at := l.nodeAt(i)
		nd := l.newNode(val)
		nd.prev = at.prev
		nd.next = at
		at.prev.next = nd
		at.prev = nd
		l.n++
	}
}

func (l *List[T]) RemoveAt(i int) {
	nd := l.nodeAt(i)
	if nd.prev != nil {
		nd.prev.next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != nil {
		nd.next.prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	l.n--
}

func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	val := l.tail.v
	l.RemoveAt(l.n - 1)
	return val, true
}

// Reserve is a no-op: a list has no capacity concept.
func (l *List[T]) Reserve(int) {}

// Sort is a link-based merge sort; no auxiliary element storage is
// allocated, matching linked-list sort semantics.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.n < 2 {
		return
	}
	l.head = mergeSort(l.head, less)

	// Rebuild prev links and the tail after the forward-link sort.
	var prev *listNode[T]
	for nd := l.head; nd != nil; nd = nd.next {
		nd.prev = prev
		prev = nd
	}
	l.tail = prev
}

func mergeSort[T any](head *listNode[T], less func(a, b T) bool) *listNode[T] {
	if head == nil || head.next == nil {
		return head
	}

	// Split at the middle via slow/fast walkers.
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil

	left := mergeSort(head, less)
	right := mergeSort(mid, less)
	return merge(left, right, less)
}

func merge[T any](a, b *listNode[T], less func(x, y T) bool) *listNode[T] {
	var head, tail *listNode[T]
	appendNode := func(nd *listNode[T]) {
		if tail == nil {
			head, tail = nd, nd
		} else {
			tail.next = nd
			tail = nd
		}
	}
	for a != nil && b != nil {
		if less(b.v, a.v) {
			nd := b
			b = b.next
			appendNode(nd)
		} else {
			nd := a
			a = a.next
			appendNode(nd)
		}
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head
}

func (l *List[T]) Range(fn func(val T) bool) {
	for nd := l.head; nd != nil; nd = nd.next {
		if !fn(nd.v) {
			return
		}
	}
}
