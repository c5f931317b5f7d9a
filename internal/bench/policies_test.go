package bench

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivam-909/seqbench/alloc"
	"github.com/shivam-909/seqbench/internal/seq"
	"github.com/shivam-909/seqbench/internal/values"
)

type elem = values.TrivialSmall

func builders() map[string]seq.Builder[elem] {
	return map[string]seq.Builder[elem]{
		"vector": func(a alloc.Allocator) seq.Sequence[elem] { return seq.NewVector[elem](a) },
		"list":   func(a alloc.Allocator) seq.Sequence[elem] { return seq.NewList[elem](a) },
		"deque":  func(a alloc.Allocator) seq.Sequence[elem] { return seq.NewDeque[elem](a) },
	}
}

func heap() alloc.Allocator { return alloc.Heap{}.New(alloc.Hint{}) }

func sorted(s seq.Sequence[elem]) bool {
	first := true
	var prev elem
	ok := true
	s.Range(func(v elem) bool {
		if !first && v.Less(prev) {
			ok = false
			return false
		}
		prev, first = v, false
		return true
	})
	return ok
}

func TestFillPolicies(t *testing.T) {
	policies := map[string]Policy[elem]{
		"fill_back":          FillBack[elem]{},
		"fill_back_inserter": FillBackInserter[elem]{},
		"emplace_back":       EmplaceBack[elem]{},
		"fill_front":         FillFront[elem]{},
		"emplace_front":      EmplaceFront[elem]{},
	}
	for pname, p := range policies {
		for bname, build := range builders() {
			t.Run(fmt.Sprintf("%s_%s", pname, bname), func(t *testing.T) {
				s := build(heap())
				p.Apply(s, 100)
				assert.Equal(t, 100, s.Len())
			})
		}
	}
}

func TestFillAppendsToExisting(t *testing.T) {
	s := seq.NewVector[elem](heap())
	s.PushBack(elem{}.WithKey(1))
	FillBack[elem]{}.Apply(s, 10)
	assert.Equal(t, 11, s.Len())
	assert.Equal(t, uint64(1), s.At(0).Key())
}

func TestReserveThenFill(t *testing.T) {
	s := seq.NewVector[elem](heap())
	ReserveSize[elem]{}.Apply(s, 500)
	FillBack[elem]{}.Apply(s, 500)
	assert.Equal(t, 500, s.Len())
}

func TestFindScansWholeContainer(t *testing.T) {
	for bname, build := range builders() {
		t.Run(bname, func(t *testing.T) {
			s := FilledRandom[elem]{}.Make(200, heap(), build)
			require.Equal(t, 200, s.Len())
			// The worst-case key is never generated, so Find must not
			// mutate anything and the container stays intact.
			Find[elem]{}.Apply(s, 200)
			assert.Equal(t, 200, s.Len())
		})
	}
}

func TestInsertGrowsByN(t *testing.T) {
	for bname, build := range builders() {
		t.Run(bname, func(t *testing.T) {
			s := FilledRandom[elem]{}.Make(150, heap(), build)
			Insert[elem]{}.Apply(s, 150)
			assert.Equal(t, 300, s.Len())
		})
	}
}

func TestEraseEmptiesContainer(t *testing.T) {
	for bname, build := range builders() {
		t.Run(bname, func(t *testing.T) {
			s := FilledRandom[elem]{}.Make(120, heap(), build)
			Erase[elem]{}.Apply(s, 120)
			assert.Equal(t, 0, s.Len())
		})
	}
}

// End-to-end scenario: FilledRandom(100) then Sort leaves 100
// elements in non-decreasing order.
func TestSortPolicy(t *testing.T) {
	for bname, build := range builders() {
		t.Run(bname, func(t *testing.T) {
			s := FilledRandom[elem]{}.Make(100, heap(), build)
			Sort[elem]{}.Apply(s, 100)
			require.Equal(t, 100, s.Len())
			assert.True(t, sorted(s), "container not sorted")
		})
	}
}

func TestRandomSortedInsertKeepsOrder(t *testing.T) {
	for bname, build := range builders() {
		t.Run(bname, func(t *testing.T) {
			s := build(heap())
			RandomSortedInsert[elem]{}.Apply(s, 80)
			require.Equal(t, 80, s.Len())
			assert.True(t, sorted(s), "sorted insertion broke ordering")
		})
	}
}

// End-to-end scenario: SmartFilled(50) then SmartDelete releases all
// 50 indirections exactly once and empties the container.
func TestSmartFillDelete(t *testing.T) {
	smartBuilders := map[string]seq.Builder[values.Smart[elem]]{
		"vector": func(a alloc.Allocator) seq.Sequence[values.Smart[elem]] {
			return seq.NewVector[values.Smart[elem]](a)
		},
		"list": func(a alloc.Allocator) seq.Sequence[values.Smart[elem]] {
			return seq.NewList[values.Smart[elem]](a)
		},
		"deque": func(a alloc.Allocator) seq.Sequence[values.Smart[elem]] {
			return seq.NewDeque[values.Smart[elem]](a)
		},
	}
	for bname, build := range smartBuilders {
		t.Run(bname, func(t *testing.T) {
			var reg values.Registry
			create := SmartFilled[elem]{Reg: &reg}

			s := create.Make(50, heap(), build)
			require.Equal(t, 50, s.Len())
			require.Equal(t, 50, reg.Live())

			SmartDelete[elem]{}.Apply(s, 50)
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, 0, reg.Live())
			assert.Equal(t, 50, reg.Released())

			create.Clean()
			assert.Equal(t, 0, reg.Released())
		})
	}
}

func TestChainOrderMatters(t *testing.T) {
	// "reserve then fill" and "fill" are different chains but end in
	// the same state; applying them in declared order must hold.
	s := seq.NewVector[elem](heap())
	chain := []Policy[elem]{ReserveSize[elem]{}, FillBack[elem]{}}
	for _, p := range chain {
		p.Apply(s, 64)
	}
	assert.Equal(t, 64, s.Len())
}
