package values

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivam-909/seqbench/alloc"
)

// The catalogue table must agree with each type's actual size and
// layout; this is the enforcement half of the manual classification.
func TestCatalogueClassification(t *testing.T) {
	assert.True(t, IsTrivialOfSize[TrivialSmall](8))
	assert.True(t, IsTrivialOfSize[TrivialMedium](32))
	assert.True(t, IsTrivialOfSize[TrivialLarge](128))
	assert.True(t, IsTrivialOfSize[TrivialHuge](1024))
	assert.True(t, IsTrivialOfSize[TrivialMonster](4096))
	assert.True(t, IsNonTrivialOfSize[NonTrivialArray](32))
	assert.True(t, IsNonTrivialOfSize[NonTrivialString](24))

	// Wrong sizes must not classify.
	assert.False(t, IsTrivialOfSize[TrivialSmall](16))
	assert.False(t, IsNonTrivialOfSize[NonTrivialArray](8))

	// A type outside the catalogue has no classification.
	type stranger struct{ X uint64 }
	assert.False(t, IsTrivialOfSize[stranger](8))
	assert.False(t, IsNonTrivialOfSize[stranger](8))
}

// Types declared Trivial must be flat memory; NonTrivialString must
// actually carry an indirection.
func TestClassificationDrift(t *testing.T) {
	assert.False(t, HasPointers[TrivialSmall]())
	assert.False(t, HasPointers[TrivialMedium]())
	assert.False(t, HasPointers[TrivialLarge]())
	assert.False(t, HasPointers[TrivialHuge]())
	assert.False(t, HasPointers[TrivialMonster]())
	assert.False(t, HasPointers[NonTrivialArray]())
	assert.True(t, HasPointers[NonTrivialString]())
}

func TestIsSmall(t *testing.T) {
	assert.True(t, IsSmall[TrivialSmall]())
	assert.False(t, IsSmall[TrivialMedium]())
	assert.False(t, IsSmall[NonTrivialString]())
}

func TestOrderingAndKeys(t *testing.T) {
	a := TrivialMedium{}.WithKey(1)
	b := TrivialMedium{}.WithKey(2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, uint64(2), b.Key())

	s := NonTrivialString{}.WithKey(7)
	assert.Equal(t, uint64(7), s.Key())
	assert.NotEmpty(t, s.data)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "TrivialSmall", DisplayName[TrivialSmall]())
	assert.Equal(t, "NonTrivialString", DisplayName[NonTrivialString]())
}

func TestSmartReleaseExactlyOnce(t *testing.T) {
	var reg Registry
	s := NewSmart(&reg, TrivialSmall{}.WithKey(3))
	require.Equal(t, 1, reg.Live())

	s.Release()
	assert.Equal(t, 0, reg.Live())
	assert.Equal(t, 1, reg.Released())

	assert.Panics(t, func() { s.Release() })
}

// Smart elements stored in allocator-carved memory are invisible to
// the collector; the registry must be what keeps their payloads
// alive until the trial's teardown.
func TestRegistryKeepsPayloadsReachable(t *testing.T) {
	var reg Registry
	a := alloc.Heap{}.New(alloc.Hint{})
	s := alloc.MakeSlice[Smart[TrivialSmall]](a, 100)
	for i := range s {
		s[i] = NewSmart(&reg, TrivialSmall{}.WithKey(uint64(i)))
	}
	require.Len(t, reg.held, 100)

	runtime.GC()
	runtime.GC()
	for i := range s {
		require.Equal(t, uint64(i), s[i].Key())
	}

	reg.Reset()
	assert.Empty(t, reg.held)
}

func TestSmartOrdering(t *testing.T) {
	var reg Registry
	a := NewSmart(&reg, TrivialSmall{}.WithKey(1))
	b := a.WithKey(9)
	assert.True(t, a.Less(b))
	assert.Equal(t, uint64(9), b.Key())
	assert.Equal(t, 2, reg.Live())
}
