// Package values declares the catalogue of element types the
// benchmarks run against, together with the classification predicates
// that decide which suites are legal for each type.
package values

import "unsafe"

// Value is the constraint every benched element type satisfies.
// Types are ordered by a uint64 key; WithKey derives a fresh element
// carrying the given key so policies can build elements generically.
type Value[T any] interface {
	Less(T) bool
	Key() uint64
	WithKey(k uint64) T
}

// TrivialSmall is a word-sized trivially copyable record.
type TrivialSmall struct {
	A uint64
}

func (t TrivialSmall) Less(o TrivialSmall) bool { return t.A < o.A }
func (t TrivialSmall) Key() uint64 { return t.A }
func (t TrivialSmall) WithKey(k uint64) TrivialSmall { return TrivialSmall{A: k} }

// TrivialMedium is a 32-byte trivially copyable record.
type TrivialMedium struct {
	A uint64
	B [24]byte
}

func (t TrivialMedium) Less(o TrivialMedium) bool { return t.A < o.A }
func (t TrivialMedium) Key() uint64 { return t.A }
func (t TrivialMedium) WithKey(k uint64) TrivialMedium { t.A = k; return t }

// TrivialLarge is a 128-byte trivially copyable record.
type TrivialLarge struct {
	A uint64
	B [120]byte
}

func (t TrivialLarge) Less(o TrivialLarge) bool { return t.A < o.A }
func (t TrivialLarge) Key() uint64 { return t.A }
func (t TrivialLarge) WithKey(k uint64) TrivialLarge { t.A = k; return t }

// TrivialHuge is a 1 KiB trivially copyable record.
type TrivialHuge struct {
	A uint64
	B [1016]byte
}

func (t TrivialHuge) Less(o TrivialHuge) bool { return t.A < o.A }
func (t TrivialHuge) Key() uint64 { return t.A }
func (t TrivialHuge) WithKey(k uint64) TrivialHuge { t.A = k; return t }

// TrivialMonster is a 4 KiB trivially copyable record.
type TrivialMonster struct {
	A uint64
	B [4088]byte
}

func (t TrivialMonster) Less(o TrivialMonster) bool { return t.A < o.A }
func (t TrivialMonster) Key() uint64 { return t.A }
func (t TrivialMonster) WithKey(k uint64) TrivialMonster { t.A = k; return t }

// longPayload defeats any small-string optimisation a runtime might
// apply; copies of NonTrivialString share the backing array but the
// type still carries a heap indirection.
const longPayload = "some pretty long string to make sure it is not optimized with SSO"

// NonTrivialString carries a heap-indirected string payload next to
// its ordering key.
type NonTrivialString struct {
	data string
	A    uint64
}

func (t NonTrivialString) Less(o NonTrivialString) bool { return t.A < o.A }
func (t NonTrivialString) Key() uint64 { return t.A }
func (t NonTrivialString) WithKey(k uint64) NonTrivialString {
	return NonTrivialString{data: longPayload, A: k}
}

// NonTrivialArray is the 32-byte member of the non-trivial family:
// same layout as TrivialMedium but declared non-trivial in the
// classification table, so the non-trivial rosters stay populated at
// this size.
type NonTrivialArray struct {
	A uint64
	B [24]byte
}

func (t NonTrivialArray) Less(o NonTrivialArray) bool { return t.A < o.A }
func (t NonTrivialArray) Key() uint64 { return t.A }
func (t NonTrivialArray) WithKey(k uint64) NonTrivialArray { t.A = k; return t }

// Compile-time size contracts for the catalogue. A negative array
// length fails the build, so each pair pins the exact size.
var (
	_ [unsafe.Sizeof(TrivialSmall{}) - 8]struct{}
	_ [8 - unsafe.Sizeof(TrivialSmall{})]struct{}
	_ [unsafe.Sizeof(TrivialMedium{}) - 32]struct{}
	_ [32 - unsafe.Sizeof(TrivialMedium{})]struct{}
	_ [unsafe.Sizeof(TrivialLarge{}) - 128]struct{}
	_ [128 - unsafe.Sizeof(TrivialLarge{})]struct{}
	_ [unsafe.Sizeof(TrivialHuge{}) - 1024]struct{}
	_ [1024 - unsafe.Sizeof(TrivialHuge{})]struct{}
	_ [unsafe.Sizeof(TrivialMonster{}) - 4096]struct{}
	_ [4096 - unsafe.Sizeof(TrivialMonster{})]struct{}
	_ [unsafe.Sizeof(NonTrivialArray{}) - 32]struct{}
	_ [32 - unsafe.Sizeof(NonTrivialArray{})]struct{}
)
