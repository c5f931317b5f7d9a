package values

import (
	"reflect"
	"unsafe"
)

// Classification of the catalogue is a manual table: each type
// declares its class, and the tests check the table against
// reflect-derived structure (pointer-freeness, size) to catch drift.

// Class describes how a catalogue type behaves under copy.
type Class int

const (
	// Trivial types are plain memory: no heap indirection, copy is
	// a flat byte copy.
	Trivial Class = iota
	// NonTrivial types either carry a heap indirection or are
	// declared non-trivial in the catalogue table.
	NonTrivial
)

// classOf is the catalogue table. Types absent from the table have
// no declared classification and must not be benched.
var classOf = map[reflect.Type]Class{
	reflect.TypeOf(TrivialSmall{}):     Trivial,
	reflect.TypeOf(TrivialMedium{}):    Trivial,
	reflect.TypeOf(TrivialLarge{}):     Trivial,
	reflect.TypeOf(TrivialHuge{}):      Trivial,
	reflect.TypeOf(TrivialMonster{}):   Trivial,
	reflect.TypeOf(NonTrivialString{}): NonTrivial,
	reflect.TypeOf(NonTrivialArray{}):  NonTrivial,
}

// IsTrivialOfSize reports whether T is declared trivial and is
// exactly size bytes.
func IsTrivialOfSize[T any](size uintptr) bool {
	var zero T
	return classOf[reflect.TypeOf(zero)] == Trivial && unsafe.Sizeof(zero) == size
}

// IsNonTrivialOfSize reports whether T is declared non-trivial and
// is exactly size bytes.
func IsNonTrivialOfSize[T any](size uintptr) bool {
	var zero T
	ty := reflect.TypeOf(zero)
	c, ok := classOf[ty]
	return ok && c == NonTrivial && unsafe.Sizeof(zero) == size
}

// IsSmall reports whether T fits in a native word. Suites use it to
// gate operations that are quadratic on contiguous storage.
func IsSmall[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) <= unsafe.Sizeof(uintptr(0))
}

// HasPointers reports whether T's layout contains any pointer,
// string or other reference. Used by tests to catch classification
// drift: a type declared Trivial must be pointer-free.
func HasPointers[T any]() bool {
	var zero T
	return typeHasPointers(reflect.TypeOf(zero))
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, strings, slices, maps, chans, funcs, interfaces.
		return true
	}
}

// DisplayName is the human-readable name of T used in graph titles.
func DisplayName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
