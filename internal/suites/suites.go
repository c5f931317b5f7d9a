// Package suites declares the benchmark catalogue: which containers,
// allocator strategies, creation policies and operation chains run
// for each operation, over which sizes. The wiring is deliberately
// static; the only runtime knob is a size divisor.
package suites

import (
	"log/slog"

	"github.com/shivam-909/seqbench/alloc"
	"github.com/shivam-909/seqbench/internal/bench"
	"github.com/shivam-909/seqbench/internal/graphs"
	"github.com/shivam-909/seqbench/internal/seq"
	"github.com/shivam-909/seqbench/internal/values"
)

// Size sweeps shared by the suites, as declared per operation.
var (
	largeSizes = bench.Sizes{100000, 200000, 300000, 400000, 500000, 600000, 700000, 800000, 900000, 1000000}
	midSizes   = bench.Sizes{10000, 20000, 30000, 40000, 50000, 60000, 70000, 80000, 90000, 100000}
	smallSizes = bench.Sizes{1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}
)

func vector[T any](a alloc.Allocator) seq.Sequence[T] { return seq.NewVector[T](a) }

func list[T any](a alloc.Allocator) seq.Sequence[T] { return seq.NewList[T](a) }

func deque[T any](a alloc.Allocator) seq.Sequence[T] { return seq.NewDeque[T](a) }

func chain[T any](ps ...bench.Policy[T]) []bench.Policy[T] { return ps }

func fillBack[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "fill_back", bench.Microseconds.Suffix())
	sizes := largeSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy, ch []bench.Policy[T]) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Microseconds, Create: bench.Empty[T]{},
			Sizes: sizes, Chain: ch,
		}.Run(r)
	}

	cfg("vector", vector[T], alloc.Heap{}, chain[T](bench.FillBack[T]{}))
	cfg("list", list[T], alloc.Heap{}, chain[T](bench.FillBack[T]{}))
	cfg("deque", deque[T], alloc.Heap{}, chain[T](bench.FillBack[T]{}))
	cfg("vector_reserve", vector[T], alloc.Heap{}, chain[T](bench.ReserveSize[T]{}, bench.FillBack[T]{}))
	cfg("list_linear", list[T], alloc.Arena{}, chain[T](bench.FillBack[T]{}))
	cfg("vector_inserter", vector[T], alloc.Heap{}, chain[T](bench.FillBackInserter[T]{}))
	cfg("list_inserter", list[T], alloc.Heap{}, chain[T](bench.FillBackInserter[T]{}))
	cfg("deque_inserter", deque[T], alloc.Heap{}, chain[T](bench.FillBackInserter[T]{}))
	cfg("list_inserter_linear", list[T], alloc.Arena{}, chain[T](bench.FillBackInserter[T]{}))
}

func emplaceBack[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "emplace_back", bench.Microseconds.Suffix())
	sizes := largeSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Microseconds, Create: bench.Empty[T]{},
			Sizes: sizes, Chain: chain[T](bench.EmplaceBack[T]{}),
		}.Run(r)
	}

	cfg("vector", vector[T], alloc.Heap{})
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

func fillFront[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "fill_front", bench.Microseconds.Suffix())
	sizes := midSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Microseconds, Create: bench.Empty[T]{},
			Sizes: sizes, Chain: chain[T](bench.FillFront[T]{}),
		}.Run(r)
	}

	// Quadratic on contiguous storage; only bearable for small types.
	if values.IsSmall[T]() {
		cfg("vector", vector[T], alloc.Heap{})
	}
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

func emplaceFront[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "emplace_front", bench.Microseconds.Suffix())
	sizes := midSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Microseconds, Create: bench.Empty[T]{},
			Sizes: sizes, Chain: chain[T](bench.EmplaceFront[T]{}),
		}.Run(r)
	}

	if values.IsSmall[T]() {
		cfg("vector", vector[T], alloc.Heap{})
	}
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

func linearSearch[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "linear_search", bench.Microseconds.Suffix())
	sizes := smallSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Microseconds, Create: bench.FilledRandom[T]{},
			Sizes: sizes, Chain: chain[T](bench.Find[T]{}),
		}.Run(r)
	}

	cfg("vector", vector[T], alloc.Heap{})
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

func randomInsert[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "random_insert", bench.Milliseconds.Suffix())
	sizes := midSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Milliseconds, Create: bench.FilledRandom[T]{},
			Sizes: sizes, Chain: chain[T](bench.Insert[T]{}),
		}.Run(r)
	}

	// No arena configuration here: the chain doubles the node count
	// (n pre-filled plus n inserted), which exceeds the fixed n+1000
	// arena budget and would abort the run.
	cfg("vector", vector[T], alloc.Heap{})
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
}

func randomRemove[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "random_remove", bench.Milliseconds.Suffix())
	sizes := midSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Milliseconds, Create: bench.FilledRandom[T]{},
			Sizes: sizes, Chain: chain[T](bench.Erase[T]{}),
		}.Run(r)
	}

	cfg("vector", vector[T], alloc.Heap{})
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

func sortSuite[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "sort", bench.Milliseconds.Suffix())
	sizes := largeSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Milliseconds, Create: bench.FilledRandom[T]{},
			Sizes: sizes, Chain: chain[T](bench.Sort[T]{}),
		}.Run(r)
	}

	cfg("vector", vector[T], alloc.Heap{})
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

func destruction[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "destruction", bench.Microseconds.Suffix())
	sizes := largeSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[values.Smart[T]], st alloc.Strategy) {
		var reg values.Registry
		bench.Bench[values.Smart[T]]{
			Label: label, Build: build, Strategy: st,
			Unit:   bench.Microseconds,
			Create: bench.SmartFilled[T]{Reg: &reg},
			Sizes:  sizes,
			Chain:  []bench.Policy[values.Smart[T]]{bench.SmartDelete[T]{}},
		}.Run(r)
	}

	cfg("vector", vector[values.Smart[T]], alloc.Heap{})
	cfg("list", list[values.Smart[T]], alloc.Heap{})
	cfg("deque", deque[values.Smart[T]], alloc.Heap{})
	cfg("list_linear", list[values.Smart[T]], alloc.Arena{})
}

func numberCrunching[T values.Value[T]](r *graphs.Report, scale int) {
	graphs.NewGraphFor[T](r, "number_crunching", bench.Milliseconds.Suffix())
	sizes := midSizes.Scale(scale)

	cfg := func(label string, build seq.Builder[T], st alloc.Strategy) {
		bench.Bench[T]{
			Label: label, Build: build, Strategy: st,
			Unit: bench.Milliseconds, Create: bench.Empty[T]{},
			Sizes: sizes, Chain: chain[T](bench.RandomSortedInsert[T]{}),
		}.Run(r)
	}

	cfg("vector", vector[T], alloc.Heap{})
	cfg("list", list[T], alloc.Heap{})
	cfg("deque", deque[T], alloc.Heap{})
	cfg("list_linear", list[T], alloc.Arena{})
}

type suiteFn func(r *graphs.Report, scale int)

// forAllTypes instantiates one suite over every catalogue type.
func forAllTypes(
	r *graphs.Report, scale int,
	small, medium, large, huge, monster, str, arr suiteFn,
) {
	small(r, scale)
	medium(r, scale)
	large(r, scale)
	huge(r, scale)
	monster(r, scale)
	str(r, scale)
	arr(r, scale)
}

// RunAll runs the complete catalogue into r. scale divides every
// declared size; 1 reproduces the declared sweeps.
func RunAll(r *graphs.Report, scale int) {
	type ts = values.TrivialSmall
	type tm = values.TrivialMedium
	type tl = values.TrivialLarge
	type th = values.TrivialHuge
	type tx = values.TrivialMonster
	type ns = values.NonTrivialString
	type na = values.NonTrivialArray

	slog.Info("running suite", "operation", "fill_back")
	forAllTypes(r, scale, fillBack[ts], fillBack[tm], fillBack[tl], fillBack[th], fillBack[tx], fillBack[ns], fillBack[na])
	slog.Info("running suite", "operation", "emplace_back")
	forAllTypes(r, scale, emplaceBack[ts], emplaceBack[tm], emplaceBack[tl], emplaceBack[th], emplaceBack[tx], emplaceBack[ns], emplaceBack[na])
	slog.Info("running suite", "operation", "fill_front")
	forAllTypes(r, scale, fillFront[ts], fillFront[tm], fillFront[tl], fillFront[th], fillFront[tx], fillFront[ns], fillFront[na])
	slog.Info("running suite", "operation", "emplace_front")
	forAllTypes(r, scale, emplaceFront[ts], emplaceFront[tm], emplaceFront[tl], emplaceFront[th], emplaceFront[tx], emplaceFront[ns], emplaceFront[na])
	slog.Info("running suite", "operation", "linear_search")
	forAllTypes(r, scale, linearSearch[ts], linearSearch[tm], linearSearch[tl], linearSearch[th], linearSearch[tx], linearSearch[ns], linearSearch[na])
	slog.Info("running suite", "operation", "random_insert")
	forAllTypes(r, scale, randomInsert[ts], randomInsert[tm], randomInsert[tl], randomInsert[th], randomInsert[tx], randomInsert[ns], randomInsert[na])
	slog.Info("running suite", "operation", "random_remove")
	forAllTypes(r, scale, randomRemove[ts], randomRemove[tm], randomRemove[tl], randomRemove[th], randomRemove[tx], randomRemove[ns], randomRemove[na])
	slog.Info("running suite", "operation", "sort")
	forAllTypes(r, scale, sortSuite[ts], sortSuite[tm], sortSuite[tl], sortSuite[th], sortSuite[tx], sortSuite[ns], sortSuite[na])
	slog.Info("running suite", "operation", "destruction")
	forAllTypes(r, scale, destruction[ts], destruction[tm], destruction[tl], destruction[th], destruction[tx], destruction[ns], destruction[na])

	// The most expensive chain; run for a reduced set of types only.
	slog.Info("running suite", "operation", "number_crunching")
	numberCrunching[ts](r, scale)
	numberCrunching[tm](r, scale)
}
