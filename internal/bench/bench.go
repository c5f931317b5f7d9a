// Package bench is the measurement engine: it composes creation and
// operation policies over a container/allocator pair, times the
// policy chain over a declared size sweep, averages over a fixed
// repetition count and reports one point per size to the result
// sink.
package bench

import (
	"strconv"
	"time"

	"github.com/shivam-909/seqbench/alloc"
	"github.com/shivam-909/seqbench/internal/graphs"
	"github.com/shivam-909/seqbench/internal/seq"
)

// Repeat is the number of trials averaged per size.
const Repeat = 7

// Sizes is the x-axis of one series: ten problem sizes, increasing
// by convention.
type Sizes [10]int

// Scale divides every size by div (minimum 1 per entry), letting a
// run trade fidelity for wall time without touching declarations.
func (s Sizes) Scale(div int) Sizes {
	if div <= 1 {
		return s
	}
	var out Sizes
	for i, n := range s {
		n /= div
		if n < 1 {
			n = 1
		}
		out[i] = n
	}
	return out
}

// Unit is the integer time unit results are reported in.
type Unit time.Duration

const (
	Microseconds Unit = Unit(time.Microsecond)
	Milliseconds Unit = Unit(time.Millisecond)
)

// Suffix is the unit label attached to graphs.
func (u Unit) Suffix() string {
	if u == Milliseconds {
		return "ms"
	}
	return "us"
}

// Clock supplies timestamps. The default is the runtime monotonic
// clock; tests inject a deterministic stub.
type Clock interface {
	Now() time.Time
}

type monotonicClock struct{}

func (monotonicClock) Now() time.Time { return time.Now() }

// Policy is one stateless operation applied to a container within
// the timed window.
type Policy[T any] interface {
	Apply(s seq.Sequence[T], n int)
}

// Create builds the container a trial starts from, outside the timed
// window. Clean runs once per trial after the container is torn
// down.
type Create[T any] interface {
	Make(n int, a alloc.Allocator, build seq.Builder[T]) seq.Sequence[T]
	Clean()
}

// Bench is one fully wired benchmark: a container kind, an allocator
// strategy, a creation policy and an ordered operation chain, swept
// over ten sizes.
type Bench[T any] struct {
	Label    string
	Build    seq.Builder[T]
	Strategy alloc.Strategy
	Unit     Unit
	Create   Create[T]
	Sizes    Sizes
	Chain    []Policy[T]

	// Clock overrides the monotonic clock when non-nil.
	Clock Clock
}

// Run executes the sweep and reports one averaged point per size.
// For each size: Repeat trials of construct, time the chain, tear
// down. Only the chain is inside the timed window. An arena
// exhaustion panic propagates; a truncated measurement must abort
// the run, not degrade.
func (b Bench[T]) Run(sink graphs.Sink) {
	clk := b.Clock
	if clk == nil {
		clk = monotonicClock{}
	}
	elemSize := alloc.Sizeof[T]()

	for _, n := range b.Sizes {
		// Each trial is truncated to the unit before summing, then
		// the sum is floor-divided by the repetition count.
		var total int64

		for i := 0; i < Repeat; i++ {
			a := b.Strategy.New(alloc.Hint{ElemSize: elemSize, Capacity: n})
			c := b.Create.Make(n, a, b.Build)

			t0 := clk.Now()
			for _, p := range b.Chain {
				p.Apply(c, n)
			}
			t1 := clk.Now()

			total += int64(t1.Sub(t0) / time.Duration(b.Unit))
			a.Release()
			b.Create.Clean()
		}

		sink.NewResult(b.Label, strconv.Itoa(n), total/Repeat)
	}
}
