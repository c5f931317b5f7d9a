package values

// Registry tracks heap indirections handed out for one trial so
// bulk destruction can be verified: every indirection must be
// released exactly once. It also holds a reference to each payload:
// container storage carved from raw memory is invisible to the
// collector, so the registry must be the path that keeps payloads
// alive. References drop at Reset, with the counters, outside the
// timed chain.
type Registry struct {
	live     int
	released int
	held     []any
}

// Live reports indirections not yet released.
func (r *Registry) Live() int { return r.live }

// Released reports indirections released so far.
func (r *Registry) Released() int { return r.released }

// Reset drops the bookkeeping and the payload references between
// trials.
func (r *Registry) Reset() {
	r.live, r.released, r.held = 0, 0, nil
}

// Smart is a heap-indirected element: the payload lives in its own
// allocation so destroying a container of Smart values has a real
// per-element deallocation cost. Ordering follows the payload key.
type Smart[T Value[T]] struct {
	p   *T
	reg *Registry
}

// NewSmart allocates an indirected element holding v and records it
// in the registry.
func NewSmart[T Value[T]](reg *Registry, v T) Smart[T] {
	p := new(T)
	*p = v
	reg.live++
	reg.held = append(reg.held, p)
	return Smart[T]{p: p, reg: reg}
}

// Release drops the indirection. Releasing twice panics: a double
// free would mean the deletion benchmark destroyed an element it no
// longer owned.
func (s *Smart[T]) Release() {
	if s.p == nil {
		panic("values: double release of smart element")
	}
	s.p = nil
	s.reg.live--
	s.reg.released++
}

func (s Smart[T]) Less(o Smart[T]) bool { return (*s.p).Less(*o.p) }

func (s Smart[T]) Key() uint64 { return (*s.p).Key() }

// WithKey builds a fresh indirection in the same registry carrying
// the given key.
func (s Smart[T]) WithKey(k uint64) Smart[T] {
	var zero T
	return NewSmart(s.reg, zero.WithKey(k))
}
