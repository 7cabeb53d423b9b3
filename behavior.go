package rowan

// Behavior is a composable per-tick policy applied to a sprite. Each enabled
// tick the owning sprite evicts behaviors whose Remove is true, then executes
// the remaining enabled ones in list order.
//
// A behavior holds private state only (elapsed counters, captured positions);
// combinators hold references to child behaviors forming a composition tree.
// A behavior must never be its own descendant.
type Behavior interface {
	// Enabled reports whether Execute should run this tick.
	Enabled(s *GameObject) bool

	// Execute applies the policy to s for a tick of dt seconds.
	Execute(dt float64, s *GameObject)

	// Remove reports whether the owning sprite should evict this behavior.
	// An evicted behavior never executes again.
	Remove(s *GameObject) bool
}

// alwaysEnabled and neverRemoved supply the default Behavior answers for
// embedding, so leaves only spell out the queries they care about.
type alwaysEnabled struct{}

func (alwaysEnabled) Enabled(*GameObject) bool { return true }

type neverRemoved struct{}

func (neverRemoved) Remove(*GameObject) bool { return false }

// --- Sequence ---

// Sequence executes its behaviors one at a time, advancing past each one as
// its Enabled goes false. Enabled never reports "all done": the last behavior
// keeps answering for the whole sequence. Wrap in RemoveWhenFinished to evict
// a completed sequence.
type Sequence struct {
	neverRemoved
	behaviors []Behavior
	index     int
}

// NewSequence creates a Sequence. Panics if no behaviors are given.
func NewSequence(behaviors ...Behavior) *Sequence {
	if len(behaviors) == 0 {
		panic("rowan: Sequence requires at least one behavior")
	}
	return &Sequence{behaviors: behaviors}
}

// Enabled advances the index past any behavior whose Enabled has gone false,
// stopping at the first still-enabled behavior or the last in the list.
func (s *Sequence) Enabled(sp *GameObject) bool {
	for s.index < len(s.behaviors)-1 && !s.behaviors[s.index].Enabled(sp) {
		s.index++
	}
	return s.behaviors[s.index].Enabled(sp)
}

// Execute runs only the current behavior.
func (s *Sequence) Execute(dt float64, sp *GameObject) {
	s.behaviors[s.index].Execute(dt, sp)
}

// --- Whilst ---

// Whilst executes both behaviors every tick but mirrors only the primary's
// enablement, so the secondary runs exactly as long as the primary does.
type Whilst struct {
	neverRemoved
	primary   Behavior
	secondary Behavior
}

// NewWhilst pairs a primary behavior with a secondary that rides along.
func NewWhilst(primary, secondary Behavior) *Whilst {
	return &Whilst{primary: primary, secondary: secondary}
}

func (w *Whilst) Enabled(sp *GameObject) bool {
	return w.primary.Enabled(sp)
}

func (w *Whilst) Execute(dt float64, sp *GameObject) {
	w.primary.Execute(dt, sp)
	w.secondary.Execute(dt, sp)
}

// --- Exactly ---

// Exactly caps its inner behavior to at most n executions.
type Exactly struct {
	neverRemoved
	remaining int
	inner     Behavior
}

// NewExactly creates a behavior that executes inner at most n times.
func NewExactly(n int, inner Behavior) *Exactly {
	return &Exactly{remaining: n, inner: inner}
}

func (e *Exactly) Enabled(*GameObject) bool {
	return e.remaining > 0
}

func (e *Exactly) Execute(dt float64, sp *GameObject) {
	e.remaining--
	e.inner.Execute(dt, sp)
}

// --- RemoveWhenFinished ---

// RemoveWhenFinished mirrors its inner behavior and asks to be evicted
// exactly when the inner behavior's Enabled goes false, converting "no longer
// enabled" into "remove from the owner's list".
type RemoveWhenFinished struct {
	inner Behavior
}

// NewRemoveWhenFinished wraps inner so it is evicted once finished.
func NewRemoveWhenFinished(inner Behavior) *RemoveWhenFinished {
	return &RemoveWhenFinished{inner: inner}
}

func (r *RemoveWhenFinished) Enabled(sp *GameObject) bool {
	return r.inner.Enabled(sp)
}

func (r *RemoveWhenFinished) Execute(dt float64, sp *GameObject) {
	r.inner.Execute(dt, sp)
}

func (r *RemoveWhenFinished) Remove(sp *GameObject) bool {
	return !r.inner.Enabled(sp)
}

// --- Callback ---

// Callback invokes an arbitrary function each tick. It is always enabled and
// never self-evicts; it is the sanctioned escape hatch for one-off side
// effects within a composition, and its function is not introspectable.
type Callback struct {
	alwaysEnabled
	neverRemoved
	fn func(dt float64, s *GameObject)
}

// NewCallback creates a behavior that calls fn every tick.
func NewCallback(fn func(dt float64, s *GameObject)) *Callback {
	return &Callback{fn: fn}
}

func (c *Callback) Execute(dt float64, sp *GameObject) {
	c.fn(dt, sp)
}
