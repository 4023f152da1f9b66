package immut

// Handle keeps one published version of a value alive. The zero Handle is
// empty. Handles are counted references: every Handle returned by this package
// must be Released exactly once, and a Handle must be Cloned, not copied, to
// give another owner its own reference.
type Handle[T any] struct {
	s *slot[T]
}

// acquire returns a Handle holding a new reference to s. It returns an empty
// Handle only if s is nil.
func acquire[T any](s *slot[T]) Handle[T] {
	if s == nil {
		return Handle[T]{}
	}
	s.ctr.Acquire()
	return Handle[T]{s: s}
}

// Valid reports if the Handle refers to a version.
func (h Handle[T]) Valid() bool { return h.s != nil }

// Value returns the version the Handle refers to. It panics if the Handle is
// empty or if its version was already reclaimed, which only happens when a
// borrowed or Released Handle is used. The value must be treated as immutable.
func (h Handle[T]) Value() T {
	if h.s == nil {
		panic(Error.New("value of empty handle"))
	}
	return h.s.load()
}

// Version returns the commit sequence number of the version, starting at 1
// for the first commit on an Object. It returns 0 for an empty Handle.
func (h Handle[T]) Version() uint64 {
	if h.s == nil {
		return 0
	}
	return h.s.seq
}

// Clone returns a new Handle to the same version with its own reference.
func (h Handle[T]) Clone() Handle[T] {
	return acquire(h.s)
}

// Release drops the reference held by the Handle and empties it. Releasing an
// empty Handle does nothing. If this was the last reference to a version that
// is no longer current, the version becomes reclaimable by the next sweep.
func (h *Handle[T]) Release() {
	s := h.s
	if s == nil {
		return
	}
	h.s = nil
	release(s)
}

// release drops one reference to s and marks it superseded when it was the
// last one.
func release[T any](s *slot[T]) {
	if s.ctr.Release() {
		s.owner().markSuperseded(s)
	}
}
