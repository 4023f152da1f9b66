package immut

// TickCache is a reader cache over an Object for goroutines that poll on a
// fixed cadence. It only pays for acquiring a new Handle when the Signal has
// advanced and a commit has happened since the last claim, so any number of
// polls within one tick cost a single load of the signal.
//
// The writer side (Commit, CommitNew, Apply, Copy) must be used by a single
// goroutine, and the reader side (Acquire, Value) by another single goroutine.
// IsPending is safe from anywhere.
type TickCache[T any] struct {
	stream[T]
	sig     Signaler
	gate    gate
	current Handle[T]
}

// NewTickCache returns a cache over a new empty Object gated by sig.
func NewTickCache[T any](sig Signaler) *TickCache[T] {
	return NewTickCacheFor(sig, new(Object[T]))
}

// NewTickCacheFor returns a cache over obj gated by sig. If obj already has a
// version it is pending for the first claim.
func NewTickCacheFor[T any](sig Signaler, obj *Object[T]) *TickCache[T] {
	c := &TickCache[T]{sig: sig}
	c.gate.last = sig.Value()
	c.init(obj)
	return c
}

// Acquire returns the cached Handle, first replacing it with a fresh one if
// the signal advanced and a commit is pending. The Handle stays owned by the
// cache and is valid until the next Acquire: it must not be Released, and it
// must be Cloned to be kept longer. It is empty until the first claim.
func (c *TickCache[T]) Acquire() Handle[T] {
	if c.gate.advanced(c.sig) {
		if h, ok := c.claim(); ok {
			c.current.Release()
			c.current = h
		}
	}
	return c.current
}

// Value returns the value of the Handle returned by Acquire and false if it
// is empty.
func (c *TickCache[T]) Value() (val T, ok bool) {
	h := c.Acquire()
	if !h.Valid() {
		return val, false
	}
	return h.Value(), true
}

// Close releases the cached Handle and closes the Object. It must be called
// once both sides are done.
func (c *TickCache[T]) Close() {
	c.current.Release()
	c.obj.Close()
}
