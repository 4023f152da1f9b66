package immut

// Read is the reader view of an Object. Any number of goroutines may use it
// concurrently with each other and with the writer.
type Read[T any] struct {
	o *Object[T]
}

// Get returns a Handle to the current version, or an empty Handle if nothing
// has been committed. A Get that starts after a Commit returns observes that
// version or a later one. The Handle must be Released.
func (r Read[T]) Get() Handle[T] { return r.o.get() }

// Unmanaged returns a non-owning accessor to the current version. The version
// stays alive until the accessor is passed to Object.Dispose, which must
// happen exactly once. Prefer Get.
func (r Read[T]) Unmanaged() Unmanaged[T] {
	h := r.o.get()
	return Unmanaged[T]{s: h.s}
}

// HasData reports if a version has been committed.
func (r Read[T]) HasData() bool { return r.o.HasData() }

// Write is the writer view of an Object. Only one goroutine may use it.
// Under the race detector or the immut_debug build tag, concurrent use panics.
type Write[T any] struct {
	o *Object[T]
}

// Copy returns a copy of the most recently committed value, made with the
// configured Copy hook. It returns false if nothing has been committed.
func (w Write[T]) Copy() (T, bool) { return w.o.copyCurrent() }

// Commit publishes val as the new current version and reclaims any older
// versions that are no longer referenced. It returns a Handle to the new
// version that must be Released. The value must not be mutated afterwards.
func (w Write[T]) Commit(val T) Handle[T] { return w.o.commit(val) }

// CommitNew publishes the value returned by build.
func (w Write[T]) CommitNew(build func() T) Handle[T] { return w.o.commit(build()) }

// Update commits the result of calling fn on a copy of the current value. fn
// receives the zero value if nothing has been committed.
func (w Write[T]) Update(fn func(T) T) Handle[T] {
	val, _ := w.o.copyCurrent()
	return w.o.commit(fn(val))
}

// Current returns a Handle to the most recently committed version without
// going through the shared pointer. It must be Released.
func (w Write[T]) Current() Handle[T] { return w.o.internal.Clone() }

// Sweep reclaims versions that have been superseded and released since the
// last sweep and returns how many were reclaimed. Commit already sweeps; Sweep
// is for writers that want memory back without publishing.
func (w Write[T]) Sweep() int { return w.o.sweep() }
