package immut

import (
	"sync"

	"go.uber.org/atomic"
)

// Config holds the optional payload hooks of an Object.
type Config[T any] struct {
	// Copy returns a deep copy of a value. It is used by Write.Copy and
	// Write.Update. When nil, values are copied by assignment.
	Copy func(T) T

	// Reclaim is called by the writer exactly once for every version when it
	// is reclaimed by a sweep.
	Reclaim func(T)
}

// Stats is a snapshot of the bookkeeping of an Object.
type Stats struct {
	Commits   uint64 // number of versions published
	Sweeps    uint64 // number of reclamation passes run
	Reclaimed uint64 // number of versions reclaimed
	Live      int64  // number of versions published and not yet reclaimed
}

// Object publishes immutable versions of a value from a single writer to any
// number of readers. The zero value is an empty Object that is ready to use.
// An Object must not be copied after first use.
//
// The writer goroutine uses the Write view and readers use the Read view.
// Readers never block and never observe a partially published value.
type Object[T any] struct {
	_ [0]sync.Mutex // caught by go vet if copied

	current atomic.Pointer[slot[T]]
	arena   arena[T]
	copier  func(T) T
	guard   writerGuard
	commits atomic.Uint64

	// owned by the writer. it keeps the current version alive even if no
	// reader has looked at it yet.
	internal Handle[T]
	closed   bool
}

// New returns an Object seeded with val as its first version.
func New[T any](val T) *Object[T] {
	o := new(Object[T])
	h := o.commit(val)
	h.Release()
	return o
}

// NewWithConfig returns an empty Object using the hooks in cfg.
func NewWithConfig[T any](cfg Config[T]) *Object[T] {
	o := new(Object[T])
	o.copier = cfg.Copy
	o.arena.reclaim = cfg.Reclaim
	return o
}

// Read returns the reader view of the Object.
func (o *Object[T]) Read() Read[T] { return Read[T]{o: o} }

// Write returns the writer view of the Object.
func (o *Object[T]) Write() Write[T] { return Write[T]{o: o} }

// HasData reports if a version has been committed, in which case Get returns
// a valid Handle.
func (o *Object[T]) HasData() bool { return o.current.Load() != nil }

// Stats returns a snapshot of the bookkeeping of the Object. It is safe to be
// called concurrently.
func (o *Object[T]) Stats() Stats {
	return Stats{
		Commits:   o.commits.Load(),
		Sweeps:    o.arena.sweeps.Load(),
		Reclaimed: o.arena.reclaimed.Load(),
		Live:      o.arena.live.Load(),
	}
}

// Dispose returns the reference held by an Unmanaged accessor. It must be
// called exactly once for every accessor returned by Read.Unmanaged, no
// matter how many times the accessor was copied.
func (o *Object[T]) Dispose(u Unmanaged[T]) {
	if u.s == nil {
		return
	}
	if u.s.owner() != &o.arena {
		panic(Error.New("dispose of a version owned by another object"))
	}
	release(u.s)
}

// Close reclaims every version of the Object. All Handles and Unmanaged
// accessors must have been released first: Close panics if any survive. It
// must be called by the writer after readers are done. Closing twice does
// nothing.
func (o *Object[T]) Close() {
	o.guard.enter("close")
	defer o.guard.exit()

	if o.closed {
		return
	}
	o.closed = true

	o.current.Store(nil)
	o.internal.Release()
	o.arena.close()
}

// get returns a Handle to the current version.
func (o *Object[T]) get() Handle[T] {
	s := o.current.Load()
	for s != nil {
		// take the reference and then double check that the slot is still
		// current. if it is, the writer cannot release its own reference
		// before ours is visible, so the slot cannot be reclaimed.
		s.ctr.Acquire()
		next := o.current.Load()
		if next == s {
			return Handle[T]{s: s}
		}

		// we lost a race with a commit. the slot may already be swept, so
		// back out without touching its value and try the new one.
		release(s)
		s = next
	}
	return Handle[T]{}
}

// commit publishes val as the current version.
func (o *Object[T]) commit(val T) Handle[T] {
	o.guard.enter("commit")
	defer o.guard.exit()

	if o.closed {
		panic(Error.New("commit on closed object"))
	}

	s := o.arena.create(val)

	// hold the new slot before it becomes visible and only then drop the
	// reference to the previous one.
	prev := o.internal
	o.internal = acquire(s)
	o.current.Store(s)
	prev.Release()

	o.arena.sweep()
	o.commits.Inc()

	return acquire(s)
}

// copyCurrent returns a copy of the most recently committed value.
func (o *Object[T]) copyCurrent() (val T, ok bool) {
	o.guard.enter("copy")
	defer o.guard.exit()

	if !o.internal.Valid() {
		return val, false
	}
	val = o.internal.Value()
	if o.copier != nil {
		val = o.copier(val)
	}
	return val, true
}

// sweep runs a reclamation pass on behalf of the writer.
func (o *Object[T]) sweep() int {
	o.guard.enter("sweep")
	defer o.guard.exit()

	return o.arena.sweep()
}
