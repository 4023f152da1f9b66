package immut

import "go.uber.org/atomic"

// source is the read path a cache claims fresh Handles from.
type source[T any] interface {
	Get() Handle[T]
}

// stream is an Object paired with a flag raised by every commit and consumed
// by at most one claim. It carries the writer side shared by the tick caches.
type stream[T any] struct {
	obj     *Object[T]
	src     source[T]
	pending atomic.Bool
}

func (s *stream[T]) init(obj *Object[T]) {
	s.obj = obj
	s.src = obj.Read()
	s.pending.Store(obj.HasData())
}

// Object returns the underlying Object. Committing to it directly bypasses
// the pending flag, so readers of the cache would not notice.
func (s *stream[T]) Object() *Object[T] { return s.obj }

// Commit publishes val and flags it as pending for the readers of the cache.
// The returned Handle must be Released.
func (s *stream[T]) Commit(val T) Handle[T] {
	h := s.obj.commit(val)
	s.pending.Store(true)
	return h
}

// CommitNew publishes the value returned by build.
func (s *stream[T]) CommitNew(build func() T) Handle[T] {
	return s.Commit(build())
}

// Apply publishes the result of calling fn on a copy of the current value.
func (s *stream[T]) Apply(fn func(T) T) Handle[T] {
	val, _ := s.obj.copyCurrent()
	return s.Commit(fn(val))
}

// Copy returns a copy of the most recently committed value.
func (s *stream[T]) Copy() (T, bool) { return s.obj.copyCurrent() }

// IsPending reports if a commit has happened that no reader has claimed yet.
func (s *stream[T]) IsPending() bool { return s.pending.Load() }

// claim consumes the pending flag and, if it was set, returns a fresh Handle
// to the current version.
func (s *stream[T]) claim() (Handle[T], bool) {
	if !s.pending.Swap(false) {
		return Handle[T]{}, false
	}
	return s.src.Get(), true
}
