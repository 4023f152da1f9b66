package immut

import (
	"unsafe"

	"go.uber.org/atomic"
)

// arena owns every slot created for an Object. The set of slots is only
// mutated structurally by the writer goroutine: create inserts and sweep
// erases. The retired flag on each slot may be set by any goroutine.
type arena[T any] struct {
	slots   map[*slot[T]]struct{}
	seq     uint64
	reclaim func(T)

	sweeps    atomic.Uint64
	reclaimed atomic.Uint64
	live      atomic.Int64
}

// create takes ownership of val and registers a new slot for it with a zero
// reference count. It must only be called by the writer.
func (a *arena[T]) create(val T) *slot[T] {
	if a.slots == nil {
		a.slots = make(map[*slot[T]]struct{})
	}
	a.seq++

	s := &slot[T]{val: val}
	s.seq = a.seq
	s.arena = unsafe.Pointer(a)

	a.slots[s] = struct{}{}
	a.live.Inc()
	return s
}

// markSuperseded flags the slot as eligible for reclamation once its count is
// zero. It is safe to call from any goroutine and any number of times.
func (a *arena[T]) markSuperseded(s *slot[T]) {
	s.retired.Store(true)
}

// sweep deletes every slot that is both superseded and unreferenced and
// returns how many were deleted. It must only be called by the writer.
func (a *arena[T]) sweep() (n int) {
	a.sweeps.Inc()
	for s := range a.slots {
		if !s.reclaimable() {
			continue
		}
		delete(a.slots, s)
		a.destroy(s)
		n++
	}
	if n > 0 {
		a.reclaimed.Add(uint64(n))
		a.live.Sub(int64(n))
	}
	return n
}

// destroy runs the reclaim hook on the payload and drops it so the garbage
// collector can have it. a reader that raced an acquire against the sweep
// only ever touches the header, which stays valid.
func (a *arena[T]) destroy(s *slot[T]) {
	s.reclaimed.Store(true)
	if a.reclaim != nil {
		a.reclaim(s.val)
	}
	var zero T
	s.val = zero
}

// close sweeps one last time and panics if any slot is still alive.
func (a *arena[T]) close() {
	a.sweep()
	if len(a.slots) == 0 {
		return
	}

	var refs int32
	for s := range a.slots {
		refs += s.ctr.Load()
	}
	panic(Error.New("closed with %d live versions holding %d references", len(a.slots), refs))
}
