package immut

import (
	"unsafe"

	"go.uber.org/atomic"
)

const cacheLine = 64 // typical size of a cache line

// slotHeader contains the bookkeeping for a slot. it is grouped into a struct
// that we embed so that we can easily calculate how many bytes to use to pad
// it to a cache line, keeping the hot reference count away from the payload.
type slotHeader struct {
	// the reference count. it starts at zero when the slot is created and
	// the owning Object's internal Handle provides the first increment.
	ctr counter
	// set by whoever drops the count to zero. since the Object holds a
	// reference to its current slot, that only happens after a newer slot
	// has been published.
	retired atomic.Bool
	// set by the sweep that deleted the slot. reads through a borrowed
	// Handle that outlived its lender check it and panic.
	reclaimed atomic.Bool
	// the commit sequence number of the slot, starting at 1.
	seq uint64
	// the arena that created the slot and is the only one allowed to reclaim it.
	arena unsafe.Pointer // *arena[T]
}

// slot is one published version of a value.
type slot[T any] struct {
	slotHeader
	_   [cacheLine - unsafe.Sizeof(slotHeader{})%cacheLine]byte
	val T
}

// owner returns the arena that created the slot.
func (s *slot[T]) owner() *arena[T] {
	return (*arena[T])(s.arena)
}

// load returns the payload, panicking if the slot was already reclaimed.
func (s *slot[T]) load() T {
	if s.reclaimed.Load() {
		panic(Error.New("read of reclaimed version %d", s.seq))
	}
	return s.val
}

// reclaimable reports if a sweep may delete the slot.
func (s *slot[T]) reclaimable() bool {
	return s.retired.Load() && s.ctr.Zero()
}
