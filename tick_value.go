package immut

import "go.uber.org/atomic"

// TickValue is a signal gated cache of a small value. It skips the reference
// counting of an Object: every Store publishes a fresh copy and old copies are
// left to the garbage collector. Store and Load are for the writer, Get for a
// single reader.
type TickValue[T any] struct {
	value  atomic.Pointer[T]
	sig    Signaler
	gate   gate
	cached T
}

// NewTickValue returns a TickValue gated by sig holding val.
func NewTickValue[T any](sig Signaler, val T) *TickValue[T] {
	v := &TickValue[T]{sig: sig, cached: val}
	v.gate.last = sig.Value()
	v.value.Store(&val)
	return v
}

// Store publishes val.
func (v *TickValue[T]) Store(val T) { v.value.Store(&val) }

// Load returns the most recently stored value.
func (v *TickValue[T]) Load() T { return *v.value.Load() }

// Get returns the cached value, refreshing it first if the signal advanced.
func (v *TickValue[T]) Get() T {
	if v.gate.advanced(v.sig) {
		v.cached = *v.value.Load()
	}
	return v.cached
}
