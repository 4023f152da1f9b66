package immut

import "go.uber.org/atomic"

// Signaler is a monotonically increasing counter driven by some external
// cadence, like once per frame. Caches only compare successive values for
// inequality, so wrapping around is harmless.
type Signaler interface {
	Value() uint64
}

// Signal is a Signaler advanced by calling Notify. The zero value is ready to
// use. It is safe to be called concurrently.
type Signal struct {
	value atomic.Uint64
}

// Notify advances the signal.
func (s *Signal) Notify() { s.value.Inc() }

// Value returns the number of times Notify has been called.
func (s *Signal) Value() uint64 { return s.value.Load() }

// gate remembers the last observed value of a Signaler for one reader.
type gate struct {
	last uint64
}

// advanced reports if the signal moved since the last call and records the
// current value.
func (g *gate) advanced(sig Signaler) bool {
	v := sig.Value()
	if v == g.last {
		return false
	}
	g.last = v
	return true
}
