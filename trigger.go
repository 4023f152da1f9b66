package immut

import "go.uber.org/atomic"

// Trigger is a one shot flag: one goroutine Fires it and another observes
// each Fire at most once. The zero value is not fired.
type Trigger struct {
	fired atomic.Bool
}

// Fire arms the trigger. Firing an armed trigger does nothing.
func (t *Trigger) Fire() { t.fired.Store(true) }

// Fired reports if the trigger was fired since the last call, disarming it.
func (t *Trigger) Fired() bool {
	if !t.fired.Load() {
		return false
	}
	return t.fired.Swap(false)
}
