package immut

import "go.uber.org/atomic"

// counter is the reference count of a slot. It starts at zero and is only
// incremented by the Handles and Unmanaged references that point at the slot.
type counter struct {
	count atomic.Int32
}

// Acquire increments the counter.
func (c *counter) Acquire() {
	c.count.Inc()
}

// Release decrements the counter and reports if it dropped to zero.
func (c *counter) Release() bool {
	n := c.count.Dec()
	if n < 0 {
		panic(Error.New("reference count released below zero"))
	}
	return n == 0
}

// Zero returns if the counter is not Acquired.
func (c *counter) Zero() bool {
	return c.count.Load() == 0
}

// Load returns the current count.
func (c *counter) Load() int32 {
	return c.count.Load()
}
