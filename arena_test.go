package immut

import (
	"testing"
	"unsafe"

	"github.com/zeebo/assert"
)

func TestArena(t *testing.T) {
	var a arena[int]
	a.reclaim = func(int) {}

	s1 := a.create(1)
	s2 := a.create(2)
	assert.Equal(t, s1.seq, 1)
	assert.Equal(t, s2.seq, 2)
	assert.Equal(t, a.live.Load(), 2)
	assert.That(t, s1.owner() == &a)

	// unreferenced but not superseded slots stay.
	assert.Equal(t, a.sweep(), 0)

	// superseded but referenced slots stay.
	h := acquire(s1)
	a.markSuperseded(s1)
	a.markSuperseded(s1)
	assert.Equal(t, a.sweep(), 0)

	h.Release()
	assert.Equal(t, a.sweep(), 1)
	assert.Equal(t, a.live.Load(), 1)
	assert.Equal(t, a.reclaimed.Load(), 1)

	a.markSuperseded(s2)
	a.close()
	assert.Equal(t, len(a.slots), 0)
}

func TestArenaReleaseMarks(t *testing.T) {
	var a arena[int]
	s := a.create(1)

	h1 := acquire(s)
	h2 := h1.Clone()
	h1.Release()
	assert.False(t, s.retired.Load())

	h2.Release()
	assert.That(t, s.retired.Load())
	assert.Equal(t, a.sweep(), 1)
}

func TestArenaClosePanics(t *testing.T) {
	var a arena[int]
	s := a.create(1)
	h := acquire(s)

	err := catchPanic(a.close)
	assert.That(t, Error.Has(err))
	h.Release()
}

func TestSlotPadding(t *testing.T) {
	var s slot[byte]
	assert.Equal(t, unsafe.Offsetof(s.val)%cacheLine, uintptr(0))
}
