package immut

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestTickCachePair(t *testing.T) {
	sig := new(Signal)
	p := NewTickCachePair[int](sig)
	src := countGets(&p.stream)

	// nothing committed, even a forced claim finds nothing.
	_, ok := p.Value(0)
	assert.False(t, ok)

	// with no value in either cell, the first read claims without a tick.
	publish(&p.stream, 1)
	val, ok := p.Value(1)
	assert.That(t, ok)
	assert.Equal(t, val, 1)
	val, _ = p.Value(0)
	assert.Equal(t, val, 1)
	assert.Equal(t, src.gets.Load(), 1)

	// one commit is claimed by one cell and seen by both.
	publish(&p.stream, 2)
	sig.Notify()
	p.Update(0)
	p.Update(1)
	val, _ = p.Value(0)
	assert.Equal(t, val, 2)
	val, _ = p.Value(1)
	assert.Equal(t, val, 2)
	assert.Equal(t, src.gets.Load(), 2)

	// the other cell claims next and the stale cell follows it.
	publish(&p.stream, 3)
	sig.Notify()
	p.Update(1)
	p.Update(0)
	val, _ = p.Value(1)
	assert.Equal(t, val, 3)
	val, _ = p.Value(0)
	assert.Equal(t, val, 3)
	assert.Equal(t, src.gets.Load(), 3)

	// cell 0 dropped its stale version.
	assert.Equal(t, p.Object().Write().Sweep(), 1)

	p.Close()
	assert.Equal(t, p.Object().Stats().Live, 0)
}

func TestTickCachePairUnevenCadence(t *testing.T) {
	sig := new(Signal)
	p := NewTickCachePair[int](sig)
	src := countGets(&p.stream)

	for i := 1; i <= 5; i++ {
		publish(&p.stream, i)
		sig.Notify()
		p.Update(0)
	}
	assert.Equal(t, src.gets.Load(), 5)

	// cell 1 never updated, it only ever sees the latest version.
	val, ok := p.Value(1)
	assert.That(t, ok)
	assert.Equal(t, val, 5)
	assert.Equal(t, src.gets.Load(), 5)

	p.Close()
}

func TestTickCachePairNoTick(t *testing.T) {
	sig := new(Signal)
	p := NewTickCachePairFor(sig, New(1))

	val, _ := p.Value(0)
	assert.Equal(t, val, 1)

	publish(&p.stream, 2)
	p.Update(0)
	p.Update(1)
	val, _ = p.Value(1)
	assert.Equal(t, val, 1)
	assert.That(t, p.IsPending())

	p.Close()
}

func TestTickCachePairInvalidCell(t *testing.T) {
	p := NewTickCachePair[int](new(Signal))

	err := catchPanic(func() { p.Update(2) })
	assert.That(t, Error.Has(err))
	err = catchPanic(func() { p.Value(-1) })
	assert.That(t, Error.Has(err))

	p.Close()
}

func TestTickCachePairBorrowedHandle(t *testing.T) {
	sig := new(Signal)
	p := NewTickCachePair[string](sig)

	publish(&p.stream, "a")
	h0 := p.Handle(0)
	assert.Equal(t, h0.Value(), "a")

	publish(&p.stream, "b")
	sig.Notify()
	p.Update(1)

	// cell 0 drops its stale version, ending the life of h0.
	h := p.Handle(0)
	assert.Equal(t, h.Value(), "b")
	assert.Equal(t, p.Object().Write().Sweep(), 1)

	err := catchPanic(func() { h0.Value() })
	assert.That(t, Error.Has(err))

	// a Clone keeps its version alive past the cell.
	kept := p.Handle(1).Clone()
	publish(&p.stream, "c")
	sig.Notify()
	p.Update(0)
	p.Update(1)
	assert.Equal(t, p.Object().Write().Sweep(), 0)
	assert.Equal(t, kept.Value(), "b")
	kept.Release()

	p.Close()
	assert.Equal(t, p.Object().Stats().Live, 0)
}
