package immut

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestUnmanaged(t *testing.T) {
	var reclaimed []string
	o := NewWithConfig(Config[string]{
		Reclaim: func(v string) { reclaimed = append(reclaimed, v) },
	})

	var empty Unmanaged[string]
	assert.False(t, empty.Valid())
	o.Dispose(empty)

	commit(o, "a")
	u := o.Read().Unmanaged()
	assert.That(t, u.Valid())
	assert.Equal(t, u.Version(), 1)

	// copies share the single reference.
	cp := u
	commit(o, "b")
	assert.Equal(t, cp.Value(), "a")
	assert.Equal(t, len(reclaimed), 0)

	o.Dispose(u)
	assert.Equal(t, o.Write().Sweep(), 1)
	assert.DeepEqual(t, reclaimed, []string{"a"})

	o.Close()
}

func TestUnmanagedEmptyValue(t *testing.T) {
	var u Unmanaged[int]
	err := catchPanic(func() { u.Value() })
	assert.That(t, Error.Has(err))
}

func TestUnmanagedWrongObject(t *testing.T) {
	a, b := New(1), New(2)

	u := a.Read().Unmanaged()
	err := catchPanic(func() { b.Dispose(u) })
	assert.That(t, Error.Has(err))

	a.Dispose(u)
	a.Close()
	b.Close()
}
