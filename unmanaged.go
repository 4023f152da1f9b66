package immut

// Unmanaged is a non-owning accessor to one published version. Unlike a
// Handle it may be copied freely, but exactly one of the copies must be
// passed to Object.Dispose. Using it after that is undefined.
type Unmanaged[T any] struct {
	s *slot[T]
}

// Valid reports if the accessor refers to a version.
func (u Unmanaged[T]) Valid() bool { return u.s != nil }

// Value returns the version. It panics if the accessor is empty or was
// Disposed and its version reclaimed.
func (u Unmanaged[T]) Value() T {
	if u.s == nil {
		panic(Error.New("value of empty unmanaged accessor"))
	}
	return u.s.load()
}

// Version returns the commit sequence number of the version, or 0.
func (u Unmanaged[T]) Version() uint64 {
	if u.s == nil {
		return 0
	}
	return u.s.seq
}
