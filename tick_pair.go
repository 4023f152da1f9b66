package immut

// TickCachePair is a TickCache with two cells, for two consumers sampling the
// same stream, like two views rendering one simulation. Both cells share one
// pending flag, so each commit is claimed by at most one cell and the other
// cell reads its sibling's Handle. Under uneven polling a cell only ever sees
// the latest version and skips the ones in between.
//
// Both cells must be serviced by the same goroutine. The writer side may be
// used by one other goroutine.
type TickCachePair[T any] struct {
	stream[T]
	sig   Signaler
	cells [2]pairCell[T]
}

type pairCell[T any] struct {
	gate gate
	h    Handle[T]
}

// NewTickCachePair returns a paired cache over a new empty Object gated by sig.
func NewTickCachePair[T any](sig Signaler) *TickCachePair[T] {
	return NewTickCachePairFor(sig, new(Object[T]))
}

// NewTickCachePairFor returns a paired cache over obj gated by sig.
func NewTickCachePairFor[T any](sig Signaler, obj *Object[T]) *TickCachePair[T] {
	p := &TickCachePair[T]{sig: sig}
	last := sig.Value()
	p.cells[0].gate.last = last
	p.cells[1].gate.last = last
	p.init(obj)
	return p
}

// Update claims the pending version into cell if the signal advanced since
// the cell was last updated. It panics if cell is not 0 or 1.
func (p *TickCachePair[T]) Update(cell int) {
	c := p.cell(cell)
	if c.gate.advanced(p.sig) {
		p.claimInto(c)
	}
}

// Handle returns the newest Handle visible to cell: its own, or its sibling's
// when that one is newer or the cell has none. If neither cell has one, it
// claims the pending version into cell regardless of the signal. The Handle
// is owned by the cache and must not be Released. It is valid until the next
// Update, Handle or Value call on either cell, and must be Cloned to be kept
// longer. It panics if cell is not 0 or 1.
func (p *TickCachePair[T]) Handle(cell int) Handle[T] {
	c := p.cell(cell)
	sib := &p.cells[1-cell]

	// a stale handle keeps an old version alive for nothing.
	if c.h.Valid() && sib.h.Version() > c.h.Version() {
		c.h.Release()
	}

	switch {
	case c.h.Valid():
		return c.h
	case sib.h.Valid():
		return sib.h
	}

	p.claimInto(c)
	return c.h
}

// Value returns the value of Handle(cell) and false if it is empty. The value
// itself may be kept, but it is only immutable while its version is alive.
func (p *TickCachePair[T]) Value(cell int) (val T, ok bool) {
	h := p.Handle(cell)
	if !h.Valid() {
		return val, false
	}
	return h.Value(), true
}

// Close releases the Handles of both cells and closes the Object.
func (p *TickCachePair[T]) Close() {
	p.cells[0].h.Release()
	p.cells[1].h.Release()
	p.obj.Close()
}

func (p *TickCachePair[T]) claimInto(c *pairCell[T]) {
	if h, ok := p.claim(); ok {
		c.h.Release()
		c.h = h
	}
}

func (p *TickCachePair[T]) cell(cell int) *pairCell[T] {
	if cell != 0 && cell != 1 {
		panic(Error.New("invalid cell %d", cell))
	}
	return &p.cells[cell]
}
