//go:build race || immut_debug

package immut

import "go.uber.org/atomic"

// guardEnabled reports if writer entry is checked in this build.
const guardEnabled = true

// writerGuard catches two goroutines running writer operations on the same
// Object at once. It never blocks: the loser panics.
type writerGuard struct {
	busy atomic.Bool
}

func (g *writerGuard) enter(op string) {
	if !g.busy.CompareAndSwap(false, true) {
		panic(Error.New("concurrent writer entered %s", op))
	}
}

func (g *writerGuard) exit() {
	g.busy.Store(false)
}
